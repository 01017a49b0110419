package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dunner/internal/domain/activity"
	"dunner/internal/domain/invoice"
	"dunner/internal/domain/reminder"
	"dunner/internal/shared/db"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/id"
	"dunner/internal/shared/logger"
)

const (
	reminderDateLayout = "2006-01-02"
	reminderTimeLayout = "15:04"
)

type BatchNoteCommand struct {
	InvoiceRefs []string
	NoteText    string

	// WithReminder gates the reminder fields below. When set, ReminderDate
	// and ReminderTime are both required.
	WithReminder bool
	ReminderDate string
	ReminderTime string
	SendEmail    bool

	CreatedBy uint
}

type BatchNoteResult struct {
	BatchID       string
	MemoCount     int
	ReminderCount int
	ReminderAt    *time.Time
}

// BatchNoteUseCase writes one memo per selected invoice, optionally
// scheduling a reminder per invoice, and records one activity entry for the
// whole batch. Everything happens in a single transaction.
type BatchNoteUseCase struct {
	invoiceRepo    invoice.Repository
	assignmentRepo invoice.AssignmentRepository
	memoRepo       invoice.MemoRepository
	reminderRepo   reminder.Repository
	activityRepo   activity.Repository
	txManager      db.TxManager
	logger         logger.Interface
}

func NewBatchNoteUseCase(
	invoiceRepo invoice.Repository,
	assignmentRepo invoice.AssignmentRepository,
	memoRepo invoice.MemoRepository,
	reminderRepo reminder.Repository,
	activityRepo activity.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *BatchNoteUseCase {
	return &BatchNoteUseCase{
		invoiceRepo:    invoiceRepo,
		assignmentRepo: assignmentRepo,
		memoRepo:       memoRepo,
		reminderRepo:   reminderRepo,
		activityRepo:   activityRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *BatchNoteUseCase) Execute(ctx context.Context, cmd BatchNoteCommand) (*BatchNoteResult, error) {
	uc.logger.Infow("executing batch note use case",
		"invoice_count", len(cmd.InvoiceRefs), "with_reminder", cmd.WithReminder)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid batch note command", "error", err)
		return nil, err
	}

	var remindAt *time.Time
	if cmd.WithReminder {
		at, err := composeReminderTimestamp(cmd.ReminderDate, cmd.ReminderTime)
		if err != nil {
			uc.logger.Errorw("invalid reminder timestamp", "date", cmd.ReminderDate, "time", cmd.ReminderTime, "error", err)
			return nil, errors.NewValidationError(err.Error())
		}
		remindAt = &at
	}

	refs := invoice.NewSelectionFrom(cmd.InvoiceRefs).Refs()

	invoices, err := uc.invoiceRepo.FindByRefs(ctx, refs)
	if err != nil {
		uc.logger.Errorw("failed to load invoices", "error", err)
		return nil, errors.NewInternalError("failed to load invoices")
	}
	if missing := missingRefs(refs, invoices); len(missing) > 0 {
		return nil, errors.NewNotFoundError(
			fmt.Sprintf("invoice(s) not found: %s", strings.Join(missing, ", ")))
	}

	batchID, err := id.NewNoteBatchID()
	if err != nil {
		uc.logger.Errorw("failed to generate batch id", "error", err)
		return nil, errors.NewInternalError("failed to generate batch id")
	}

	ticketIDs, err := uc.ticketIDsByRef(ctx, refs)
	if err != nil {
		return nil, err
	}

	reminderCount := 0
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		memos := make([]*invoice.Memo, 0, len(refs))
		for _, ref := range refs {
			memo, err := invoice.NewMemo(ref, ticketIDs[ref], batchID, cmd.NoteText, cmd.CreatedBy)
			if err != nil {
				return err
			}
			memos = append(memos, memo)
		}
		if err := uc.memoRepo.SaveBatch(txCtx, memos); err != nil {
			return fmt.Errorf("save memos: %w", err)
		}

		if remindAt != nil {
			reminders := make([]*reminder.Reminder, 0, len(refs))
			for _, ref := range refs {
				r, err := reminder.NewReminder(
					ref,
					ticketIDs[ref],
					cmd.CreatedBy,
					fmt.Sprintf("Follow up invoice %s", ref),
					cmd.NoteText,
					*remindAt,
					cmd.SendEmail,
				)
				if err != nil {
					return err
				}
				reminders = append(reminders, r)
			}
			if err := uc.reminderRepo.CreateBatch(txCtx, reminders); err != nil {
				return fmt.Errorf("save reminders: %w", err)
			}
			reminderCount = len(reminders)
		}

		metadata := map[string]interface{}{
			"invoice_refs": refs,
			"batch_id":     batchID,
		}
		if remindAt != nil {
			metadata["reminder_at"] = remindAt.Format(time.RFC3339)
		}

		entry, err := activity.NewEntry(
			activity.TypeMemoAdded,
			nil,
			fmt.Sprintf("noted %d invoice(s)", len(refs)),
			metadata,
			cmd.CreatedBy,
		)
		if err != nil {
			return err
		}
		if err := uc.activityRepo.Append(txCtx, entry); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to save batch note", "batch_id", batchID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to save batch note")
	}

	uc.logger.Infow("batch note saved",
		"batch_id", batchID, "memo_count", len(refs), "reminder_count", reminderCount)

	return &BatchNoteResult{
		BatchID:       batchID,
		MemoCount:     len(refs),
		ReminderCount: reminderCount,
		ReminderAt:    remindAt,
	}, nil
}

func (uc *BatchNoteUseCase) ticketIDsByRef(ctx context.Context, refs []string) (map[string]*uint, error) {
	out := make(map[string]*uint, len(refs))
	for _, ref := range refs {
		assignment, err := uc.assignmentRepo.GetByRef(ctx, ref)
		if err != nil {
			uc.logger.Errorw("failed to look up invoice assignment", "invoice_ref", ref, "error", err)
			return nil, errors.NewInternalError("failed to look up invoice assignments")
		}
		if assignment != nil {
			ticketID := assignment.TicketID()
			out[ref] = &ticketID
		}
	}
	return out, nil
}

func (uc *BatchNoteUseCase) validateCommand(cmd BatchNoteCommand) error {
	if len(cmd.InvoiceRefs) == 0 {
		return errors.NewValidationError("at least one invoice is required")
	}

	if strings.TrimSpace(cmd.NoteText) == "" {
		return errors.NewValidationError("note text is required")
	}

	if cmd.WithReminder {
		if cmd.ReminderDate == "" {
			return errors.NewValidationError("reminder date is required")
		}
		if cmd.ReminderTime == "" {
			return errors.NewValidationError("reminder time is required")
		}
	}

	if cmd.CreatedBy == 0 {
		return errors.NewValidationError("user ID is required")
	}

	return nil
}

// composeReminderTimestamp joins the operator-chosen date and time into one
// absolute local timestamp.
func composeReminderTimestamp(date, timeOfDay string) (time.Time, error) {
	at, err := time.ParseInLocation(reminderDateLayout+" "+reminderTimeLayout, date+" "+timeOfDay, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder date/time: %s %s", date, timeOfDay)
	}
	return at, nil
}

func missingRefs(refs []string, invoices []*invoice.Invoice) []string {
	found := make(map[string]bool, len(invoices))
	for _, inv := range invoices {
		found[inv.Ref()] = true
	}

	var missing []string
	for _, ref := range refs {
		if !found[ref] {
			missing = append(missing, ref)
		}
	}
	return missing
}

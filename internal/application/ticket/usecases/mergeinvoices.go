package usecases

import (
	"context"
	"fmt"

	"dunner/internal/domain/activity"
	"dunner/internal/domain/invoice"
	"dunner/internal/domain/ticket"
	"dunner/internal/shared/db"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/logger"
)

type MergeInvoicesCommand struct {
	TicketID    uint
	InvoiceRefs []string
	Notes       string
	MergedBy    uint
}

type MergeInvoicesResult struct {
	MergeID      string
	TicketID     uint
	TicketNumber string
	InvoiceCount int
}

type MergeInvoicesUseCase struct {
	ticketRepo     ticket.Repository
	mergeRepo      ticket.MergeEventRepository
	assignmentRepo invoice.AssignmentRepository
	activityRepo   activity.Repository
	txManager      db.TxManager
	logger         logger.Interface
}

func NewMergeInvoicesUseCase(
	ticketRepo ticket.Repository,
	mergeRepo ticket.MergeEventRepository,
	assignmentRepo invoice.AssignmentRepository,
	activityRepo activity.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *MergeInvoicesUseCase {
	return &MergeInvoicesUseCase{
		ticketRepo:     ticketRepo,
		mergeRepo:      mergeRepo,
		assignmentRepo: assignmentRepo,
		activityRepo:   activityRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *MergeInvoicesUseCase) Execute(ctx context.Context, cmd MergeInvoicesCommand) (*MergeInvoicesResult, error) {
	uc.logger.Infow("executing merge invoices use case", "ticket_id", cmd.TicketID, "invoice_count", len(cmd.InvoiceRefs))

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid merge invoices command", "error", err)
		return nil, err
	}

	target, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if !target.IsLive() {
		return nil, errors.NewValidationError(
			fmt.Sprintf("ticket %s is %s and cannot receive invoices", target.Number(), target.Status()))
	}

	refs := invoice.NewSelectionFrom(cmd.InvoiceRefs).Refs()

	event, err := ticket.NewMergeEvent(target.ID(), refs, cmd.Notes, cmd.MergedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		entries := make([]*ticket.InvoiceEntry, 0, len(refs))
		assignments := make([]*invoice.Assignment, 0, len(refs))
		for _, ref := range refs {
			entry, err := ticket.NewInvoiceEntry(target.ID(), ref, cmd.MergedBy)
			if err != nil {
				return err
			}
			entries = append(entries, entry)

			assignment, err := invoice.NewAssignment(ref, target.ID(), target.CollectorID())
			if err != nil {
				return err
			}
			assignments = append(assignments, assignment)
		}

		if err := uc.ticketRepo.AddInvoices(txCtx, entries); err != nil {
			return fmt.Errorf("attach invoices: %w", err)
		}

		if err := uc.assignmentRepo.UpsertBatch(txCtx, assignments); err != nil {
			return fmt.Errorf("upsert assignments: %w", err)
		}

		if err := uc.mergeRepo.Create(txCtx, event); err != nil {
			return fmt.Errorf("save merge event: %w", err)
		}

		ticketID := target.ID()
		entry, err := activity.NewEntry(
			activity.TypeMerge,
			&ticketID,
			fmt.Sprintf("merged %d invoice(s) into ticket %s", len(refs), target.Number()),
			map[string]interface{}{
				"merge_id":     event.ID(),
				"invoice_refs": refs,
			},
			cmd.MergedBy,
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
		uc.logger.Errorw("failed to merge invoices", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to merge invoices")
	}

	uc.logger.Infow("invoices merged successfully",
		"ticket_id", target.ID(), "merge_id", event.ID(), "invoice_count", len(refs))

	return &MergeInvoicesResult{
		MergeID:      event.ID(),
		TicketID:     target.ID(),
		TicketNumber: target.Number(),
		InvoiceCount: len(refs),
	}, nil
}

func (uc *MergeInvoicesUseCase) validateCommand(cmd MergeInvoicesCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if len(cmd.InvoiceRefs) == 0 {
		return errors.NewValidationError("at least one invoice is required")
	}

	if cmd.MergedBy == 0 {
		return errors.NewValidationError("merging user ID is required")
	}

	return nil
}

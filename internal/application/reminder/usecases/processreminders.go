package usecases

import (
	"context"
	"time"

	"dunner/internal/domain/reminder"
	"dunner/internal/shared/logger"
)

// EmailSender delivers a reminder notification to the collections inbox.
type EmailSender interface {
	SendReminderEmail(ctx context.Context, r *reminder.Reminder) error
}

type ProcessRemindersCommand struct {
	Now       time.Time
	BatchSize int
}

type ProcessRemindersResult struct {
	Processed  int
	EmailsSent int
	Failed     int
}

// ProcessRemindersUseCase is the delivery loop body. It picks due pending
// reminders, marks them triggered and sends email where requested. One
// failing reminder does not stop the rest of the batch.
type ProcessRemindersUseCase struct {
	reminderRepo reminder.Repository
	emailSender  EmailSender
	logger       logger.Interface
}

func NewProcessRemindersUseCase(
	reminderRepo reminder.Repository,
	emailSender EmailSender,
	logger logger.Interface,
) *ProcessRemindersUseCase {
	return &ProcessRemindersUseCase{
		reminderRepo: reminderRepo,
		emailSender:  emailSender,
		logger:       logger,
	}
}

func (uc *ProcessRemindersUseCase) Execute(ctx context.Context, cmd ProcessRemindersCommand) (*ProcessRemindersResult, error) {
	now := cmd.Now
	if now.IsZero() {
		now = time.Now()
	}
	batchSize := cmd.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	due, err := uc.reminderRepo.ListDue(ctx, now, batchSize)
	if err != nil {
		uc.logger.Errorw("failed to list due reminders", "error", err)
		return nil, err
	}

	if len(due) == 0 {
		return &ProcessRemindersResult{}, nil
	}

	uc.logger.Infow("processing due reminders", "count", len(due))

	result := &ProcessRemindersResult{}
	for _, r := range due {
		if err := r.MarkTriggered(); err != nil {
			uc.logger.Warnw("skipping reminder", "reminder_id", r.ID(), "error", err)
			continue
		}

		if err := uc.reminderRepo.Update(ctx, r); err != nil {
			uc.logger.Errorw("failed to mark reminder triggered", "reminder_id", r.ID(), "error", err)
			result.Failed++
			continue
		}

		result.Processed++

		if r.SendEmail() && uc.emailSender != nil {
			if err := uc.emailSender.SendReminderEmail(ctx, r); err != nil {
				// The reminder stays triggered, email delivery is best effort.
				uc.logger.Errorw("failed to send reminder email",
					"reminder_id", r.ID(), "invoice_ref", r.InvoiceRef(), "error", err)
				continue
			}
			result.EmailsSent++
		}
	}

	uc.logger.Infow("reminder batch processed",
		"processed", result.Processed, "emails_sent", result.EmailsSent, "failed", result.Failed)

	return result, nil
}

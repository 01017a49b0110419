package scheduler

import (
	"context"
	"time"

	reminderUC "dunner/internal/application/reminder/usecases"
	"dunner/internal/shared/logger"
)

// ReminderProcessor defines the interface for processing due reminders.
type ReminderProcessor interface {
	Execute(ctx context.Context, cmd reminderUC.ProcessRemindersCommand) (*reminderUC.ProcessRemindersResult, error)
}

// ReminderScheduler runs the reminder delivery loop on a fixed interval.
type ReminderScheduler struct {
	processor ReminderProcessor
	logger    logger.Interface
	stopChan  chan struct{}
	interval  time.Duration
	batchSize int
}

// NewReminderScheduler creates a new reminder scheduler.
func NewReminderScheduler(
	processor ReminderProcessor,
	log logger.Interface,
	interval time.Duration,
	batchSize int,
) *ReminderScheduler {
	if interval <= 0 {
		interval = time.Minute
	}

	return &ReminderScheduler{
		processor: processor,
		logger:    log,
		stopChan:  make(chan struct{}),
		interval:  interval,
		batchSize: batchSize,
	}
}

// Start starts the scheduler. It blocks until Stop is called or the context
// is cancelled, so run it in its own goroutine.
func (s *ReminderScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting reminder scheduler", "interval", s.interval)

	// Run immediately on start
	s.processReminders(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("reminder scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.processReminders(ctx)
		}
	}
}

// Stop stops the scheduler.
func (s *ReminderScheduler) Stop() {
	close(s.stopChan)
}

func (s *ReminderScheduler) processReminders(ctx context.Context) {
	s.logger.Debugw("processing reminders task started")

	result, err := s.processor.Execute(ctx, reminderUC.ProcessRemindersCommand{
		BatchSize: s.batchSize,
	})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Errorw("failed to process reminders", "error", err)
		return
	}

	if result.Processed > 0 {
		s.logger.Infow("reminders processed",
			"processed", result.Processed,
			"emails_sent", result.EmailsSent,
			"failed", result.Failed,
		)
	}
}

package reminder

import (
	"context"
	"time"
)

// Repository persists scheduled reminders.
type Repository interface {
	Create(ctx context.Context, r *Reminder) error
	CreateBatch(ctx context.Context, reminders []*Reminder) error
	Update(ctx context.Context, r *Reminder) error
	FindByID(ctx context.Context, id uint) (*Reminder, error)

	// ListDue returns pending reminders whose remind time is at or before
	// the given instant, oldest first, capped at limit.
	ListDue(ctx context.Context, now time.Time, limit int) ([]*Reminder, error)

	ListByInvoice(ctx context.Context, invoiceRef string) ([]*Reminder, error)
}

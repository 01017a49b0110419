package ticket

import (
	"context"

	"dunner/internal/domain/ticket/valueobjects"
)

// ListFilter narrows ticket list queries.
type ListFilter struct {
	CustomerID  string
	CollectorID uint
	Status      valueobjects.TicketStatus
	TicketType  valueobjects.TicketType
}

// Repository persists tickets and their attached invoices.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByNumber(ctx context.Context, number string) (*Ticket, error)

	// FindLatestLive returns the most recently created live ticket for the
	// customer/collector pair, or (nil, nil) when none exists.
	FindLatestLive(ctx context.Context, customerID string, collectorID uint) (*Ticket, error)

	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Ticket, int64, error)

	AddInvoices(ctx context.Context, entries []*InvoiceEntry) error
	ListInvoices(ctx context.Context, ticketID uint) ([]*InvoiceEntry, error)
	CountInvoices(ctx context.Context, ticketID uint) (int64, error)
}

// StatusHistoryRepository persists the append-only status change trail.
type StatusHistoryRepository interface {
	Create(ctx context.Context, h *StatusHistory) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*StatusHistory, error)
}

// MergeEventRepository persists merge events.
type MergeEventRepository interface {
	Create(ctx context.Context, e *MergeEvent) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*MergeEvent, error)
}

// NumberGenerator produces human-facing ticket numbers.
type NumberGenerator interface {
	Next(ctx context.Context) (string, error)
}

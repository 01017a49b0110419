package activity

import "context"

// ListFilter narrows activity trail queries.
type ListFilter struct {
	TicketID  uint
	EntryType Type
}

// Repository persists the append-only activity trail. There are no update
// or delete operations on purpose.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	List(ctx context.Context, filter ListFilter, offset, limit int) ([]*Entry, int64, error)

	// LatestByTicket returns the most recent entry for a ticket, or
	// (nil, nil) when the trail is empty.
	LatestByTicket(ctx context.Context, ticketID uint) (*Entry, error)
}

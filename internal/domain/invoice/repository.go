package invoice

import (
	"context"

	"dunner/internal/domain/invoice/valueobjects"
)

// Repository persists invoices and their color tags.
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	Update(ctx context.Context, inv *Invoice) error
	FindByRef(ctx context.Context, ref string) (*Invoice, error)
	FindByRefs(ctx context.Context, refs []string) ([]*Invoice, error)
	ListByCustomer(ctx context.Context, customerID string, offset, limit int) ([]*Invoice, int64, error)

	SetColor(ctx context.Context, ref string, color valueobjects.Color) error

	// BatchSetColor applies one color to every ref in a single update.
	BatchSetColor(ctx context.Context, refs []string, color valueobjects.Color) error
}

// AssignmentRepository persists the invoice-to-ticket ownership records.
type AssignmentRepository interface {
	// UpsertBatch writes assignments for all given invoices, overwriting any
	// previous ticket ownership per invoice ref.
	UpsertBatch(ctx context.Context, assignments []*Assignment) error
	GetByRef(ctx context.Context, invoiceRef string) (*Assignment, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Assignment, error)
}

// MemoRepository persists dated invoice notes.
type MemoRepository interface {
	SaveBatch(ctx context.Context, memos []*Memo) error
	ListByInvoice(ctx context.Context, invoiceRef string) ([]*Memo, error)
	ListByBatch(ctx context.Context, batchID string) ([]*Memo, error)
}

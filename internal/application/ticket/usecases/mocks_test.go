package usecases

import (
	"context"
	"time"

	"dunner/internal/domain/activity"
	"dunner/internal/domain/invoice"
	invoicevo "dunner/internal/domain/invoice/valueobjects"
	"dunner/internal/domain/ticket"
	"dunner/internal/shared/logger"
)

type mockTicketRepository struct {
	CreateFunc         func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc       func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByNumberFunc   func(ctx context.Context, number string) (*ticket.Ticket, error)
	FindLatestLiveFunc func(ctx context.Context, customerID string, collectorID uint) (*ticket.Ticket, error)
	ListFunc           func(ctx context.Context, filter ticket.ListFilter, offset, limit int) ([]*ticket.Ticket, int64, error)
	AddInvoicesFunc    func(ctx context.Context, entries []*ticket.InvoiceEntry) error
	ListInvoicesFunc   func(ctx context.Context, ticketID uint) ([]*ticket.InvoiceEntry, error)
	CountInvoicesFunc  func(ctx context.Context, ticketID uint) (int64, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	t.SetID(1)
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindLatestLive(ctx context.Context, customerID string, collectorID uint) (*ticket.Ticket, error) {
	if m.FindLatestLiveFunc != nil {
		return m.FindLatestLiveFunc(ctx, customerID, collectorID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter, offset, limit int) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) AddInvoices(ctx context.Context, entries []*ticket.InvoiceEntry) error {
	if m.AddInvoicesFunc != nil {
		return m.AddInvoicesFunc(ctx, entries)
	}
	return nil
}

func (m *mockTicketRepository) ListInvoices(ctx context.Context, ticketID uint) ([]*ticket.InvoiceEntry, error) {
	if m.ListInvoicesFunc != nil {
		return m.ListInvoicesFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountInvoices(ctx context.Context, ticketID uint) (int64, error) {
	if m.CountInvoicesFunc != nil {
		return m.CountInvoicesFunc(ctx, ticketID)
	}
	return 0, nil
}

type mockStatusHistoryRepository struct {
	CreateFunc       func(ctx context.Context, h *ticket.StatusHistory) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.StatusHistory, error)
}

func (m *mockStatusHistoryRepository) Create(ctx context.Context, h *ticket.StatusHistory) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, h)
	}
	return nil
}

func (m *mockStatusHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.StatusHistory, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockMergeEventRepository struct {
	CreateFunc       func(ctx context.Context, e *ticket.MergeEvent) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.MergeEvent, error)
}

func (m *mockMergeEventRepository) Create(ctx context.Context, e *ticket.MergeEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockMergeEventRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.MergeEvent, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockInvoiceRepository struct {
	CreateFunc         func(ctx context.Context, inv *invoice.Invoice) error
	UpdateFunc         func(ctx context.Context, inv *invoice.Invoice) error
	FindByRefFunc      func(ctx context.Context, ref string) (*invoice.Invoice, error)
	FindByRefsFunc     func(ctx context.Context, refs []string) ([]*invoice.Invoice, error)
	ListByCustomerFunc func(ctx context.Context, customerID string, offset, limit int) ([]*invoice.Invoice, int64, error)
	SetColorFunc       func(ctx context.Context, ref string, color invoicevo.Color) error
	BatchSetColorFunc  func(ctx context.Context, refs []string, color invoicevo.Color) error
}

func (m *mockInvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, inv)
	}
	return nil
}

func (m *mockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, inv)
	}
	return nil
}

func (m *mockInvoiceRepository) FindByRef(ctx context.Context, ref string) (*invoice.Invoice, error) {
	if m.FindByRefFunc != nil {
		return m.FindByRefFunc(ctx, ref)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) FindByRefs(ctx context.Context, refs []string) ([]*invoice.Invoice, error) {
	if m.FindByRefsFunc != nil {
		return m.FindByRefsFunc(ctx, refs)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) ListByCustomer(ctx context.Context, customerID string, offset, limit int) ([]*invoice.Invoice, int64, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockInvoiceRepository) SetColor(ctx context.Context, ref string, color invoicevo.Color) error {
	if m.SetColorFunc != nil {
		return m.SetColorFunc(ctx, ref, color)
	}
	return nil
}

func (m *mockInvoiceRepository) BatchSetColor(ctx context.Context, refs []string, color invoicevo.Color) error {
	if m.BatchSetColorFunc != nil {
		return m.BatchSetColorFunc(ctx, refs, color)
	}
	return nil
}

type mockAssignmentRepository struct {
	UpsertBatchFunc  func(ctx context.Context, assignments []*invoice.Assignment) error
	GetByRefFunc     func(ctx context.Context, invoiceRef string) (*invoice.Assignment, error)
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*invoice.Assignment, error)
}

func (m *mockAssignmentRepository) UpsertBatch(ctx context.Context, assignments []*invoice.Assignment) error {
	if m.UpsertBatchFunc != nil {
		return m.UpsertBatchFunc(ctx, assignments)
	}
	return nil
}

func (m *mockAssignmentRepository) GetByRef(ctx context.Context, invoiceRef string) (*invoice.Assignment, error) {
	if m.GetByRefFunc != nil {
		return m.GetByRefFunc(ctx, invoiceRef)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*invoice.Assignment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockActivityRepository struct {
	AppendFunc         func(ctx context.Context, e *activity.Entry) error
	ListFunc           func(ctx context.Context, filter activity.ListFilter, offset, limit int) ([]*activity.Entry, int64, error)
	LatestByTicketFunc func(ctx context.Context, ticketID uint) (*activity.Entry, error)
}

func (m *mockActivityRepository) Append(ctx context.Context, e *activity.Entry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, e)
	}
	return nil
}

func (m *mockActivityRepository) List(ctx context.Context, filter activity.ListFilter, offset, limit int) ([]*activity.Entry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockActivityRepository) LatestByTicket(ctx context.Context, ticketID uint) (*activity.Entry, error) {
	if m.LatestByTicketFunc != nil {
		return m.LatestByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockNumberGenerator struct {
	NextFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Next(ctx context.Context) (string, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx)
	}
	return "TCK-20250101-0001", nil
}

// mockTxManager runs the callback directly, without a database.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockCreateTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

func (m *mockCreateTicketExecutor) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return &CreateTicketResult{TicketID: 1, Number: "TCK-20250101-0001", Status: "open", CreatedAt: time.Now()}, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                    {}
func (noopLogger) Info(msg string, args ...any)                     {}
func (noopLogger) Warn(msg string, args ...any)                     {}
func (noopLogger) Error(msg string, args ...any)                    {}
func (n noopLogger) With(args ...any) logger.Interface              { return n }
func (n noopLogger) Named(name string) logger.Interface             { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{})  {}

package usecases

import (
	"context"
	"time"

	"dunner/internal/domain/activity"
	"dunner/internal/domain/invoice"
	vo "dunner/internal/domain/invoice/valueobjects"
	"dunner/internal/domain/reminder"
	"dunner/internal/shared/logger"
)

type mockInvoiceRepository struct {
	CreateFunc         func(ctx context.Context, inv *invoice.Invoice) error
	UpdateFunc         func(ctx context.Context, inv *invoice.Invoice) error
	FindByRefFunc      func(ctx context.Context, ref string) (*invoice.Invoice, error)
	FindByRefsFunc     func(ctx context.Context, refs []string) ([]*invoice.Invoice, error)
	ListByCustomerFunc func(ctx context.Context, customerID string, offset, limit int) ([]*invoice.Invoice, int64, error)
	SetColorFunc       func(ctx context.Context, ref string, color vo.Color) error
	BatchSetColorFunc  func(ctx context.Context, refs []string, color vo.Color) error
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

func (m *mockInvoiceRepository) SetColor(ctx context.Context, ref string, color vo.Color) error {
	if m.SetColorFunc != nil {
		return m.SetColorFunc(ctx, ref, color)
	}
	return nil
}

func (m *mockInvoiceRepository) BatchSetColor(ctx context.Context, refs []string, color vo.Color) error {
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

type mockMemoRepository struct {
	SaveBatchFunc     func(ctx context.Context, memos []*invoice.Memo) error
	ListByInvoiceFunc func(ctx context.Context, invoiceRef string) ([]*invoice.Memo, error)
	ListByBatchFunc   func(ctx context.Context, batchID string) ([]*invoice.Memo, error)
}

func (m *mockMemoRepository) SaveBatch(ctx context.Context, memos []*invoice.Memo) error {
	if m.SaveBatchFunc != nil {
		return m.SaveBatchFunc(ctx, memos)
	}
	return nil
}

func (m *mockMemoRepository) ListByInvoice(ctx context.Context, invoiceRef string) ([]*invoice.Memo, error) {
	if m.ListByInvoiceFunc != nil {
		return m.ListByInvoiceFunc(ctx, invoiceRef)
	}
	return nil, nil
}

func (m *mockMemoRepository) ListByBatch(ctx context.Context, batchID string) ([]*invoice.Memo, error) {
	if m.ListByBatchFunc != nil {
		return m.ListByBatchFunc(ctx, batchID)
	}
	return nil, nil
}

type mockReminderRepository struct {
	CreateFunc        func(ctx context.Context, r *reminder.Reminder) error
	CreateBatchFunc   func(ctx context.Context, reminders []*reminder.Reminder) error
	UpdateFunc        func(ctx context.Context, r *reminder.Reminder) error
	FindByIDFunc      func(ctx context.Context, id uint) (*reminder.Reminder, error)
	ListDueFunc       func(ctx context.Context, now time.Time, limit int) ([]*reminder.Reminder, error)
	ListByInvoiceFunc func(ctx context.Context, invoiceRef string) ([]*reminder.Reminder, error)
}

func (m *mockReminderRepository) Create(ctx context.Context, r *reminder.Reminder) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockReminderRepository) CreateBatch(ctx context.Context, reminders []*reminder.Reminder) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, reminders)
	}
	return nil
}

func (m *mockReminderRepository) Update(ctx context.Context, r *reminder.Reminder) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReminderRepository) FindByID(ctx context.Context, id uint) (*reminder.Reminder, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReminderRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*reminder.Reminder, error) {
	if m.ListDueFunc != nil {
		return m.ListDueFunc(ctx, now, limit)
	}
	return nil, nil
}

func (m *mockReminderRepository) ListByInvoice(ctx context.Context, invoiceRef string) ([]*reminder.Reminder, error) {
	if m.ListByInvoiceFunc != nil {
		return m.ListByInvoiceFunc(ctx, invoiceRef)
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

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func invoiceFixture(ref string, color *vo.Color) *invoice.Invoice {
	now := time.Now()
	return invoice.ReconstructInvoice(ref, "CUST-001", "Acme GmbH", 12500, "EUR", now.Add(-72*time.Hour), color, now, now)
}

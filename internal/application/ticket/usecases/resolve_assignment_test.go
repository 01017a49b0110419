package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dunner/internal/domain/invoice"
	"dunner/internal/domain/ticket"
	vo "dunner/internal/domain/ticket/valueobjects"
	"dunner/internal/shared/errors"
)

func liveTicketFixture(t *testing.T, id uint, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	return ticket.ReconstructTicket(
		id, "TCK-20250101-0001", "CUST-001", "Acme GmbH", 7,
		status, vo.PriorityMedium, vo.TypeOverduePayment,
		"customer promised partial payment", now, 7, now, now,
	)
}

func TestResolveAssignment_NoLiveTicket_CreatesNew(t *testing.T) {
	var createdCmd *CreateTicketCommand

	ticketRepo := &mockTicketRepository{
		FindLatestLiveFunc: func(ctx context.Context, customerID string, collectorID uint) (*ticket.Ticket, error) {
			assert.Equal(t, "CUST-001", customerID)
			assert.Equal(t, uint(7), collectorID)
			return nil, nil
		},
	}
	createExec := &mockCreateTicketExecutor{
		ExecuteFunc: func(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
			createdCmd = &cmd
			return &CreateTicketResult{TicketID: 42, Number: "TCK-20250101-0002", Status: "open", InvoiceCount: 2}, nil
		},
	}

	uc := NewResolveAssignmentUseCase(ticketRepo, &mockInvoiceRepository{}, createExec, noopLogger{})

	result, err := uc.Execute(context.Background(), ResolveAssignmentCommand{
		CustomerID:  "CUST-001",
		CollectorID: 7,
		Priority:    "medium",
		TicketType:  "overdue_payment",
		InvoiceRefs: []string{"INV-1", "INV-2"},
		RequestedBy: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, result.Outcome)
	require.NotNil(t, result.Created)
	assert.Equal(t, uint(42), result.Created.TicketID)
	assert.Nil(t, result.Conflict)

	require.NotNil(t, createdCmd)
	assert.Equal(t, []string{"INV-1", "INV-2"}, createdCmd.InvoiceRefs)
	assert.Equal(t, uint(7), createdCmd.CreatedBy)
}

func TestResolveAssignment_LiveTicket_ReturnsConflictWithoutWrites(t *testing.T) {
	existing := liveTicketFixture(t, 9, vo.StatusPending)
	createCalled := false

	ticketRepo := &mockTicketRepository{
		FindLatestLiveFunc: func(ctx context.Context, customerID string, collectorID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		CountInvoicesFunc: func(ctx context.Context, ticketID uint) (int64, error) {
			assert.Equal(t, uint(9), ticketID)
			return 3, nil
		},
	}
	invoiceRepo := &mockInvoiceRepository{
		FindByRefsFunc: func(ctx context.Context, refs []string) ([]*invoice.Invoice, error) {
			inv := invoice.ReconstructInvoice("INV-5", "CUST-001", "Acme GmbH", 45000, "EUR", time.Now(), nil, time.Now(), time.Now())
			return []*invoice.Invoice{inv}, nil
		},
	}
	createExec := &mockCreateTicketExecutor{
		ExecuteFunc: func(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
			createCalled = true
			return nil, nil
		},
	}

	uc := NewResolveAssignmentUseCase(ticketRepo, invoiceRepo, createExec, noopLogger{})

	result, err := uc.Execute(context.Background(), ResolveAssignmentCommand{
		CustomerID:  "CUST-001",
		CollectorID: 7,
		InvoiceRefs: []string{"INV-5", "INV-6"},
		RequestedBy: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, OutcomeConflict, result.Outcome)
	assert.False(t, createCalled, "conflict must not create a ticket")
	assert.Nil(t, result.Created)

	require.NotNil(t, result.Conflict)
	assert.Equal(t, uint(9), result.Conflict.TicketID)
	assert.Equal(t, "TCK-20250101-0001", result.Conflict.TicketNumber)
	assert.Equal(t, "pending", result.Conflict.Status)
	assert.Equal(t, "medium", result.Conflict.Priority)
	assert.Equal(t, "customer promised partial payment", result.Conflict.Notes)
	assert.Equal(t, int64(3), result.Conflict.InvoiceCount)

	require.Len(t, result.Conflict.Candidates, 2)
	assert.Equal(t, CandidateInvoice{Ref: "INV-5", AmountCents: 45000}, result.Conflict.Candidates[0])
	assert.Equal(t, CandidateInvoice{Ref: "INV-6", AmountCents: 0}, result.Conflict.Candidates[1])
}

func TestResolveAssignment_ConflictForEachLiveStatus(t *testing.T) {
	for _, status := range vo.LiveStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			ticketRepo := &mockTicketRepository{
				FindLatestLiveFunc: func(ctx context.Context, customerID string, collectorID uint) (*ticket.Ticket, error) {
					return liveTicketFixture(t, 9, status), nil
				},
			}
			uc := NewResolveAssignmentUseCase(ticketRepo, &mockInvoiceRepository{}, &mockCreateTicketExecutor{}, noopLogger{})

			result, err := uc.Execute(context.Background(), ResolveAssignmentCommand{
				CustomerID:  "CUST-001",
				CollectorID: 7,
				InvoiceRefs: []string{"INV-1"},
				RequestedBy: 7,
			})

			require.NoError(t, err)
			assert.Equal(t, OutcomeConflict, result.Outcome)
		})
	}
}

func TestResolveAssignment_Validation(t *testing.T) {
	uc := NewResolveAssignmentUseCase(&mockTicketRepository{}, &mockInvoiceRepository{}, &mockCreateTicketExecutor{}, noopLogger{})

	tests := []struct {
		name string
		cmd  ResolveAssignmentCommand
	}{
		{name: "missing customer", cmd: ResolveAssignmentCommand{CollectorID: 7, InvoiceRefs: []string{"INV-1"}, RequestedBy: 7}},
		{name: "missing collector", cmd: ResolveAssignmentCommand{CustomerID: "CUST-001", InvoiceRefs: []string{"INV-1"}, RequestedBy: 7}},
		{name: "no invoices", cmd: ResolveAssignmentCommand{CustomerID: "CUST-001", CollectorID: 7, RequestedBy: 7}},
		{name: "missing requester", cmd: ResolveAssignmentCommand{CustomerID: "CUST-001", CollectorID: 7, InvoiceRefs: []string{"INV-1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestResolveAssignment_LookupFailure(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindLatestLiveFunc: func(ctx context.Context, customerID string, collectorID uint) (*ticket.Ticket, error) {
			return nil, assert.AnError
		},
	}
	uc := NewResolveAssignmentUseCase(ticketRepo, &mockInvoiceRepository{}, &mockCreateTicketExecutor{}, noopLogger{})

	_, err := uc.Execute(context.Background(), ResolveAssignmentCommand{
		CustomerID:  "CUST-001",
		CollectorID: 7,
		InvoiceRefs: []string{"INV-1"},
		RequestedBy: 7,
	})
	assert.Error(t, err)
	assert.False(t, errors.IsValidationError(err))
}

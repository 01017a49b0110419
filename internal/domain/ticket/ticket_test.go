package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dunner/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket("CUST-001", "Acme GmbH", 7, valueobjects.PriorityMedium, valueobjects.TypeOverduePayment, "", 7)
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	tk := newTestTicket(t)

	assert.Equal(t, valueobjects.StatusOpen, tk.Status())
	assert.Equal(t, "CUST-001", tk.CustomerID())
	assert.Equal(t, uint(7), tk.CollectorID())
	assert.Equal(t, uint(7), tk.AssignedBy())
	assert.True(t, tk.IsLive())
	assert.False(t, tk.AssignedAt().IsZero())
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name        string
		customerID  string
		collectorID uint
		priority    valueobjects.Priority
		ticketType  valueobjects.TicketType
	}{
		{name: "missing customer", customerID: "", collectorID: 7, priority: valueobjects.PriorityLow, ticketType: valueobjects.TypeOverduePayment},
		{name: "blank customer", customerID: "   ", collectorID: 7, priority: valueobjects.PriorityLow, ticketType: valueobjects.TypeOverduePayment},
		{name: "missing collector", customerID: "CUST-001", collectorID: 0, priority: valueobjects.PriorityLow, ticketType: valueobjects.TypeOverduePayment},
		{name: "bad priority", customerID: "CUST-001", collectorID: 7, priority: valueobjects.Priority("severe"), ticketType: valueobjects.TypeOverduePayment},
		{name: "bad type", customerID: "CUST-001", collectorID: 7, priority: valueobjects.PriorityLow, ticketType: valueobjects.TicketType("refund")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.customerID, "Acme", tt.collectorID, tt.priority, tt.ticketType, "", 7)
			assert.Error(t, err)
		})
	}
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk := newTestTicket(t)

	err := tk.ChangeStatus(valueobjects.StatusPromised)
	require.NoError(t, err)
	assert.Equal(t, valueobjects.StatusPromised, tk.Status())

	err = tk.ChangeStatus(valueobjects.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, valueobjects.StatusPaid, tk.Status())
	assert.False(t, tk.IsLive())
}

func TestTicket_ChangeStatus_SameStatusRejected(t *testing.T) {
	tk := newTestTicket(t)

	err := tk.ChangeStatus(valueobjects.StatusOpen)
	assert.Error(t, err)
	assert.Equal(t, valueobjects.StatusOpen, tk.Status())
}

func TestTicket_ChangeStatus_InvalidStatus(t *testing.T) {
	tk := newTestTicket(t)

	err := tk.ChangeStatus(valueobjects.TicketStatus("archived"))
	assert.Error(t, err)
}

func TestTicket_ChangeStatus_ReopenClosed(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.ChangeStatus(valueobjects.StatusClosed))
	require.NoError(t, tk.ChangeStatus(valueobjects.StatusOpen))
	assert.True(t, tk.IsLive())
}

func TestTicket_Reassign(t *testing.T) {
	tk := newTestTicket(t)
	before := tk.AssignedAt()

	err := tk.Reassign(11, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(11), tk.CollectorID())
	assert.Equal(t, uint(2), tk.AssignedBy())
	assert.False(t, tk.AssignedAt().Before(before))

	err = tk.Reassign(0, 2)
	assert.Error(t, err)
	assert.Equal(t, uint(11), tk.CollectorID())
}

func TestTicket_AppendNotes(t *testing.T) {
	tk := newTestTicket(t)

	tk.AppendNotes("called customer")
	assert.Equal(t, "called customer", tk.Notes())

	tk.AppendNotes("promised payment Friday")
	assert.Equal(t, "called customer\npromised payment Friday", tk.Notes())

	tk.AppendNotes("   ")
	assert.Equal(t, "called customer\npromised payment Friday", tk.Notes())
}

func TestNewMergeEvent(t *testing.T) {
	e, err := NewMergeEvent(3, []string{"INV-1", "INV-2"}, "folded into existing case", 7)
	require.NoError(t, err)

	assert.True(t, len(e.ID()) > 3)
	assert.Equal(t, "mg_", e.ID()[:3])
	assert.Equal(t, 2, e.InvoiceCount())
	assert.Equal(t, []string{"INV-1", "INV-2"}, e.InvoiceRefs())

	refs := e.InvoiceRefs()
	refs[0] = "INV-X"
	assert.Equal(t, "INV-1", e.InvoiceRefs()[0])
}

func TestNewMergeEvent_Validation(t *testing.T) {
	_, err := NewMergeEvent(0, []string{"INV-1"}, "", 7)
	assert.Error(t, err)

	_, err = NewMergeEvent(3, nil, "", 7)
	assert.Error(t, err)
}

func TestNewInvoiceEntry(t *testing.T) {
	e, err := NewInvoiceEntry(3, "INV-1", 7)
	require.NoError(t, err)
	assert.Equal(t, "INV-1", e.InvoiceRef())

	_, err = NewInvoiceEntry(3, "", 7)
	assert.Error(t, err)
}

func TestNewStatusHistory(t *testing.T) {
	h, err := NewStatusHistory(3, valueobjects.StatusOpen, valueobjects.StatusPromised, "customer called back", 7)
	require.NoError(t, err)
	require.NotNil(t, h.OldStatus())
	assert.Equal(t, valueobjects.StatusOpen, *h.OldStatus())
	assert.Equal(t, valueobjects.StatusPromised, h.NewStatus())

	_, err = NewStatusHistory(0, valueobjects.StatusOpen, valueobjects.StatusPromised, "", 7)
	assert.Error(t, err)
}

func TestNewInitialStatusHistory(t *testing.T) {
	h, err := NewInitialStatusHistory(3, valueobjects.StatusOpen, 7)
	require.NoError(t, err)
	assert.Nil(t, h.OldStatus())
	assert.Equal(t, valueobjects.StatusOpen, h.NewStatus())
}

package invoice

import (
	"errors"
	"strings"
	"time"
)

// Assignment records which ticket and collector currently own an invoice.
// One invoice belongs to at most one ticket at a time, merges overwrite the
// previous assignment.
type Assignment struct {
	id          uint
	invoiceRef  string
	ticketID    uint
	collectorID uint
	assignedAt  time.Time
}

// NewAssignment assigns an invoice to a ticket and its collector.
func NewAssignment(invoiceRef string, ticketID, collectorID uint) (*Assignment, error) {
	invoiceRef = strings.TrimSpace(invoiceRef)
	if invoiceRef == "" {
		return nil, errors.New("invoice ref is required")
	}
	if ticketID == 0 {
		return nil, errors.New("ticket id is required")
	}
	if collectorID == 0 {
		return nil, errors.New("collector id is required")
	}

	return &Assignment{
		invoiceRef:  invoiceRef,
		ticketID:    ticketID,
		collectorID: collectorID,
		assignedAt:  time.Now(),
	}, nil
}

// ReconstructAssignment rebuilds an assignment from persisted state.
func ReconstructAssignment(id uint, invoiceRef string, ticketID, collectorID uint, assignedAt time.Time) *Assignment {
	return &Assignment{
		id:          id,
		invoiceRef:  invoiceRef,
		ticketID:    ticketID,
		collectorID: collectorID,
		assignedAt:  assignedAt,
	}
}

func (a *Assignment) ID() uint              { return a.id }
func (a *Assignment) InvoiceRef() string    { return a.invoiceRef }
func (a *Assignment) TicketID() uint        { return a.ticketID }
func (a *Assignment) CollectorID() uint     { return a.collectorID }
func (a *Assignment) AssignedAt() time.Time { return a.assignedAt }

func (a *Assignment) SetID(id uint) {
	a.id = id
}

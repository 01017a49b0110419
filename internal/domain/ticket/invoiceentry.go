package ticket

import (
	"errors"
	"strings"
	"time"
)

// InvoiceEntry links one invoice to a ticket. Amounts live on the invoice
// read model, the link itself only records who attached what and when.
type InvoiceEntry struct {
	id         uint
	ticketID   uint
	invoiceRef string
	addedBy    uint
	addedAt    time.Time
}

// NewInvoiceEntry creates an entry attaching the given invoice to a ticket.
func NewInvoiceEntry(ticketID uint, invoiceRef string, addedBy uint) (*InvoiceEntry, error) {
	invoiceRef = strings.TrimSpace(invoiceRef)
	if invoiceRef == "" {
		return nil, errors.New("invoice ref is required")
	}

	return &InvoiceEntry{
		ticketID:   ticketID,
		invoiceRef: invoiceRef,
		addedBy:    addedBy,
		addedAt:    time.Now(),
	}, nil
}

// ReconstructInvoiceEntry rebuilds an entry from persisted state.
func ReconstructInvoiceEntry(id, ticketID uint, invoiceRef string, addedBy uint, addedAt time.Time) *InvoiceEntry {
	return &InvoiceEntry{
		id:         id,
		ticketID:   ticketID,
		invoiceRef: invoiceRef,
		addedBy:    addedBy,
		addedAt:    addedAt,
	}
}

func (e *InvoiceEntry) ID() uint           { return e.id }
func (e *InvoiceEntry) TicketID() uint     { return e.ticketID }
func (e *InvoiceEntry) InvoiceRef() string { return e.invoiceRef }
func (e *InvoiceEntry) AddedBy() uint      { return e.addedBy }
func (e *InvoiceEntry) AddedAt() time.Time { return e.addedAt }

func (e *InvoiceEntry) SetID(id uint) {
	e.id = id
}

// SetTicketID binds the entry to a ticket once the ticket has an identity.
func (e *InvoiceEntry) SetTicketID(ticketID uint) {
	e.ticketID = ticketID
}

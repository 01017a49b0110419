package invoice

import (
	"errors"
	"strings"
	"time"
)

// Memo is a note attached to a single invoice. Memos written through the
// batch note action share a batch ID so they can be traced back to the one
// action that created them.
type Memo struct {
	id         uint
	invoiceRef string
	ticketID   *uint
	batchID    string
	content    string
	createdBy  uint
	createdAt  time.Time
}

// NewMemo creates a memo on an invoice. ticketID is nil when the invoice is
// not currently attached to a ticket.
func NewMemo(invoiceRef string, ticketID *uint, batchID, content string, createdBy uint) (*Memo, error) {
	invoiceRef = strings.TrimSpace(invoiceRef)
	if invoiceRef == "" {
		return nil, errors.New("invoice ref is required")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("memo content is required")
	}

	return &Memo{
		invoiceRef: invoiceRef,
		ticketID:   ticketID,
		batchID:    batchID,
		content:    content,
		createdBy:  createdBy,
		createdAt:  time.Now(),
	}, nil
}

// ReconstructMemo rebuilds a memo from persisted state.
func ReconstructMemo(id uint, invoiceRef string, ticketID *uint, batchID, content string, createdBy uint, createdAt time.Time) *Memo {
	return &Memo{
		id:         id,
		invoiceRef: invoiceRef,
		ticketID:   ticketID,
		batchID:    batchID,
		content:    content,
		createdBy:  createdBy,
		createdAt:  createdAt,
	}
}

func (m *Memo) ID() uint             { return m.id }
func (m *Memo) InvoiceRef() string   { return m.invoiceRef }
func (m *Memo) TicketID() *uint      { return m.ticketID }
func (m *Memo) BatchID() string      { return m.batchID }
func (m *Memo) Content() string      { return m.content }
func (m *Memo) CreatedBy() uint      { return m.createdBy }
func (m *Memo) CreatedAt() time.Time { return m.createdAt }

func (m *Memo) SetID(id uint) {
	m.id = id
}

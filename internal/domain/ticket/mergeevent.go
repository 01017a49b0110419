package ticket

import (
	"errors"
	"time"

	"dunner/internal/shared/id"
)

// MergeEvent records that a set of invoices was folded into an existing
// live ticket instead of opening a new one. Events are append-only.
type MergeEvent struct {
	id          string
	ticketID    uint
	invoiceRefs []string
	notes       string
	mergedBy    uint
	mergedAt    time.Time
}

// NewMergeEvent creates a merge event for the given ticket and invoices.
func NewMergeEvent(ticketID uint, invoiceRefs []string, notes string, mergedBy uint) (*MergeEvent, error) {
	if ticketID == 0 {
		return nil, errors.New("ticket id is required")
	}
	if len(invoiceRefs) == 0 {
		return nil, errors.New("at least one invoice ref is required")
	}

	eventID, err := id.NewMergeEventID()
	if err != nil {
		return nil, err
	}

	refs := make([]string, len(invoiceRefs))
	copy(refs, invoiceRefs)

	return &MergeEvent{
		id:          eventID,
		ticketID:    ticketID,
		invoiceRefs: refs,
		notes:       notes,
		mergedBy:    mergedBy,
		mergedAt:    time.Now(),
	}, nil
}

// ReconstructMergeEvent rebuilds a merge event from persisted state.
func ReconstructMergeEvent(eventID string, ticketID uint, invoiceRefs []string, notes string, mergedBy uint, mergedAt time.Time) *MergeEvent {
	return &MergeEvent{
		id:          eventID,
		ticketID:    ticketID,
		invoiceRefs: invoiceRefs,
		notes:       notes,
		mergedBy:    mergedBy,
		mergedAt:    mergedAt,
	}
}

func (m *MergeEvent) ID() string         { return m.id }
func (m *MergeEvent) TicketID() uint     { return m.ticketID }
func (m *MergeEvent) Notes() string      { return m.notes }
func (m *MergeEvent) MergedBy() uint     { return m.mergedBy }
func (m *MergeEvent) MergedAt() time.Time { return m.mergedAt }

// InvoiceCount returns the number of invoices merged by this event.
func (m *MergeEvent) InvoiceCount() int {
	return len(m.invoiceRefs)
}

// InvoiceRefs returns the merged invoice refs in a defensive copy.
func (m *MergeEvent) InvoiceRefs() []string {
	refs := make([]string, len(m.invoiceRefs))
	copy(refs, m.invoiceRefs)
	return refs
}

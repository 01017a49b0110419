package ticket

import (
	"errors"
	"time"

	"dunner/internal/domain/ticket/valueobjects"
)

// StatusHistory is one append-only record of a ticket status change. The
// implicit first record written at ticket creation carries no old status.
type StatusHistory struct {
	id        uint
	ticketID  uint
	oldStatus *valueobjects.TicketStatus
	newStatus valueobjects.TicketStatus
	notes     string
	changedBy uint
	changedAt time.Time
}

// NewStatusHistory records a status change on a ticket.
func NewStatusHistory(
	ticketID uint,
	oldStatus valueobjects.TicketStatus,
	newStatus valueobjects.TicketStatus,
	notes string,
	changedBy uint,
) (*StatusHistory, error) {
	if !oldStatus.IsValid() {
		return nil, errors.New("invalid old status")
	}
	h, err := newStatusHistory(ticketID, newStatus, notes, changedBy)
	if err != nil {
		return nil, err
	}
	h.oldStatus = &oldStatus
	return h, nil
}

// NewInitialStatusHistory records the status a ticket was created with.
func NewInitialStatusHistory(ticketID uint, status valueobjects.TicketStatus, changedBy uint) (*StatusHistory, error) {
	return newStatusHistory(ticketID, status, "", changedBy)
}

func newStatusHistory(ticketID uint, newStatus valueobjects.TicketStatus, notes string, changedBy uint) (*StatusHistory, error) {
	if ticketID == 0 {
		return nil, errors.New("ticket id is required")
	}
	if !newStatus.IsValid() {
		return nil, errors.New("invalid status")
	}

	return &StatusHistory{
		ticketID:  ticketID,
		newStatus: newStatus,
		notes:     notes,
		changedBy: changedBy,
		changedAt: time.Now(),
	}, nil
}

// ReconstructStatusHistory rebuilds a history record from persisted state.
func ReconstructStatusHistory(
	id uint,
	ticketID uint,
	oldStatus *valueobjects.TicketStatus,
	newStatus valueobjects.TicketStatus,
	notes string,
	changedBy uint,
	changedAt time.Time,
) *StatusHistory {
	return &StatusHistory{
		id:        id,
		ticketID:  ticketID,
		oldStatus: oldStatus,
		newStatus: newStatus,
		notes:     notes,
		changedBy: changedBy,
		changedAt: changedAt,
	}
}

func (h *StatusHistory) ID() uint                                { return h.id }
func (h *StatusHistory) TicketID() uint                          { return h.ticketID }
func (h *StatusHistory) OldStatus() *valueobjects.TicketStatus   { return h.oldStatus }
func (h *StatusHistory) NewStatus() valueobjects.TicketStatus    { return h.newStatus }
func (h *StatusHistory) Notes() string                           { return h.notes }
func (h *StatusHistory) ChangedBy() uint                         { return h.changedBy }
func (h *StatusHistory) ChangedAt() time.Time                    { return h.changedAt }

func (h *StatusHistory) SetID(id uint) {
	h.id = id
}

package ticket

import (
	"errors"
	"strings"
	"time"

	"dunner/internal/domain/ticket/valueobjects"
)

// Ticket is the aggregate root for a collection case. A ticket groups the
// overdue invoices of one customer under one collector and tracks the
// progress of the collection through its status.
type Ticket struct {
	id           uint
	number       string
	customerID   string
	customerName string
	collectorID  uint
	status       valueobjects.TicketStatus
	priority     valueobjects.Priority
	ticketType   valueobjects.TicketType
	notes        string
	assignedAt   time.Time
	assignedBy   uint
	createdAt    time.Time
	updatedAt    time.Time
}

// NewTicket creates a new open ticket for the given customer and collector.
// The ticket number is assigned later by the number generator, the ID by the
// repository on save.
func NewTicket(
	customerID string,
	customerName string,
	collectorID uint,
	priority valueobjects.Priority,
	ticketType valueobjects.TicketType,
	notes string,
	assignedBy uint,
) (*Ticket, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, errors.New("customer id is required")
	}
	if collectorID == 0 {
		return nil, errors.New("collector id is required")
	}
	if !priority.IsValid() {
		return nil, errors.New("invalid priority")
	}
	if !ticketType.IsValid() {
		return nil, errors.New("invalid ticket type")
	}

	now := time.Now()
	return &Ticket{
		customerID:   customerID,
		customerName: strings.TrimSpace(customerName),
		collectorID:  collectorID,
		status:       valueobjects.StatusOpen,
		priority:     priority,
		ticketType:   ticketType,
		notes:        notes,
		assignedAt:   now,
		assignedBy:   assignedBy,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persisted state.
func ReconstructTicket(
	id uint,
	number string,
	customerID string,
	customerName string,
	collectorID uint,
	status valueobjects.TicketStatus,
	priority valueobjects.Priority,
	ticketType valueobjects.TicketType,
	notes string,
	assignedAt time.Time,
	assignedBy uint,
	createdAt time.Time,
	updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:           id,
		number:       number,
		customerID:   customerID,
		customerName: customerName,
		collectorID:  collectorID,
		status:       status,
		priority:     priority,
		ticketType:   ticketType,
		notes:        notes,
		assignedAt:   assignedAt,
		assignedBy:   assignedBy,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (t *Ticket) ID() uint                            { return t.id }
func (t *Ticket) Number() string                      { return t.number }
func (t *Ticket) CustomerID() string                  { return t.customerID }
func (t *Ticket) CustomerName() string                { return t.customerName }
func (t *Ticket) CollectorID() uint                   { return t.collectorID }
func (t *Ticket) Status() valueobjects.TicketStatus   { return t.status }
func (t *Ticket) Priority() valueobjects.Priority     { return t.priority }
func (t *Ticket) TicketType() valueobjects.TicketType { return t.ticketType }
func (t *Ticket) Notes() string                       { return t.notes }
func (t *Ticket) AssignedAt() time.Time               { return t.assignedAt }
func (t *Ticket) AssignedBy() uint                    { return t.assignedBy }
func (t *Ticket) CreatedAt() time.Time                { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time                { return t.updatedAt }

// SetID assigns the database identity after the first save.
func (t *Ticket) SetID(id uint) {
	t.id = id
}

// SetNumber assigns the human-facing ticket number.
func (t *Ticket) SetNumber(number string) {
	t.number = number
}

// IsLive reports whether the ticket still represents active collection work.
func (t *Ticket) IsLive() bool {
	return t.status.IsLive()
}

// ChangeStatus moves the ticket to a new status. Changing to the current
// status is rejected so every accepted change produces a history entry.
func (t *Ticket) ChangeStatus(newStatus valueobjects.TicketStatus) error {
	if !newStatus.IsValid() {
		return errors.New("invalid ticket status")
	}
	if newStatus == t.status {
		return errors.New("ticket already has this status")
	}
	if !t.status.CanTransitionTo(newStatus) {
		return errors.New("status transition not allowed")
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// Reassign hands the ticket to a different collector.
func (t *Ticket) Reassign(collectorID, assignedBy uint) error {
	if collectorID == 0 {
		return errors.New("collector id is required")
	}

	t.collectorID = collectorID
	t.assignedBy = assignedBy
	t.assignedAt = time.Now()
	t.updatedAt = t.assignedAt
	return nil
}

// UpdatePriority changes the ticket priority.
func (t *Ticket) UpdatePriority(priority valueobjects.Priority) error {
	if !priority.IsValid() {
		return errors.New("invalid priority")
	}
	t.priority = priority
	t.updatedAt = time.Now()
	return nil
}

// AppendNotes adds free-form text to the ticket notes.
func (t *Ticket) AppendNotes(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if t.notes == "" {
		t.notes = text
	} else {
		t.notes = t.notes + "\n" + text
	}
	t.updatedAt = time.Now()
}

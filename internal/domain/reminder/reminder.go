package reminder

import (
	"errors"
	"strings"
	"time"
)

// Status of a scheduled reminder.
type Status string

const (
	StatusPending   Status = "pending"
	StatusTriggered Status = "triggered"
)

// Reminder is a scheduled follow-up created alongside a batch note. It fires
// once at RemindAt and is then marked triggered.
type Reminder struct {
	id          uint
	invoiceRef  string
	ticketID    *uint
	userID      uint
	title       string
	message     string
	remindAt    time.Time
	status      Status
	sendEmail   bool
	triggeredAt *time.Time
	createdAt   time.Time
}

// NewReminder schedules a follow-up for an invoice.
func NewReminder(invoiceRef string, ticketID *uint, userID uint, title, message string, remindAt time.Time, sendEmail bool) (*Reminder, error) {
	invoiceRef = strings.TrimSpace(invoiceRef)
	if invoiceRef == "" {
		return nil, errors.New("invoice ref is required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("reminder title is required")
	}
	if remindAt.IsZero() {
		return nil, errors.New("remind time is required")
	}

	return &Reminder{
		invoiceRef: invoiceRef,
		ticketID:   ticketID,
		userID:     userID,
		title:      title,
		message:    message,
		remindAt:   remindAt,
		status:     StatusPending,
		sendEmail:  sendEmail,
		createdAt:  time.Now(),
	}, nil
}

// ReconstructReminder rebuilds a reminder from persisted state.
func ReconstructReminder(
	id uint,
	invoiceRef string,
	ticketID *uint,
	userID uint,
	title, message string,
	remindAt time.Time,
	status Status,
	sendEmail bool,
	triggeredAt *time.Time,
	createdAt time.Time,
) *Reminder {
	return &Reminder{
		id:          id,
		invoiceRef:  invoiceRef,
		ticketID:    ticketID,
		userID:      userID,
		title:       title,
		message:     message,
		remindAt:    remindAt,
		status:      status,
		sendEmail:   sendEmail,
		triggeredAt: triggeredAt,
		createdAt:   createdAt,
	}
}

func (r *Reminder) ID() uint                { return r.id }
func (r *Reminder) InvoiceRef() string      { return r.invoiceRef }
func (r *Reminder) TicketID() *uint         { return r.ticketID }
func (r *Reminder) UserID() uint            { return r.userID }
func (r *Reminder) Title() string           { return r.title }
func (r *Reminder) Message() string         { return r.message }
func (r *Reminder) RemindAt() time.Time     { return r.remindAt }
func (r *Reminder) Status() Status          { return r.status }
func (r *Reminder) SendEmail() bool         { return r.sendEmail }
func (r *Reminder) TriggeredAt() *time.Time { return r.triggeredAt }
func (r *Reminder) CreatedAt() time.Time    { return r.createdAt }

func (r *Reminder) SetID(id uint) {
	r.id = id
}

// IsDue reports whether the reminder should fire at the given time.
func (r *Reminder) IsDue(now time.Time) bool {
	return r.status == StatusPending && !r.remindAt.After(now)
}

// MarkTriggered transitions the reminder to triggered. Firing twice is an
// error so the delivery loop cannot double-send.
func (r *Reminder) MarkTriggered() error {
	if r.status == StatusTriggered {
		return errors.New("reminder already triggered")
	}
	now := time.Now()
	r.status = StatusTriggered
	r.triggeredAt = &now
	return nil
}

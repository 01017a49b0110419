package activity

import (
	"errors"
	"strings"
	"time"
)

// Type classifies an activity trail entry.
type Type string

const (
	TypeNote        Type = "note"
	TypeColorChange Type = "color_change"
	TypeMerge       Type = "merge"
	TypeMemoAdded   Type = "memo_added"
	TypeAssignment  Type = "assignment"
	TypeStatus      Type = "status_change"
)

var validTypes = map[Type]bool{
	TypeNote:        true,
	TypeColorChange: true,
	TypeMerge:       true,
	TypeMemoAdded:   true,
	TypeAssignment:  true,
	TypeStatus:      true,
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return validTypes[t]
}

// Entry is one append-only record in the activity trail. Entries are never
// updated or deleted. The ticket reference is optional, color changes on
// unassigned invoices carry none.
type Entry struct {
	id          uint
	entryType   Type
	ticketID    *uint
	description string
	metadata    map[string]interface{}
	createdBy   uint
	createdAt   time.Time
}

// NewEntry creates an activity entry.
func NewEntry(entryType Type, ticketID *uint, description string, metadata map[string]interface{}, createdBy uint) (*Entry, error) {
	if !entryType.IsValid() {
		return nil, errors.New("invalid activity type")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errors.New("activity description is required")
	}

	return &Entry{
		entryType:   entryType,
		ticketID:    ticketID,
		description: description,
		metadata:    metadata,
		createdBy:   createdBy,
		createdAt:   time.Now(),
	}, nil
}

// ReconstructEntry rebuilds an entry from persisted state.
func ReconstructEntry(id uint, entryType Type, ticketID *uint, description string, metadata map[string]interface{}, createdBy uint, createdAt time.Time) *Entry {
	return &Entry{
		id:          id,
		entryType:   entryType,
		ticketID:    ticketID,
		description: description,
		metadata:    metadata,
		createdBy:   createdBy,
		createdAt:   createdAt,
	}
}

func (e *Entry) ID() uint             { return e.id }
func (e *Entry) EntryType() Type      { return e.entryType }
func (e *Entry) TicketID() *uint      { return e.ticketID }
func (e *Entry) Description() string  { return e.description }
func (e *Entry) CreatedBy() uint      { return e.createdBy }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// Metadata returns the structured payload of the entry. Callers must not
// mutate the returned map.
func (e *Entry) Metadata() map[string]interface{} { return e.metadata }

func (e *Entry) SetID(id uint) {
	e.id = id
}

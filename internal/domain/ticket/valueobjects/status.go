package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen     TicketStatus = "open"
	StatusPending  TicketStatus = "pending"
	StatusPromised TicketStatus = "promised"
	StatusPaid     TicketStatus = "paid"
	StatusDisputed TicketStatus = "disputed"
	StatusClosed   TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:     true,
	StatusPending:  true,
	StatusPromised: true,
	StatusPaid:     true,
	StatusDisputed: true,
	StatusClosed:   true,
}

// ticketStatusTransitions is deliberately complete: operators move tickets
// freely between all statuses, including reopening closed tickets. Keeping
// the table form means a stricter graph is a data change, not a code change.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusPending,
		StatusPromised,
		StatusPaid,
		StatusDisputed,
		StatusClosed,
	},
	StatusPending: {
		StatusOpen,
		StatusPromised,
		StatusPaid,
		StatusDisputed,
		StatusClosed,
	},
	StatusPromised: {
		StatusOpen,
		StatusPending,
		StatusPaid,
		StatusDisputed,
		StatusClosed,
	},
	StatusPaid: {
		StatusOpen,
		StatusPending,
		StatusPromised,
		StatusDisputed,
		StatusClosed,
	},
	StatusDisputed: {
		StatusOpen,
		StatusPending,
		StatusPromised,
		StatusPaid,
		StatusClosed,
	},
	StatusClosed: {
		StatusOpen,
		StatusPending,
		StatusPromised,
		StatusPaid,
		StatusDisputed,
	},
}

// liveTicketStatuses are the statuses treated as still-active when checking
// whether a customer/collector pair already has open collection work.
var liveTicketStatuses = []TicketStatus{
	StatusOpen,
	StatusPending,
	StatusPromised,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowed, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// IsLive reports whether the status counts as active collection work for
// conflict detection. Paid, disputed and closed tickets never conflict.
func (ts TicketStatus) IsLive() bool {
	for _, s := range liveTicketStatuses {
		if s == ts {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// LiveStatuses returns the statuses considered active for conflict
// detection, in a defensive copy.
func LiveStatuses() []TicketStatus {
	out := make([]TicketStatus, len(liveTicketStatuses))
	copy(out, liveTicketStatuses)
	return out
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

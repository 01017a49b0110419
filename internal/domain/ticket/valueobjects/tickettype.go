package valueobjects

import "fmt"

type TicketType string

const (
	TypeOverduePayment TicketType = "overdue_payment"
	TypePartialPayment TicketType = "partial_payment"
	TypeChargeback     TicketType = "chargeback"
	TypeSettlement     TicketType = "settlement"
)

var validTicketTypes = map[TicketType]bool{
	TypeOverduePayment: true,
	TypePartialPayment: true,
	TypeChargeback:     true,
	TypeSettlement:     true,
}

func (tt TicketType) String() string {
	return string(tt)
}

func (tt TicketType) IsValid() bool {
	return validTicketTypes[tt]
}

func NewTicketType(s string) (TicketType, error) {
	tt := TicketType(s)
	if !tt.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return tt, nil
}

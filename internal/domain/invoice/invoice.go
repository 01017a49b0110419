package invoice

import (
	"errors"
	"strings"
	"time"

	"dunner/internal/domain/invoice/valueobjects"
)

// Invoice is an open receivable synced in from the billing system. The engine
// does not own the invoice lifecycle, it only annotates invoices with colors,
// memos and collector assignments while they are being worked.
type Invoice struct {
	ref          string
	customerID   string
	customerName string
	amountCents  int64
	currency     string
	dueDate      time.Time
	color        *valueobjects.Color
	createdAt    time.Time
	updatedAt    time.Time
}

// NewInvoice creates an invoice record for an upstream receivable.
func NewInvoice(ref, customerID, customerName string, amountCents int64, currency string, dueDate time.Time) (*Invoice, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("invoice ref is required")
	}
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, errors.New("customer id is required")
	}
	if amountCents < 0 {
		return nil, errors.New("amount must not be negative")
	}
	if currency == "" {
		currency = "EUR"
	}

	now := time.Now()
	return &Invoice{
		ref:          ref,
		customerID:   customerID,
		customerName: strings.TrimSpace(customerName),
		amountCents:  amountCents,
		currency:     currency,
		dueDate:      dueDate,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructInvoice rebuilds an invoice from persisted state.
func ReconstructInvoice(
	ref, customerID, customerName string,
	amountCents int64,
	currency string,
	dueDate time.Time,
	color *valueobjects.Color,
	createdAt, updatedAt time.Time,
) *Invoice {
	return &Invoice{
		ref:          ref,
		customerID:   customerID,
		customerName: customerName,
		amountCents:  amountCents,
		currency:     currency,
		dueDate:      dueDate,
		color:        color,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (i *Invoice) Ref() string          { return i.ref }
func (i *Invoice) CustomerID() string   { return i.customerID }
func (i *Invoice) CustomerName() string { return i.customerName }
func (i *Invoice) AmountCents() int64   { return i.amountCents }
func (i *Invoice) Currency() string     { return i.currency }
func (i *Invoice) DueDate() time.Time   { return i.dueDate }
func (i *Invoice) CreatedAt() time.Time { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time { return i.updatedAt }

// Color returns the current tag, or nil when the invoice is untagged.
func (i *Invoice) Color() *valueobjects.Color { return i.color }

// IsTagged reports whether the invoice currently carries a color.
func (i *Invoice) IsTagged() bool { return i.color != nil }

// SetColor applies a color tag. Re-applying the current color is allowed,
// the caller still records the action in the activity trail.
func (i *Invoice) SetColor(c valueobjects.Color) error {
	if !c.IsValid() {
		return errors.New("invalid color")
	}
	i.color = &c
	i.updatedAt = time.Now()
	return nil
}

// ClearColor removes the color tag.
func (i *Invoice) ClearColor() {
	i.color = nil
	i.updatedAt = time.Now()
}

// IsOverdue reports whether the invoice due date has passed.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return !i.dueDate.IsZero() && i.dueDate.Before(now)
}

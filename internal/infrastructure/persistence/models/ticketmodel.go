package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID           uint   `gorm:"primaryKey"`
	Number       string `gorm:"uniqueIndex;size:50;not null"`
	CustomerID   string `gorm:"size:64;not null;index:idx_tickets_customer_collector"`
	CustomerName string `gorm:"size:200"`
	CollectorID  uint   `gorm:"not null;index:idx_tickets_customer_collector"`
	Status       string `gorm:"size:20;not null;index"`
	Priority     string `gorm:"size:20;not null;index"`
	TicketType   string `gorm:"size:30;not null;index"`
	Notes        string `gorm:"type:text"`
	AssignedAt   int64  `gorm:"not null"`
	AssignedBy   uint   `gorm:"not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketInvoiceModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	InvoiceRef string `gorm:"column:invoice_reference_number;size:64;not null;index"`
	AddedBy    uint   `gorm:"not null"`
	AddedAt    int64  `gorm:"not null"`
}

func (TicketInvoiceModel) TableName() string {
	return "ticket_invoices"
}

type StatusHistoryModel struct {
	ID        uint    `gorm:"primaryKey"`
	TicketID  uint    `gorm:"not null;index"`
	OldStatus *string `gorm:"size:20"`
	NewStatus string  `gorm:"size:20;not null"`
	Notes     string  `gorm:"type:text"`
	ChangedBy uint    `gorm:"not null"`
	ChangedAt int64   `gorm:"not null;index"`
}

func (StatusHistoryModel) TableName() string {
	return "status_histories"
}

type MergeEventModel struct {
	ID           uint           `gorm:"primaryKey"`
	MergeID      string         `gorm:"uniqueIndex;size:32;not null"`
	TicketID     uint           `gorm:"not null;index"`
	InvoiceRefs  datatypes.JSON `gorm:"column:invoice_reference_numbers;not null"`
	InvoiceCount int            `gorm:"not null"`
	Notes        string         `gorm:"type:text"`
	MergedBy     uint           `gorm:"not null"`
	MergedAt     int64          `gorm:"not null;index"`
}

func (MergeEventModel) TableName() string {
	return "merge_events"
}

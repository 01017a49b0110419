package models

type InvoiceModel struct {
	ID           uint    `gorm:"primaryKey"`
	Ref          string  `gorm:"column:reference_number;uniqueIndex;size:64;not null"`
	CustomerID   string  `gorm:"size:64;not null;index"`
	CustomerName string  `gorm:"size:200"`
	AmountCents  int64   `gorm:"not null"`
	Currency     string  `gorm:"size:3;not null"`
	DueDate      *int64  `gorm:"index"`
	Color        *string `gorm:"size:10;index"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}

type InvoiceAssignmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	InvoiceRef  string `gorm:"column:invoice_reference_number;uniqueIndex;size:64;not null"`
	TicketID    uint   `gorm:"not null;index"`
	CollectorID uint   `gorm:"not null;index"`
	AssignedAt  int64  `gorm:"not null"`
}

func (InvoiceAssignmentModel) TableName() string {
	return "invoice_assignments"
}

type InvoiceMemoModel struct {
	ID         uint   `gorm:"primaryKey"`
	InvoiceRef string `gorm:"column:invoice_reference_number;size:64;not null;index"`
	TicketID   *uint  `gorm:"index"`
	BatchID    string `gorm:"size:32;not null;index"`
	Content    string `gorm:"type:text;not null"`
	CreatedBy  uint   `gorm:"not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (InvoiceMemoModel) TableName() string {
	return "invoice_memos"
}

package models

import "gorm.io/datatypes"

type ActivityLogModel struct {
	ID           uint           `gorm:"primaryKey"`
	ActivityType string         `gorm:"size:30;not null;index"`
	TicketID     *uint          `gorm:"index"`
	Description  string         `gorm:"type:text;not null"`
	Metadata     datatypes.JSON ``
	CreatedBy    uint           `gorm:"not null;index"`
	CreatedAt    int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

type ReminderModel struct {
	ID          uint   `gorm:"primaryKey"`
	InvoiceRef  string `gorm:"column:invoice_reference_number;size:64;not null;index"`
	TicketID    *uint  `gorm:"index"`
	UserID      uint   `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	Message     string `gorm:"type:text"`
	RemindAt    int64  `gorm:"not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	SendEmail   bool   `gorm:"not null;default:false"`
	TriggeredAt *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
}

func (ReminderModel) TableName() string {
	return "reminders"
}

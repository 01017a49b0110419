// Package migrations keeps the database schema in sync with the models.
package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"dunner/internal/infrastructure/persistence/models"
)

// RunMigrations applies the schema for all persistence models.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.TicketModel{},
		&models.TicketInvoiceModel{},
		&models.StatusHistoryModel{},
		&models.MergeEventModel{},
		&models.InvoiceModel{},
		&models.InvoiceAssignmentModel{},
		&models.InvoiceMemoModel{},
		&models.ActivityLogModel{},
		&models.ReminderModel{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

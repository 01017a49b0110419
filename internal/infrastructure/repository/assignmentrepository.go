package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dunner/internal/domain/invoice"
	"dunner/internal/infrastructure/persistence/mappers"
	"dunner/internal/infrastructure/persistence/models"
	"dunner/internal/shared/db"
)

type AssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.InvoiceMapper
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{
		db:     db,
		mapper: mappers.NewInvoiceMapper(),
	}
}

// UpsertBatch writes the ownership rows for all given invoices. An invoice
// already assigned elsewhere is taken over, the newest assignment wins.
func (r *AssignmentRepository) UpsertBatch(ctx context.Context, assignments []*invoice.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	rows := make([]*models.InvoiceAssignmentModel, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, r.mapper.AssignmentToModel(a))
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "invoice_reference_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"ticket_id", "collector_id", "assigned_at"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to upsert invoice assignments: %w", err)
	}

	return nil
}

// GetByRef returns the assignment for the invoice, or (nil, nil) when the
// invoice is unassigned.
func (r *AssignmentRepository) GetByRef(ctx context.Context, invoiceRef string) (*invoice.Assignment, error) {
	var model models.InvoiceAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("invoice_reference_number = ?", invoiceRef).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find invoice assignment: %w", err)
	}

	return r.mapper.AssignmentToDomain(&model), nil
}

func (r *AssignmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*invoice.Assignment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.InvoiceAssignmentModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("assigned_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoice assignments: %w", err)
	}

	assignments := make([]*invoice.Assignment, 0, len(rows))
	for i := range rows {
		assignments = append(assignments, r.mapper.AssignmentToDomain(&rows[i]))
	}
	return assignments, nil
}

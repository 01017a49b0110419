package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dunner/internal/domain/invoice"
	vo "dunner/internal/domain/invoice/valueobjects"
	"dunner/internal/infrastructure/persistence/mappers"
	"dunner/internal/infrastructure/persistence/models"
	"dunner/internal/shared/db"
)

type InvoiceRepository struct {
	db     *gorm.DB
	mapper mappers.InvoiceMapper
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db:     db,
		mapper: mappers.NewInvoiceMapper(),
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	model := r.mapper.ToModel(inv)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	model := r.mapper.ToModel(inv)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select lists the color column explicitly so clearing a tag writes NULL.
	result := tx.
		Model(&models.InvoiceModel{}).
		Where("reference_number = ?", model.Ref).
		Select("customer_id", "customer_name", "amount_cents", "currency", "due_date", "color", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update invoice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("invoice not found")
	}
	return nil
}

func (r *InvoiceRepository) FindByRef(ctx context.Context, ref string) (*invoice.Invoice, error) {
	var model models.InvoiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("reference_number = ?", ref).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("invoice not found")
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InvoiceRepository) FindByRefs(ctx context.Context, refs []string) ([]*invoice.Invoice, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.InvoiceModel
	if err := tx.
		Where("reference_number IN ?", refs).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find invoices: %w", err)
	}

	invoices := make([]*invoice.Invoice, 0, len(rows))
	for i := range rows {
		inv, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (r *InvoiceRepository) ListByCustomer(ctx context.Context, customerID string, offset, limit int) ([]*invoice.Invoice, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.InvoiceModel{}).Where("customer_id = ?", customerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	var rows []models.InvoiceModel
	if err := query.
		Order("due_date ASC, reference_number ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	invoices := make([]*invoice.Invoice, 0, len(rows))
	for i := range rows {
		inv, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, total, nil
}

func (r *InvoiceRepository) SetColor(ctx context.Context, ref string, color vo.Color) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InvoiceModel{}).
		Where("reference_number = ?", ref).
		Update("color", color.String())
	if result.Error != nil {
		return fmt.Errorf("failed to set invoice color: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("invoice not found")
	}
	return nil
}

// BatchSetColor tags all given invoices in one UPDATE statement. An empty
// color clears the tag by writing NULL.
func (r *InvoiceRepository) BatchSetColor(ctx context.Context, refs []string, color vo.Color) error {
	if len(refs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var value interface{}
	if color != "" {
		value = color.String()
	}

	result := tx.
		Model(&models.InvoiceModel{}).
		Where("reference_number IN ?", refs).
		Update("color", value)
	if result.Error != nil {
		return fmt.Errorf("failed to batch set invoice color: %w", result.Error)
	}
	return nil
}

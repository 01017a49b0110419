package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dunner/internal/domain/invoice"
	"dunner/internal/infrastructure/persistence/mappers"
	"dunner/internal/infrastructure/persistence/models"
	"dunner/internal/shared/db"
)

type MemoRepository struct {
	db     *gorm.DB
	mapper mappers.InvoiceMapper
}

func NewMemoRepository(db *gorm.DB) *MemoRepository {
	return &MemoRepository{
		db:     db,
		mapper: mappers.NewInvoiceMapper(),
	}
}

func (r *MemoRepository) SaveBatch(ctx context.Context, memos []*invoice.Memo) error {
	if len(memos) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	rows := make([]*models.InvoiceMemoModel, 0, len(memos))
	for _, m := range memos {
		rows = append(rows, r.mapper.MemoToModel(m))
	}

	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to save invoice memos: %w", err)
	}

	for i, m := range memos {
		m.SetID(rows[i].ID)
	}
	return nil
}

func (r *MemoRepository) ListByInvoice(ctx context.Context, invoiceRef string) ([]*invoice.Memo, error) {
	return r.list(ctx, "invoice_reference_number = ?", invoiceRef)
}

func (r *MemoRepository) ListByBatch(ctx context.Context, batchID string) ([]*invoice.Memo, error) {
	return r.list(ctx, "batch_id = ?", batchID)
}

func (r *MemoRepository) list(ctx context.Context, cond string, arg interface{}) ([]*invoice.Memo, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.InvoiceMemoModel
	if err := tx.
		Where(cond, arg).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoice memos: %w", err)
	}

	memos := make([]*invoice.Memo, 0, len(rows))
	for i := range rows {
		memos = append(memos, r.mapper.MemoToDomain(&rows[i]))
	}
	return memos, nil
}

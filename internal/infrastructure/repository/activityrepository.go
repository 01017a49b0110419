package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dunner/internal/domain/activity"
	"dunner/internal/infrastructure/persistence/mappers"
	"dunner/internal/infrastructure/persistence/models"
	"dunner/internal/shared/db"
)

type ActivityRepository struct {
	db     *gorm.DB
	mapper *mappers.ActivityMapper
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{
		db:     db,
		mapper: mappers.NewActivityMapper(),
	}
}

func (r *ActivityRepository) Append(ctx context.Context, e *activity.Entry) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append activity entry: %w", err)
	}

	e.SetID(model.ID)
	return nil
}

func (r *ActivityRepository) List(ctx context.Context, filter activity.ListFilter, offset, limit int) ([]*activity.Entry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ActivityLogModel{})

	if filter.TicketID != 0 {
		query = query.Where("ticket_id = ?", filter.TicketID)
	}
	if filter.EntryType != "" {
		query = query.Where("activity_type = ?", filter.EntryType.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activity entries: %w", err)
	}

	var rows []models.ActivityLogModel
	if err := query.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list activity entries: %w", err)
	}

	entries := make([]*activity.Entry, 0, len(rows))
	for i := range rows {
		e, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, nil
}

// LatestByTicket returns the newest trail entry for the ticket, or (nil, nil)
// when nothing has been logged yet.
func (r *ActivityRepository) LatestByTicket(ctx context.Context, ticketID uint) (*activity.Entry, error) {
	var model models.ActivityLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC, id DESC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest activity entry: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dunner/internal/domain/ticket"
	"dunner/internal/infrastructure/persistence/mappers"
	"dunner/internal/infrastructure/persistence/models"
	"dunner/internal/shared/db"
)

type MergeEventRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewMergeEventRepository(db *gorm.DB) *MergeEventRepository {
	return &MergeEventRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *MergeEventRepository) Create(ctx context.Context, e *ticket.MergeEvent) error {
	model, err := r.mapper.MergeEventToModel(e)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save merge event: %w", err)
	}
	return nil
}

func (r *MergeEventRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.MergeEvent, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.MergeEventModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("merged_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list merge events: %w", err)
	}

	events := make([]*ticket.MergeEvent, 0, len(rows))
	for i := range rows {
		e, err := r.mapper.MergeEventToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

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

type StatusHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewStatusHistoryRepository(db *gorm.DB) *StatusHistoryRepository {
	return &StatusHistoryRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *StatusHistoryRepository) Create(ctx context.Context, h *ticket.StatusHistory) error {
	model := r.mapper.StatusHistoryToModel(h)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save status history: %w", err)
	}

	h.SetID(model.ID)
	return nil
}

func (r *StatusHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.StatusHistory, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.StatusHistoryModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("changed_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}

	history := make([]*ticket.StatusHistory, 0, len(rows))
	for i := range rows {
		h, err := r.mapper.StatusHistoryToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"dunner/internal/domain/reminder"
	"dunner/internal/infrastructure/persistence/mappers"
	"dunner/internal/infrastructure/persistence/models"
	"dunner/internal/shared/db"
)

type ReminderRepository struct {
	db     *gorm.DB
	mapper *mappers.ReminderMapper
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{
		db:     db,
		mapper: mappers.NewReminderMapper(),
	}
}

func (r *ReminderRepository) Create(ctx context.Context, rem *reminder.Reminder) error {
	model := r.mapper.ToModel(rem)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save reminder: %w", err)
	}

	rem.SetID(model.ID)
	return nil
}

func (r *ReminderRepository) CreateBatch(ctx context.Context, reminders []*reminder.Reminder) error {
	if len(reminders) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	rows := make([]*models.ReminderModel, 0, len(reminders))
	for _, rem := range reminders {
		rows = append(rows, r.mapper.ToModel(rem))
	}

	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to save reminders: %w", err)
	}

	for i, rem := range reminders {
		rem.SetID(rows[i].ID)
	}
	return nil
}

func (r *ReminderRepository) Update(ctx context.Context, rem *reminder.Reminder) error {
	model := r.mapper.ToModel(rem)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ReminderModel{}).
		Where("id = ?", model.ID).
		Select("status", "triggered_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update reminder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reminder not found")
	}
	return nil
}

func (r *ReminderRepository) FindByID(ctx context.Context, id uint) (*reminder.Reminder, error) {
	var model models.ReminderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("reminder not found")
		}
		return nil, fmt.Errorf("failed to find reminder: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *ReminderRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*reminder.Reminder, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.ReminderModel
	if err := tx.
		Where("status = ? AND remind_at <= ?", string(reminder.StatusPending), now.UnixMilli()).
		Order("remind_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}

	reminders := make([]*reminder.Reminder, 0, len(rows))
	for i := range rows {
		reminders = append(reminders, r.mapper.ToDomain(&rows[i]))
	}
	return reminders, nil
}

func (r *ReminderRepository) ListByInvoice(ctx context.Context, invoiceRef string) ([]*reminder.Reminder, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.ReminderModel
	if err := tx.
		Where("invoice_reference_number = ?", invoiceRef).
		Order("remind_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	reminders := make([]*reminder.Reminder, 0, len(rows))
	for i := range rows {
		reminders = append(reminders, r.mapper.ToDomain(&rows[i]))
	}
	return reminders, nil
}

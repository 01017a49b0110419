package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"dunner/internal/domain/activity"
	"dunner/internal/domain/reminder"
	"dunner/internal/infrastructure/persistence/models"
)

// ActivityMapper converts activity trail entries to and from storage.
type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToModel(e *activity.Entry) (*models.ActivityLogModel, error) {
	model := &models.ActivityLogModel{
		ID:           e.ID(),
		ActivityType: e.EntryType().String(),
		TicketID:     e.TicketID(),
		Description:  e.Description(),
		CreatedBy:    e.CreatedBy(),
		CreatedAt:    e.CreatedAt().UnixMilli(),
	}

	if len(e.Metadata()) > 0 {
		metaJSON, err := json.Marshal(e.Metadata())
		if err != nil {
			return nil, fmt.Errorf("failed to encode activity metadata: %w", err)
		}
		model.Metadata = metaJSON
	}

	return model, nil
}

func (m *ActivityMapper) ToDomain(model *models.ActivityLogModel) (*activity.Entry, error) {
	entryType := activity.Type(model.ActivityType)
	if !entryType.IsValid() {
		return nil, fmt.Errorf("invalid activity type in storage: %s", model.ActivityType)
	}

	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to decode activity metadata: %w", err)
		}
	}

	return activity.ReconstructEntry(
		model.ID,
		entryType,
		model.TicketID,
		model.Description,
		metadata,
		model.CreatedBy,
		time.UnixMilli(model.CreatedAt),
	), nil
}

// ReminderMapper converts reminders to and from storage.
type ReminderMapper struct{}

func NewReminderMapper() *ReminderMapper {
	return &ReminderMapper{}
}

func (m *ReminderMapper) ToModel(r *reminder.Reminder) *models.ReminderModel {
	model := &models.ReminderModel{
		ID:         r.ID(),
		InvoiceRef: r.InvoiceRef(),
		TicketID:   r.TicketID(),
		UserID:     r.UserID(),
		Title:      r.Title(),
		Message:    r.Message(),
		RemindAt:   r.RemindAt().UnixMilli(),
		Status:     string(r.Status()),
		SendEmail:  r.SendEmail(),
		CreatedAt:  r.CreatedAt().UnixMilli(),
	}

	if r.TriggeredAt() != nil {
		triggered := r.TriggeredAt().UnixMilli()
		model.TriggeredAt = &triggered
	}

	return model
}

func (m *ReminderMapper) ToDomain(model *models.ReminderModel) *reminder.Reminder {
	var triggeredAt *time.Time
	if model.TriggeredAt != nil {
		t := time.UnixMilli(*model.TriggeredAt)
		triggeredAt = &t
	}

	return reminder.ReconstructReminder(
		model.ID,
		model.InvoiceRef,
		model.TicketID,
		model.UserID,
		model.Title,
		model.Message,
		time.UnixMilli(model.RemindAt),
		reminder.Status(model.Status),
		model.SendEmail,
		triggeredAt,
		time.UnixMilli(model.CreatedAt),
	)
}

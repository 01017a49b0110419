package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"dunner/internal/domain/ticket"
	vo "dunner/internal/domain/ticket/valueobjects"
	"dunner/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	InvoiceEntryToModel(e *ticket.InvoiceEntry) *models.TicketInvoiceModel
	InvoiceEntryToDomain(model *models.TicketInvoiceModel) *ticket.InvoiceEntry

	StatusHistoryToModel(h *ticket.StatusHistory) *models.StatusHistoryModel
	StatusHistoryToDomain(model *models.StatusHistoryModel) (*ticket.StatusHistory, error)

	MergeEventToModel(e *ticket.MergeEvent) (*models.MergeEventModel, error)
	MergeEventToDomain(model *models.MergeEventModel) (*ticket.MergeEvent, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:           t.ID(),
		Number:       t.Number(),
		CustomerID:   t.CustomerID(),
		CustomerName: t.CustomerName(),
		CollectorID:  t.CollectorID(),
		Status:       t.Status().String(),
		Priority:     t.Priority().String(),
		TicketType:   t.TicketType().String(),
		Notes:        t.Notes(),
		AssignedAt:   t.AssignedAt().UnixMilli(),
		AssignedBy:   t.AssignedBy(),
		CreatedAt:    t.CreatedAt().UnixMilli(),
		UpdatedAt:    t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status := vo.TicketStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status in storage: %s", model.Status)
	}
	priority := vo.Priority(model.Priority)
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority in storage: %s", model.Priority)
	}
	ticketType := vo.TicketType(model.TicketType)
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type in storage: %s", model.TicketType)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.CustomerID,
		model.CustomerName,
		model.CollectorID,
		status,
		priority,
		ticketType,
		model.Notes,
		time.UnixMilli(model.AssignedAt),
		model.AssignedBy,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	), nil
}

func (m *TicketMapperImpl) InvoiceEntryToModel(e *ticket.InvoiceEntry) *models.TicketInvoiceModel {
	return &models.TicketInvoiceModel{
		ID:         e.ID(),
		TicketID:   e.TicketID(),
		InvoiceRef: e.InvoiceRef(),
		AddedBy:    e.AddedBy(),
		AddedAt:    e.AddedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) InvoiceEntryToDomain(model *models.TicketInvoiceModel) *ticket.InvoiceEntry {
	return ticket.ReconstructInvoiceEntry(
		model.ID,
		model.TicketID,
		model.InvoiceRef,
		model.AddedBy,
		time.UnixMilli(model.AddedAt),
	)
}

func (m *TicketMapperImpl) StatusHistoryToModel(h *ticket.StatusHistory) *models.StatusHistoryModel {
	model := &models.StatusHistoryModel{
		ID:        h.ID(),
		TicketID:  h.TicketID(),
		NewStatus: h.NewStatus().String(),
		Notes:     h.Notes(),
		ChangedBy: h.ChangedBy(),
		ChangedAt: h.ChangedAt().UnixMilli(),
	}
	if h.OldStatus() != nil {
		old := h.OldStatus().String()
		model.OldStatus = &old
	}
	return model
}

func (m *TicketMapperImpl) StatusHistoryToDomain(model *models.StatusHistoryModel) (*ticket.StatusHistory, error) {
	newStatus := vo.TicketStatus(model.NewStatus)
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("invalid status in storage: %s", model.NewStatus)
	}

	var oldStatus *vo.TicketStatus
	if model.OldStatus != nil {
		s := vo.TicketStatus(*model.OldStatus)
		if !s.IsValid() {
			return nil, fmt.Errorf("invalid status in storage: %s", *model.OldStatus)
		}
		oldStatus = &s
	}

	return ticket.ReconstructStatusHistory(
		model.ID,
		model.TicketID,
		oldStatus,
		newStatus,
		model.Notes,
		model.ChangedBy,
		time.UnixMilli(model.ChangedAt),
	), nil
}

func (m *TicketMapperImpl) MergeEventToModel(e *ticket.MergeEvent) (*models.MergeEventModel, error) {
	refsJSON, err := json.Marshal(e.InvoiceRefs())
	if err != nil {
		return nil, fmt.Errorf("failed to encode invoice refs: %w", err)
	}

	return &models.MergeEventModel{
		MergeID:      e.ID(),
		TicketID:     e.TicketID(),
		InvoiceRefs:  refsJSON,
		InvoiceCount: e.InvoiceCount(),
		Notes:        e.Notes(),
		MergedBy:     e.MergedBy(),
		MergedAt:     e.MergedAt().UnixMilli(),
	}, nil
}

func (m *TicketMapperImpl) MergeEventToDomain(model *models.MergeEventModel) (*ticket.MergeEvent, error) {
	var refs []string
	if len(model.InvoiceRefs) > 0 {
		if err := json.Unmarshal(model.InvoiceRefs, &refs); err != nil {
			return nil, fmt.Errorf("failed to decode invoice refs: %w", err)
		}
	}

	return ticket.ReconstructMergeEvent(
		model.MergeID,
		model.TicketID,
		refs,
		model.Notes,
		model.MergedBy,
		time.UnixMilli(model.MergedAt),
	), nil
}

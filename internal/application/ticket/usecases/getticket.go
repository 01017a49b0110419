package usecases

import (
	"context"
	"fmt"
	"time"

	"dunner/internal/domain/activity"
	"dunner/internal/domain/ticket"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type TicketInvoiceDetail struct {
	InvoiceRef string
	AddedBy    uint
	AddedAt    time.Time
}

type StatusChangeDetail struct {
	OldStatus *string
	NewStatus string
	Notes     string
	ChangedBy uint
	ChangedAt time.Time
}

type MergeEventDetail struct {
	MergeID      string
	InvoiceRefs  []string
	InvoiceCount int
	Notes        string
	MergedBy     uint
	MergedAt     time.Time
}

type ActivityDetail struct {
	EntryType   string
	Description string
	CreatedBy   uint
	CreatedAt   time.Time
}

type TicketDetailResult struct {
	TicketID     uint
	Number       string
	CustomerID   string
	CustomerName string
	CollectorID  uint
	Status       string
	Priority     string
	TicketType   string
	Notes        string
	AssignedAt   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Invoices         []TicketInvoiceDetail
	StatusHistory    []StatusChangeDetail
	MergeEvents      []MergeEventDetail
	LastActivity     *ActivityDetail
	LastStatusChange *StatusChangeDetail
}

// GetTicketUseCase loads the full ticket detail. It also serves as the
// reload entry point when a change notification arrives for a ticket.
type GetTicketUseCase struct {
	ticketRepo   ticket.Repository
	historyRepo  ticket.StatusHistoryRepository
	mergeRepo    ticket.MergeEventRepository
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.StatusHistoryRepository,
	mergeRepo ticket.MergeEventRepository,
	activityRepo activity.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:   ticketRepo,
		historyRepo:  historyRepo,
		mergeRepo:    mergeRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDetailResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	entries, err := uc.ticketRepo.ListInvoices(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ticket invoices", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load ticket invoices")
	}

	history, err := uc.historyRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list status history", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load status history")
	}

	merges, err := uc.mergeRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list merge events", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load merge history")
	}

	lastActivity, err := uc.activityRepo.LatestByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load latest activity", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load activity")
	}

	result := &TicketDetailResult{
		TicketID:     t.ID(),
		Number:       t.Number(),
		CustomerID:   t.CustomerID(),
		CustomerName: t.CustomerName(),
		CollectorID:  t.CollectorID(),
		Status:       t.Status().String(),
		Priority:     t.Priority().String(),
		TicketType:   t.TicketType().String(),
		Notes:        t.Notes(),
		AssignedAt:   t.AssignedAt(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}

	for _, e := range entries {
		result.Invoices = append(result.Invoices, TicketInvoiceDetail{
			InvoiceRef: e.InvoiceRef(),
			AddedBy:    e.AddedBy(),
			AddedAt:    e.AddedAt(),
		})
	}

	for _, h := range history {
		result.StatusHistory = append(result.StatusHistory, toStatusChangeDetail(h))
	}
	if len(result.StatusHistory) > 0 {
		last := result.StatusHistory[len(result.StatusHistory)-1]
		result.LastStatusChange = &last
	}

	for _, m := range merges {
		result.MergeEvents = append(result.MergeEvents, MergeEventDetail{
			MergeID:      m.ID(),
			InvoiceRefs:  m.InvoiceRefs(),
			InvoiceCount: m.InvoiceCount(),
			Notes:        m.Notes(),
			MergedBy:     m.MergedBy(),
			MergedAt:     m.MergedAt(),
		})
	}

	if lastActivity != nil {
		result.LastActivity = &ActivityDetail{
			EntryType:   lastActivity.EntryType().String(),
			Description: lastActivity.Description(),
			CreatedBy:   lastActivity.CreatedBy(),
			CreatedAt:   lastActivity.CreatedAt(),
		}
	}

	return result, nil
}

func toStatusChangeDetail(h *ticket.StatusHistory) StatusChangeDetail {
	d := StatusChangeDetail{
		NewStatus: h.NewStatus().String(),
		Notes:     h.Notes(),
		ChangedBy: h.ChangedBy(),
		ChangedAt: h.ChangedAt(),
	}
	if h.OldStatus() != nil {
		s := h.OldStatus().String()
		d.OldStatus = &s
	}
	return d
}

package usecases

import (
	"context"
	"time"

	"dunner/internal/domain/ticket"
	vo "dunner/internal/domain/ticket/valueobjects"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/logger"
	"dunner/internal/shared/utils"
)

type ListTicketsQuery struct {
	CustomerID  string
	CollectorID uint
	Status      string
	TicketType  string
	Page        int
	PageSize    int
}

type TicketSummary struct {
	TicketID     uint
	Number       string
	CustomerID   string
	CustomerName string
	CollectorID  uint
	Status       string
	Priority     string
	TicketType   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ListTicketsResult struct {
	Tickets  []TicketSummary
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.Status != "" && !vo.TicketStatus(query.Status).IsValid() {
		return nil, errors.NewValidationError("invalid status filter")
	}
	if query.TicketType != "" && !vo.TicketType(query.TicketType).IsValid() {
		return nil, errors.NewValidationError("invalid ticket type filter")
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (p.Page - 1) * p.PageSize

	filter := ticket.ListFilter{
		CustomerID:  query.CustomerID,
		CollectorID: query.CollectorID,
		Status:      vo.TicketStatus(query.Status),
		TicketType:  vo.TicketType(query.TicketType),
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter, offset, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	summaries := make([]TicketSummary, 0, len(tickets))
	for _, t := range tickets {
		summaries = append(summaries, TicketSummary{
			TicketID:     t.ID(),
			Number:       t.Number(),
			CustomerID:   t.CustomerID(),
			CustomerName: t.CustomerName(),
			CollectorID:  t.CollectorID(),
			Status:       t.Status().String(),
			Priority:     t.Priority().String(),
			TicketType:   t.TicketType().String(),
			CreatedAt:    t.CreatedAt(),
			UpdatedAt:    t.UpdatedAt(),
		})
	}

	return &ListTicketsResult{
		Tickets:  summaries,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

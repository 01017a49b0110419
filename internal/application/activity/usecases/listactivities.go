package usecases

import (
	"context"
	"time"

	"dunner/internal/domain/activity"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/logger"
	"dunner/internal/shared/utils"
)

type ListActivitiesQuery struct {
	TicketID     uint
	ActivityType string
	Page         int
	PageSize     int
}

type ActivitySummary struct {
	EntryID     uint
	EntryType   string
	TicketID    *uint
	Description string
	Metadata    map[string]interface{}
	CreatedBy   uint
	CreatedAt   time.Time
}

type ListActivitiesResult struct {
	Entries  []ActivitySummary
	Total    int64
	Page     int
	PageSize int
}

type ListActivitiesExecutor interface {
	Execute(ctx context.Context, query ListActivitiesQuery) (*ListActivitiesResult, error)
}

// ListActivitiesUseCase reads the audit trail, newest first, optionally
// narrowed to one ticket or one activity type.
type ListActivitiesUseCase struct {
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewListActivitiesUseCase(activityRepo activity.Repository, logger logger.Interface) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{activityRepo: activityRepo, logger: logger}
}

func (uc *ListActivitiesUseCase) Execute(ctx context.Context, query ListActivitiesQuery) (*ListActivitiesResult, error) {
	if query.ActivityType != "" && !activity.Type(query.ActivityType).IsValid() {
		return nil, errors.NewValidationError("invalid activity type filter")
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (p.Page - 1) * p.PageSize

	filter := activity.ListFilter{
		TicketID:  query.TicketID,
		EntryType: activity.Type(query.ActivityType),
	}

	entries, total, err := uc.activityRepo.List(ctx, filter, offset, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list activities", "error", err)
		return nil, errors.NewInternalError("failed to list activities")
	}

	summaries := make([]ActivitySummary, 0, len(entries))
	for _, e := range entries {
		summaries = append(summaries, ActivitySummary{
			EntryID:     e.ID(),
			EntryType:   e.EntryType().String(),
			TicketID:    e.TicketID(),
			Description: e.Description(),
			Metadata:    e.Metadata(),
			CreatedBy:   e.CreatedBy(),
			CreatedAt:   e.CreatedAt(),
		})
	}

	return &ListActivitiesResult{
		Entries:  summaries,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

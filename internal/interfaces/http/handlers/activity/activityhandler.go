package activity

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"dunner/internal/application/activity/usecases"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/logger"
	"dunner/internal/shared/utils"
)

type ActivityHandler struct {
	listActivitiesUC usecases.ListActivitiesExecutor
	logger           logger.Interface
}

func NewActivityHandler(listActivitiesUC usecases.ListActivitiesExecutor) *ActivityHandler {
	return &ActivityHandler{
		listActivitiesUC: listActivitiesUC,
		logger:           logger.NewLogger(),
	}
}

// ListActivities handles GET /activities
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListActivitiesQuery{
		ActivityType: c.Query("activity_type"),
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	}

	if ticketIDStr := c.Query("ticket_id"); ticketIDStr != "" {
		ticketID, err := strconv.ParseUint(ticketIDStr, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid ticket_id"))
			return
		}
		query.TicketID = uint(ticketID)
	}

	result, err := h.listActivitiesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Entries, result.Total, result.Page, result.PageSize)
}

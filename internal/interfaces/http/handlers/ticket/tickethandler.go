package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dunner/internal/application/ticket/usecases"
	"dunner/internal/infrastructure/pubsub"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/logger"
	"dunner/internal/shared/utils"
)

type TicketHandler struct {
	resolveAssignmentUC usecases.ResolveAssignmentExecutor
	createTicketUC      usecases.CreateTicketExecutor
	mergeInvoicesUC     usecases.MergeInvoicesExecutor
	changeStatusUC      usecases.ChangeStatusExecutor
	getTicketUC         usecases.GetTicketExecutor
	listTicketsUC       usecases.ListTicketsExecutor
	eventPublisher      pubsub.TicketEventPublisher
	logger              logger.Interface
}

func NewTicketHandler(
	resolveAssignmentUC usecases.ResolveAssignmentExecutor,
	createTicketUC usecases.CreateTicketExecutor,
	mergeInvoicesUC usecases.MergeInvoicesExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	eventPublisher pubsub.TicketEventPublisher,
) *TicketHandler {
	return &TicketHandler{
		resolveAssignmentUC: resolveAssignmentUC,
		createTicketUC:      createTicketUC,
		mergeInvoicesUC:     mergeInvoicesUC,
		changeStatusUC:      changeStatusUC,
		getTicketUC:         getTicketUC,
		listTicketsUC:       listTicketsUC,
		eventPublisher:      eventPublisher,
		logger:              logger.NewLogger(),
	}
}

// ResolveAssignment handles POST /tickets/resolve
//
// It either creates a ticket or reports a conflict with the live ticket for
// the same customer and collector. A conflict is a 409 with full details so
// the operator can choose between merge and explicit create.
func (h *TicketHandler) ResolveAssignment(c *gin.Context) {
	var req ResolveAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for resolve assignment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := req.ToCommand(userID.(uint))

	result, err := h.resolveAssignmentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Outcome == usecases.OutcomeConflict {
		c.JSON(http.StatusConflict, utils.APIResponse{
			Success: false,
			Data:    result,
			Message: "A live ticket already exists for this customer and collector",
		})
		return
	}

	h.publishInvoicesChanged(c, result.Created.TicketID)
	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// CreateTicket handles POST /tickets
//
// This is the explicit create after a conflict, it skips the live ticket
// check on purpose.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := req.ToCommand(userID.(uint))

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.publishInvoicesChanged(c, result.TicketID)
	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// MergeInvoices handles POST /tickets/:id/merge
func (h *TicketHandler) MergeInvoices(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MergeInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.MergeInvoicesCommand{
		TicketID:    ticketID,
		InvoiceRefs: req.InvoiceRefs,
		Notes:       req.Notes,
		MergedBy:    userID.(uint),
	}

	result, err := h.mergeInvoicesUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if h.eventPublisher != nil {
		if err := h.eventPublisher.PublishMerge(c.Request.Context(), result.TicketID); err != nil {
			h.logger.Warnw("failed to publish merge event", "ticket_id", result.TicketID, "error", err)
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "Invoices merged successfully", result)
}

// ChangeStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		NewStatus: req.Status,
		Note:      req.Note,
		ChangedBy: userID.(uint),
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if h.eventPublisher != nil {
		if err := h.eventPublisher.PublishStatusChange(c.Request.Context(), result.TicketID); err != nil {
			h.logger.Warnw("failed to publish status change event", "ticket_id", result.TicketID, "error", err)
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

func (h *TicketHandler) publishInvoicesChanged(c *gin.Context, ticketID uint) {
	if h.eventPublisher == nil {
		return
	}
	if err := h.eventPublisher.PublishInvoicesChanged(c.Request.Context(), ticketID); err != nil {
		h.logger.Warnw("failed to publish invoices changed event", "ticket_id", ticketID, "error", err)
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ticket ID")
	}
	return uint(id), nil
}

package invoice

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dunner/internal/application/invoice/usecases"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/logger"
	"dunner/internal/shared/utils"
)

type InvoiceHandler struct {
	setColorUC      usecases.SetColorExecutor
	batchSetColorUC usecases.BatchSetColorExecutor
	batchNoteUC     usecases.BatchNoteExecutor
	listInvoicesUC  usecases.ListInvoicesExecutor
	logger          logger.Interface
}

func NewInvoiceHandler(
	setColorUC usecases.SetColorExecutor,
	batchSetColorUC usecases.BatchSetColorExecutor,
	batchNoteUC usecases.BatchNoteExecutor,
	listInvoicesUC usecases.ListInvoicesExecutor,
) *InvoiceHandler {
	return &InvoiceHandler{
		setColorUC:      setColorUC,
		batchSetColorUC: batchSetColorUC,
		batchNoteUC:     batchNoteUC,
		listInvoicesUC:  listInvoicesUC,
		logger:          logger.NewLogger(),
	}
}

// ListInvoices handles GET /invoices
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	req := parseListInvoicesRequest(c)

	result, err := h.listInvoicesUC.Execute(c.Request.Context(), usecases.ListInvoicesQuery{
		CustomerID: req.CustomerID,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Invoices, result.Total, result.Page, result.PageSize)
}

// SetColor handles PUT /invoices/:ref/color
func (h *InvoiceHandler) SetColor(c *gin.Context) {
	ref, err := parseInvoiceRef(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set color", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.SetColorCommand{
		InvoiceRef: ref,
		Color:      req.Color,
		SetBy:      userID.(uint),
	}

	result, err := h.setColorUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invoice color updated", result)
}

// BatchSetColor handles POST /invoices/batch/color
func (h *InvoiceHandler) BatchSetColor(c *gin.Context) {
	var req BatchSetColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for batch set color", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := usecases.BatchSetColorCommand{
		InvoiceRefs: req.InvoiceRefs,
		Color:       req.Color,
		SetBy:       userID.(uint),
	}

	result, err := h.batchSetColorUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invoices tagged successfully", result)
}

// BatchNote handles POST /invoices/batch/notes
func (h *InvoiceHandler) BatchNote(c *gin.Context) {
	var req BatchNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for batch note", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	result, err := h.batchNoteUC.Execute(c.Request.Context(), req.ToCommand(userID.(uint)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Notes saved successfully")
}

func parseInvoiceRef(c *gin.Context) (string, error) {
	ref := strings.TrimSpace(c.Param("ref"))
	if ref == "" {
		return "", errors.NewValidationError("Invalid invoice reference")
	}
	return ref, nil
}

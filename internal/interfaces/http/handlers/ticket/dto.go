package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"dunner/internal/application/ticket/usecases"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/utils"
)

type ResolveAssignmentRequest struct {
	CustomerID   string   `json:"customer_id" binding:"required,max=64"`
	CustomerName string   `json:"customer_name" binding:"max=200"`
	CollectorID  uint     `json:"collector_id" binding:"required"`
	Priority     string   `json:"priority" binding:"required,oneof=low medium high urgent"`
	TicketType   string   `json:"ticket_type" binding:"required,oneof=overdue_payment partial_payment chargeback settlement"`
	Notes        string   `json:"notes" binding:"max=5000"`
	InvoiceRefs  []string `json:"invoice_refs" binding:"required,min=1,dive,required,max=64"`
}

func (r *ResolveAssignmentRequest) ToCommand(requestedBy uint) usecases.ResolveAssignmentCommand {
	return usecases.ResolveAssignmentCommand{
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		CollectorID:  r.CollectorID,
		Priority:     r.Priority,
		TicketType:   r.TicketType,
		Notes:        r.Notes,
		InvoiceRefs:  r.InvoiceRefs,
		RequestedBy:  requestedBy,
	}
}

type CreateTicketRequest struct {
	CustomerID   string   `json:"customer_id" binding:"required,max=64"`
	CustomerName string   `json:"customer_name" binding:"max=200"`
	CollectorID  uint     `json:"collector_id" binding:"required"`
	Priority     string   `json:"priority" binding:"required,oneof=low medium high urgent"`
	TicketType   string   `json:"ticket_type" binding:"required,oneof=overdue_payment partial_payment chargeback settlement"`
	Notes        string   `json:"notes" binding:"max=5000"`
	InvoiceRefs  []string `json:"invoice_refs,omitempty" binding:"dive,required,max=64"`
}

func (r *CreateTicketRequest) ToCommand(createdBy uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		CollectorID:  r.CollectorID,
		Priority:     r.Priority,
		TicketType:   r.TicketType,
		Notes:        r.Notes,
		InvoiceRefs:  r.InvoiceRefs,
		CreatedBy:    createdBy,
	}
}

type MergeInvoicesRequest struct {
	InvoiceRefs []string `json:"invoice_refs" binding:"required,min=1,dive,required,max=64"`
	Notes       string   `json:"notes" binding:"max=5000"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open pending promised paid disputed closed"`
	Note   string `json:"note" binding:"max=5000"`
}

type ListTicketsRequest struct {
	Page        int
	PageSize    int
	CustomerID  string
	CollectorID uint
	Status      string
	TicketType  string
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		CustomerID:  r.CustomerID,
		CollectorID: r.CollectorID,
		Status:      r.Status,
		TicketType:  r.TicketType,
		Page:        r.Page,
		PageSize:    r.PageSize,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	pagination := utils.ParsePagination(c)

	req := &ListTicketsRequest{
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		CustomerID: c.Query("customer_id"),
		Status:     c.Query("status"),
		TicketType: c.Query("ticket_type"),
	}

	if collectorIDStr := c.Query("collector_id"); collectorIDStr != "" {
		collectorID, err := strconv.ParseUint(collectorIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("Invalid collector_id")
		}
		req.CollectorID = uint(collectorID)
	}

	return req, nil
}

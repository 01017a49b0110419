package invoice

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"dunner/internal/application/invoice/usecases"
)

type SetColorRequest struct {
	// Color is one of red/yellow/green. Empty clears the tag.
	Color string `json:"color" binding:"omitempty,tagcolor"`
}

type BatchSetColorRequest struct {
	InvoiceRefs []string `json:"invoice_refs" binding:"required,min=1,dive,required,max=64"`
	// Color is one of red/yellow/green. Empty clears the tag on every ref.
	Color string `json:"color" binding:"omitempty,tagcolor"`
}

type BatchNoteRequest struct {
	InvoiceRefs []string `json:"invoice_refs" binding:"required,min=1,dive,required,max=64"`
	NoteText    string   `json:"note_text" binding:"required,max=5000"`

	WithReminder bool   `json:"with_reminder"`
	ReminderDate string `json:"reminder_date" binding:"omitempty,datetime=2006-01-02"`
	ReminderTime string `json:"reminder_time" binding:"omitempty,datetime=15:04"`
	SendEmail    bool   `json:"send_email"`
}

func (r *BatchNoteRequest) ToCommand(createdBy uint) usecases.BatchNoteCommand {
	return usecases.BatchNoteCommand{
		InvoiceRefs:  r.InvoiceRefs,
		NoteText:     r.NoteText,
		WithReminder: r.WithReminder,
		ReminderDate: r.ReminderDate,
		ReminderTime: r.ReminderTime,
		SendEmail:    r.SendEmail,
		CreatedBy:    createdBy,
	}
}

type ListInvoicesRequest struct {
	CustomerID string
	Page       int
	PageSize   int
}

func parseListInvoicesRequest(c *gin.Context) *ListInvoicesRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	return &ListInvoicesRequest{
		CustomerID: c.Query("customer_id"),
		Page:       page,
		PageSize:   pageSize,
	}
}

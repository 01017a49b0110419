package usecases

import (
	"context"
	"time"

	"dunner/internal/domain/invoice"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/logger"
	"dunner/internal/shared/utils"
)

type ListInvoicesQuery struct {
	CustomerID string
	Page       int
	PageSize   int
}

type InvoiceSummary struct {
	Ref          string
	CustomerID   string
	CustomerName string
	AmountCents  int64
	Currency     string
	DueDate      time.Time
	Color        string
	TicketID     *uint
}

type ListInvoicesResult struct {
	Invoices []InvoiceSummary
	Total    int64
	Page     int
	PageSize int
}

// ListInvoicesUseCase lists a customer's invoices with their color tags and
// current ticket ownership, the working view collectors select from.
type ListInvoicesUseCase struct {
	invoiceRepo    invoice.Repository
	assignmentRepo invoice.AssignmentRepository
	logger         logger.Interface
}

func NewListInvoicesUseCase(
	invoiceRepo invoice.Repository,
	assignmentRepo invoice.AssignmentRepository,
	logger logger.Interface,
) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		invoiceRepo:    invoiceRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListInvoicesUseCase) Execute(ctx context.Context, query ListInvoicesQuery) (*ListInvoicesResult, error) {
	if query.CustomerID == "" {
		return nil, errors.NewValidationError("customer ID is required")
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	offset := (p.Page - 1) * p.PageSize

	invoices, total, err := uc.invoiceRepo.ListByCustomer(ctx, query.CustomerID, offset, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list invoices", "customer_id", query.CustomerID, "error", err)
		return nil, errors.NewInternalError("failed to list invoices")
	}

	summaries := make([]InvoiceSummary, 0, len(invoices))
	for _, inv := range invoices {
		summary := InvoiceSummary{
			Ref:          inv.Ref(),
			CustomerID:   inv.CustomerID(),
			CustomerName: inv.CustomerName(),
			AmountCents:  inv.AmountCents(),
			Currency:     inv.Currency(),
			DueDate:      inv.DueDate(),
		}
		if inv.Color() != nil {
			summary.Color = inv.Color().String()
		}

		assignment, err := uc.assignmentRepo.GetByRef(ctx, inv.Ref())
		if err != nil {
			uc.logger.Errorw("failed to look up invoice assignment", "invoice_ref", inv.Ref(), "error", err)
			return nil, errors.NewInternalError("failed to look up invoice assignments")
		}
		if assignment != nil {
			ticketID := assignment.TicketID()
			summary.TicketID = &ticketID
		}

		summaries = append(summaries, summary)
	}

	return &ListInvoicesResult{
		Invoices: summaries,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

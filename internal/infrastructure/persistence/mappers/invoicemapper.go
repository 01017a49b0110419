package mappers

import (
	"fmt"
	"time"

	"dunner/internal/domain/invoice"
	vo "dunner/internal/domain/invoice/valueobjects"
	"dunner/internal/infrastructure/persistence/models"
)

// InvoiceMapper handles the conversion between invoice domain entities and
// persistence models.
type InvoiceMapper interface {
	ToModel(inv *invoice.Invoice) *models.InvoiceModel
	ToDomain(model *models.InvoiceModel) (*invoice.Invoice, error)

	AssignmentToModel(a *invoice.Assignment) *models.InvoiceAssignmentModel
	AssignmentToDomain(model *models.InvoiceAssignmentModel) *invoice.Assignment

	MemoToModel(m *invoice.Memo) *models.InvoiceMemoModel
	MemoToDomain(model *models.InvoiceMemoModel) *invoice.Memo
}

type InvoiceMapperImpl struct{}

func NewInvoiceMapper() InvoiceMapper {
	return &InvoiceMapperImpl{}
}

func (m *InvoiceMapperImpl) ToModel(inv *invoice.Invoice) *models.InvoiceModel {
	model := &models.InvoiceModel{
		Ref:          inv.Ref(),
		CustomerID:   inv.CustomerID(),
		CustomerName: inv.CustomerName(),
		AmountCents:  inv.AmountCents(),
		Currency:     inv.Currency(),
		CreatedAt:    inv.CreatedAt().UnixMilli(),
		UpdatedAt:    inv.UpdatedAt().UnixMilli(),
	}

	if !inv.DueDate().IsZero() {
		due := inv.DueDate().UnixMilli()
		model.DueDate = &due
	}

	if inv.Color() != nil {
		c := inv.Color().String()
		model.Color = &c
	}

	return model
}

func (m *InvoiceMapperImpl) ToDomain(model *models.InvoiceModel) (*invoice.Invoice, error) {
	var color *vo.Color
	if model.Color != nil {
		c := vo.Color(*model.Color)
		if !c.IsValid() {
			return nil, fmt.Errorf("invalid color in storage: %s", *model.Color)
		}
		color = &c
	}

	var dueDate time.Time
	if model.DueDate != nil {
		dueDate = time.UnixMilli(*model.DueDate)
	}

	return invoice.ReconstructInvoice(
		model.Ref,
		model.CustomerID,
		model.CustomerName,
		model.AmountCents,
		model.Currency,
		dueDate,
		color,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	), nil
}

func (m *InvoiceMapperImpl) AssignmentToModel(a *invoice.Assignment) *models.InvoiceAssignmentModel {
	return &models.InvoiceAssignmentModel{
		ID:          a.ID(),
		InvoiceRef:  a.InvoiceRef(),
		TicketID:    a.TicketID(),
		CollectorID: a.CollectorID(),
		AssignedAt:  a.AssignedAt().UnixMilli(),
	}
}

func (m *InvoiceMapperImpl) AssignmentToDomain(model *models.InvoiceAssignmentModel) *invoice.Assignment {
	return invoice.ReconstructAssignment(
		model.ID,
		model.InvoiceRef,
		model.TicketID,
		model.CollectorID,
		time.UnixMilli(model.AssignedAt),
	)
}

func (m *InvoiceMapperImpl) MemoToModel(memo *invoice.Memo) *models.InvoiceMemoModel {
	return &models.InvoiceMemoModel{
		ID:         memo.ID(),
		InvoiceRef: memo.InvoiceRef(),
		TicketID:   memo.TicketID(),
		BatchID:    memo.BatchID(),
		Content:    memo.Content(),
		CreatedBy:  memo.CreatedBy(),
		CreatedAt:  memo.CreatedAt().UnixMilli(),
	}
}

func (m *InvoiceMapperImpl) MemoToDomain(model *models.InvoiceMemoModel) *invoice.Memo {
	return invoice.ReconstructMemo(
		model.ID,
		model.InvoiceRef,
		model.TicketID,
		model.BatchID,
		model.Content,
		model.CreatedBy,
		time.UnixMilli(model.CreatedAt),
	)
}

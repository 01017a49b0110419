package usecases

import (
	"context"
	"fmt"

	"dunner/internal/domain/activity"
	"dunner/internal/domain/invoice"
	vo "dunner/internal/domain/invoice/valueobjects"
	"dunner/internal/shared/db"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/logger"
)

type SetColorCommand struct {
	InvoiceRef string
	// Color is one of red/yellow/green. Empty clears the tag.
	Color string
	SetBy uint
}

type SetColorResult struct {
	InvoiceRef string
	OldColor   string
	NewColor   string
}

// SetColorUseCase tags a single invoice. Every call is recorded in the
// activity trail, repeated identical tags included.
type SetColorUseCase struct {
	invoiceRepo    invoice.Repository
	assignmentRepo invoice.AssignmentRepository
	activityRepo   activity.Repository
	txManager      db.TxManager
	logger         logger.Interface
}

func NewSetColorUseCase(
	invoiceRepo invoice.Repository,
	assignmentRepo invoice.AssignmentRepository,
	activityRepo activity.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *SetColorUseCase {
	return &SetColorUseCase{
		invoiceRepo:    invoiceRepo,
		assignmentRepo: assignmentRepo,
		activityRepo:   activityRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *SetColorUseCase) Execute(ctx context.Context, cmd SetColorCommand) (*SetColorResult, error) {
	uc.logger.Infow("executing set color use case", "invoice_ref", cmd.InvoiceRef, "color", cmd.Color)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid set color command", "error", err)
		return nil, err
	}

	inv, err := uc.invoiceRepo.FindByRef(ctx, cmd.InvoiceRef)
	if err != nil {
		uc.logger.Errorw("failed to get invoice", "invoice_ref", cmd.InvoiceRef, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("invoice %s not found", cmd.InvoiceRef))
	}

	oldColor := ""
	if inv.Color() != nil {
		oldColor = inv.Color().String()
	}

	if cmd.Color == "" {
		inv.ClearColor()
	} else {
		if err := inv.SetColor(vo.Color(cmd.Color)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	ticketID, err := uc.currentTicketID(ctx, cmd.InvoiceRef)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.invoiceRepo.Update(txCtx, inv); err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}

		entry, err := activity.NewEntry(
			activity.TypeColorChange,
			ticketID,
			colorChangeDescription(cmd.InvoiceRef, oldColor, cmd.Color),
			map[string]interface{}{
				"invoice_ref": cmd.InvoiceRef,
				"old_color":   oldColor,
				"new_color":   cmd.Color,
			},
			cmd.SetBy,
		)
		if err != nil {
			return err
		}
		if err := uc.activityRepo.Append(txCtx, entry); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to set invoice color", "invoice_ref", cmd.InvoiceRef, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to set invoice color")
	}

	uc.logger.Infow("invoice color set", "invoice_ref", cmd.InvoiceRef, "old_color", oldColor, "new_color", cmd.Color)

	return &SetColorResult{
		InvoiceRef: cmd.InvoiceRef,
		OldColor:   oldColor,
		NewColor:   cmd.Color,
	}, nil
}

func (uc *SetColorUseCase) currentTicketID(ctx context.Context, ref string) (*uint, error) {
	assignment, err := uc.assignmentRepo.GetByRef(ctx, ref)
	if err != nil {
		uc.logger.Errorw("failed to look up invoice assignment", "invoice_ref", ref, "error", err)
		return nil, errors.NewInternalError("failed to look up invoice assignment")
	}
	if assignment == nil {
		return nil, nil
	}
	ticketID := assignment.TicketID()
	return &ticketID, nil
}

func (uc *SetColorUseCase) validateCommand(cmd SetColorCommand) error {
	if cmd.InvoiceRef == "" {
		return errors.NewValidationError("invoice ref is required")
	}

	if cmd.Color != "" && !vo.Color(cmd.Color).IsValid() {
		return errors.NewValidationError("invalid color")
	}

	if cmd.SetBy == 0 {
		return errors.NewValidationError("user ID is required")
	}

	return nil
}

func colorChangeDescription(ref, oldColor, newColor string) string {
	if newColor == "" {
		return fmt.Sprintf("cleared color on invoice %s", ref)
	}
	if oldColor == "" {
		return fmt.Sprintf("tagged invoice %s %s", ref, newColor)
	}
	return fmt.Sprintf("changed invoice %s from %s to %s", ref, oldColor, newColor)
}

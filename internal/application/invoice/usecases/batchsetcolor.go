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

type BatchSetColorCommand struct {
	InvoiceRefs []string
	// Color is one of red/yellow/green. Empty clears the tag on every ref.
	Color string
	SetBy uint
}

type BatchSetColorResult struct {
	InvoiceCount int
	Color        string
}

// BatchSetColorUseCase tags many invoices with one color in a single bulk
// update and records exactly one activity entry for the whole batch.
type BatchSetColorUseCase struct {
	invoiceRepo  invoice.Repository
	activityRepo activity.Repository
	txManager    db.TxManager
	logger       logger.Interface
}

func NewBatchSetColorUseCase(
	invoiceRepo invoice.Repository,
	activityRepo activity.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *BatchSetColorUseCase {
	return &BatchSetColorUseCase{
		invoiceRepo:  invoiceRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *BatchSetColorUseCase) Execute(ctx context.Context, cmd BatchSetColorCommand) (*BatchSetColorResult, error) {
	uc.logger.Infow("executing batch set color use case", "invoice_count", len(cmd.InvoiceRefs), "color", cmd.Color)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid batch set color command", "error", err)
		return nil, err
	}

	refs := invoice.NewSelectionFrom(cmd.InvoiceRefs).Refs()

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.invoiceRepo.BatchSetColor(txCtx, refs, vo.Color(cmd.Color)); err != nil {
			return fmt.Errorf("batch set color: %w", err)
		}

		entry, err := activity.NewEntry(
			activity.TypeColorChange,
			nil,
			batchColorDescription(len(refs), cmd.Color),
			map[string]interface{}{
				"invoice_refs": refs,
				"color":        cmd.Color,
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
		uc.logger.Errorw("failed to batch set color", "color", cmd.Color, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to set invoice colors")
	}

	uc.logger.Infow("invoice colors set", "invoice_count", len(refs), "color", cmd.Color)

	return &BatchSetColorResult{
		InvoiceCount: len(refs),
		Color:        cmd.Color,
	}, nil
}

func (uc *BatchSetColorUseCase) validateCommand(cmd BatchSetColorCommand) error {
	if len(cmd.InvoiceRefs) == 0 {
		return errors.NewValidationError("at least one invoice is required")
	}

	if cmd.Color != "" && !vo.Color(cmd.Color).IsValid() {
		return errors.NewValidationError("invalid color")
	}

	if cmd.SetBy == 0 {
		return errors.NewValidationError("user ID is required")
	}

	return nil
}

func batchColorDescription(count int, color string) string {
	if color == "" {
		return fmt.Sprintf("cleared color on %d invoice(s)", count)
	}
	return fmt.Sprintf("tagged %d invoice(s) %s", count, color)
}

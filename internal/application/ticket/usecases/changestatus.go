package usecases

import (
	"context"
	"fmt"
	"time"

	"dunner/internal/domain/activity"
	"dunner/internal/domain/ticket"
	vo "dunner/internal/domain/ticket/valueobjects"
	"dunner/internal/shared/db"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	Note      string
	ChangedBy uint
}

type ChangeStatusResult struct {
	TicketID  uint
	OldStatus string
	NewStatus string
	UpdatedAt time.Time
}

type ChangeStatusUseCase struct {
	ticketRepo   ticket.Repository
	historyRepo  ticket.StatusHistoryRepository
	activityRepo activity.Repository
	txManager    db.TxManager
	logger       logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.StatusHistoryRepository,
	activityRepo activity.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:   ticketRepo,
		historyRepo:  historyRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "new_status", cmd.NewStatus)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid change status command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	oldStatus := t.Status()

	if err := t.ChangeStatus(vo.TicketStatus(cmd.NewStatus)); err != nil {
		uc.logger.Errorw("failed to change ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("update ticket: %w", err)
		}

		history, err := ticket.NewStatusHistory(t.ID(), oldStatus, t.Status(), cmd.Note, cmd.ChangedBy)
		if err != nil {
			return err
		}
		if err := uc.historyRepo.Create(txCtx, history); err != nil {
			return fmt.Errorf("save status history: %w", err)
		}

		if cmd.Note != "" {
			ticketID := t.ID()
			entry, err := activity.NewEntry(
				activity.TypeNote,
				&ticketID,
				cmd.Note,
				map[string]interface{}{
					"old_status": oldStatus.String(),
					"new_status": t.Status().String(),
				},
				cmd.ChangedBy,
			)
			if err != nil {
				return err
			}
			if err := uc.activityRepo.Append(txCtx, entry); err != nil {
				return fmt.Errorf("append activity: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to persist status change", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to change ticket status")
	}

	uc.logger.Infow("ticket status changed successfully",
		"ticket_id", cmd.TicketID, "old_status", oldStatus, "new_status", t.Status())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

func (uc *ChangeStatusUseCase) validateCommand(cmd ChangeStatusCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if !vo.TicketStatus(cmd.NewStatus).IsValid() {
		return errors.NewValidationError("invalid status")
	}

	if cmd.ChangedBy == 0 {
		return errors.NewValidationError("changed by user ID is required")
	}

	return nil
}

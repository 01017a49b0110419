package usecases

import (
	"context"
	"fmt"
	"time"

	"dunner/internal/domain/activity"
	"dunner/internal/domain/invoice"
	"dunner/internal/domain/ticket"
	vo "dunner/internal/domain/ticket/valueobjects"
	"dunner/internal/shared/db"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/logger"
)

type CreateTicketCommand struct {
	CustomerID   string
	CustomerName string
	CollectorID  uint
	Priority     string
	TicketType   string
	Notes        string
	InvoiceRefs  []string
	CreatedBy    uint
}

type CreateTicketResult struct {
	TicketID     uint
	Number       string
	Status       string
	InvoiceCount int
	CreatedAt    time.Time
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.Repository
	historyRepo    ticket.StatusHistoryRepository
	assignmentRepo invoice.AssignmentRepository
	activityRepo   activity.Repository
	numberGen      ticket.NumberGenerator
	txManager      db.TxManager
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.StatusHistoryRepository,
	assignmentRepo invoice.AssignmentRepository,
	activityRepo activity.Repository,
	numberGen ticket.NumberGenerator,
	txManager db.TxManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		historyRepo:    historyRepo,
		assignmentRepo: assignmentRepo,
		activityRepo:   activityRepo,
		numberGen:      numberGen,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"customer_id", cmd.CustomerID, "collector_id", cmd.CollectorID, "invoice_count", len(cmd.InvoiceRefs))

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	refs := invoice.NewSelectionFrom(cmd.InvoiceRefs).Refs()

	newTicket, err := ticket.NewTicket(
		cmd.CustomerID,
		cmd.CustomerName,
		cmd.CollectorID,
		vo.Priority(cmd.Priority),
		vo.TicketType(cmd.TicketType),
		cmd.Notes,
		cmd.CreatedBy,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGen.Next(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewInternalError("failed to generate ticket number")
	}
	newTicket.SetNumber(number)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Create(txCtx, newTicket); err != nil {
			return fmt.Errorf("save ticket: %w", err)
		}

		history, err := ticket.NewInitialStatusHistory(newTicket.ID(), newTicket.Status(), cmd.CreatedBy)
		if err != nil {
			return err
		}
		if err := uc.historyRepo.Create(txCtx, history); err != nil {
			return fmt.Errorf("save status history: %w", err)
		}

		entries := make([]*ticket.InvoiceEntry, 0, len(refs))
		assignments := make([]*invoice.Assignment, 0, len(refs))
		for _, ref := range refs {
			entry, err := ticket.NewInvoiceEntry(newTicket.ID(), ref, cmd.CreatedBy)
			if err != nil {
				return err
			}
			entries = append(entries, entry)

			assignment, err := invoice.NewAssignment(ref, newTicket.ID(), cmd.CollectorID)
			if err != nil {
				return err
			}
			assignments = append(assignments, assignment)
		}

		if len(entries) > 0 {
			if err := uc.ticketRepo.AddInvoices(txCtx, entries); err != nil {
				return fmt.Errorf("attach invoices: %w", err)
			}
			if err := uc.assignmentRepo.UpsertBatch(txCtx, assignments); err != nil {
				return fmt.Errorf("upsert assignments: %w", err)
			}
		}

		ticketID := newTicket.ID()
		entry, err := activity.NewEntry(
			activity.TypeAssignment,
			&ticketID,
			fmt.Sprintf("ticket %s created with %d invoice(s)", number, len(refs)),
			map[string]interface{}{
				"customer_id":  cmd.CustomerID,
				"collector_id": cmd.CollectorID,
				"invoice_refs": refs,
			},
			cmd.CreatedBy,
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
		uc.logger.Errorw("failed to create ticket", "customer_id", cmd.CustomerID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(), "number", newTicket.Number(), "invoice_count", len(refs))

	return &CreateTicketResult{
		TicketID:     newTicket.ID(),
		Number:       newTicket.Number(),
		Status:       newTicket.Status().String(),
		InvoiceCount: len(refs),
		CreatedAt:    newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.CustomerID == "" {
		return errors.NewValidationError("customer ID is required")
	}

	if cmd.CollectorID == 0 {
		return errors.NewValidationError("collector ID is required")
	}

	if cmd.CreatedBy == 0 {
		return errors.NewValidationError("creator ID is required")
	}

	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	if !vo.TicketType(cmd.TicketType).IsValid() {
		return errors.NewValidationError("invalid ticket type")
	}

	return nil
}

package usecases

import (
	"context"

	"dunner/internal/domain/invoice"
	"dunner/internal/domain/ticket"
	"dunner/internal/shared/errors"
	"dunner/internal/shared/logger"
)

// ResolveOutcome tells the caller how an assignment request was resolved.
type ResolveOutcome string

const (
	// OutcomeCreated means no live ticket existed, a new one was created.
	OutcomeCreated ResolveOutcome = "created"
	// OutcomeConflict means a live ticket for the same customer and
	// collector already exists. Nothing was written, the caller must
	// explicitly merge or create.
	OutcomeConflict ResolveOutcome = "conflict"
)

type ResolveAssignmentCommand struct {
	CustomerID   string
	CustomerName string
	CollectorID  uint
	Priority     string
	TicketType   string
	Notes        string
	InvoiceRefs  []string
	RequestedBy  uint
}

// CandidateInvoice is one of the invoices the operator was about to assign,
// surfaced with its amount so the conflict prompt can show context.
type CandidateInvoice struct {
	Ref         string
	AmountCents int64
}

// ConflictDetails describes the existing live ticket that blocked an
// automatic create.
type ConflictDetails struct {
	TicketID     uint
	TicketNumber string
	Status       string
	Priority     string
	Notes        string
	CollectorID  uint
	InvoiceCount int64
	Candidates   []CandidateInvoice
}

type ResolveAssignmentResult struct {
	Outcome  ResolveOutcome
	Created  *CreateTicketResult
	Conflict *ConflictDetails
}

type ResolveAssignmentUseCase struct {
	ticketRepo  ticket.Repository
	invoiceRepo invoice.Repository
	createUC    CreateTicketExecutor
	logger      logger.Interface
}

func NewResolveAssignmentUseCase(
	ticketRepo ticket.Repository,
	invoiceRepo invoice.Repository,
	createUC CreateTicketExecutor,
	logger logger.Interface,
) *ResolveAssignmentUseCase {
	return &ResolveAssignmentUseCase{
		ticketRepo:  ticketRepo,
		invoiceRepo: invoiceRepo,
		createUC:    createUC,
		logger:      logger,
	}
}

func (uc *ResolveAssignmentUseCase) Execute(ctx context.Context, cmd ResolveAssignmentCommand) (*ResolveAssignmentResult, error) {
	uc.logger.Infow("executing resolve assignment use case",
		"customer_id", cmd.CustomerID, "collector_id", cmd.CollectorID, "invoice_count", len(cmd.InvoiceRefs))

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid resolve assignment command", "error", err)
		return nil, err
	}

	existing, err := uc.ticketRepo.FindLatestLive(ctx, cmd.CustomerID, cmd.CollectorID)
	if err != nil {
		uc.logger.Errorw("failed to look up live ticket",
			"customer_id", cmd.CustomerID, "collector_id", cmd.CollectorID, "error", err)
		return nil, errors.NewInternalError("failed to look up existing tickets")
	}

	if existing != nil {
		conflict, err := uc.buildConflictDetails(ctx, existing, cmd.InvoiceRefs)
		if err != nil {
			return nil, err
		}

		uc.logger.Infow("assignment conflicts with live ticket",
			"customer_id", cmd.CustomerID, "collector_id", cmd.CollectorID,
			"ticket_id", existing.ID(), "status", existing.Status())

		return &ResolveAssignmentResult{
			Outcome:  OutcomeConflict,
			Conflict: conflict,
		}, nil
	}

	created, err := uc.createUC.Execute(ctx, CreateTicketCommand{
		CustomerID:   cmd.CustomerID,
		CustomerName: cmd.CustomerName,
		CollectorID:  cmd.CollectorID,
		Priority:     cmd.Priority,
		TicketType:   cmd.TicketType,
		Notes:        cmd.Notes,
		InvoiceRefs:  cmd.InvoiceRefs,
		CreatedBy:    cmd.RequestedBy,
	})
	if err != nil {
		return nil, err
	}

	return &ResolveAssignmentResult{
		Outcome: OutcomeCreated,
		Created: created,
	}, nil
}

func (uc *ResolveAssignmentUseCase) buildConflictDetails(ctx context.Context, existing *ticket.Ticket, refs []string) (*ConflictDetails, error) {
	invoiceCount, err := uc.ticketRepo.CountInvoices(ctx, existing.ID())
	if err != nil {
		uc.logger.Errorw("failed to count ticket invoices", "ticket_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load conflict details")
	}

	invoices, err := uc.invoiceRepo.FindByRefs(ctx, refs)
	if err != nil {
		uc.logger.Errorw("failed to load candidate invoices", "error", err)
		return nil, errors.NewInternalError("failed to load conflict details")
	}

	amounts := make(map[string]int64, len(invoices))
	for _, inv := range invoices {
		amounts[inv.Ref()] = inv.AmountCents()
	}

	candidates := make([]CandidateInvoice, 0, len(refs))
	for _, ref := range refs {
		candidates = append(candidates, CandidateInvoice{
			Ref:         ref,
			AmountCents: amounts[ref],
		})
	}

	return &ConflictDetails{
		TicketID:     existing.ID(),
		TicketNumber: existing.Number(),
		Status:       existing.Status().String(),
		Priority:     existing.Priority().String(),
		Notes:        existing.Notes(),
		CollectorID:  existing.CollectorID(),
		InvoiceCount: invoiceCount,
		Candidates:   candidates,
	}, nil
}

func (uc *ResolveAssignmentUseCase) validateCommand(cmd ResolveAssignmentCommand) error {
	if cmd.CustomerID == "" {
		return errors.NewValidationError("customer ID is required")
	}

	if cmd.CollectorID == 0 {
		return errors.NewValidationError("collector ID is required")
	}

	if len(cmd.InvoiceRefs) == 0 {
		return errors.NewValidationError("at least one invoice is required")
	}

	if cmd.RequestedBy == 0 {
		return errors.NewValidationError("requesting user ID is required")
	}

	return nil
}

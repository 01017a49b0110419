package usecases

import "context"

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type ResolveAssignmentExecutor interface {
	Execute(ctx context.Context, cmd ResolveAssignmentCommand) (*ResolveAssignmentResult, error)
}

type MergeInvoicesExecutor interface {
	Execute(ctx context.Context, cmd MergeInvoicesCommand) (*MergeInvoicesResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketDetailResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

// ReloadTicketDetailExecutor is the entry point driven by change
// notifications, it is the same query as a normal detail fetch.
type ReloadTicketDetailExecutor = GetTicketExecutor

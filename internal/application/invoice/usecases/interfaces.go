package usecases

import "context"

type SetColorExecutor interface {
	Execute(ctx context.Context, cmd SetColorCommand) (*SetColorResult, error)
}

type BatchSetColorExecutor interface {
	Execute(ctx context.Context, cmd BatchSetColorCommand) (*BatchSetColorResult, error)
}

type BatchNoteExecutor interface {
	Execute(ctx context.Context, cmd BatchNoteCommand) (*BatchNoteResult, error)
}

type ListInvoicesExecutor interface {
	Execute(ctx context.Context, query ListInvoicesQuery) (*ListInvoicesResult, error)
}

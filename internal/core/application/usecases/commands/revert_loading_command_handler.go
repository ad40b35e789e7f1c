package commands

import (
	"context"
)

// RevertLoadingCommandHandler processes approval undo operations.
type RevertLoadingCommandHandler struct {
	uowFactory LoadingUoWFactory
}

// NewRevertLoadingCommandHandler creates a handler for revert operations.
func NewRevertLoadingCommandHandler(uowFactory LoadingUoWFactory) RevertLoadingCommandHandler {
	return RevertLoadingCommandHandler{uowFactory: uowFactory}
}

// Handle transitions the loading Approved -> Waiting.
// The original approval timestamp is kept; timestamps are never cleared.
func (h RevertLoadingCommandHandler) Handle(ctx context.Context, command RevertLoadingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LoadingRepository()
	aggregate, err := repo.Get(ctx, command.loadingID)
	if err != nil {
		return err
	}

	if err = aggregate.RevertToWaiting(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

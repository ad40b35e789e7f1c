package commands

import (
	"context"
	"time"
)

// ApproveLoadingCommandHandler processes approval of waiting loadings.
type ApproveLoadingCommandHandler struct {
	uowFactory LoadingUoWFactory
}

// NewApproveLoadingCommandHandler creates a handler for approval operations.
func NewApproveLoadingCommandHandler(uowFactory LoadingUoWFactory) ApproveLoadingCommandHandler {
	return ApproveLoadingCommandHandler{uowFactory: uowFactory}
}

// Handle transitions the loading Waiting -> Approved and stamps the approval time.
func (h ApproveLoadingCommandHandler) Handle(ctx context.Context, command ApproveLoadingCommand) error {
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

	if err = aggregate.Approve(time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

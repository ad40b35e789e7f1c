package commands

import (
	"context"
	"time"

	"dockflow/internal/core/domain/services"
)

// CancelLoadingCommandHandler processes cancellation of active loadings.
type CancelLoadingCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.DockAllocator
}

// NewCancelLoadingCommandHandler creates a handler for cancellation operations.
func NewCancelLoadingCommandHandler(uowFactory UoWFactory, allocator services.DockAllocator) CancelLoadingCommandHandler {
	return CancelLoadingCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle cancels the loading from any non-terminal status, stamps the
// cancellation time and frees its dock if one was held.
func (h CancelLoadingCommandHandler) Handle(ctx context.Context, command CancelLoadingCommand) error {
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

	loadingRepo := uow.LoadingRepository()
	dockRepo := uow.DockRepository()

	aggregate, err := loadingRepo.Get(ctx, command.loadingID)
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(time.Now()); err != nil {
		return err
	}

	docks, err := dockRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if freed := h.allocator.Release(aggregate.ID(), docks); freed != nil {
		if err = dockRepo.Update(ctx, freed); err != nil {
			return err
		}
	}

	if err = loadingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

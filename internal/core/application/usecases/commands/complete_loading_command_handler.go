package commands

import (
	"context"
	"time"

	"dockflow/internal/core/domain/services"
)

// CompleteLoadingCommandHandler processes completion of in-progress loadings.
type CompleteLoadingCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.DockAllocator
}

// NewCompleteLoadingCommandHandler creates a handler for completion operations.
func NewCompleteLoadingCommandHandler(uowFactory UoWFactory, allocator services.DockAllocator) CompleteLoadingCommandHandler {
	return CompleteLoadingCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle transitions the loading InProgress -> Completed, stamps the completion
// time and frees the dock.
func (h CompleteLoadingCommandHandler) Handle(ctx context.Context, command CompleteLoadingCommand) error {
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

	if err = aggregate.Complete(time.Now()); err != nil {
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

package commands

import (
	"context"
	"time"

	"dockflow/internal/core/domain/services"
)

// PauseLoadingCommandHandler processes suspension of in-progress loadings.
type PauseLoadingCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.DockAllocator
}

// NewPauseLoadingCommandHandler creates a handler for pause operations.
func NewPauseLoadingCommandHandler(uowFactory UoWFactory, allocator services.DockAllocator) PauseLoadingCommandHandler {
	return PauseLoadingCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle transitions the loading InProgress -> Approved and frees its dock.
// Scan progress survives; the loading can be started again on any dock.
func (h PauseLoadingCommandHandler) Handle(ctx context.Context, command PauseLoadingCommand) error {
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

	if err = aggregate.Pause(time.Now()); err != nil {
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

package commands

import (
	"context"
)

// ResetEngineCommandHandler wipes all engine state.
type ResetEngineCommandHandler struct {
	uowFactory UoWFactory
}

// NewResetEngineCommandHandler creates a handler for engine resets.
func NewResetEngineCommandHandler(uowFactory UoWFactory) ResetEngineCommandHandler {
	return ResetEngineCommandHandler{uowFactory: uowFactory}
}

// Handle removes every loading, clears the archive and frees every dock,
// all inside one exclusive section.
func (h ResetEngineCommandHandler) Handle(ctx context.Context, command ResetEngineCommand) error {
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

	if err := uow.LoadingRepository().RemoveAll(ctx); err != nil {
		return err
	}

	dockRepo := uow.DockRepository()
	docks, err := dockRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, d := range docks {
		if !d.Occupied() {
			continue
		}
		d.Free()
		if err = dockRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"time"

	"dockflow/internal/core/domain/model/loading"
)

// ReleaseAllDocksCommandHandler frees every dock in the pool.
type ReleaseAllDocksCommandHandler struct {
	uowFactory UoWFactory
}

// NewReleaseAllDocksCommandHandler creates a handler for bulk release.
func NewReleaseAllDocksCommandHandler(uowFactory UoWFactory) ReleaseAllDocksCommandHandler {
	return ReleaseAllDocksCommandHandler{uowFactory: uowFactory}
}

// Handle frees all docks and returns how many were occupied. In-progress
// loadings are paused first, so no loading is left in progress without a dock.
func (h ReleaseAllDocksCommandHandler) Handle(ctx context.Context, command ReleaseAllDocksCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadingRepo := uow.LoadingRepository()
	dockRepo := uow.DockRepository()

	now := time.Now()
	inProgress, err := loadingRepo.GetAllInStatus(ctx, loading.InProgress)
	if err != nil {
		return 0, err
	}
	for _, aggregate := range inProgress {
		if err = aggregate.Pause(now); err != nil {
			return 0, err
		}
		if err = loadingRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	docks, err := dockRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, d := range docks {
		if !d.Occupied() {
			continue
		}
		d.Free()
		if err = dockRepo.Update(ctx, d); err != nil {
			return 0, err
		}
		released++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return released, nil
}

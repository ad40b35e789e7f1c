package commands

import (
	"context"
	"time"

	"dockflow/internal/core/domain/services"
)

// StartLoadingResult reports the dock bound by a successful start, plus the
// conflict warning when the caller used the override affordance.
type StartLoadingResult struct {
	DockID  int
	Warning *services.AssignmentWarning
}

// StartLoadingCommandHandler orchestrates dock assignment. The allocator runs
// inside the unit of work's exclusive section, so the dock check-and-set
// cannot interleave with a concurrent start.
type StartLoadingCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.DockAllocator
}

// NewStartLoadingCommandHandler creates a handler for start operations.
func NewStartLoadingCommandHandler(uowFactory UoWFactory, allocator services.DockAllocator) StartLoadingCommandHandler {
	return StartLoadingCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle binds a dock and transitions the loading Approved -> InProgress.
func (h StartLoadingCommandHandler) Handle(
	ctx context.Context,
	command StartLoadingCommand,
) (StartLoadingResult, error) {
	if err := command.Validate(); err != nil {
		return StartLoadingResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StartLoadingResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadingRepo := uow.LoadingRepository()
	dockRepo := uow.DockRepository()

	aggregate, err := loadingRepo.Get(ctx, command.loadingID)
	if err != nil {
		return StartLoadingResult{}, err
	}

	docks, err := dockRepo.GetAll(ctx)
	if err != nil {
		return StartLoadingResult{}, err
	}

	bound, warning, err := h.allocator.Assign(
		aggregate, docks, command.requestedDockID, command.override, time.Now())
	if err != nil {
		return StartLoadingResult{}, err
	}

	if err = dockRepo.Update(ctx, bound); err != nil {
		return StartLoadingResult{}, err
	}
	if err = loadingRepo.Update(ctx, aggregate); err != nil {
		return StartLoadingResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return StartLoadingResult{}, err
	}

	return StartLoadingResult{DockID: bound.ID(), Warning: warning}, nil
}

package commands

import (
	"context"

	"dockflow/internal/core/domain/model/loading"
)

// ArchiveCompletedCommandHandler moves completed loadings to the archive.
type ArchiveCompletedCommandHandler struct {
	uowFactory LoadingUoWFactory
}

// NewArchiveCompletedCommandHandler creates a handler for archival operations.
func NewArchiveCompletedCommandHandler(uowFactory LoadingUoWFactory) ArchiveCompletedCommandHandler {
	return ArchiveCompletedCommandHandler{uowFactory: uowFactory}
}

// Handle archives every Completed loading and returns how many moved.
// Waiting, Approved, InProgress and Cancelled loadings are untouched.
func (h ArchiveCompletedCommandHandler) Handle(ctx context.Context, command ArchiveCompletedCommand) (int, error) {
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

	repo := uow.LoadingRepository()
	completed, err := repo.GetAllInStatus(ctx, loading.Completed)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range completed {
		if err = repo.Archive(ctx, aggregate.ID()); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return len(completed), nil
}

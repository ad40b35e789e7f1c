package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command, keeping concurrent
// operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the loading
// registry and the dock pool. Begin acquires the engine's exclusive section,
// so every command observes and mutates a consistent state; Commit and
// Rollback release it. Client code must explicitly manage the lifecycle.
type UnitOfWork interface {
	// Begin enters the transaction boundary.
	Begin(ctx context.Context) error

	// Commit finalizes the transaction and leaves the boundary.
	Commit(ctx context.Context) error

	// Rollback leaves the boundary without finalizing. Calling Rollback after
	// Commit is a safe no-op, which permits the deferred-rollback pattern.
	Rollback(ctx context.Context) error

	// LoadingRepository returns a LoadingRepository bound to this transaction.
	LoadingRepository() LoadingRepository

	// DockRepository returns a DockRepository bound to this transaction.
	DockRepository() DockRepository
}

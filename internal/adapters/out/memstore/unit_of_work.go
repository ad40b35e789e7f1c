package memstore

import (
	"context"
	"errors"

	"dockflow/internal/core/ports"
)

// ErrNoActiveTransaction is returned when committing a unit of work that was
// never begun.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances over a shared Store.
// Each business operation gets a fresh instance.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork ready for one command.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements the transaction boundary over the in-memory store.
// Begin acquires the store's write lock, making the whole command an exclusive
// section: concurrent commands serialize here, which is what guarantees the
// atomic dock check-and-set and the per-line scan increments.
type UnitOfWork struct {
	store  *Store
	active bool
}

// Begin enters the exclusive section. Calling Begin twice on the same
// instance is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}
	uow.store.mu.Lock()
	uow.active = true
	return nil
}

// Commit leaves the exclusive section. Aggregates are mutated in place under
// the lock, so there is nothing further to flush.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// Rollback leaves the exclusive section without finalizing. After Commit it is
// a safe no-op, permitting the deferred-rollback pattern used by handlers.
// Failed commands never reach their mutation, so there is no state to undo.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}
	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// LoadingRepository returns the loading repository bound to this transaction.
func (uow *UnitOfWork) LoadingRepository() ports.LoadingRepository {
	return &LoadingRepository{store: uow.store}
}

// DockRepository returns the dock repository bound to this transaction.
func (uow *UnitOfWork) DockRepository() ports.DockRepository {
	return &DockRepository{store: uow.store}
}

// Package commands contains the business operations that modify engine state.
// All commands follow a consistent pattern: constructor-guarded input,
// validation, a unit-of-work transaction, and atomic success or failure.
package commands

import (
	"context"

	"dockflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Narrow flavors keep handlers honest about which collections they touch.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LoadingRepoFactory provides the loading repository within a transaction.
	LoadingRepoFactory interface {
		LoadingRepository() ports.LoadingRepository
	}

	// DockRepoFactory provides the dock repository within a transaction.
	DockRepoFactory interface {
		DockRepository() ports.DockRepository
	}

	// LoadingUoW manages transactions for registry-only operations.
	LoadingUoW interface {
		TxManager
		LoadingRepoFactory
	}

	// LoadingUoWFactory creates registry-only unit of work instances.
	LoadingUoWFactory interface {
		Create() LoadingUoW
	}

	// UoW manages transactions spanning the registry and the dock pool.
	// Used by every operation that can bind or release a dock.
	UoW interface {
		TxManager
		LoadingRepoFactory
		DockRepoFactory
	}

	// UoWFactory creates cross-collection unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

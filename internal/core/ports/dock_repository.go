package ports

import (
	"context"

	"dockflow/internal/core/domain/model/dock"
	"dockflow/internal/core/domain/model/kernel"
)

// DockRepository defines the storage contract for the fixed dock pool.
// Docks are created once at initialization and only toggle between free and
// occupied afterwards.
type DockRepository interface {
	// Get retrieves a dock by its pool position.
	Get(ctx context.Context, id int) (*dock.Dock, error)

	// GetAll retrieves every dock in the pool, ordered by pool position.
	GetAll(ctx context.Context) ([]*dock.Dock, error)

	// GetByOccupant retrieves the dock bound to the given loading.
	// Returns a not-found error when no dock holds that loading.
	GetByOccupant(ctx context.Context, loadingID kernel.UUID) (*dock.Dock, error)

	// Update stores changes to a dock's occupancy state.
	Update(ctx context.Context, d *dock.Dock) error
}

// Package ports defines repository interfaces for the dock loading domain.
// These interfaces establish contracts between the domain layer and the storage
// adapter, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/core/domain/model/loading"
)

// LoadingRepository defines the storage contract for loading aggregates.
// Loadings are never deleted through normal operation; terminal loadings may be
// moved to the archive by the daily sweep.
type LoadingRepository interface {
	// Add stores a new loading aggregate. The loading must be valid and its ID
	// must not already exist.
	Add(ctx context.Context, aggregate *loading.Loading) error

	// Update stores changes to an existing loading aggregate.
	Update(ctx context.Context, aggregate *loading.Loading) error

	// Get retrieves a loading by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*loading.Loading, error)

	// GetAllInStatus retrieves all active loadings with the given status,
	// in registration order.
	GetAllInStatus(ctx context.Context, status loading.Status) ([]*loading.Loading, error)

	// Archive moves a terminal loading from the active collection to the archive.
	// Returns an error when the loading is unknown or not in a terminal status.
	Archive(ctx context.Context, id kernel.UUID) error

	// RemoveAll clears the active collection and the archive.
	// Only the explicitly confirmed reset operation uses this.
	RemoveAll(ctx context.Context) error
}

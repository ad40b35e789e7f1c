// Package queries contains the read-side operations of the engine. Query
// handlers never mutate state: they consume copy-on-read snapshots from the
// storage adapter and shape them into response DTOs.
package queries

import (
	"context"

	"dockflow/internal/core/domain/model/dock"
	"dockflow/internal/core/domain/model/loading"
)

// LoadingReader provides read access to loading snapshots.
type LoadingReader interface {
	// SnapshotLoadings returns every active loading in registration order.
	SnapshotLoadings(ctx context.Context) ([]loading.Snapshot, error)

	// SnapshotLoading returns one active loading by id.
	SnapshotLoading(ctx context.Context, id string) (loading.Snapshot, error)

	// SnapshotArchived returns every archived loading in archival order.
	SnapshotArchived(ctx context.Context) ([]loading.Snapshot, error)
}

// DockReader provides read access to dock pool snapshots.
type DockReader interface {
	// SnapshotDocks returns the whole pool ordered by dock number.
	SnapshotDocks(ctx context.Context) ([]dock.Snapshot, error)
}

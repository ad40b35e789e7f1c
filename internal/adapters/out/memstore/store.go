// Package memstore provides the in-process storage adapter for the loading
// registry and the dock pool. The engine owns no persistence: durability
// across restarts is out of scope, so the repositories behind the ports live
// in process memory.
//
// Concurrency model: a single RWMutex guards the whole store. The unit of work
// takes the write lock for the duration of each command, which makes every
// command — dock check-and-set, product-line increments, bulk destructive
// operations — an exclusive section. Read-side snapshot methods take the read
// lock and return copies, never live aggregates.
package memstore

import (
	"context"
	"sync"

	"dockflow/internal/core/domain/model/dock"
	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/pkg/errs"
)

// maxPoolSize bounds configuration mistakes; the pool is physical.
const maxPoolSize = 100

// Store holds the canonical collections: active loadings in registration order,
// archived loadings, and the fixed dock pool.
type Store struct {
	mu sync.RWMutex

	// loadings indexes active aggregates by UUID string
	loadings map[string]*loading.Loading

	// order keeps registration order for deterministic listings
	order []string

	// archive holds terminal loadings moved out by the daily sweep
	archive []*loading.Loading

	// docks is the fixed pool, ordered by pool position
	docks []*dock.Dock
}

// NewStore creates a store with an initialized dock pool of the given size.
func NewStore(dockCount int) (*Store, error) {
	if dockCount < 1 || dockCount > maxPoolSize {
		return nil, errs.NewValueIsOutOfRangeError("dockCount", dockCount, 1, maxPoolSize)
	}

	docks := make([]*dock.Dock, 0, dockCount)
	for i := 1; i <= dockCount; i++ {
		d, err := dock.NewDock(i)
		if err != nil {
			return nil, err
		}
		docks = append(docks, d)
	}

	return &Store{
		loadings: make(map[string]*loading.Loading),
		docks:    docks,
	}, nil
}

// SnapshotLoadings returns copies of all active loadings in registration order.
func (s *Store) SnapshotLoadings(_ context.Context) ([]loading.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshots := make([]loading.Snapshot, 0, len(s.order))
	for _, id := range s.order {
		snapshots = append(snapshots, s.loadings[id].Snapshot())
	}
	return snapshots, nil
}

// SnapshotArchived returns copies of all archived loadings in archival order.
func (s *Store) SnapshotArchived(_ context.Context) ([]loading.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshots := make([]loading.Snapshot, 0, len(s.archive))
	for _, l := range s.archive {
		snapshots = append(snapshots, l.Snapshot())
	}
	return snapshots, nil
}

// SnapshotLoading returns a copy of one active loading.
func (s *Store) SnapshotLoading(_ context.Context, id string) (loading.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.loadings[id]
	if !ok {
		return loading.Snapshot{}, errs.NewObjectNotFoundError("loading", id)
	}
	return l.Snapshot(), nil
}

// SnapshotDocks returns copies of the whole dock pool in pool-position order.
func (s *Store) SnapshotDocks(_ context.Context) ([]dock.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshots := make([]dock.Snapshot, 0, len(s.docks))
	for _, d := range s.docks {
		snapshots = append(snapshots, d.Snapshot())
	}
	return snapshots, nil
}

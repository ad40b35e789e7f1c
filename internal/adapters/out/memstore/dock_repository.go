package memstore

import (
	"context"

	"dockflow/internal/core/domain/model/dock"
	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/pkg/errs"
)

// DockRepository implements ports.DockRepository over the Store's fixed pool.
// Instances are only reachable through a begun UnitOfWork, which holds the
// store's write lock; the methods therefore do not lock themselves.
type DockRepository struct {
	store *Store
}

// Get retrieves a dock by pool position.
func (r *DockRepository) Get(_ context.Context, id int) (*dock.Dock, error) {
	for _, d := range r.store.docks {
		if d.ID() == id {
			return d, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("dock", id)
}

// GetAll retrieves the whole pool in pool-position order.
func (r *DockRepository) GetAll(_ context.Context) ([]*dock.Dock, error) {
	docks := make([]*dock.Dock, len(r.store.docks))
	copy(docks, r.store.docks)
	return docks, nil
}

// GetByOccupant retrieves the dock currently bound to the given loading.
func (r *DockRepository) GetByOccupant(_ context.Context, loadingID kernel.UUID) (*dock.Dock, error) {
	if err := loadingID.Validate(); err != nil {
		return nil, err
	}

	for _, d := range r.store.docks {
		if occupant := d.Occupant(); occupant != nil && occupant.IsEqual(loadingID) {
			return d, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("dock by occupant", loadingID.String())
}

// Update validates the dock belongs to the pool. The pool holds the live
// entities, so occupancy changes made under the unit of work are already
// visible; Update keeps the repository contract explicit.
func (r *DockRepository) Update(_ context.Context, d *dock.Dock) error {
	if err := d.Validate(); err != nil {
		return err
	}

	for _, pooled := range r.store.docks {
		if pooled.ID() == d.ID() {
			return nil
		}
	}
	return errs.NewObjectNotFoundError("dock", d.ID())
}

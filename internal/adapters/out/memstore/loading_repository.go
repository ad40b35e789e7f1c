package memstore

import (
	"context"

	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/pkg/errs"
)

// LoadingRepository implements ports.LoadingRepository over the Store.
// Instances are only reachable through a begun UnitOfWork, which holds the
// store's write lock; the methods therefore do not lock themselves.
type LoadingRepository struct {
	store *Store
}

// Add stores a new loading aggregate.
func (r *LoadingRepository) Add(_ context.Context, aggregate *loading.Loading) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().String()
	if _, exists := r.store.loadings[id]; exists {
		return errs.NewValueIsInvalidErrorWithCause("loading",
			errs.NewObjectNotFoundError("duplicate loading id", id))
	}

	r.store.loadings[id] = aggregate
	r.store.order = append(r.store.order, id)
	return nil
}

// Update stores changes to an existing loading aggregate.
func (r *LoadingRepository) Update(_ context.Context, aggregate *loading.Loading) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().String()
	if _, exists := r.store.loadings[id]; !exists {
		return errs.NewObjectNotFoundError("loading", id)
	}

	r.store.loadings[id] = aggregate
	return nil
}

// Get retrieves a loading by its identifier.
func (r *LoadingRepository) Get(_ context.Context, id kernel.UUID) (*loading.Loading, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	l, ok := r.store.loadings[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("loading", id.String())
	}
	return l, nil
}

// GetAllInStatus retrieves active loadings with the given status in registration order.
func (r *LoadingRepository) GetAllInStatus(_ context.Context, status loading.Status) ([]*loading.Loading, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	matched := make([]*loading.Loading, 0)
	for _, id := range r.store.order {
		if l := r.store.loadings[id]; l.Status() == status {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

// Archive moves a terminal loading from the active collection to the archive.
func (r *LoadingRepository) Archive(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	key := id.String()
	l, ok := r.store.loadings[key]
	if !ok {
		return errs.NewObjectNotFoundError("loading", key)
	}
	if !l.Status().IsTerminal() {
		return errs.NewValueIsInvalidError("only terminal loadings can be archived")
	}

	delete(r.store.loadings, key)
	for i, orderedID := range r.store.order {
		if orderedID == key {
			r.store.order = append(r.store.order[:i], r.store.order[i+1:]...)
			break
		}
	}
	r.store.archive = append(r.store.archive, l)
	return nil
}

// RemoveAll clears the active collection and the archive.
func (r *LoadingRepository) RemoveAll(_ context.Context) error {
	r.store.loadings = make(map[string]*loading.Loading)
	r.store.order = nil
	r.store.archive = nil
	return nil
}

// Package dock contains the Dock entity, one member of the fixed loading-bay pool.
package dock

import (
	"time"

	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/pkg/errs"
	"dockflow/internal/pkg/guard"
)

// DefaultPoolSize is the number of docks created when no explicit size is configured.
const DefaultPoolSize = 10

// Domain errors for dock operations.
var (
	// ErrDockIsNotConstructed is returned when using a Dock not created via NewDock.
	ErrDockIsNotConstructed = errs.NewValueIsRequiredError("Dock must be created via NewDock constructor")
	// ErrDockIsFree is returned when querying occupation details of a free dock.
	ErrDockIsFree = errs.NewValueIsInvalidError("dock is not occupied")
)

// Dock represents a physical loading bay from the fixed pool.
//
// A dock is either free or bound to exactly one loading. Binding records the
// occupant and the time the occupation started; freeing clears both. Docks are
// created once at pool initialization and never destroyed.
type Dock struct {
	// id is the dock's position in the pool, starting at 1
	id int

	// occupantLoadingID is the loading currently bound to this dock, nil when free
	occupantLoadingID *kernel.UUID

	// occupiedSince records when the current occupation started, nil when free
	occupiedSince *time.Time

	guard guard.ConstructorGuard
}

// NewDock creates a free dock with the given pool position (must be >= 1).
func NewDock(id int) (*Dock, error) {
	if id < 1 {
		return nil, errs.NewValueIsInvalidError("dock id must be positive")
	}
	return &Dock{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the dock was created via NewDock.
func (d *Dock) Validate() error {
	if d == nil {
		return ErrDockIsNotConstructed
	}
	return d.guard.Validate(ErrDockIsNotConstructed)
}

// ID returns the dock's pool position.
func (d *Dock) ID() int {
	return d.id
}

// Occupied reports whether a loading is currently bound to this dock.
func (d *Dock) Occupied() bool {
	return d.occupantLoadingID != nil
}

// Occupant returns the bound loading's ID, or nil when the dock is free.
func (d *Dock) Occupant() *kernel.UUID {
	if d.occupantLoadingID == nil {
		return nil
	}
	id := *d.occupantLoadingID
	return &id
}

// OccupiedSince returns the start of the current occupation, or nil when free.
func (d *Dock) OccupiedSince() *time.Time {
	if d.occupiedSince == nil {
		return nil
	}
	ts := *d.occupiedSince
	return &ts
}

// Bind occupies the dock for the given loading. The check-and-set is a single
// operation: callers must hold the pool's exclusive section so concurrent binds
// of the same dock cannot both succeed.
func (d *Dock) Bind(loadingID kernel.UUID, at time.Time) error {
	if err := loadingID.Validate(); err != nil {
		return err
	}
	if d.occupantLoadingID != nil {
		return errs.NewDockConflictError(d.id, d.occupantLoadingID.String())
	}
	d.occupantLoadingID = &loadingID
	d.occupiedSince = &at
	return nil
}

// Rebind replaces the current occupant without freeing first. Used only by the
// explicit conflict-override path; the displaced loading's own bookkeeping is
// left untouched.
func (d *Dock) Rebind(loadingID kernel.UUID, at time.Time) error {
	if err := loadingID.Validate(); err != nil {
		return err
	}
	d.occupantLoadingID = &loadingID
	d.occupiedSince = &at
	return nil
}

// Free clears the dock's occupant. Freeing an already free dock is a no-op.
func (d *Dock) Free() {
	d.occupantLoadingID = nil
	d.occupiedSince = nil
}

// OccupationDuration returns how long the dock has been held as of now.
// Returns ErrDockIsFree when the dock is not occupied.
func (d *Dock) OccupationDuration(now time.Time) (time.Duration, error) {
	if d.occupiedSince == nil {
		return 0, ErrDockIsFree
	}
	return d.Snapshot().OccupationDuration(now), nil
}

// IsLongOccupied reports whether the dock has been held longer than the threshold.
// A free dock is never long-occupied.
func (d *Dock) IsLongOccupied(now time.Time, threshold time.Duration) bool {
	return d.Snapshot().IsLongOccupied(now, threshold)
}

// Snapshot is an immutable view of a dock's state for read-side consumers.
type Snapshot struct {
	ID                int
	Occupied          bool
	OccupantLoadingID string
	OccupiedSince     *time.Time
}

// Snapshot returns a copy of the dock's observable state.
func (d *Dock) Snapshot() Snapshot {
	s := Snapshot{
		ID:       d.id,
		Occupied: d.occupantLoadingID != nil,
	}
	if d.occupantLoadingID != nil {
		s.OccupantLoadingID = d.occupantLoadingID.String()
	}
	if d.occupiedSince != nil {
		ts := *d.occupiedSince
		s.OccupiedSince = &ts
	}
	return s
}

// OccupationDuration returns how long the dock has been held as of now, or
// zero for a free dock.
func (s Snapshot) OccupationDuration(now time.Time) time.Duration {
	if !s.Occupied || s.OccupiedSince == nil {
		return 0
	}
	return now.Sub(*s.OccupiedSince)
}

// IsLongOccupied reports whether the dock has been held longer than the
// threshold. A dock held for exactly the threshold is not yet long-occupied;
// a free dock never is. Entity and read-side checks share this rule.
func (s Snapshot) IsLongOccupied(now time.Time, threshold time.Duration) bool {
	return s.Occupied && s.OccupationDuration(now) > threshold
}

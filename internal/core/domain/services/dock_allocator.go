package services

import (
	"log/slog"
	"sort"
	"time"

	"dockflow/internal/core/domain/model/dock"
	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/pkg/errs"
)

// AssignmentWarning reports a conflict override: the dock's pool record was
// reassigned while the displaced loading still carries the dock in its own
// bookkeeping until its next pause, completion or cancellation.
type AssignmentWarning struct {
	DockID             int
	DisplacedLoadingID string
}

// DockAllocator is the domain service that binds a loading to a dock under the
// single-occupancy rule and drives the Approved -> InProgress transition.
//
// Assignment rules:
//   - A requested free dock is bound directly.
//   - A requested occupied dock fails with a dock-conflict error, unless the
//     caller overrides: then the pool record is reassigned, the prior occupant
//     is left untouched, and the conflict is logged and reported as a warning.
//   - With no requested dock, the lowest-numbered free dock is bound, or the
//     operation fails when none is free.
//
// The allocator mutates the dock and the loading together; callers run it
// inside the unit of work's exclusive section so the check-and-set on the dock
// cannot interleave with a concurrent assignment.
type DockAllocator struct {
	logger *slog.Logger
}

// NewDockAllocator creates a DockAllocator that reports conflict-override
// events through the given logger.
func NewDockAllocator(logger *slog.Logger) DockAllocator {
	return DockAllocator{
		logger: logger.With("component", "dock_allocator"),
	}
}

// Assign binds the loading to a dock and transitions it to InProgress.
// requestedDockID selects a specific dock; nil picks the lowest-numbered free
// one. The returned warning is non-nil only on a conflict override.
func (a DockAllocator) Assign(
	l *loading.Loading,
	docks []*dock.Dock,
	requestedDockID *int,
	override bool,
	now time.Time,
) (*dock.Dock, *AssignmentWarning, error) {
	if err := l.Validate(); err != nil {
		return nil, nil, err
	}

	// Reject illegal transitions before touching the pool, so a failed
	// assignment never leaves a dock bound.
	if _, err := l.Status().Start(); err != nil {
		return nil, nil, err
	}

	if requestedDockID != nil {
		return a.assignRequested(l, docks, *requestedDockID, override, now)
	}
	return a.assignLowestFree(l, docks, now)
}

func (a DockAllocator) assignRequested(
	l *loading.Loading,
	docks []*dock.Dock,
	dockID int,
	override bool,
	now time.Time,
) (*dock.Dock, *AssignmentWarning, error) {
	target := findDock(docks, dockID)
	if target == nil {
		return nil, nil, errs.NewObjectNotFoundError("dock", dockID)
	}

	if !target.Occupied() {
		if err := target.Bind(l.ID(), now); err != nil {
			return nil, nil, err
		}
		return target, nil, a.start(l, target, now)
	}

	displaced := target.Occupant()
	if !override {
		return nil, nil, errs.NewDockConflictError(dockID, displaced.String())
	}

	// Manual override: reassign the pool record. The displaced loading keeps
	// its dock reference until its own next transition, a transient
	// inconsistency kept for compatibility with the legacy behavior.
	if err := target.Rebind(l.ID(), now); err != nil {
		return nil, nil, err
	}
	warning := &AssignmentWarning{
		DockID:             dockID,
		DisplacedLoadingID: displaced.String(),
	}
	a.logger.Warn("dock conflict override",
		"dock_id", dockID,
		"winner_loading_id", l.ID().String(),
		"displaced_loading_id", warning.DisplacedLoadingID,
	)
	return target, warning, a.start(l, target, now)
}

func (a DockAllocator) assignLowestFree(
	l *loading.Loading,
	docks []*dock.Dock,
	now time.Time,
) (*dock.Dock, *AssignmentWarning, error) {
	free := make([]*dock.Dock, 0, len(docks))
	for _, d := range docks {
		if !d.Occupied() {
			free = append(free, d)
		}
	}
	if len(free) == 0 {
		return nil, nil, errs.NewNoDockAvailableError(len(docks))
	}
	sort.Slice(free, func(i, j int) bool { return free[i].ID() < free[j].ID() })

	target := free[0]
	if err := target.Bind(l.ID(), now); err != nil {
		return nil, nil, err
	}
	return target, nil, a.start(l, target, now)
}

// start drives the loading's transition after the dock is bound. The transition
// was pre-validated, so a failure here would indicate a bug; the dock is freed
// again to keep the pool consistent regardless.
func (a DockAllocator) start(l *loading.Loading, d *dock.Dock, now time.Time) error {
	if err := l.Start(d.ID(), now); err != nil {
		d.Free()
		return err
	}
	return nil
}

// Release frees the dock whose occupant matches the given loading.
// Returns the freed dock, or nil when no dock held the loading; releasing a
// loading that holds no dock is an idempotent no-op.
func (a DockAllocator) Release(loadingID kernel.UUID, docks []*dock.Dock) *dock.Dock {
	for _, d := range docks {
		occupant := d.Occupant()
		if occupant != nil && occupant.IsEqual(loadingID) {
			d.Free()
			return d
		}
	}
	return nil
}

// LongOccupied returns the docks held longer than the threshold as of now,
// ordered by pool position. It operates on pool snapshots so the read side
// shares the dock's own threshold rule.
func (a DockAllocator) LongOccupied(docks []dock.Snapshot, now time.Time, threshold time.Duration) []dock.Snapshot {
	long := make([]dock.Snapshot, 0)
	for _, d := range docks {
		if d.IsLongOccupied(now, threshold) {
			long = append(long, d)
		}
	}
	sort.Slice(long, func(i, j int) bool { return long[i].ID < long[j].ID })
	return long
}

func findDock(docks []*dock.Dock, id int) *dock.Dock {
	for _, d := range docks {
		if d.ID() == id {
			return d
		}
	}
	return nil
}

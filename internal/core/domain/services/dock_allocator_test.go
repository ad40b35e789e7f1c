package services_test

import (
	"log/slog"
	"testing"
	"time"

	"dockflow/internal/core/domain/model/dock"
	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/core/domain/services"
	"dockflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAllocator() services.DockAllocator {
	return services.NewDockAllocator(slog.Default())
}

func newPool(t *testing.T, size int) []*dock.Dock {
	t.Helper()
	docks := make([]*dock.Dock, 0, size)
	for i := 1; i <= size; i++ {
		d, err := dock.NewDock(i)
		require.NoError(t, err)
		docks = append(docks, d)
	}
	return docks
}

func approvedLoading(t *testing.T) *loading.Loading {
	t.Helper()
	l, err := loading.NewManualLoading(
		kernel.NewUUID(), "A", "ABC1234", "SP-CENTRO", loading.PriorityNormal, time.Now())
	require.NoError(t, err)
	require.NoError(t, l.Approve(time.Now()))
	return l
}

func TestDockAllocator_Assign(t *testing.T) {
	now := time.Now()

	t.Run("binds lowest numbered free dock", func(t *testing.T) {
		docks := newPool(t, 10)
		require.NoError(t, docks[0].Bind(kernel.NewUUID(), now))
		l := approvedLoading(t)

		bound, warning, err := newAllocator().Assign(l, docks, nil, false, now)

		require.NoError(t, err)
		assert.Nil(t, warning)
		assert.Equal(t, 2, bound.ID())
		assert.Equal(t, loading.InProgress, l.Status())
		require.NotNil(t, l.DockID())
		assert.Equal(t, 2, *l.DockID())
		require.NotNil(t, l.StartedAt())
		assert.True(t, bound.Occupant().IsEqual(l.ID()))
	})

	t.Run("first assignment with all docks free picks dock 1", func(t *testing.T) {
		docks := newPool(t, 10)
		l := approvedLoading(t)

		bound, _, err := newAllocator().Assign(l, docks, nil, false, now)

		require.NoError(t, err)
		assert.Equal(t, 1, bound.ID())
	})

	t.Run("fails when the pool is exhausted", func(t *testing.T) {
		docks := newPool(t, 2)
		for _, d := range docks {
			require.NoError(t, d.Bind(kernel.NewUUID(), now))
		}
		l := approvedLoading(t)

		_, _, err := newAllocator().Assign(l, docks, nil, false, now)

		require.ErrorIs(t, err, errs.ErrNoDockAvailable)
		assert.Equal(t, loading.Approved, l.Status())
	})

	t.Run("binds requested free dock", func(t *testing.T) {
		docks := newPool(t, 10)
		l := approvedLoading(t)
		requested := 7

		bound, warning, err := newAllocator().Assign(l, docks, &requested, false, now)

		require.NoError(t, err)
		assert.Nil(t, warning)
		assert.Equal(t, 7, bound.ID())
	})

	t.Run("requested occupied dock conflicts without override", func(t *testing.T) {
		docks := newPool(t, 10)
		holder := approvedLoading(t)
		requested := 1
		_, _, err := newAllocator().Assign(holder, docks, &requested, false, now)
		require.NoError(t, err)

		l := approvedLoading(t)
		_, _, err = newAllocator().Assign(l, docks, &requested, false, now)

		require.ErrorIs(t, err, errs.ErrDockConflict)
		assert.Equal(t, loading.Approved, l.Status(), "loading stays approved")
		assert.True(t, docks[0].Occupant().IsEqual(holder.ID()), "occupant unchanged")
	})

	t.Run("override reassigns pool record and reports displaced loading", func(t *testing.T) {
		docks := newPool(t, 10)
		holder := approvedLoading(t)
		requested := 1
		_, _, err := newAllocator().Assign(holder, docks, &requested, false, now)
		require.NoError(t, err)

		l := approvedLoading(t)
		bound, warning, err := newAllocator().Assign(l, docks, &requested, true, now)

		require.NoError(t, err)
		assert.Equal(t, 1, bound.ID())
		require.NotNil(t, warning)
		assert.Equal(t, 1, warning.DockID)
		assert.Equal(t, holder.ID().String(), warning.DisplacedLoadingID)
		assert.True(t, bound.Occupant().IsEqual(l.ID()))
		// displaced loading keeps its own dock reference, by legacy compatibility
		assert.Equal(t, loading.InProgress, holder.Status())
		require.NotNil(t, holder.DockID())
		assert.Equal(t, 1, *holder.DockID())
	})

	t.Run("unknown requested dock", func(t *testing.T) {
		docks := newPool(t, 2)
		l := approvedLoading(t)
		requested := 99

		_, _, err := newAllocator().Assign(l, docks, &requested, false, now)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("rejects non-approved loading before touching the pool", func(t *testing.T) {
		docks := newPool(t, 2)
		l, err := loading.NewManualLoading(
			kernel.NewUUID(), "A", "ABC1234", "SP-CENTRO", loading.PriorityNormal, now)
		require.NoError(t, err)

		_, _, err = newAllocator().Assign(l, docks, nil, false, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.False(t, docks[0].Occupied())
	})
}

func TestDockAllocator_Release(t *testing.T) {
	now := time.Now()
	docks := newPool(t, 3)
	l := approvedLoading(t)
	_, _, err := newAllocator().Assign(l, docks, nil, false, now)
	require.NoError(t, err)

	t.Run("frees the held dock", func(t *testing.T) {
		freed := newAllocator().Release(l.ID(), docks)

		require.NotNil(t, freed)
		assert.Equal(t, 1, freed.ID())
		assert.False(t, freed.Occupied())
	})

	t.Run("no-op when the loading holds no dock", func(t *testing.T) {
		freed := newAllocator().Release(l.ID(), docks)

		assert.Nil(t, freed)
	})
}

func TestDockAllocator_LongOccupied(t *testing.T) {
	now := time.Now()
	threshold := 4 * time.Hour
	docks := newPool(t, 5)
	require.NoError(t, docks[2].Bind(kernel.NewUUID(), now.Add(-6*time.Hour)))
	require.NoError(t, docks[0].Bind(kernel.NewUUID(), now.Add(-5*time.Hour)))
	require.NoError(t, docks[1].Bind(kernel.NewUUID(), now.Add(-time.Hour)))
	// held for exactly the threshold, not yet long-occupied
	require.NoError(t, docks[3].Bind(kernel.NewUUID(), now.Add(-threshold)))

	pool := make([]dock.Snapshot, 0, len(docks))
	for _, d := range docks {
		pool = append(pool, d.Snapshot())
	}

	long := newAllocator().LongOccupied(pool, now, threshold)

	require.Len(t, long, 2)
	assert.Equal(t, 1, long[0].ID)
	assert.Equal(t, 3, long[1].ID)
}

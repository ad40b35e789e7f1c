package queries_test

import (
	"context"
	"testing"
	"time"

	"dockflow/internal/core/application/usecases/queries"
	"dockflow/internal/core/domain/model/dock"
	"dockflow/internal/core/domain/model/loading"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsQueryHandler_Handle_Counts(t *testing.T) {
	ctx := context.Background()
	approved := importedLoading(t, "INV-1", 1)
	require.NoError(t, approved.Approve(time.Now()))

	reader := &fakeLoadingReader{
		active: []loading.Snapshot{
			manualSnapshot(t, "R. Alvarez", "KA-1234-BC", "North loop"),
			manualSnapshot(t, "J. Chen", "KA-5678-DE", "South loop"),
			approved.Snapshot(),
			completedLoading(t, "INV-2", time.Now()),
		},
		archived: []loading.Snapshot{
			completedLoading(t, "INV-3", time.Now()),
		},
	}
	docks := &fakeDockReader{docks: []dock.Snapshot{{ID: 1}, {ID: 2}}}

	handler := queries.NewGetStatsQueryHandler(reader, docks, testAllocator(), 2*time.Hour)
	response, err := handler.Handle(ctx, queries.NewGetStatsQuery())

	require.NoError(t, err)
	assert.Equal(t, 2, response.Waiting)
	assert.Equal(t, 1, response.Approved)
	assert.Equal(t, 0, response.InProgress)
	assert.Equal(t, 1, response.Completed)
	// Today's completions span the active registry and the archive.
	assert.Equal(t, 2, response.CompletedToday)
	assert.Equal(t, 2, response.DocksTotal)
	assert.Equal(t, 0, response.DocksOccupied)
	assert.Equal(t, 0, response.UtilizationPercent)
}

func TestGetStatsQueryHandler_Handle_CompletedYesterdayExcluded(t *testing.T) {
	ctx := context.Background()
	yesterday := time.Now().Add(-26 * time.Hour)
	reader := &fakeLoadingReader{
		archived: []loading.Snapshot{completedLoading(t, "INV-1", yesterday)},
	}

	handler := queries.NewGetStatsQueryHandler(reader, &fakeDockReader{}, testAllocator(), 2*time.Hour)
	response, err := handler.Handle(ctx, queries.NewGetStatsQuery())

	require.NoError(t, err)
	assert.Equal(t, 0, response.CompletedToday)
}

func TestGetStatsQueryHandler_Handle_UtilizationAndLongOccupied(t *testing.T) {
	ctx := context.Background()
	recent := time.Now().Add(-10 * time.Minute)
	stale := time.Now().Add(-3 * time.Hour)
	docks := &fakeDockReader{docks: []dock.Snapshot{
		{ID: 1, Occupied: true, OccupantLoadingID: "a", OccupiedSince: &recent},
		{ID: 2, Occupied: true, OccupantLoadingID: "b", OccupiedSince: &stale},
		{ID: 3},
	}}

	handler := queries.NewGetStatsQueryHandler(&fakeLoadingReader{}, docks, testAllocator(), 2*time.Hour)
	response, err := handler.Handle(ctx, queries.NewGetStatsQuery())

	require.NoError(t, err)
	assert.Equal(t, 2, response.DocksOccupied)
	assert.Equal(t, 67, response.UtilizationPercent)
	require.Len(t, response.LongOccupied, 1)
	assert.Equal(t, 2, response.LongOccupied[0].DockID)
	assert.Equal(t, "b", response.LongOccupied[0].LoadingID)
	assert.GreaterOrEqual(t, response.LongOccupied[0].HeldFor, 3*time.Hour)
}

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dockflow/internal/core/domain/model/dock"
	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/core/domain/services"
	"dockflow/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func testAllocator() services.DockAllocator {
	return services.NewDockAllocator(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeLoadingReader struct {
	active   []loading.Snapshot
	archived []loading.Snapshot
}

func (f *fakeLoadingReader) SnapshotLoadings(_ context.Context) ([]loading.Snapshot, error) {
	return f.active, nil
}

func (f *fakeLoadingReader) SnapshotArchived(_ context.Context) ([]loading.Snapshot, error) {
	return f.archived, nil
}

func (f *fakeLoadingReader) SnapshotLoading(_ context.Context, id string) (loading.Snapshot, error) {
	for _, s := range append(f.active, f.archived...) {
		if s.ID == id {
			return s, nil
		}
	}
	return loading.Snapshot{}, errs.NewObjectNotFoundError("loading", id)
}

type fakeDockReader struct {
	docks []dock.Snapshot
}

func (f *fakeDockReader) SnapshotDocks(_ context.Context) ([]dock.Snapshot, error) {
	return f.docks, nil
}

func manualSnapshot(t *testing.T, driver, vehicle, route string) loading.Snapshot {
	t.Helper()
	l, err := loading.NewManualLoading(
		kernel.NewUUID(), driver, vehicle, route, loading.PriorityNormal, time.Now())
	require.NoError(t, err)
	return l.Snapshot()
}

func importedLoading(t *testing.T, invoiceNumber string, expectedQty int) *loading.Loading {
	t.Helper()
	line, err := loading.NewProductLine("SKU-100", "Bottled water 0.5L", "pcs", expectedQty)
	require.NoError(t, err)
	l, err := loading.NewImportedLoading(
		kernel.NewUUID(), invoiceNumber, "Acme Foods", "12 Dockside Rd", "East route",
		loading.PriorityHigh, []*loading.ProductLine{line}, time.Now())
	require.NoError(t, err)
	return l
}

func completedLoading(t *testing.T, invoiceNumber string, at time.Time) loading.Snapshot {
	t.Helper()
	l := importedLoading(t, invoiceNumber, 1)
	require.NoError(t, l.Approve(at))
	require.NoError(t, l.Start(1, at))
	require.NoError(t, l.Complete(at))
	return l.Snapshot()
}

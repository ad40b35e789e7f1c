package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dockflow/internal/core/application/usecases/commands"
	"dockflow/internal/core/domain/model/dock"
	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/core/domain/services"
	"dockflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLoadingRepository struct{ mock.Mock }

func (m *MockLoadingRepository) Add(ctx context.Context, aggregate *loading.Loading) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLoadingRepository) Update(ctx context.Context, aggregate *loading.Loading) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLoadingRepository) Get(ctx context.Context, id kernel.UUID) (*loading.Loading, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loading.Loading), args.Error(1)
}

func (m *MockLoadingRepository) GetAllInStatus(
	ctx context.Context,
	status loading.Status,
) ([]*loading.Loading, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*loading.Loading), args.Error(1)
}

func (m *MockLoadingRepository) Archive(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLoadingRepository) RemoveAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockDockRepository struct{ mock.Mock }

func (m *MockDockRepository) Get(ctx context.Context, id int) (*dock.Dock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dock.Dock), args.Error(1)
}

func (m *MockDockRepository) GetAll(ctx context.Context) ([]*dock.Dock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dock.Dock), args.Error(1)
}

func (m *MockDockRepository) GetByOccupant(ctx context.Context, loadingID kernel.UUID) (*dock.Dock, error) {
	args := m.Called(ctx, loadingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dock.Dock), args.Error(1)
}

func (m *MockDockRepository) Update(ctx context.Context, d *dock.Dock) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LoadingRepository() ports.LoadingRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadingRepository)
}

func (m *MockUoW) DockRepository() ports.DockRepository {
	args := m.Called()
	return args.Get(0).(ports.DockRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockLoadingUoWFactory struct{ mock.Mock }

func (m *MockLoadingUoWFactory) Create() commands.LoadingUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadingUoW)
}

func testAllocator() services.DockAllocator {
	return services.NewDockAllocator(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newWaitingManual(t *testing.T) *loading.Loading {
	t.Helper()
	l, err := loading.NewManualLoading(
		kernel.NewUUID(), "R. Alvarez", "KA-1234-BC", "North loop", loading.PriorityNormal, time.Now())
	require.NoError(t, err)
	return l
}

func newApprovedManual(t *testing.T) *loading.Loading {
	t.Helper()
	l := newWaitingManual(t)
	require.NoError(t, l.Approve(time.Now()))
	return l
}

func newInProgressImported(t *testing.T, dockID int) *loading.Loading {
	t.Helper()
	line, err := loading.NewProductLine("SKU-100", "Bottled water 0.5L", "pcs", 2)
	require.NoError(t, err)
	l, err := loading.NewImportedLoading(
		kernel.NewUUID(), "INV-2031", "Acme Foods", "12 Dockside Rd", "East route",
		loading.PriorityHigh, []*loading.ProductLine{line}, time.Now())
	require.NoError(t, err)
	require.NoError(t, l.Approve(time.Now()))
	require.NoError(t, l.Start(dockID, time.Now()))
	return l
}

package memstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"dockflow/internal/adapters/out/memstore"
	"dockflow/internal/core/domain/model/kernel"
	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *memstore.Store {
	t.Helper()
	store, err := memstore.NewStore(10)
	require.NoError(t, err)
	return store
}

func newManualLoading(t *testing.T) *loading.Loading {
	t.Helper()
	l, err := loading.NewManualLoading(
		kernel.NewUUID(), "A", "ABC1234", "SP-CENTRO", loading.PriorityNormal, time.Now())
	require.NoError(t, err)
	return l
}

func TestNewStore(t *testing.T) {
	t.Run("initializes fixed dock pool", func(t *testing.T) {
		store := newStore(t)

		docks, err := store.SnapshotDocks(context.Background())

		require.NoError(t, err)
		require.Len(t, docks, 10)
		for i, d := range docks {
			assert.Equal(t, i+1, d.ID)
			assert.False(t, d.Occupied)
		}
	})

	t.Run("rejects out-of-range pool size", func(t *testing.T) {
		_, err := memstore.NewStore(0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestLoadingRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("add and get", func(t *testing.T) {
		store := newStore(t)
		uow := memstore.NewUnitOfWorkFactory(store).Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		repo := uow.LoadingRepository()
		l := newManualLoading(t)

		require.NoError(t, repo.Add(ctx, l))

		got, err := repo.Get(ctx, l.ID())
		require.NoError(t, err)
		assert.True(t, got.ID().IsEqual(l.ID()))
		require.NoError(t, uow.Commit(ctx))
	})

	t.Run("duplicate add is rejected", func(t *testing.T) {
		store := newStore(t)
		uow := memstore.NewUnitOfWorkFactory(store).Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		repo := uow.LoadingRepository()
		l := newManualLoading(t)
		require.NoError(t, repo.Add(ctx, l))

		require.ErrorIs(t, repo.Add(ctx, l), errs.ErrValueIsInvalid)
	})

	t.Run("get unknown id", func(t *testing.T) {
		store := newStore(t)
		uow := memstore.NewUnitOfWorkFactory(store).Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		_, err := uow.LoadingRepository().Get(ctx, kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("get all in status keeps registration order", func(t *testing.T) {
		store := newStore(t)
		uow := memstore.NewUnitOfWorkFactory(store).Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		repo := uow.LoadingRepository()
		first := newManualLoading(t)
		second := newManualLoading(t)
		approved := newManualLoading(t)
		require.NoError(t, approved.Approve(time.Now()))
		require.NoError(t, repo.Add(ctx, first))
		require.NoError(t, repo.Add(ctx, approved))
		require.NoError(t, repo.Add(ctx, second))

		waiting, err := repo.GetAllInStatus(ctx, loading.Waiting)

		require.NoError(t, err)
		require.Len(t, waiting, 2)
		assert.True(t, waiting[0].ID().IsEqual(first.ID()))
		assert.True(t, waiting[1].ID().IsEqual(second.ID()))
	})

	t.Run("archive moves terminal loadings only", func(t *testing.T) {
		store := newStore(t)
		uow := memstore.NewUnitOfWorkFactory(store).Create()
		require.NoError(t, uow.Begin(ctx))

		repo := uow.LoadingRepository()
		active := newManualLoading(t)
		done := newManualLoading(t)
		require.NoError(t, done.Cancel(time.Now()))
		require.NoError(t, repo.Add(ctx, active))
		require.NoError(t, repo.Add(ctx, done))

		require.ErrorIs(t, repo.Archive(ctx, active.ID()), errs.ErrValueIsInvalid)
		require.NoError(t, repo.Archive(ctx, done.ID()))
		require.NoError(t, uow.Commit(ctx))

		activeSnaps, err := store.SnapshotLoadings(ctx)
		require.NoError(t, err)
		require.Len(t, activeSnaps, 1)
		assert.Equal(t, active.ID().String(), activeSnaps[0].ID)

		archived, err := store.SnapshotArchived(ctx)
		require.NoError(t, err)
		require.Len(t, archived, 1)
		assert.Equal(t, done.ID().String(), archived[0].ID)
	})
}

func TestDockRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("get by occupant", func(t *testing.T) {
		store := newStore(t)
		uow := memstore.NewUnitOfWorkFactory(store).Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		docks := uow.DockRepository()
		loadingID := kernel.NewUUID()
		d, err := docks.Get(ctx, 3)
		require.NoError(t, err)
		require.NoError(t, d.Bind(loadingID, time.Now()))

		found, err := docks.GetByOccupant(ctx, loadingID)
		require.NoError(t, err)
		assert.Equal(t, 3, found.ID())

		_, err = docks.GetByOccupant(ctx, kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unknown dock id", func(t *testing.T) {
		store := newStore(t)
		uow := memstore.NewUnitOfWorkFactory(store).Create()
		require.NoError(t, uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		_, err := uow.DockRepository().Get(ctx, 42)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()

	t.Run("commit without begin fails", func(t *testing.T) {
		store := newStore(t)
		uow := memstore.NewUnitOfWorkFactory(store).Create()

		require.ErrorIs(t, uow.Commit(ctx), memstore.ErrNoActiveTransaction)
	})

	t.Run("rollback after commit is a no-op", func(t *testing.T) {
		store := newStore(t)
		uow := memstore.NewUnitOfWorkFactory(store).Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Commit(ctx))

		require.NoError(t, uow.Rollback(ctx))
	})

	t.Run("concurrent binds of the same dock cannot both succeed", func(t *testing.T) {
		store := newStore(t)
		factory := memstore.NewUnitOfWorkFactory(store)

		var wg sync.WaitGroup
		successes := make(chan int, 16)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				uow := factory.Create()
				require.NoError(t, uow.Begin(ctx))
				defer func() { _ = uow.Rollback(ctx) }()

				d, err := uow.DockRepository().Get(ctx, 1)
				require.NoError(t, err)
				if bindErr := d.Bind(kernel.NewUUID(), time.Now()); bindErr == nil {
					successes <- 1
				}
				require.NoError(t, uow.Commit(ctx))
			}()
		}
		wg.Wait()
		close(successes)

		total := 0
		for range successes {
			total++
		}
		assert.Equal(t, 1, total, "exactly one bind may win")
	})
}

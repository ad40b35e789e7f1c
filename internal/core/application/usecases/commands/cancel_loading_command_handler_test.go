package commands_test

import (
	"context"
	"testing"
	"time"

	"dockflow/internal/core/application/usecases/commands"
	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelLoadingCommandHandler_Handle_FromWaiting(t *testing.T) {
	ctx := context.Background()
	aggregate := newWaitingManual(t)
	docks := testDockPool(t, 1)

	cmd, err := commands.NewCancelLoadingCommand(aggregate.ID())
	require.NoError(t, err)

	loadingRepo := new(MockLoadingRepository)
	dockRepo := new(MockDockRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadingRepository").Return(loadingRepo).Once(),
		uow.On("DockRepository").Return(dockRepo).Once(),
		loadingRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		dockRepo.On("GetAll", ctx).Return(docks, nil).Once(),
		loadingRepo.On("Update", ctx, mock.AnythingOfType("*loading.Loading")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelLoadingCommandHandler(factory, testAllocator())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, loading.Cancelled, aggregate.Status())
	assert.NotNil(t, aggregate.CancelledAt())
	dockRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestCancelLoadingCommandHandler_Handle_InProgressFreesDock(t *testing.T) {
	ctx := context.Background()
	aggregate := newInProgressImported(t, 1)
	docks := testDockPool(t, 1)
	require.NoError(t, docks[0].Bind(aggregate.ID(), time.Now()))

	cmd, err := commands.NewCancelLoadingCommand(aggregate.ID())
	require.NoError(t, err)

	loadingRepo := new(MockLoadingRepository)
	dockRepo := new(MockDockRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadingRepository").Return(loadingRepo).Once(),
		uow.On("DockRepository").Return(dockRepo).Once(),
		loadingRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		dockRepo.On("GetAll", ctx).Return(docks, nil).Once(),
		dockRepo.On("Update", ctx, mock.AnythingOfType("*dock.Dock")).Return(nil).Once(),
		loadingRepo.On("Update", ctx, mock.AnythingOfType("*loading.Loading")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelLoadingCommandHandler(factory, testAllocator())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, loading.Cancelled, aggregate.Status())
	assert.Nil(t, aggregate.DockID())
	assert.False(t, docks[0].Occupied())
}

func TestCancelLoadingCommandHandler_Handle_AlreadyTerminal(t *testing.T) {
	ctx := context.Background()
	aggregate := newInProgressImported(t, 1)
	require.NoError(t, aggregate.Complete(time.Now()))

	cmd, err := commands.NewCancelLoadingCommand(aggregate.ID())
	require.NoError(t, err)

	loadingRepo := new(MockLoadingRepository)
	dockRepo := new(MockDockRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadingRepository").Return(loadingRepo).Once(),
		uow.On("DockRepository").Return(dockRepo).Once(),
		loadingRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelLoadingCommandHandler(factory, testAllocator())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, loading.Completed, aggregate.Status())
}

package commands_test

import (
	"context"
	"testing"

	"dockflow/internal/core/application/usecases/commands"
	"dockflow/internal/core/domain/model/loading"
	"dockflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRevertLoadingCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	aggregate := newApprovedManual(t)
	approvedAt := aggregate.ApprovedAt()
	cmd, err := commands.NewRevertLoadingCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockLoadingRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadingRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*loading.Loading")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRevertLoadingCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, loading.Waiting, aggregate.Status())
	// Timestamps are set once and never cleared.
	assert.Equal(t, approvedAt, aggregate.ApprovedAt())
	repo.AssertExpectations(t)
}

func TestRevertLoadingCommandHandler_Handle_NotApproved(t *testing.T) {
	ctx := context.Background()
	aggregate := newWaitingManual(t)
	cmd, err := commands.NewRevertLoadingCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockLoadingRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadingRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRevertLoadingCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, loading.Waiting, aggregate.Status())
}

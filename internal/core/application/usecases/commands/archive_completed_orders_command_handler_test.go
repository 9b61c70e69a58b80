package commands_test

import (
	"errors"
	"testing"

	"tableside/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArchiveCompletedOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewArchiveCompletedOrdersCommand()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("ArchiveCompleted", mock.Anything).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveCompletedOrdersCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestArchiveCompletedOrdersCommandHandler_Handle_NothingToArchive(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewArchiveCompletedOrdersCommand()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("ArchiveCompleted", mock.Anything).Return(int64(0), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveCompletedOrdersCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestArchiveCompletedOrdersCommandHandler_Handle_SweepErrorAborts(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewArchiveCompletedOrdersCommand()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("ArchiveCompleted", mock.Anything).Return(int64(0), errors.New("store error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveCompletedOrdersCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Zero(t, count)
	uow.AssertNotCalled(t, "Commit")
}

func TestArchiveCompletedOrdersCommand_Validate(t *testing.T) {
	t.Run("constructed command is valid", func(t *testing.T) {
		require.NoError(t, commands.NewArchiveCompletedOrdersCommand().Validate())
	})

	t.Run("zero value command fails", func(t *testing.T) {
		var cmd commands.ArchiveCompletedOrdersCommand
		require.Error(t, cmd.Validate())
	})
}

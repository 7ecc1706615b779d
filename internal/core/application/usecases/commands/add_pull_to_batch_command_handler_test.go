package commands_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/batch"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/pull"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddPullToBatchCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	targetPull, err := pull.NewPull(kernel.NewUUID(), "CUENCA", pull.SizeSmall)
	require.NoError(t, err)
	targetBatch, err := batch.NewBatch(kernel.NewUUID(), "CUENCA")
	require.NoError(t, err)

	cmd, err := commands.NewAddPullToBatchCommand(targetPull.ID(), targetBatch.ID())
	require.NoError(t, err)

	pullRepo := new(MockPullRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PullRepository").Return(pullRepo).Times(2)
	uow.On("BatchRepository").Return(batchRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	pullRepo.On("Get", mock.Anything, targetPull.ID()).Return(targetPull, nil).Once()
	batchRepo.On("Get", mock.Anything, targetBatch.ID()).Return(targetBatch, nil).Once()
	pullRepo.On("Update", mock.Anything, targetPull).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPullToBatchCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	pullRepo.AssertExpectations(t)

	require.NotNil(t, targetPull.BatchID())
	require.Equal(t, targetBatch.ID(), *targetPull.BatchID())
}

func TestAddPullToBatchCommandHandler_Handle_DestinationMismatch(t *testing.T) {
	ctx := t.Context()

	targetPull, err := pull.NewPull(kernel.NewUUID(), "CUENCA", pull.SizeSmall)
	require.NoError(t, err)
	targetBatch, err := batch.NewBatch(kernel.NewUUID(), "LOJA")
	require.NoError(t, err)

	cmd, err := commands.NewAddPullToBatchCommand(targetPull.ID(), targetBatch.ID())
	require.NoError(t, err)

	pullRepo := new(MockPullRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PullRepository").Return(pullRepo).Once()
	uow.On("BatchRepository").Return(batchRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	pullRepo.On("Get", mock.Anything, targetPull.ID()).Return(targetPull, nil).Once()
	batchRepo.On("Get", mock.Anything, targetBatch.ID()).Return(targetBatch, nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddPullToBatchCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, pull.ErrDestinationMismatch)
	require.Nil(t, targetPull.BatchID())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

package commands_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/batch"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/pull"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBatchCommandHandler_Handle_WithPulls(t *testing.T) {
	ctx := t.Context()
	batchID := kernel.NewUUID()
	pullID := kernel.NewUUID()
	agencyID := kernel.NewUUID()
	pkg := newStoredPackage(t, "G-1")

	cmd, err := commands.NewCreateBatchCommand(
		batchID, "MANTA", &agencyID, "LOT-9",
		[]commands.BatchPullSpec{
			{PullID: pullID, Size: pull.SizeLarge, PackageIDs: []kernel.UUID{pkg.ID()}},
		},
	)
	require.NoError(t, err)

	var addedBatch *batch.Batch
	var addedPull *pull.Pull

	batchRepo := new(MockBatchRepository)
	pullRepo := new(MockPullRepository)
	packageRepo := new(MockPackageRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BatchRepository").Return(batchRepo).Once()
	uow.On("PullRepository").Return(pullRepo).Once()
	uow.On("PackageRepository").Return(packageRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	batchRepo.On("Add", mock.Anything, mock.AnythingOfType("*batch.Batch")).
		Run(func(args mock.Arguments) { addedBatch = args.Get(1).(*batch.Batch) }).
		Return(nil).Once()
	pullRepo.On("Add", mock.Anything, mock.AnythingOfType("*pull.Pull")).
		Run(func(args mock.Arguments) { addedPull = args.Get(1).(*pull.Pull) }).
		Return(nil).Once()
	packageRepo.On("GetByIDs", mock.Anything, []kernel.UUID{pkg.ID()}).
		Return([]*parcel.Package{pkg}, nil).Once()
	packageRepo.On("Update", mock.Anything, pkg).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBatchCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	batchRepo.AssertExpectations(t)
	pullRepo.AssertExpectations(t)
	packageRepo.AssertExpectations(t)

	require.NotNil(t, addedBatch)
	require.Equal(t, "MANTA", addedBatch.Destiny())
	require.Equal(t, "LOT-9", addedBatch.GuideNumber())

	// The sack inherits the lot's destination, carrier, and guide.
	require.NotNil(t, addedPull)
	require.Equal(t, "MANTA", addedPull.CommonDestiny())
	require.Equal(t, "LOT-9", addedPull.GuideNumber())
	require.NotNil(t, addedPull.TransportAgencyID())
	require.Equal(t, agencyID, *addedPull.TransportAgencyID())
	require.NotNil(t, addedPull.BatchID())
	require.Equal(t, batchID, *addedPull.BatchID())

	require.NotNil(t, pkg.PullID())
	require.Equal(t, pullID, *pkg.PullID())
}

func TestCreateBatchCommandHandler_Handle_PackageAlreadySacked(t *testing.T) {
	ctx := t.Context()
	pkg := newStoredPackage(t, "G-1")
	require.NoError(t, pkg.AssignToPull(kernel.NewUUID()))

	cmd, err := commands.NewCreateBatchCommand(
		kernel.NewUUID(), "MANTA", nil, "",
		[]commands.BatchPullSpec{
			{PullID: kernel.NewUUID(), Size: pull.SizeSmall, PackageIDs: []kernel.UUID{pkg.ID()}},
		},
	)
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	pullRepo := new(MockPullRepository)
	packageRepo := new(MockPackageRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BatchRepository").Return(batchRepo).Once()
	uow.On("PullRepository").Return(pullRepo).Once()
	uow.On("PackageRepository").Return(packageRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	batchRepo.On("Add", mock.Anything, mock.AnythingOfType("*batch.Batch")).Return(nil).Once()
	pullRepo.On("Add", mock.Anything, mock.AnythingOfType("*pull.Pull")).Return(nil).Once()
	packageRepo.On("GetByIDs", mock.Anything, []kernel.UUID{pkg.ID()}).
		Return([]*parcel.Package{pkg}, nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBatchCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewCreateBatchCommand_DuplicatePackageAcrossSacks(t *testing.T) {
	packageID := kernel.NewUUID()

	_, err := commands.NewCreateBatchCommand(
		kernel.NewUUID(), "MANTA", nil, "",
		[]commands.BatchPullSpec{
			{PullID: kernel.NewUUID(), Size: pull.SizeSmall, PackageIDs: []kernel.UUID{packageID}},
			{PullID: kernel.NewUUID(), Size: pull.SizeSmall, PackageIDs: []kernel.UUID{packageID}},
		},
	)
	require.Error(t, err)
}

package commands_test

import (
	"errors"
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCreatePackageCommand(t *testing.T, guideNumber string) commands.CreatePackageCommand {
	t.Helper()

	cmd, err := commands.NewCreatePackageCommand(
		kernel.NewUUID(),
		guideNumber,
		"Ana Torres",
		"Av. Amazonas 100",
		"Quito",
		"Pichincha",
		"0991234567",
		commands.CreatePackageOptions{},
	)
	require.NoError(t, err)
	return cmd
}

func TestCreatePackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newTestCreatePackageCommand(t, "G-1001")

	repo := new(MockPackageRepository)
	uow := new(MockPackageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(repo).Once(),
		repo.On("ExistsByGuideNumber", mock.Anything, "G-1001").Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Package")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePackageCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_DuplicateGuide(t *testing.T) {
	ctx := t.Context()
	cmd := newTestCreatePackageCommand(t, "G-1001")

	repo := new(MockPackageRepository)
	uow := new(MockPackageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(repo).Once(),
		repo.On("ExistsByGuideNumber", mock.Anything, "G-1001").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePackageCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, parcel.ErrDuplicateGuideNumber)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreatePackageCommand{} // not constructed properly
	factory := new(MockPackageUoWFactory)
	h := commands.NewCreatePackageCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreatePackageCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newTestCreatePackageCommand(t, "G-1001")

	uow := new(MockPackageUoW)
	factory := new(MockPackageUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreatePackageCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreatePackageCommandHandler_Handle_AppliesOptions(t *testing.T) {
	ctx := t.Context()
	agencyID := kernel.NewUUID()
	cmd, err := commands.NewCreatePackageCommand(
		kernel.NewUUID(),
		"G-2002",
		"Luis Mera",
		"Calle Larga 5",
		"Cuenca",
		"Azuay",
		"0987654321",
		commands.CreatePackageOptions{
			NroMaster:         "M-77",
			Notes:             "fragil, no llamar",
			Hashtags:          []string{"urgente"},
			TransportAgencyID: &agencyID,
		},
	)
	require.NoError(t, err)

	repo := new(MockPackageRepository)
	uow := new(MockPackageUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(repo).Once(),
		repo.On("ExistsByGuideNumber", mock.Anything, "G-2002").Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(p *parcel.Package) bool {
			return p.NroMaster() == "M-77" &&
				p.Hashtags() == "#urgente" &&
				p.TransportAgencyID() != nil && *p.TransportAgencyID() == agencyID
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePackageCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

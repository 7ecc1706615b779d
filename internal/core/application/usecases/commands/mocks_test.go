package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/batch"
	"parcelhub/internal/core/domain/model/catalog"
	"parcelhub/internal/core/domain/model/dispatch"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/pull"
	"parcelhub/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newStoredPackage builds a package as the repository mocks would return
// it.
func newStoredPackage(t *testing.T, guideNumber string) *parcel.Package {
	t.Helper()

	pkg, err := parcel.NewPackage(
		kernel.NewUUID(),
		guideNumber,
		"Ana Torres",
		"Av. Amazonas 100",
		"Quito",
		"Pichincha",
		"0991234567",
	)
	require.NoError(t, err)
	return pkg
}

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *parcel.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPackageRepository) Update(ctx context.Context, p *parcel.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}
func (m *MockPackageRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Package, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Package), args.Error(1)
}
func (m *MockPackageRepository) GetByGuideNumber(_ context.Context, _ string) (*parcel.Package, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPackageRepository) ExistsByGuideNumber(ctx context.Context, guideNumber string) (bool, error) {
	args := m.Called(ctx, guideNumber)
	return args.Bool(0), args.Error(1)
}
func (m *MockPackageRepository) GetByParent(ctx context.Context, parentID kernel.UUID) ([]*parcel.Package, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Package), args.Error(1)
}
func (m *MockPackageRepository) GetByPull(_ context.Context, _ kernel.UUID) ([]*parcel.Package, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPackageRepository) GetUnassigned(_ context.Context) ([]*parcel.Package, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPullRepository struct{ mock.Mock }

func (m *MockPullRepository) Add(ctx context.Context, p *pull.Pull) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPullRepository) Update(ctx context.Context, p *pull.Pull) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPullRepository) Get(ctx context.Context, id kernel.UUID) (*pull.Pull, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pull.Pull), args.Error(1)
}
func (m *MockPullRepository) GetByBatch(_ context.Context, _ kernel.UUID) ([]*pull.Pull, error) {
	return nil, errors.New("not implemented in mock")
}

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Update(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.Batch), args.Error(1)
}

type MockDispatchRepository struct{ mock.Mock }

func (m *MockDispatchRepository) Add(ctx context.Context, d *dispatch.Dispatch) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDispatchRepository) Update(ctx context.Context, d *dispatch.Dispatch) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDispatchRepository) Get(ctx context.Context, id kernel.UUID) (*dispatch.Dispatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispatch.Dispatch), args.Error(1)
}
func (m *MockDispatchRepository) GetByDate(_ context.Context, _ time.Time) ([]*dispatch.Dispatch, error) {
	return nil, errors.New("not implemented in mock")
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l catalog.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLocationRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Location, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Location), args.Error(1)
}
func (m *MockLocationRepository) GetByCity(_ context.Context, _ string) (catalog.Location, error) {
	return catalog.Location{}, errors.New("not implemented in mock")
}
func (m *MockLocationRepository) GetAll(_ context.Context) ([]catalog.Location, error) {
	return nil, errors.New("not implemented in mock")
}

type MockTransportAgencyRepository struct{ mock.Mock }

func (m *MockTransportAgencyRepository) Add(ctx context.Context, a *catalog.TransportAgency) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockTransportAgencyRepository) Update(_ context.Context, _ *catalog.TransportAgency) error {
	return errors.New("not implemented in mock")
}
func (m *MockTransportAgencyRepository) Get(_ context.Context, _ kernel.UUID) (*catalog.TransportAgency, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockTransportAgencyRepository) GetAllActive(_ context.Context) ([]*catalog.TransportAgency, error) {
	return nil, errors.New("not implemented in mock")
}

type MockDeliveryAgencyRepository struct{ mock.Mock }

func (m *MockDeliveryAgencyRepository) Add(ctx context.Context, a *catalog.DeliveryAgency) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockDeliveryAgencyRepository) Update(_ context.Context, _ *catalog.DeliveryAgency) error {
	return errors.New("not implemented in mock")
}
func (m *MockDeliveryAgencyRepository) Get(_ context.Context, _ kernel.UUID) (*catalog.DeliveryAgency, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDeliveryAgencyRepository) GetByLocation(_ context.Context, _ kernel.UUID) ([]*catalog.DeliveryAgency, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPackageUoW struct{ mock.Mock }

func (m *MockPackageUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPackageUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPackageUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPackageUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}
func (m *MockShipmentUoW) PullRepository() ports.PullRepository {
	args := m.Called()
	return args.Get(0).(ports.PullRepository)
}
func (m *MockShipmentUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockCatalogUoW struct{ mock.Mock }

func (m *MockCatalogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCatalogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCatalogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCatalogUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}
func (m *MockCatalogUoW) TransportAgencyRepository() ports.TransportAgencyRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportAgencyRepository)
}
func (m *MockCatalogUoW) DeliveryAgencyRepository() ports.DeliveryAgencyRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryAgencyRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockDispatchUoW struct{ mock.Mock }

func (m *MockDispatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDispatchUoW) DispatchRepository() ports.DispatchRepository {
	args := m.Called()
	return args.Get(0).(ports.DispatchRepository)
}
func (m *MockDispatchUoW) PullRepository() ports.PullRepository {
	args := m.Called()
	return args.Get(0).(ports.PullRepository)
}
func (m *MockDispatchUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

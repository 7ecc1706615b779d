package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/adapters/out/postgres/batchrepo"
	"parcelhub/internal/adapters/out/postgres/catalogrepo"
	"parcelhub/internal/adapters/out/postgres/dispatchrepo"
	"parcelhub/internal/adapters/out/postgres/packagerepo"
	"parcelhub/internal/adapters/out/postgres/pullrepo"
	"parcelhub/internal/core/domain/model/batch"
	"parcelhub/internal/core/domain/model/dispatch"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/pull"
	"parcelhub/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&packagerepo.PackageDTO{},
		&pullrepo.PullDTO{},
		&batchrepo.BatchDTO{},
		&catalogrepo.LocationDTO{},
		&catalogrepo.TransportAgencyDTO{},
		&catalogrepo.DeliveryAgencyDTO{},
		&dispatchrepo.DispatchDTO{},
		&dispatchrepo.DispatchPullDTO{},
		&dispatchrepo.DispatchPackageDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE packages, pulls, batches, locations, transport_agencies," +
			" delivery_agencies, dispatches, dispatch_pulls, dispatch_packages",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.PackageRepository(), "First instance should provide package repository")
	suite.NotNil(uow1.PullRepository(), "First instance should provide pull repository")
	suite.NotNil(uow1.BatchRepository(), "First instance should provide batch repository")
	suite.NotNil(uow1.DispatchRepository(), "First instance should provide dispatch repository")
	suite.NotNil(uow2.PackageRepository(), "Second instance should provide package repository")
	suite.NotNil(uow2.LocationRepository(), "Second instance should provide location repository")
	suite.NotNil(uow2.TransportAgencyRepository(), "Second instance should provide transport agency repository")
	suite.NotNil(uow2.DeliveryAgencyRepository(), "Second instance should provide delivery agency repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testPackage := createTestPackage("G-1001")

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add package within transaction
	err = uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)

	// Verify package exists within transaction
	retrieved, err := uow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(testPackage.ID(), retrieved.ID())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify package persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrieved, err = newUow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(testPackage.ID(), retrieved.ID())
}

// TestUnitOfWork_SackBuildingWorkflow verifies the batch/pull/package
// containment chain persists atomically across repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SackBuildingWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Step 1: Create the batch
	testBatch, err := batch.NewBatch(kernel.NewUUID(), "Guayaquil, Guayas")
	suite.Require().NoError(err)
	testBatch.SetGuideNumber("LOT-77")
	err = uow.BatchRepository().Add(ctx, testBatch)
	suite.Require().NoError(err)

	// Step 2: Create a pull inside the batch
	testPull, err := pull.NewPull(kernel.NewUUID(), "Guayaquil, Guayas", pull.SizeMedium)
	suite.Require().NoError(err)
	err = testPull.AttachToBatch(testBatch)
	suite.Require().NoError(err)
	err = uow.PullRepository().Add(ctx, testPull)
	suite.Require().NoError(err)

	// Step 3: Create a package and place it in the pull
	testPackage := createTestPackage("G-2001")
	err = testPackage.AssignToPull(testPull.ID())
	suite.Require().NoError(err)
	err = uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the whole chain with a new unit of work
	newUow := suite.factory.Create()

	retrievedPull, err := newUow.PullRepository().Get(ctx, testPull.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedPull.BatchID())
	suite.True(retrievedPull.BatchID().IsEqual(testBatch.ID()))
	suite.Equal("Guayaquil, Guayas", retrievedPull.CommonDestiny())
	suite.Equal(pull.SizeMedium, retrievedPull.Size())

	contents, err := newUow.PackageRepository().GetByPull(ctx, testPull.ID())
	suite.Require().NoError(err)
	suite.Require().Len(contents, 1)
	suite.Equal("G-2001", contents[0].GuideNumber())

	batchPulls, err := newUow.PullRepository().GetByBatch(ctx, testBatch.ID())
	suite.Require().NoError(err)
	suite.Len(batchPulls, 1)
}

// TestUnitOfWork_DispatchMembershipRoundTrip verifies dispatch membership
// rows survive the save/load cycle.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DispatchMembershipRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testPull, err := pull.NewPull(kernel.NewUUID(), "Cuenca, Azuay", pull.SizeSmall)
	suite.Require().NoError(err)
	err = uow.PullRepository().Add(ctx, testPull)
	suite.Require().NoError(err)

	loosePackage := createTestPackage("G-3001")
	err = uow.PackageRepository().Add(ctx, loosePackage)
	suite.Require().NoError(err)

	testDispatch, err := dispatch.NewDispatch(kernel.NewUUID(), time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	testDispatch.SetNotes("salida de la manana")
	suite.Require().NoError(testDispatch.AddPull(testPull.ID()))
	suite.Require().NoError(testDispatch.AddPackage(loosePackage.ID()))

	err = uow.DispatchRepository().Add(ctx, testDispatch)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Reload and verify members
	newUow := suite.factory.Create()
	retrieved, err := newUow.DispatchRepository().Get(ctx, testDispatch.ID())
	suite.Require().NoError(err)

	suite.Equal(dispatch.StatusPlanned, retrieved.Status())
	suite.Equal("salida de la manana", retrieved.Notes())
	suite.Require().Len(retrieved.PullIDs(), 1)
	suite.True(retrieved.PullIDs()[0].IsEqual(testPull.ID()))
	suite.Require().Len(retrieved.PackageIDs(), 1)
	suite.True(retrieved.PackageIDs()[0].IsEqual(loosePackage.ID()))

	// Status change rewrites the row and keeps membership intact
	suite.Require().NoError(retrieved.Start())
	err = newUow.DispatchRepository().Update(ctx, retrieved)
	suite.Require().NoError(err)

	reloaded, err := newUow.DispatchRepository().Get(ctx, testDispatch.ID())
	suite.Require().NoError(err)
	suite.Equal(dispatch.StatusInProgress, reloaded.Status())
	suite.Len(reloaded.PullIDs(), 1)
	suite.Len(reloaded.PackageIDs(), 1)

	byDate, err := newUow.DispatchRepository().GetByDate(ctx, time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Len(byDate, 1)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testPackage := createTestPackage("G-4001")
	testPull, err := pull.NewPull(kernel.NewUUID(), "Loja, Loja", pull.SizeLarge)
	suite.Require().NoError(err)

	// Begin transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities within transaction
	err = uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)

	err = uow.PullRepository().Add(ctx, testPull)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)

	_, err = uow.PullRepository().Get(ctx, testPull.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().Error(err, "Package should not exist after rollback")

	_, err = newUow.PullRepository().Get(ctx, testPull.ID())
	suite.Require().Error(err, "Pull should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	package1 := createTestPackage("G-5001")
	package2 := createTestPackage("G-5002")

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different packages in each transaction
	err = uow1.PackageRepository().Add(ctx, package1)
	suite.Require().NoError(err)

	err = uow2.PackageRepository().Add(ctx, package2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.PackageRepository().Get(ctx, package1.ID())
	suite.Require().NoError(err, "UOW1 should see package1")

	_, err = uow1.PackageRepository().Get(ctx, package2.ID())
	suite.Require().Error(err, "UOW1 should not see package2")

	_, err = uow2.PackageRepository().Get(ctx, package2.ID())
	suite.Require().NoError(err, "UOW2 should see package2")

	_, err = uow2.PackageRepository().Get(ctx, package1.ID())
	suite.Require().Error(err, "UOW2 should not see package1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only package1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.PackageRepository().Get(ctx, package1.ID())
	suite.Require().NoError(err, "Package1 should persist after commit")

	_, err = newUow.PackageRepository().Get(ctx, package2.ID())
	suite.Require().Error(err, "Package2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testPackage := createTestPackage("G-6001")

	// Add package without beginning transaction (should auto-commit)
	err := uow.PackageRepository().Add(ctx, testPackage)
	suite.Require().NoError(err)

	// Verify package persists immediately
	retrieved, err := uow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(testPackage.ID(), retrieved.ID())

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrieved, err = newUow.PackageRepository().Get(ctx, testPackage.ID())
	suite.Require().NoError(err)
	suite.Equal(testPackage.ID(), retrieved.ID())
}

// TestUnitOfWork_PartialFailureScenario tests behavior when some operations succeed and others fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureScenario() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial package outside transaction
	existingPackage := createTestPackage("G-7001")
	err := uow.PackageRepository().Add(ctx, existingPackage)
	suite.Require().NoError(err)

	// Begin new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add a valid package
	newPackage := createTestPackage("G-7002")
	err = uow.PackageRepository().Add(ctx, newPackage)
	suite.Require().NoError(err)

	// Try to add a package reusing an existing guide number (should fail)
	duplicatePackage := createTestPackage("G-7001")
	err = uow.PackageRepository().Add(ctx, duplicatePackage)
	suite.Require().Error(err, "Adding duplicate guide number should fail")

	// Even though some operations succeeded, rollback should undo everything
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify rollback undid the successful operations
	newUow := suite.factory.Create()

	// Existing package should still exist (was added before transaction)
	_, err = newUow.PackageRepository().Get(ctx, existingPackage.ID())
	suite.Require().NoError(err, "Existing package should still exist")

	// New package should not exist (transaction was rolled back)
	_, err = newUow.PackageRepository().Get(ctx, newPackage.ID())
	suite.Require().Error(err, "New package should not exist after rollback")
}

// createTestPackage creates a valid package for testing purposes.
func createTestPackage(guideNumber string) *parcel.Package {
	id := kernel.NewUUID()
	testPackage, _ := parcel.NewPackage(
		id,
		guideNumber,
		"Ana Torres",
		"Av. Amazonas 100",
		"Quito",
		"Pichincha",
		"0991234567",
	)
	return testPackage
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

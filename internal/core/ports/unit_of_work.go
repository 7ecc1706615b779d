package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// PackageRepository returns a PackageRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	PackageRepository() PackageRepository

	// PullRepository returns a PullRepository instance bound to the current transaction.
	PullRepository() PullRepository

	// BatchRepository returns a BatchRepository instance bound to the current transaction.
	BatchRepository() BatchRepository

	// LocationRepository returns a LocationRepository instance bound to the current transaction.
	LocationRepository() LocationRepository

	// TransportAgencyRepository returns a TransportAgencyRepository instance bound to the current transaction.
	TransportAgencyRepository() TransportAgencyRepository

	// DeliveryAgencyRepository returns a DeliveryAgencyRepository instance bound to the current transaction.
	DeliveryAgencyRepository() DeliveryAgencyRepository

	// DispatchRepository returns a DispatchRepository instance bound to the current transaction.
	DispatchRepository() DispatchRepository
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parcelhub/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PackageRepoFactory provides access to the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// PullRepoFactory provides access to the pull repository within a transaction.
	PullRepoFactory interface {
		PullRepository() ports.PullRepository
	}

	// BatchRepoFactory provides access to the batch repository within a transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// CatalogRepoFactory provides access to the catalog repositories within a transaction.
	CatalogRepoFactory interface {
		LocationRepository() ports.LocationRepository
		TransportAgencyRepository() ports.TransportAgencyRepository
		DeliveryAgencyRepository() ports.DeliveryAgencyRepository
	}

	// DispatchRepoFactory provides access to the dispatch repository within a transaction.
	DispatchRepoFactory interface {
		DispatchRepository() ports.DispatchRepository
	}

	// PackageUoW manages transactions for package-only operations.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
	}

	// PackageUoWFactory creates new package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// ShipmentUoW manages transactions spanning packages, pulls, and
	// batches. Used by the bulk containment operations (sack building,
	// batch assembly, auto-distribution).
	ShipmentUoW interface {
		TxManager
		PackageRepoFactory
		PullRepoFactory
		BatchRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// CatalogUoW manages transactions for catalog reference data.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// DispatchUoW manages transactions for dispatch assembly: the
	// dispatch aggregate plus read access to its members.
	DispatchUoW interface {
		TxManager
		DispatchRepoFactory
		PullRepoFactory
		PackageRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)

package cmd

import (
	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) packageUoWFactory() commands.PackageUoWFactory {
	return FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	return commands.NewCreatePackageCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateChangePackageStatusCommandHandler() commands.ChangePackageStatusCommandHandler {
	return commands.NewChangePackageStatusCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateAddPackageNoteCommandHandler() commands.AddPackageNoteCommandHandler {
	return commands.NewAddPackageNoteCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateMigratePackageCommandHandler() commands.MigratePackageCommandHandler {
	return commands.NewMigratePackageCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateCreateChildPackageCommandHandler() commands.CreateChildPackageCommandHandler {
	return commands.NewCreateChildPackageCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateAssociateChildrenCommandHandler() commands.AssociateChildrenCommandHandler {
	return commands.NewAssociateChildrenCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateCreatePullCommandHandler() commands.CreatePullCommandHandler {
	return commands.NewCreatePullCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateAddPullToBatchCommandHandler() commands.AddPullToBatchCommandHandler {
	return commands.NewAddPullToBatchCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateBatchCommandHandler() commands.CreateBatchCommandHandler {
	return commands.NewCreateBatchCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateAutoDistributeCommandHandler() commands.AutoDistributeCommandHandler {
	return commands.NewAutoDistributeCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateDispatchCommandHandler() commands.CreateDispatchCommandHandler {
	return commands.NewCreateDispatchCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateChangeDispatchStatusCommandHandler() commands.ChangeDispatchStatusCommandHandler {
	return commands.NewChangeDispatchStatusCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	return commands.NewCreateLocationCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateTransportAgencyCommandHandler() commands.CreateTransportAgencyCommandHandler {
	return commands.NewCreateTransportAgencyCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryAgencyCommandHandler() commands.CreateDeliveryAgencyCommandHandler {
	return commands.NewCreateDeliveryAgencyCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateGetAvailablePackagesQueryHandler() queries.GetAvailablePackagesQueryHandler {
	return queries.NewGetAvailablePackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPullStatisticsQueryHandler() queries.GetPullStatisticsQueryHandler {
	return queries.NewGetPullStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDispatchSummaryQueryHandler() queries.GetDispatchSummaryQueryHandler {
	return queries.NewGetDispatchSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackageShipmentQueryHandler() queries.GetPackageShipmentQueryHandler {
	return queries.NewGetPackageShipmentQueryHandler(c.gormDB)
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

package cmd

import (
	"tracker/internal/adapters/out/postgres"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/services"

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

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, services.NewTrackingNumberGenerator())
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetPackagesPageQueryHandler() queries.GetPackagesPageQueryHandler {
	return queries.NewGetPackagesPageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.gormDB)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

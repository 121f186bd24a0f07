package cmd

import (
	"pickpoint/internal/adapters/out/postgres"
	"pickpoint/internal/core/application/usecases/commands"
	"pickpoint/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.ChangeStatusUoWFactory = FuncChangeStatusUoWFactory(func() commands.ChangeStatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderCompositionCommandHandler() commands.ChangeOrderCompositionCommandHandler {
	var f commands.ChangeCompositionUoWFactory = FuncChangeCompositionUoWFactory(func() commands.ChangeCompositionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderCompositionCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPostautomatQueryHandler() queries.GetPostautomatQueryHandler {
	return queries.NewGetPostautomatQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenPostautomatsQueryHandler() queries.GetOpenPostautomatsQueryHandler {
	return queries.NewGetOpenPostautomatsQueryHandler(c.gormDB)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncChangeStatusUoWFactory func() commands.ChangeStatusUoW

func (f FuncChangeStatusUoWFactory) Create() commands.ChangeStatusUoW {
	return f()
}

type FuncChangeCompositionUoWFactory func() commands.ChangeCompositionUoW

func (f FuncChangeCompositionUoWFactory) Create() commands.ChangeCompositionUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

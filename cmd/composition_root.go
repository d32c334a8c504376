package cmd

import (
	"orders/internal/adapters/out/postgres"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	return commands.NewAddItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStaleDraftsCommandHandler() commands.CancelStaleDraftsCommandHandler {
	return commands.NewCancelStaleDraftsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

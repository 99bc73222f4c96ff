// Package commands contains the operations that change state: placing,
// editing and taking orders, and maintaining the restaurant catalogue.
// Every handler validates its command, runs inside a unit of work and only
// publishes events after a successful commit.
package commands

import (
	"context"

	"github.com/beliemun/uber-backend/internal/core/ports"
)

// Unit of Work interfaces give each handler exactly the repositories it needs.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	// OrderUoW serves commands that only touch existing orders (edit, take).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogUoW serves restaurant and dish maintenance.
	CatalogUoW interface {
		TxManager
		RestaurantRepoFactory
		DishRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UoW spans the catalogue and orders. Placing an order reads restaurants
	// and dishes and writes the order in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   restaurant, err := uow.RestaurantRepository().Get(ctx, restaurantID)
	//   dishes, err := uow.DishRepository().GetMany(ctx, dishIDs)
	//   err = uow.OrderRepository().Add(ctx, order)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		DishRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// Function adapters let one ports.UnitOfWorkFactory serve every handler:
//
//	var f commands.OrderUoWFactory = commands.FuncOrderUoWFactory(func() commands.OrderUoW {
//	    return factory.Create()
//	})
type (
	FuncUoWFactory        func() UoW
	FuncOrderUoWFactory   func() OrderUoW
	FuncCatalogUoWFactory func() CatalogUoW
)

func (f FuncUoWFactory) Create() UoW {
	return f()
}

func (f FuncOrderUoWFactory) Create() OrderUoW {
	return f()
}

func (f FuncCatalogUoWFactory) Create() CatalogUoW {
	return f()
}

package cmd

import (
	"github.com/beliemun/uber-backend/internal/adapters/out/memory"
	"github.com/beliemun/uber-backend/internal/adapters/out/postgres"
	"github.com/beliemun/uber-backend/internal/adapters/out/postgres/orderrepo"
	"github.com/beliemun/uber-backend/internal/adapters/out/postgres/restaurantrepo"
	"github.com/beliemun/uber-backend/internal/adapters/out/postgres/userrepo"
	"github.com/beliemun/uber-backend/internal/core/ports"

	"gorm.io/gorm"
)

// Storage is the persistence a composition root runs on. The repositories
// serve reads outside a unit of work.
type Storage struct {
	UoWFactory  ports.UnitOfWorkFactory
	Orders      ports.OrderRepository
	Users       ports.UserRepository
	Restaurants ports.RestaurantRepository
	Dishes      ports.DishRepository
}

func NewPostgresStorage(db *gorm.DB) Storage {
	return Storage{
		UoWFactory:  postgres.NewGormUnitOfWorkFactory(db),
		Orders:      orderrepo.NewGormOrderRepository(db),
		Users:       userrepo.NewGormUserRepository(db),
		Restaurants: restaurantrepo.NewGormRestaurantRepository(db),
		Dishes:      restaurantrepo.NewGormDishRepository(db),
	}
}

func NewMemoryStorage(store *memory.Store) Storage {
	return Storage{
		UoWFactory:  memory.NewUnitOfWorkFactory(store),
		Orders:      store.OrderRepository(),
		Users:       store.UserRepository(),
		Restaurants: store.RestaurantRepository(),
		Dishes:      store.DishRepository(),
	}
}

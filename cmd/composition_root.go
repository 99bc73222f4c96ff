package cmd

import (
	"context"
	"log/slog"

	httpin "github.com/beliemun/uber-backend/internal/adapters/in/http"
	"github.com/beliemun/uber-backend/internal/adapters/out/jwttoken"
	"github.com/beliemun/uber-backend/internal/core/application/auth"
	"github.com/beliemun/uber-backend/internal/core/application/usecases/commands"
	"github.com/beliemun/uber-backend/internal/core/application/usecases/queries"
	"github.com/beliemun/uber-backend/internal/core/application/usecases/subscriptions"
	"github.com/beliemun/uber-backend/internal/core/domain/events"
	"github.com/beliemun/uber-backend/internal/jobs"
	"github.com/beliemun/uber-backend/internal/pkg/pubsub"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config  Config
	logger  *slog.Logger
	storage Storage
	broker  *pubsub.Broker[events.OrderEvent]
	tokens  *jwttoken.Service
}

func NewCompositionRoot(config Config, storage Storage, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tokens, err := jwttoken.NewService(config.TokenSecretKey, config.TokenIssuer, config.TokenTTL)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:  config,
		logger:  logger,
		storage: storage,
		broker:  pubsub.NewBroker[events.OrderEvent](logger),
		tokens:  tokens,
	}, nil
}

// Broker is the single event bus shared by publishers and subscribers.
func (c *CompositionRoot) Broker() *pubsub.Broker[events.OrderEvent] {
	return c.broker
}

func (c *CompositionRoot) Tokens() *jwttoken.Service {
	return c.tokens
}

func (c *CompositionRoot) Storage() Storage {
	return c.storage
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = commands.FuncUoWFactory(func() commands.UoW {
		return c.storage.UoWFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.broker)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	var f commands.OrderUoWFactory = commands.FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.storage.UoWFactory.Create()
	})
	return commands.NewEditOrderCommandHandler(f, c.broker)
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	var f commands.OrderUoWFactory = commands.FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.storage.UoWFactory.Create()
	})
	return commands.NewTakeOrderCommandHandler(f, c.broker)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.CatalogUoWFactory = commands.FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.storage.UoWFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	var f commands.CatalogUoWFactory = commands.FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.storage.UoWFactory.Create()
	})
	return commands.NewCreateDishCommandHandler(f)
}

func (c *CompositionRoot) CreateEditDishCommandHandler() commands.EditDishCommandHandler {
	var f commands.CatalogUoWFactory = commands.FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.storage.UoWFactory.Create()
	})
	return commands.NewEditDishCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDishCommandHandler() commands.DeleteDishCommandHandler {
	var f commands.CatalogUoWFactory = commands.FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.storage.UoWFactory.Create()
	})
	return commands.NewDeleteDishCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.storage.Orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.storage.Orders)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.storage.Restaurants)
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(c.storage.Restaurants, c.storage.Dishes)
}

func (c *CompositionRoot) CreateSubscriptionsHandler() subscriptions.Handler {
	return subscriptions.NewHandler(c.broker, c.storage.Orders)
}

func (c *CompositionRoot) CreateGuard() *auth.Guard {
	return auth.NewGuard(auth.NewTokenResolver(c.tokens, c.storage.Users), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.broker, c.config.BusMonitorSchedule, c.logger)
}

// CreateEcho builds the HTTP server with every handler wired in.
func (c *CompositionRoot) CreateEcho(ctx context.Context) (*echo.Echo, error) {
	handlers := httpin.Handlers{
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		EditOrder:        c.CreateEditOrderCommandHandler(),
		TakeOrder:        c.CreateTakeOrderCommandHandler(),
		CreateRestaurant: c.CreateCreateRestaurantCommandHandler(),
		CreateDish:       c.CreateCreateDishCommandHandler(),
		EditDish:         c.CreateEditDishCommandHandler(),
		DeleteDish:       c.CreateDeleteDishCommandHandler(),
		GetOrders:        c.CreateGetOrdersQueryHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetRestaurants:   c.CreateGetRestaurantsQueryHandler(),
		GetRestaurant:    c.CreateGetRestaurantQueryHandler(),
		Subscriptions:    c.CreateSubscriptionsHandler(),
	}
	server := httpin.NewServer(handlers, c.CreateGuard(), c.logger, c.config.SSEKeepAlive)
	return httpin.NewEcho(ctx, server)
}

// Close shuts the event bus down, ending every open subscription.
func (c *CompositionRoot) Close() {
	c.broker.Close()
}

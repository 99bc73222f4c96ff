// Package http exposes the operation catalogue over REST and server-sent
// events using echo.
//
// Each route runs the authorization guard for its operation first, then
// validates the request against the embedded OpenAPI document, then calls
// the use case. Responses always carry "ok"; failures add "error" and a
// status derived from the error kind.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/beliemun/uber-backend/internal/core/application/auth"
	"github.com/beliemun/uber-backend/internal/core/application/usecases/commands"
	"github.com/beliemun/uber-backend/internal/core/application/usecases/queries"
	"github.com/beliemun/uber-backend/internal/core/application/usecases/subscriptions"
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const defaultKeepAlive = 15 * time.Second

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder      commands.CreateOrderCommandHandler
	EditOrder        commands.EditOrderCommandHandler
	TakeOrder        commands.TakeOrderCommandHandler
	CreateRestaurant commands.CreateRestaurantCommandHandler
	CreateDish       commands.CreateDishCommandHandler
	EditDish         commands.EditDishCommandHandler
	DeleteDish       commands.DeleteDishCommandHandler

	GetOrders      queries.GetOrdersQueryHandler
	GetOrder       queries.GetOrderQueryHandler
	GetRestaurants queries.GetRestaurantsQueryHandler
	GetRestaurant  queries.GetRestaurantQueryHandler

	Subscriptions subscriptions.Handler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers  Handlers
	guard     *auth.Guard
	logger    *slog.Logger
	keepAlive time.Duration
	newID     func() kernel.UUID
}

// NewServer creates a server. A non-positive keepAlive falls back to 15s.
func NewServer(handlers Handlers, guard *auth.Guard, logger *slog.Logger, keepAlive time.Duration) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if keepAlive <= 0 {
		keepAlive = defaultKeepAlive
	}
	return &Server{
		handlers:  handlers,
		guard:     guard,
		logger:    logger.With("component", "http"),
		keepAlive: keepAlive,
		newID:     kernel.NewUUID,
	}
}

// NewEcho builds the echo instance with every route registered.
func NewEcho(ctx context.Context, s *Server) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := newRequestValidator(doc)
	if err != nil {
		return nil, err
	}
	registerSwaggerDoc()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.LogAttrs(c.Request().Context(), slog.LevelDebug, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	route := func(op auth.Operation) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{s.authorize(op), s.validate(op, validator)}
	}

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder, route(auth.CreateOrder)...)
	v1.GET("/orders", s.GetOrders, route(auth.GetOrders)...)
	v1.GET("/orders/:id", s.GetOrder, route(auth.GetOrder)...)
	v1.PATCH("/orders/:id", s.EditOrder, route(auth.EditOrder)...)
	v1.POST("/orders/:id/take", s.TakeOrder, route(auth.TakeOrder)...)
	v1.POST("/restaurants", s.CreateRestaurant, route(auth.CreateRestaurant)...)
	v1.GET("/restaurants", s.GetRestaurants, route(auth.GetRestaurants)...)
	v1.GET("/restaurants/:id", s.GetRestaurant, route(auth.GetRestaurant)...)
	v1.POST("/restaurants/:id/dishes", s.CreateDish, route(auth.CreateDish)...)
	v1.PATCH("/dishes/:id", s.EditDish, route(auth.EditDish)...)
	v1.DELETE("/dishes/:id", s.DeleteDish, route(auth.DeleteDish)...)
	v1.GET("/subscriptions/pending-orders", s.PendingOrders, route(auth.PendingOrders)...)
	v1.GET("/subscriptions/cooked-orders", s.CookedOrders, route(auth.CookedOrders)...)
	v1.GET("/subscriptions/orders/:id", s.OrderUpdates, route(auth.OrderUpdates)...)

	return e, nil
}

// authorize runs the guard and stores the resolved user in the request context.
func (s *Server) authorize(op auth.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, _ := auth.ExtractBearer(c.Request().Header.Get(echo.HeaderAuthorization))

			ctx, err := s.guard.Authorize(c.Request().Context(), op, token)
			if err != nil {
				return s.fail(c, op.Name, err)
			}

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func (s *Server) validate(op auth.Operation, v *requestValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := v.validate(c); err != nil {
				return s.fail(c, op.Name, err)
			}
			return next(c)
		}
	}
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, OK{OK: true})
}

package http

import (
	"net/http"

	"github.com/beliemun/uber-backend/internal/core/application/auth"
	"github.com/beliemun/uber-backend/internal/core/application/usecases/commands"
	"github.com/beliemun/uber-backend/internal/core/application/usecases/queries"
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type (
	ItemOption struct {
		Name   string `json:"name"`
		Choice string `json:"choice"`
	}

	OrderItem struct {
		DishID  kernel.UUID  `json:"dishId"`
		Options []ItemOption `json:"options"`
	}

	CreateOrderRequest struct {
		RestaurantID kernel.UUID `json:"restaurantId"`
		Items        []OrderItem `json:"items"`
	}

	EditOrderRequest struct {
		Status string `json:"status"`
	}
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	op := auth.CreateOrder.Name

	customer, err := viewer(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	var req CreateOrderRequest
	if err := bindBody(c, &req); err != nil {
		return s.fail(c, op, err)
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, it := range req.Items {
		options := make([]order.ItemOption, 0, len(it.Options))
		for _, opt := range it.Options {
			options = append(options, order.ItemOption{Name: opt.Name, Choice: opt.Choice})
		}
		item, err := order.NewItem(it.DishID, options)
		if err != nil {
			return s.fail(c, op, err)
		}
		items = append(items, item)
	}

	orderID := s.newID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customer.ID(), req.RestaurantID, items)
	if err != nil {
		return s.fail(c, op, err)
	}

	if err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, op, err)
	}

	return c.JSON(http.StatusCreated, CreateOrderResponse{OK: true, OrderID: orderID})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(c echo.Context) error {
	op := auth.GetOrders.Name

	u, err := viewer(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	status, err := statusQuery(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	query, err := queries.NewGetOrdersQuery(u, status)
	if err != nil {
		return s.fail(c, op, err)
	}

	orders, err := s.handlers.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, OrdersResponse{OK: true, Orders: toOrders(orders)})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	op := auth.GetOrder.Name

	u, err := viewer(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	id, err := pathID(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	query, err := queries.NewGetOrderQuery(u, id)
	if err != nil {
		return s.fail(c, op, err)
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, OrderResponse{OK: true, Order: toOrder(o)})
}

// EditOrder handles PATCH /api/v1/orders/:id.
func (s *Server) EditOrder(c echo.Context) error {
	op := auth.EditOrder.Name

	u, err := viewer(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	id, err := pathID(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	var req EditOrderRequest
	if err := bindBody(c, &req); err != nil {
		return s.fail(c, op, err)
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewEditOrderCommand(u, id, status)
	if err != nil {
		return s.fail(c, op, err)
	}

	o, err := s.handlers.EditOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, OrderResponse{OK: true, Order: toOrder(o)})
}

// TakeOrder handles POST /api/v1/orders/:id/take.
func (s *Server) TakeOrder(c echo.Context) error {
	op := auth.TakeOrder.Name

	driver, err := viewer(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	id, err := pathID(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	cmd, err := commands.NewTakeOrderCommand(driver, id)
	if err != nil {
		return s.fail(c, op, err)
	}

	o, err := s.handlers.TakeOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, op, err)
	}

	return c.JSON(http.StatusOK, OrderResponse{OK: true, Order: toOrder(o)})
}

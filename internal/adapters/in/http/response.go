package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/beliemun/uber-backend/internal/core/domain/events"
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Every response carries "ok". Failures add "error", successes their payload.
type (
	Error struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}

	OK struct {
		OK bool `json:"ok"`
	}

	CreateOrderResponse struct {
		OK      bool        `json:"ok"`
		OrderID kernel.UUID `json:"orderId"`
	}

	OrderResponse struct {
		OK    bool              `json:"ok"`
		Order events.OrderEvent `json:"order"`
	}

	OrdersResponse struct {
		OK     bool                `json:"ok"`
		Orders []events.OrderEvent `json:"orders"`
	}

	CreateRestaurantResponse struct {
		OK           bool        `json:"ok"`
		RestaurantID kernel.UUID `json:"restaurantId"`
	}

	CreateDishResponse struct {
		OK     bool        `json:"ok"`
		DishID kernel.UUID `json:"dishId"`
	}

	RestaurantsResponse struct {
		OK          bool         `json:"ok"`
		Restaurants []Restaurant `json:"restaurants"`
		TotalItems  int          `json:"totalItems"`
		TotalPages  int          `json:"totalPages"`
	}

	RestaurantResponse struct {
		OK         bool               `json:"ok"`
		Restaurant RestaurantWithMenu `json:"restaurant"`
	}

	DishResponse struct {
		OK   bool `json:"ok"`
		Dish Dish `json:"dish"`
	}
)

// Orders are rendered in the same shape subscribers receive.
func toOrder(o *order.Order) events.OrderEvent {
	return events.NewOrderEvent(o)
}

func toOrders(orders []*order.Order) []events.OrderEvent {
	out := make([]events.OrderEvent, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

// statusCode maps the error taxonomy onto HTTP. Anything unclassified,
// including storage failures, is a 500.
func statusCode(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error envelope. Internal details of 5xx errors are logged,
// not returned.
func (s *Server) fail(c echo.Context, operation string, err error) error {
	code := statusCode(err)

	message := err.Error()
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message = fmt.Sprint(httpErr.Message)
	}
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "operation failed",
			"operation", operation, "error", err)
		message = http.StatusText(code)
	}

	return c.JSON(code, Error{OK: false, Error: message})
}

// errorHandler renders errors that escape handlers and middleware, such as
// unknown routes, in the common envelope.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if failErr := s.fail(c, c.Path(), err); failErr != nil {
		s.logger.ErrorContext(c.Request().Context(), "write error response", "error", failErr)
	}
}

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/beliemun/uber-backend/internal/core/application/auth"
	"github.com/beliemun/uber-backend/internal/core/application/usecases/subscriptions"

	"github.com/labstack/echo/v4"
)

// PendingOrders handles GET /api/v1/subscriptions/pending-orders.
func (s *Server) PendingOrders(c echo.Context) error {
	op := auth.PendingOrders.Name

	u, err := viewer(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	feed, err := s.handlers.Subscriptions.PendingOrders(c.Request().Context(), u)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.stream(c, op, feed)
}

// CookedOrders handles GET /api/v1/subscriptions/cooked-orders.
func (s *Server) CookedOrders(c echo.Context) error {
	op := auth.CookedOrders.Name

	u, err := viewer(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	feed, err := s.handlers.Subscriptions.CookedOrders(c.Request().Context(), u)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.stream(c, op, feed)
}

// OrderUpdates handles GET /api/v1/subscriptions/orders/:id.
func (s *Server) OrderUpdates(c echo.Context) error {
	op := auth.OrderUpdates.Name

	u, err := viewer(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	id, err := pathID(c)
	if err != nil {
		return s.fail(c, op, err)
	}

	feed, err := s.handlers.Subscriptions.OrderUpdates(c.Request().Context(), u, id)
	if err != nil {
		return s.fail(c, op, err)
	}
	return s.stream(c, op, feed)
}

// stream writes feed as server-sent events until the client goes away or
// the feed is closed. The subscription is bound to the request context, so
// a disconnect deregisters it.
func (s *Server) stream(c echo.Context, op string, feed subscriptions.Feed) error {
	defer feed.Close()

	ctx := c.Request().Context()
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	s.logger.DebugContext(ctx, "subscription opened", "operation", op, "topic", feed.Topic())
	defer s.logger.DebugContext(ctx, "subscription closed", "operation", op)

	keepAlive := time.NewTicker(s.keepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-feed.Done():
			return nil
		case event, ok := <-feed.C():
			if !ok {
				return nil
			}
			data, err := json.Marshal(event)
			if err != nil {
				s.logger.ErrorContext(ctx, "encode event", "operation", op, "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", feed.Topic(), data); err != nil {
				return nil
			}
			w.Flush()
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

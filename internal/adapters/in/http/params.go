package http

import (
	"github.com/beliemun/uber-backend/internal/core/application/auth"
	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/core/domain/model/order"
	"github.com/beliemun/uber-backend/internal/core/domain/model/user"
	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// viewer returns the user the guard attached to the request.
func viewer(c echo.Context) (*user.User, error) {
	u, ok := auth.UserFromContext(c.Request().Context())
	if !ok {
		return nil, errs.NewUnauthenticatedError("missing credential")
	}
	return u, nil
}

func pathID(c echo.Context) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return kernel.UUIDFromGoogle(id)
}

// statusQuery reads the optional ?status= filter. Absent means any status.
func statusQuery(c echo.Context) (order.Status, error) {
	var raw *string
	if err := runtime.BindQueryParameter("form", true, false, "status", c.QueryParams(), &raw); err != nil {
		return order.Unknown, errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	if raw == nil || *raw == "" {
		return order.Unknown, nil
	}
	return order.ParseStatus(*raw)
}

// restaurantsQuery reads the optional ?query= and ?page= of a catalogue
// listing. The page defaults to 1.
func restaurantsQuery(c echo.Context) (string, int, error) {
	var name *string
	if err := runtime.BindQueryParameter("form", true, false, "query", c.QueryParams(), &name); err != nil {
		return "", 0, errs.NewValueIsInvalidErrorWithCause("query", err)
	}
	var page *int
	if err := runtime.BindQueryParameter("form", true, false, "page", c.QueryParams(), &page); err != nil {
		return "", 0, errs.NewValueIsInvalidErrorWithCause("page", err)
	}

	q, p := "", 1
	if name != nil {
		q = *name
	}
	if page != nil {
		p = *page
	}
	return q, p, nil
}

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

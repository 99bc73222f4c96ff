package queries

import (
	"errors"
	"math"
	"strings"

	"github.com/beliemun/uber-backend/internal/pkg/errs"
	"github.com/beliemun/uber-backend/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery pages through the catalogue. A non-empty name narrows
// it to restaurants whose name contains it, ignoring case.
type GetRestaurantsQuery struct {
	name string
	page int

	guard guard.ConstructorGuard
}

func NewGetRestaurantsQuery(name string, page int) (GetRestaurantsQuery, error) {
	if page < 1 {
		return GetRestaurantsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, math.MaxInt32)
	}

	return GetRestaurantsQuery{
		name:  strings.TrimSpace(name),
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

func (q GetRestaurantsQuery) Name() string {
	return q.name
}

func (q GetRestaurantsQuery) Page() int {
	return q.page
}

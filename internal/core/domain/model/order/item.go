package order

import (
	"errors"
	"strings"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
	"github.com/beliemun/uber-backend/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// ItemOption is an option the customer chose for a dish. Choice is empty for
// options that carry a flat extra.
type ItemOption struct {
	Name   string
	Choice string
}

// Item is one order line: a dish and the options chosen for it.
type Item struct {
	dishID  kernel.UUID
	options []ItemOption

	guard guard.ConstructorGuard
}

func NewItem(dishID kernel.UUID, options []ItemOption) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setDishID(dishID),
		item.setOptions(options),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) DishID() kernel.UUID {
	return i.dishID
}

// Options returns a copy of the chosen options.
func (i Item) Options() []ItemOption {
	if len(i.options) == 0 {
		return nil
	}
	return append([]ItemOption(nil), i.options...)
}

func (i *Item) setDishID(dishID kernel.UUID) error {
	if err := dishID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dishID", err)
	}
	i.dishID = dishID
	return nil
}

func (i *Item) setOptions(options []ItemOption) error {
	for _, o := range options {
		if strings.TrimSpace(o.Name) == "" {
			return errs.NewValueIsRequiredError("item option name")
		}
	}
	i.options = append([]ItemOption(nil), options...)
	return nil
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for idx, item := range items {
		out[idx] = Item{dishID: item.dishID, options: item.Options(), guard: item.guard}
	}
	return out
}

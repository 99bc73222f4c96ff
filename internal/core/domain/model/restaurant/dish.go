package restaurant

import (
	"errors"
	"strings"

	"github.com/beliemun/uber-backend/internal/core/domain/model/kernel"
	"github.com/beliemun/uber-backend/internal/pkg/errs"
	"github.com/beliemun/uber-backend/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

const (
	minDescriptionLength = 5
	maxDescriptionLength = 200
)

// Dish is a priced menu entry of one restaurant.
type Dish struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        decimal.Decimal
	description  string
	options      []Option

	guard guard.ConstructorGuard
}

// NewDish validates every field and copies the option catalogue so later
// changes to the caller's slice do not leak in.
//
// Rules:
//   - name is required (at most 100 characters)
//   - price must not be negative
//   - description is 5 to 200 characters
//   - every option and choice is named and none has a negative extra
func NewDish(
	id, restaurantID kernel.UUID,
	name string,
	price decimal.Decimal,
	description string,
	options []Option,
) (*Dish, error) {
	d := &Dish{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(id),
		d.setRestaurantID(restaurantID),
		d.setName(name),
		d.setPrice(price),
		d.setDescription(description),
		d.setOptions(options),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Dish) Validate() error {
	if d == nil {
		return ErrDishIsNotConstructed
	}
	return d.guard.Validate(ErrDishIsNotConstructed)
}

func (d *Dish) ID() kernel.UUID {
	return d.id
}

func (d *Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

func (d *Dish) Name() string {
	return d.name
}

func (d *Dish) Price() decimal.Decimal {
	return d.price
}

func (d *Dish) Description() string {
	return d.description
}

// Options returns a copy of the option catalogue.
func (d *Dish) Options() []Option {
	return cloneOptions(d.options)
}

// BelongsTo reports whether the dish is on restaurantID's menu.
func (d *Dish) BelongsTo(restaurantID kernel.UUID) bool {
	return d.restaurantID.IsEqual(restaurantID)
}

// DishPatch lists the fields an edit changes. Nil fields keep their value.
type DishPatch struct {
	Name        *string
	Price       *decimal.Decimal
	Description *string
	Options     *[]Option
}

// Edit applies patch with the same rules as NewDish. Either every field in
// the patch is applied or, on error, the dish is left unchanged.
func (d *Dish) Edit(patch DishPatch) error {
	if err := d.Validate(); err != nil {
		return err
	}

	changed := d.Clone()
	var errList []error
	if patch.Name != nil {
		errList = append(errList, changed.setName(*patch.Name))
	}
	if patch.Price != nil {
		errList = append(errList, changed.setPrice(*patch.Price))
	}
	if patch.Description != nil {
		errList = append(errList, changed.setDescription(*patch.Description))
	}
	if patch.Options != nil {
		errList = append(errList, changed.setOptions(*patch.Options))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	*d = *changed
	return nil
}

// Clone returns a copy that shares no option slices with d.
func (d *Dish) Clone() *Dish {
	c := *d
	c.options = cloneOptions(d.options)
	return &c
}

// OptionExtra resolves a chosen option to its extra price.
//
// The option is matched by exact name and the first match wins. A matched
// option with a non-zero flat extra costs that extra. Otherwise the choice
// is looked up in the option's choice list. Anything unmatched costs zero.
func (d *Dish) OptionExtra(optionName, choice string) decimal.Decimal {
	for _, o := range d.options {
		if o.Name == optionName {
			return o.extraFor(choice)
		}
	}
	return decimal.Zero
}

func (d *Dish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	d.restaurantID = restaurantID
	return nil
}

func (d *Dish) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	if n := len([]rune(name)); n > maxNameLength {
		return errs.NewValueIsOutOfRangeError("dish name length", n, minNameLength, maxNameLength)
	}
	d.name = name
	return nil
}

func (d *Dish) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price, 0, "unbounded")
	}
	d.price = price
	return nil
}

func (d *Dish) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if n := len([]rune(description)); n < minDescriptionLength || n > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", n, minDescriptionLength, maxDescriptionLength)
	}
	d.description = description
	return nil
}

func (d *Dish) setOptions(options []Option) error {
	for _, o := range options {
		if err := o.validate(); err != nil {
			return err
		}
	}
	d.options = cloneOptions(options)
	return nil
}

package restaurant

import (
	"strings"

	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Choice is one selectable value of an Option, e.g. "Large" under "Size".
type Choice struct {
	Name  string
	Extra decimal.Decimal
}

// Option is a customisation a dish offers. It either carries a flat Extra
// or a list of Choices with their own extras.
type Option struct {
	Name    string
	Extra   decimal.Decimal
	Choices []Choice
}

func (o Option) validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return errs.NewValueIsRequiredError("option name")
	}
	if o.Extra.IsNegative() {
		return errs.NewValueIsOutOfRangeError("option extra", o.Extra, 0, "unbounded")
	}
	for _, c := range o.Choices {
		if strings.TrimSpace(c.Name) == "" {
			return errs.NewValueIsRequiredError("choice name")
		}
		if c.Extra.IsNegative() {
			return errs.NewValueIsOutOfRangeError("choice extra", c.Extra, 0, "unbounded")
		}
	}
	return nil
}

// extraFor returns what choosing choice under o costs. A non-zero flat
// extra wins over the choice list. An unmatched choice costs nothing.
func (o Option) extraFor(choice string) decimal.Decimal {
	if !o.Extra.IsZero() {
		return o.Extra
	}
	for _, c := range o.Choices {
		if c.Name == choice {
			return c.Extra
		}
	}
	return decimal.Zero
}

func cloneOptions(options []Option) []Option {
	if len(options) == 0 {
		return nil
	}
	out := make([]Option, len(options))
	for i, o := range options {
		out[i] = o
		if len(o.Choices) > 0 {
			out[i].Choices = append([]Choice(nil), o.Choices...)
		}
	}
	return out
}

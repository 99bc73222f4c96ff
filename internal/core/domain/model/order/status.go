package order

import (
	"fmt"
	"strings"

	"github.com/beliemun/uber-backend/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
type Status int

const (
	// Unknown is the zero value. Query filters use it to mean "any status".
	Unknown Status = iota
	// Pending is set on creation and waits for the owner to start cooking.
	Pending
	// Cooking means the restaurant accepted the order.
	Cooking
	// Cooked means the order is ready and visible to the driver pool.
	Cooked
	// PickedUp means a driver collected the order.
	PickedUp
	// Delivered is final.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Cooking:   "Cooking",
		Cooked:    "Cooked",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Cooking, Cooked, PickedUp, Delivered}
}

// ParseStatus accepts the status names case-insensitively.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if strings.EqualFold(status.String(), s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate accepts the five lifecycle statuses and rejects everything else, Unknown included.
func (s Status) Validate() error {
	if s < Pending || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transition exists.
func (s Status) IsFinal() bool {
	return s == Delivered
}

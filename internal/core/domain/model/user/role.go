package user

import (
	"fmt"
	"strings"

	"github.com/beliemun/uber-backend/internal/pkg/errs"
)

// Role is the single role a user account holds. It drives every
// authorization decision in the ordering domain.
type Role int

const (
	// UnknownRole is the zero value and never valid.
	UnknownRole Role = iota
	// Client places orders and watches their progress.
	Client
	// Owner runs restaurants and cooks the orders placed with them.
	Owner
	// Driver picks up cooked orders and delivers them.
	Driver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Client:      "Client",
		Owner:       "Owner",
		Driver:      "Driver",
	}
}

// ParseRole accepts the role names case-insensitively.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != UnknownRole && strings.EqualFold(name, s) {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if r != Client && r != Owner && r != Driver {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

package kernel

import (
	"fmt"

	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString or UUIDFromGoogle")

// UUID identifies users, restaurants, dishes and orders.
//
// It is comparable, so it can be used as a map key and compared with ==,
// though IsEqual reads better at call sites. UUID implements
// encoding.TextMarshaler, which makes it render as its canonical string in
// JSON payloads and structured log attributes.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced, urn or hyphen-less forms.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("%q: %w", s, err))
	}
	return UUID{id: id}, nil
}

// UUIDFromGoogle adopts an identifier produced by a transport or storage
// layer. The nil UUID is rejected.
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

// MustUUID parses s and panics on failure. Intended for fixtures and seeds.
func MustUUID(s string) UUID {
	u, err := UUIDFromString(s)
	if err != nil {
		panic(err)
	}
	return u
}

func (u UUID) String() string {
	return u.id.String()
}

// Google exposes the wrapped value for adapters that speak google/uuid.
func (u UUID) Google() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// IsZero reports whether u was never constructed.
func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

func (u UUID) Validate() error {
	if u.IsZero() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

func (u UUID) MarshalText() ([]byte, error) {
	return u.id.MarshalText()
}

func (u *UUID) UnmarshalText(data []byte) error {
	parsed, err := UUIDFromString(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

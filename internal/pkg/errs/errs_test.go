package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/beliemun/uber-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderID", "42")

		assert.Equal(t, "orderID", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("dishID", "7", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: dishID, ID is: 7 (cause: record not found)",
			err.Error())
	})

	t.Run("non-string IDs are formatted", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("restaurantID", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("ValueIsInvalid", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")
		assert.Equal(t, "value is invalid: status", err.Error())

		withCause := errs.NewValueIsInvalidErrorWithCause("status", errors.New("unknown value"))
		assert.Equal(t, "value is invalid: status (cause: unknown value)", withCause.Error())
		require.ErrorIs(t, withCause, errs.ErrValueIsInvalid)
	})

	t.Run("ValueIsOutOfRange", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("description", 3, 5, 200)
		assert.Equal(t, "value is invalid: 3 is description, min value is 5, max value is 200", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		withCause := errs.NewValueIsOutOfRangeErrorWithCause("price", -1, 0, 1000, errors.New("negative"))
		assert.Equal(t,
			"value is invalid: -1 is price, min value is 0, max value is 1000 (cause: negative)",
			withCause.Error())
	})

	t.Run("ValueIsOutOfRange strips newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("name", "fried\nrice", 0, 10)
		assert.Contains(t, err.Error(), "fried rice")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("ValueIsRequired", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("items")
		assert.Equal(t, "value is required: items", err.Error())

		withCause := errs.NewValueIsRequiredErrorWithCause("items", errors.New("empty list"))
		assert.Equal(t, "value is required: items (cause: empty list)", withCause.Error())
		require.ErrorIs(t, withCause, errs.ErrValueIsRequired)
	})
}

func TestAccessErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "unauthenticated",
			err:      errs.NewUnauthenticatedError("missing credential"),
			sentinel: errs.ErrUnauthenticated,
			message:  "unauthenticated: missing credential",
		},
		{
			name:     "unauthenticated with cause",
			err:      errs.NewUnauthenticatedErrorWithCause("invalid token", errors.New("signature is invalid")),
			sentinel: errs.ErrUnauthenticated,
			message:  "unauthenticated: invalid token (cause: signature is invalid)",
		},
		{
			name:     "forbidden",
			err:      errs.NewForbiddenError("editOrder"),
			sentinel: errs.ErrForbidden,
			message:  "forbidden: editOrder",
		},
		{
			name:     "forbidden with cause",
			err:      errs.NewForbiddenErrorWithCause("takeOrder", errors.New("role is Client")),
			sentinel: errs.ErrForbidden,
			message:  "forbidden: takeOrder (cause: role is Client)",
		},
		{
			name:     "conflict",
			err:      errs.NewConflictError("driver already assigned"),
			sentinel: errs.ErrConflict,
			message:  "conflict: driver already assigned",
		},
		{
			name:     "conflict with cause",
			err:      errs.NewConflictErrorWithCause("driver already assigned", errors.New("0 rows affected")),
			sentinel: errs.ErrConflict,
			message:  "conflict: driver already assigned (cause: 0 rows affected)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "unauthenticated", errs.ErrUnauthenticated.Error())
	assert.Equal(t, "forbidden", errs.ErrForbidden.Error())
	assert.Equal(t, "conflict", errs.ErrConflict.Error())
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("take order: %w", errs.NewConflictError("driver already assigned"))

	require.ErrorIs(t, wrapped, errs.ErrConflict)
	require.NotErrorIs(t, wrapped, errs.ErrForbidden)

	var conflict *errs.ConflictError
	require.ErrorAs(t, wrapped, &conflict)
	assert.Equal(t, "driver already assigned", conflict.Reason)
}

func TestConflictErrorExposesCause(t *testing.T) {
	taken := errors.New("driver already assigned")
	duplicate := errors.New("duplicate key")

	err := fmt.Errorf("take order: %w", errs.NewConflictErrorWithCause("order 42", taken))

	require.ErrorIs(t, err, errs.ErrConflict)
	require.ErrorIs(t, err, taken)
	require.NotErrorIs(t, err, duplicate)
	require.NotErrorIs(t, errs.NewConflictError("order 42 already exists"), taken)
}

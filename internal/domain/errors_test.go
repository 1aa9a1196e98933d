package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldViolations(t *testing.T) {
	t.Run("add accumulates per field", func(t *testing.T) {
		v := FieldViolations{}
		v.Add("phone", "The phone field is required.")
		v.Add("phone", "The phone format is invalid.")
		assert.Len(t, v["phone"], 2)
	})

	t.Run("merge folds other set in", func(t *testing.T) {
		v := FieldViolations{}
		v.Add("phone", "The phone field is required.")

		other := FieldViolations{}
		other.Add("password", "The password field is required.")
		other.Add("phone", "The phone format is invalid.")

		v.Merge(other)
		assert.Len(t, v["phone"], 2)
		assert.Len(t, v["password"], 1)
	})
}

func TestValidationErrorUnwrap(t *testing.T) {
	v := FieldViolations{}
	v.Add("title", "The title field is required.")
	err := NewValidationError(v)

	assert.True(t, errors.Is(err, ErrValidation))

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, v, validationErr.Violations)
}

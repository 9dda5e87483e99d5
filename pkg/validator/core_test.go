package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/atelier/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins errors in insertion order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "cardNumber", Message: "Enter a valid 16-digit card number"})
		errs.Add(validator.ValidationError{Field: "cvc", Message: "Invalid CVC"})
		assert.Equal(t, "validation failed: cardNumber: Enter a valid 16-digit card number; cvc: Invalid CVC", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "neck", Message: "Must be at least 20cm"})
	errs.Add(validator.ValidationError{Field: "chest", Message: "Must be at most 160cm"})
	errs.Add(validator.ValidationError{Field: "neck", Message: "second"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("neck"))
	assert.False(t, errs.Has("waist"))
	assert.Equal(t, []string{"Must be at least 20cm", "second"}, errs.Get("neck"))
	assert.Len(t, errs.GetErrors("chest"), 1)
	assert.Equal(t, []string{"neck", "chest"}, errs.Fields())
	assert.Len(t, errs.GetTranslatableErrors(), 3)
}

func TestApply(t *testing.T) {
	t.Parallel()
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.MinNum("neck", 38.0, 20),
			validator.MaxNum("neck", 38.0, 60),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.MinNum("neck", 10.0, 20),
			validator.MinLenString("city", "A", 2),
			validator.ValidEmail("email", "jane@example.com"),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.NotNil(t, errs)
		assert.Equal(t, []string{"neck", "city"}, errs.Fields())
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestFirst(t *testing.T) {
	t.Parallel()
	t.Run("returns first failure and stops", func(t *testing.T) {
		evaluated := false
		failed, ok := validator.First(
			validator.MinNum("waist", 40.0, 50),
			validator.Rule{
				Check: func() bool { evaluated = true; return false },
				Error: validator.ValidationError{Field: "waist", Message: "never"},
			},
		)
		require.True(t, ok)
		assert.Equal(t, "waist", failed.Field)
		assert.Equal(t, "must be at least 50", failed.Message)
		assert.False(t, evaluated)
	})

	t.Run("passes", func(t *testing.T) {
		failed, ok := validator.First(validator.MinNum("waist", 80.0, 50))
		assert.False(t, ok)
		assert.Equal(t, validator.ValidationError{}, failed)
	})
}

func TestRule_WithMessage(t *testing.T) {
	t.Parallel()

	base := validator.MinNum("hips", 50.0, 60)
	custom := base.WithMessage("Must be at least 60cm")

	assert.Equal(t, "Must be at least 60cm", custom.Error.Message)
	assert.Equal(t, "validation.min", custom.Error.TranslationKey)
	assert.Equal(t, "must be at least 60", base.Error.Message, "original rule is untouched")
	assert.False(t, custom.Check())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "email", Message: "Please enter a valid email address."})

	wrapped := fmt.Errorf("profile: %w", errs)
	assert.True(t, validator.ExtractValidationErrors(wrapped).Has("email"))

	assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
	assert.Nil(t, validator.ExtractValidationErrors(nil))
}

func TestValidationErrors_Is(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.MinNum("inseam", 10.0, 50))
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
	assert.NotErrorIs(t, errors.New("other"), validator.ErrValidationFailed)
}

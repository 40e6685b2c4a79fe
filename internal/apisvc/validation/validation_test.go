package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email  string  `validate:"required,email"`
	Amount float64 `validate:"gt=0"`
	Status string  `validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func TestValidate(t *testing.T) {
	t.Run("valid struct returns nil", func(t *testing.T) {
		errs := Validate(sample{Email: "a@b.com", Amount: 10, Status: "ACTIVE"})
		assert.Nil(t, errs)
	})

	t.Run("collects every failed field", func(t *testing.T) {
		errs := Validate(sample{Email: "not-an-email", Amount: 0, Status: "GONE"})
		assert.Len(t, errs, 3)
	})

	t.Run("messages follow the tag", func(t *testing.T) {
		errs := Validate(sample{Email: "", Amount: 1})
		assert.Len(t, errs, 1)
		assert.Equal(t, "Email", errs[0].Field)
		assert.Equal(t, "required", errs[0].Type)
		assert.Equal(t, "This field is required", errs[0].Message)
	})

	t.Run("oneof message names the choices", func(t *testing.T) {
		errs := Validate(sample{Email: "a@b.com", Amount: 1, Status: "GONE"})
		assert.Len(t, errs, 1)
		assert.Equal(t, "Value must be one of: ACTIVE INACTIVE", errs[0].Message)
	})
}

func TestFirst(t *testing.T) {
	assert.Equal(t, "", First(nil))

	errs := []FieldError{
		{Field: "Email", Message: "Invalid email format", Type: "email"},
		{Field: "Amount", Message: "Value must be greater than 0", Type: "gt"},
	}
	assert.Equal(t, "Email: Invalid email format", First(errs))
}

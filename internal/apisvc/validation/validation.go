package validation

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is one failed constraint, shaped for the errors array of
// the response envelope.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Validate runs the struct tags on obj and returns nil when everything
// passes.
func Validate(obj any) []FieldError {
	var fieldErrors []FieldError

	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   err.Field(),
			Message: errorMsg(err),
			Type:    err.Tag(),
		})
	}

	return fieldErrors
}

func errorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "gt":
		return "Value must be greater than " + err.Param()
	case "gte":
		return "Value must be greater than or equal to " + err.Param()
	case "oneof":
		return "Value must be one of: " + err.Param()
	default:
		return "Invalid value"
	}
}

// First returns the first validation message, the shape the HTTP 422
// envelope leads with.
func First(errs []FieldError) string {
	if len(errs) == 0 {
		return ""
	}
	return errs[0].Field + ": " + errs[0].Message
}

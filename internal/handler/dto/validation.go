package dto

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// BindErrors converts a binding failure into per-field error messages keyed
// by the json field name. A malformed body (not a validation failure) yields
// nil so the handler can answer 400 instead of 422.
func BindErrors(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := toSnake(fe.Field())
		out[field] = append(out[field], fieldMessage(field, fe))
	}

	return out
}

// FieldErrors builds the validation envelope for a single hand-checked field,
// used where the check happens outside the binding layer (date parsing).
func FieldErrors(field, message string) ValidationErrorResponse {
	return ValidationErrorResponse{
		Message: message,
		Errors:  map[string][]string{field: {message}},
	}
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The %s must be one of: %s.", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

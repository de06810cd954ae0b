package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	chaterr "bate-papo/errors"
)

var validate = validator.New()

// validationError converts validator output into the domain taxonomy,
// keeping one entry per violated field so callers see every problem at
// once, not just the first.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return chaterr.FieldErrors{Fields: []string{err.Error()}}
	}
	return chaterr.FieldErrors{
		Fields: lo.Map(fieldErrs, func(fe validator.FieldError, _ int) string {
			return describeViolation(fe)
		}),
	}
}

func describeViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

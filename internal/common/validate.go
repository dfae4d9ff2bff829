package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs the struct's validation tags and converts the first
// failure into a validation error suitable for the HTTP layer.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if ok := errors.As(err, &verrs); ok && len(verrs) > 0 {
		fe := verrs[0]
		return NewError(ErrValidation, fmt.Sprintf("Invalid value for field '%s' (%s).", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return NewError(ErrValidation, "Invalid request payload.")
}

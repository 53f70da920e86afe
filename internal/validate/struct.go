package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// structValidate is shared by every Struct call. The field rules above are
// registered as the "letters" and "nationalid" tags.
var structValidate *validator.Validate

func init() {
	structValidate = validator.New(validator.WithRequiredStructEnabled())

	_ = structValidate.RegisterValidation("letters", func(fl validator.FieldLevel) bool {
		return IsValidName(fl.Field().String())
	})
	_ = structValidate.RegisterValidation("nationalid", func(fl validator.FieldLevel) bool {
		return IsValidNationalID(fl.Field().String())
	})
}

// Struct validates v against its `validate` struct tags and flattens the
// field errors into a single readable error.
func Struct(v any) error {
	err := structValidate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "letters":
		return fmt.Sprintf("%s: %v", fe.Field(), ErrInvalidName)
	case "nationalid":
		return fmt.Sprintf("%s: %v", fe.Field(), ErrInvalidNationalID)
	case "gte", "min":
		return fmt.Sprintf("%s must be >= %s (got %v)", fe.Field(), fe.Param(), fe.Value())
	case "lte", "max":
		return fmt.Sprintf("%s must be <= %s (got %v)", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
}

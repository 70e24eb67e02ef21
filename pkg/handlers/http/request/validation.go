package request

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check runs the struct tags and reports the first failing field by its JSON name.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, fe.Field())
	case "url", "http_url":
		return fmt.Errorf("%w: %s must be a valid URL", domain.ErrInvalidInput, fe.Field())
	case "email":
		return fmt.Errorf("%w: %s must be a valid email", domain.ErrInvalidInput, fe.Field())
	case "oneof":
		return fmt.Errorf("%w: %s must be one of [%s]", domain.ErrInvalidInput, fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%w: %s failed %s=%s", domain.ErrInvalidInput, fe.Field(), fe.Tag(), fe.Param())
	}
}

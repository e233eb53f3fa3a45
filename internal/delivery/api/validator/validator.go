// Package validator adapts go-playground/validator to echo and to the domain validation error.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	_ = validate.RegisterValidation("period_month", func(fl validator.FieldLevel) bool {
		month := fl.Field().Int()

		return month >= 1 && month <= 12
	})

	return &RequestValidator{validate: validate}
}

// Validate returns a *domainerrors.ValidationError listing every failed field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "validate request")
	}

	verr := domainerrors.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe), message(fe))
	}

	return verr
}

// fieldPath drops the root struct name: "CreateOrderInput.items[0].quantity" -> "items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	if _, path, found := strings.Cut(fe.Namespace(), "."); found {
		return path
	}

	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return bound("at least", fe)
	case "max":
		return bound("at most", fe)
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "period_month":
		return "must be a month between 1 and 12"
	default:
		return "is invalid"
	}
}

func bound(qualifier string, fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return fmt.Sprintf("must be %s %s characters", qualifier, fe.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("must contain %s %s item(s)", qualifier, fe.Param())
	default:
		return fmt.Sprintf("must be %s %s", qualifier, fe.Param())
	}
}

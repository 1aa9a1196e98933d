package api

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/profel/inventory-api/internal/domain"
)

// birthDateLayout is the accepted birth date format.
const birthDateLayout = "2006-01-02"

// phoneRegexp accepts only normalized local numbers: country code 998
// followed by nine digits.
var phoneRegexp = regexp.MustCompile(`^998\d{9}$`)

// Validator wraps go-playground/validator and renders rule failures as
// the field violation map carried by the 422 envelope.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds the shared request validator: field names come
// from json tags, decimal amounts validate as numbers, and the "phone"
// rule enforces the normalized number format.
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegexp.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return &Validator{validate: v}
}

// Check validates the request struct against its tags. Returns nil when
// valid, otherwise the per-field violation messages.
func (v *Validator) Check(req any) domain.FieldViolations {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		violations := domain.FieldViolations{}
		violations.Add("request", "The request is invalid.")
		return violations
	}

	violations := domain.FieldViolations{}
	for _, fe := range validationErrs {
		violations.Add(fe.Field(), violationMessage(fe))
	}
	return violations
}

// violationMessage renders one rule failure as a human-readable message.
func violationMessage(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")

	switch fe.Tag() {
	case "required":
		return "The " + field + " field is required."
	case "max":
		if fe.Kind() == reflect.String {
			return "The " + field + " must not be greater than " + fe.Param() + " characters."
		}
		return "The " + field + " must not be greater than " + fe.Param() + "."
	case "min":
		if fe.Kind() == reflect.String {
			return "The " + field + " must be at least " + fe.Param() + " characters."
		}
		return "The " + field + " must be at least " + fe.Param() + "."
	case "gte":
		return "The " + field + " must be at least " + fe.Param() + "."
	case "oneof":
		return "The selected " + field + " is invalid."
	case "email":
		return "The " + field + " must be a valid email address."
	case "numeric":
		return "The " + field + " must be a number."
	case "datetime":
		return "The " + field + " does not match the format Y-m-d."
	case "phone":
		return "The " + field + " format is invalid."
	default:
		return "The " + field + " is invalid."
	}
}

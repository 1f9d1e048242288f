package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report errors under the json field name so the wire shape matches
	// what clients sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors maps validator errors to the {field: [messages]}
// wire shape.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string][]string {
	errors := make(map[string][]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			var message string
			switch e.Tag() {
			case "required":
				message = "This field is required."
			case "email":
				message = "Enter a valid email address."
			case "oneof":
				message = "Is not a valid choice. Valid choices are: " + e.Param() + "."
			case "gt":
				message = capitalize(field) + " must be greater than " + e.Param() + "."
			case "eqfield":
				message = "Password fields didn't match."
			case "max":
				message = "Ensure this field has no more than " + e.Param() + " characters."
			default:
				message = "This value is invalid."
			}
			errors[field] = append(errors[field], message)
		}
	}

	return errors
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

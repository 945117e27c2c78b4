package httpx

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report errors under the wire field name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates a request DTO and returns field errors keyed by
// field name, or nil when the struct is valid.
func ValidateStruct(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string][]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := fieldErr.Field()
		param := fieldErr.Param()

		var message string
		switch fieldErr.Tag() {
		case "required":
			message = fmt.Sprintf("The %s field is required.", field)
		case "email":
			message = fmt.Sprintf("The %s must be a valid email address.", field)
		case "min":
			message = fmt.Sprintf("The %s must be at least %s characters.", field, param)
		case "max":
			message = fmt.Sprintf("The %s may not be greater than %s characters.", field, param)
		case "eqfield":
			message = fmt.Sprintf("The %s confirmation does not match.", strings.ToLower(param))
		default:
			message = fmt.Sprintf("The %s field is invalid.", field)
		}

		fieldErrors[field] = append(fieldErrors[field], message)
	}

	return fieldErrors
}

package commonValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors flattens validator/v10 errors into a field -> message map
func ValidationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if err == nil {
		return errors
	}
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrors {
			field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
			switch fe.Tag() {
			case "required":
				errors[field] = "This field is required!"
			case "email":
				errors[field] = "Invalid email!"
			case "min":
				errors[field] = "Value is too short!"
			case "max":
				errors[field] = "Value is too long!"
			case "oneof":
				errors[field] = "Value must be one of: " + fe.Param() + "!"
			case "gt":
				errors[field] = "Value must be greater than " + fe.Param() + "!"
			default:
				errors[field] = "Invalid value!"
			}
		}
	} else {
		errors["body"] = "Invalid request body!"
	}
	return errors
}

package validation

import (
	"strings"

	"github.com/blaisecz/health-trends/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Non-blank string, used for identifiers taken from query and path parameters
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []problem.FieldError{{Field: "body", Message: "is invalid"}}
	}

	var fieldErrors []problem.FieldError
	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   fieldPath(err.Namespace()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

// Var validates a single value against tag, reporting errors under field.
func Var(field string, value interface{}, tag string) []problem.FieldError {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return []problem.FieldError{{Field: field, Message: "is invalid"}}
	}
	return []problem.FieldError{{Field: field, Message: getValidationMessage(validationErrors[0])}}
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "notblank":
		return "must not be blank"
	default:
		return "is invalid"
	}
}

// fieldPath turns "IngestRecordsRequest.Records[3]" into "records[3]".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	parts := strings.Split(namespace, ".")
	for i, p := range parts {
		parts[i] = toSnakeCase(p)
	}
	return strings.Join(parts, ".")
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}

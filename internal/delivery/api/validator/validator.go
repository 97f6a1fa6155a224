// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strconv"
	"strings"

	"todolist/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// tagBcryptLen limits a string to the bytes bcrypt will hash; max counts runes.
const tagBcryptLen = "bcryptlen"

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their JSON or form name.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})
	_ = validate.RegisterValidation(tagBcryptLen, validateBcryptLen)

	return &CustomValidator{validate: validate}
}

func validateBcryptLen(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= service.MaxPasswordBytes
}

// Validate checks i against its `validate` struct tags.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// Describe renders validation errors as "field: problem" pairs separated by "; ".
// Other errors are returned as their message.
func Describe(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		parts = append(parts, fieldErr.Field()+": "+describeTag(fieldErr))
	}

	return strings.Join(parts, "; ")
}

func describeTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fieldErr.Param() + " characters"
	case "max":
		return "must be at most " + fieldErr.Param() + " characters"
	case tagBcryptLen:
		return "must be at most " + strconv.Itoa(service.MaxPasswordBytes) + " bytes"
	default:
		return "failed " + fieldErr.Tag() + " validation"
	}
}

// Package validator
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"loginflow/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type Validator interface {
	Validate(payload any) map[string]string
}

type structValidator struct {
	validate *validator.Validate
}

func New() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("validator: register notblank: %v", err))
	}

	return &structValidator{validate: v}
}

// Validate returns one message per failing field, or nil when payload is valid.
func (s *structValidator) Validate(payload any) map[string]string {
	err := s.validate.Struct(payload)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["_"] = "The payload could not be validated."
		return errors
	}

	for _, fe := range validationErrors {
		fieldName := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required", "notblank":
			errors[fieldName] = fmt.Sprintf("The %s field is required.", fe.Field())
		case "email":
			errors[fieldName] = fmt.Sprintf("The %s must be a valid email address.", fe.Field())
		case "min":
			errors[fieldName] = fmt.Sprintf("The %s must be at least %s characters.", fe.Field(), fe.Param())
		case "max":
			errors[fieldName] = fmt.Sprintf("The %s must be at most %s characters.", fe.Field(), fe.Param())
		default:
			errors[fieldName] = fmt.Sprintf("The %s field is invalid.", fe.Field())
		}
	}

	return errors
}

// Credentials checks login input before it reaches the use case.
type Credentials struct {
	v Validator
}

func NewCredentials(v Validator) *Credentials {
	if v == nil {
		v = New()
	}
	return &Credentials{v: v}
}

func (c *Credentials) Validate(creds domain.Credentials) *domain.ValidationError {
	errs := c.v.Validate(creds)
	if len(errs) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: errs}
}

// Package validation checks inbound contact-form payloads against the
// required-field schema before anything else touches them. It is the only
// place the untyped request body is trusted to become a typed value.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ContactForm is the expected shape of a contact form submission.
// Only name and email are required; everything else is free-form.
type ContactForm struct {
	Name         string `json:"name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	SpaceType    string `json:"spaceType"`
	CustomerSize string `json:"customerSize"`
	Message      string `json:"message"`
}

// FieldError describes a single validation failure, tagged with the JSON
// field name so the frontend can highlight the exact input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the JSON name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the form and returns every field-level failure at once,
// not just the first. A nil return means the form is valid.
func Validate(form *ContactForm) []FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	errs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return "Must be at least " + fe.Param() + " characters."
	case "email":
		return "Must be a valid email address."
	default:
		return "Invalid value."
	}
}

package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports field errors keyed by the `form` tag of the failing field.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type quoteRequestForm struct {
	Name        string `form:"name" validate:"required,max=200"`
	Email       string `form:"email" validate:"required,email,max=254"`
	Company     string `form:"company" validate:"max=200"`
	HoursPerDay string `form:"hours_per_day" validate:"required,oneof=8 12 24"`
	DaysPerWeek string `form:"days_per_week" validate:"required,oneof=5 6 7"`
}

type assessmentForm struct {
	Coverage   string `form:"coverage" validate:"required,oneof=business_hours extended 24/7"`
	Compliance string `form:"compliance" validate:"required,oneof=standard moderate strict"`
	CallVolume string `form:"callVolume" validate:"required,oneof=low medium high"`
}

type ticketForm struct {
	Subject  string `form:"subject" validate:"required,max=200"`
	Priority string `form:"priority" validate:"required,oneof=Low Medium High Urgent"`
}

type businessDetailsForm struct {
	BusinessName       string   `form:"business_name" validate:"required,max=200"`
	RegistrationNumber string   `form:"registration_number" validate:"max=50"`
	PhoneNumbers       []string `form:"phone_numbers" validate:"max=10,dive,min=5,max=30"`
	Address            string   `form:"address" validate:"max=500"`
}

type companyOverviewForm struct {
	Website   string   `form:"website" validate:"omitempty,url,max=300"`
	Summary   string   `form:"summary" validate:"max=2000"`
	KeyPoints []string `form:"key_points" validate:"max=20,dive,max=300"`
}

type serviceOverrideForm struct {
	Name        string `form:"name" validate:"max=80"`
	Description string `form:"description" validate:"max=500"`
}

type apiKeyForm struct {
	APIKey string `form:"api_key" validate:"required,min=8,max=512"`
}

type chatForm struct {
	Prompt string `form:"prompt" validate:"required,max=4000"`
}

// validateForm runs the struct validator and flattens failures into
// field -> message. A nil map means the form is valid.
func validateForm(form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_form": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		// dive errors are reported as name[i]; show them on the list field.
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if _, exists := out[field]; exists {
			continue
		}
		out[field] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "url":
		return "Enter a full URL, e.g. https://example.com"
	case "oneof":
		return "Choose one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Add at least %s entries", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("At most %s entries", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	default:
		return "Invalid value"
	}
}

// splitLines turns a textarea into trimmed, non-empty lines.
func splitLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func isHTMX(r interface{ Get(string) string }) bool {
	return r.Get("HX-Request") == "true"
}

package handlers

import (
	"net/http"
	"slices"
	"strings"
	"testing"
)

func TestValidateForm_Valid(t *testing.T) {
	form := quoteRequestForm{
		Name:        "Maria",
		Email:       "maria@example.com",
		HoursPerDay: "12",
		DaysPerWeek: "6",
	}
	if errs := validateForm(form); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateForm_UsesFormTagNames(t *testing.T) {
	errs := validateForm(quoteRequestForm{Email: "nope", HoursPerDay: "9"})

	want := map[string]string{
		"name":          "This field is required",
		"email":         "Enter a valid email address",
		"hours_per_day": "Choose one of: 8, 12, 24",
		"days_per_week": "This field is required",
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("errs[%q] = %q, want %q", field, errs[field], msg)
		}
	}
	if len(errs) != len(want) {
		t.Errorf("unexpected extra errors: %v", errs)
	}
}

func TestValidateForm_DiveErrorsUseListField(t *testing.T) {
	errs := validateForm(businessDetailsForm{
		BusinessName: "Acme",
		PhoneNumbers: []string{"+31 20 555 0100", "12"},
	})
	if errs["phone_numbers"] != "Must be at least 5 characters" {
		t.Errorf("phone_numbers error = %q", errs["phone_numbers"])
	}
}

func TestValidateForm_SliceLength(t *testing.T) {
	points := make([]string, 21)
	for i := range points {
		points[i] = "point"
	}
	errs := validateForm(companyOverviewForm{KeyPoints: points})
	if errs["key_points"] != "At most 20 entries" {
		t.Errorf("key_points error = %q", errs["key_points"])
	}
}

func TestValidateForm_OptionalWebsite(t *testing.T) {
	if errs := validateForm(companyOverviewForm{}); errs != nil {
		t.Errorf("blank website should be valid, got %v", errs)
	}
	if errs := validateForm(companyOverviewForm{Website: strings.Repeat("a", 10)}); errs["website"] == "" {
		t.Error("expected a url error")
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines(" one \n\n two\r\n   \nthree")
	want := []string{"one", "two", "three"}
	if !slices.Equal(got, want) {
		t.Errorf("splitLines = %v, want %v", got, want)
	}
	if got := splitLines(""); got == nil || len(got) != 0 {
		t.Errorf("splitLines(\"\") = %#v, want empty non-nil slice", got)
	}
}

func TestIsHTMX(t *testing.T) {
	h := http.Header{}
	if isHTMX(h) {
		t.Error("expected false without header")
	}
	h.Set("HX-Request", "true")
	if !isHTMX(h) {
		t.Error("expected true with HX-Request: true")
	}
}

package services

import (
	"slices"
	"strconv"
	"strings"
)

// HourlyRate is the per-agent-hour price of the public quote form.
const HourlyRate = 28

// WeeksPerMonth approximates a month for hour-based quotes.
const WeeksPerMonth = 4

// HoursPerDayOptions and DaysPerWeekOptions are the form's closed choices.
var (
	HoursPerDayOptions = []int{8, 12, 24}
	DaysPerWeekOptions = []int{5, 6, 7}
)

// SimpleQuote is the monthly price for a fixed coverage window.
type SimpleQuote struct {
	HoursPerDay     int
	DaysPerWeek     int
	TotalHours      int
	BasePrice       float64
	DiscountRate    float64
	Discount        float64
	DiscountedPrice float64
	VAT             float64
	Total           float64
}

// CalculateSimpleQuote prices a coverage window from the raw form values.
// It returns nil while either value is missing or not one of the offered
// options; the form is simply not complete yet.
func CalculateSimpleQuote(hoursPerDay, daysPerWeek string) *SimpleQuote {
	hours, ok := parseOption(hoursPerDay, HoursPerDayOptions)
	if !ok {
		return nil
	}
	days, ok := parseOption(daysPerWeek, DaysPerWeekOptions)
	if !ok {
		return nil
	}

	totalHours := hours * days * WeeksPerMonth
	base := round2(float64(totalHours * HourlyRate))

	var rate float64
	switch {
	case hours == 24 && days == 7:
		rate = 0.10
	case hours >= 12:
		rate = 0.05
	}
	discount := round2(base * rate)
	discounted := round2(base - discount)
	vat := round2(discounted * VATRate)

	return &SimpleQuote{
		HoursPerDay:     hours,
		DaysPerWeek:     days,
		TotalHours:      totalHours,
		BasePrice:       base,
		DiscountRate:    rate,
		Discount:        discount,
		DiscountedPrice: discounted,
		VAT:             vat,
		Total:           round2(discounted + vat),
	}
}

func parseOption(raw string, options []int) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || !slices.Contains(options, n) {
		return 0, false
	}
	return n, true
}

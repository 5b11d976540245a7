// Package services provides pricing, assessment scoring, service
// configuration and quote export for the call-center offering.
package services

import (
	"fmt"
	"math"

	"callcenter/catalog"
	"callcenter/profile"
)

// VATRate is applied to every quote the site produces.
const VATRate = 0.21

// Uplift tables keyed by assessment answer. Missing answers add nothing.
var (
	CoverageUplift = map[string]float64{
		"business_hours": 0,
		"extended":       0.2,
		"24/7":           0.4,
	}
	ComplianceUplift = map[string]float64{
		"standard": 0,
		"moderate": 0.1,
		"strict":   0.25,
	}
	CallVolumeUplift = map[string]float64{
		"low":    0,
		"medium": 0.15,
		"high":   0.35,
	}
)

// QuoteLineItem is one priced row of a quote.
type QuoteLineItem struct {
	Label  string
	Amount float64
	Note   string
}

// QuoteBreakdown is a monthly price breakdown derived from a profile.
type QuoteBreakdown struct {
	Tier                  catalog.Tier
	LineItems             []QuoteLineItem
	Subtotal              float64 // platform + modules, before uplift
	UpliftFactor          float64
	AdjustedSubtotal      float64 // after uplift, before discount
	DiscountRate          float64
	Discount              float64
	SubtotalAfterDiscount float64
	SetupFee              float64
	VAT                   float64
	Total                 float64
	Assumptions           []string
}

// round2 rounds to cents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BundleDiscountRate returns the discount for the number of selected services.
func BundleDiscountRate(serviceCount int) float64 {
	switch {
	case serviceCount >= 3:
		return 0.10
	case serviceCount == 2:
		return 0.05
	default:
		return 0
	}
}

type upliftDimension struct {
	answerKey string
	label     string
	table     map[string]float64
}

var upliftDimensions = []upliftDimension{
	{profile.AnswerCoverage, "Coverage", CoverageUplift},
	{profile.AnswerCompliance, "Compliance", ComplianceUplift},
	{profile.AnswerCallVolume, "Call volume", CallVolumeUplift},
}

// CalculateBuilderQuote prices the profile's tier and selected services.
// Uplifts are summed into one factor applied to the whole subtotal; the
// bundle discount is taken from the uplifted amount. Amounts are rounded to
// cents after uplift, after discount and after VAT.
func CalculateBuilderQuote(p profile.ClientProfile) QuoteBreakdown {
	tier := catalog.DefaultTier
	if p.AssessmentResult != nil && p.AssessmentResult.SuggestedTier != "" {
		tier = p.AssessmentResult.SuggestedTier
	}
	tierInfo, ok := catalog.LookupTier(tier)
	if !ok {
		tier = catalog.DefaultTier
		tierInfo, _ = catalog.LookupTier(tier)
	}

	items := []QuoteLineItem{{
		Label:  fmt.Sprintf("%s platform", tierInfo.Name),
		Amount: tierInfo.PlatformFee,
		Note:   "Monthly base fee",
	}}
	subtotal := tierInfo.PlatformFee
	for _, key := range p.SelectedServices {
		svc, ok := catalog.LookupService(key)
		if !ok {
			continue
		}
		items = append(items, QuoteLineItem{Label: svc.Name, Amount: svc.MonthlyFee})
		subtotal += svc.MonthlyFee
	}

	var assumptions []string
	if p.AssessmentResult == nil {
		assumptions = append(assumptions, fmt.Sprintf("No assessment on file; priced at the %s tier", tierInfo.Name))
	}

	uplift := 0.0
	for _, dim := range upliftDimensions {
		answer := p.Answer(dim.answerKey)
		if answer == "" {
			continue
		}
		u, known := dim.table[answer]
		uplift += u
		switch {
		case !known:
			assumptions = append(assumptions, fmt.Sprintf("%s: %s (not recognised, no uplift)", dim.label, answer))
		case u == 0:
			assumptions = append(assumptions, fmt.Sprintf("%s: %s (no uplift)", dim.label, answer))
		default:
			assumptions = append(assumptions, fmt.Sprintf("%s: %s (+%d%%)", dim.label, answer, percent(u)))
		}
	}
	factor := 1 + uplift
	adjusted := round2(subtotal * factor)

	rate := BundleDiscountRate(len(p.SelectedServices))
	discount := round2(adjusted * rate)
	afterDiscount := round2(adjusted - discount)
	if rate > 0 {
		assumptions = append(assumptions, fmt.Sprintf("Bundle discount of %d%% for %d services", percent(rate), len(p.SelectedServices)))
	}

	setup := tierInfo.SetupFee
	vat := round2((afterDiscount + setup) * VATRate)
	total := round2(afterDiscount + setup + vat)

	return QuoteBreakdown{
		Tier:                  tier,
		LineItems:             items,
		Subtotal:              round2(subtotal),
		UpliftFactor:          factor,
		AdjustedSubtotal:      adjusted,
		DiscountRate:          rate,
		Discount:              discount,
		SubtotalAfterDiscount: afterDiscount,
		SetupFee:              setup,
		VAT:                   vat,
		Total:                 total,
		Assumptions:           assumptions,
	}
}

func percent(rate float64) int {
	return int(math.Round(rate * 100))
}

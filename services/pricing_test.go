package services

import (
	"math"
	"reflect"
	"testing"

	"callcenter/catalog"
	"callcenter/profile"
)

func professionalProfile() profile.ClientProfile {
	p := profile.Defaults(testTime)
	p.SelectedServices = []catalog.ServiceKey{catalog.AIAgentCalling, catalog.LiveChat, catalog.Analytics}
	p.AssessmentAnswers = map[string]string{
		profile.AnswerCoverage:   "24/7",
		profile.AnswerCompliance: "strict",
		profile.AnswerCallVolume: "high",
	}
	p.AssessmentResult = &profile.AssessmentResult{SuggestedTier: catalog.TierProfessional}
	return p
}

func TestCalculateBuilderQuote_ProfessionalScenario(t *testing.T) {
	q := CalculateBuilderQuote(professionalProfile())

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"Subtotal", q.Subtotal, 2449},
		{"UpliftFactor", q.UpliftFactor, 2.0},
		{"AdjustedSubtotal", q.AdjustedSubtotal, 4898.00},
		{"Discount", q.Discount, 489.80},
		{"SubtotalAfterDiscount", q.SubtotalAfterDiscount, 4408.20},
		{"SetupFee", q.SetupFee, 1200},
		{"VAT", q.VAT, 1177.72},
		{"Total", q.Total, 6785.92},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 0.001 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if q.Tier != catalog.TierProfessional {
		t.Errorf("Tier = %q, want professional", q.Tier)
	}
	if len(q.LineItems) != 4 {
		t.Fatalf("expected 4 line items (platform + 3 modules), got %d", len(q.LineItems))
	}
	if q.LineItems[0].Amount != 1299 {
		t.Errorf("platform line = %v, want 1299", q.LineItems[0].Amount)
	}
	if q.DiscountRate != 0.10 {
		t.Errorf("DiscountRate = %v, want 0.10", q.DiscountRate)
	}
}

func TestCalculateBuilderQuote_VATInvariant(t *testing.T) {
	profiles := []profile.ClientProfile{
		profile.Defaults(testTime),
		professionalProfile(),
	}

	extended := profile.Defaults(testTime)
	extended.SelectedServices = []catalog.ServiceKey{catalog.EmailSupport, catalog.CRMIntegration}
	extended.AssessmentAnswers = map[string]string{profile.AnswerCoverage: "extended", profile.AnswerCallVolume: "medium"}
	extended.AssessmentResult = &profile.AssessmentResult{SuggestedTier: catalog.TierEnterprise}
	profiles = append(profiles, extended)

	odd := profile.Defaults(testTime)
	odd.SelectedServices = []catalog.ServiceKey{catalog.QualityMonitoring}
	odd.AssessmentAnswers = map[string]string{profile.AnswerCompliance: "moderate"}
	profiles = append(profiles, odd)

	for i, p := range profiles {
		q := CalculateBuilderQuote(p)
		if math.Abs(q.Total-(q.SubtotalAfterDiscount+q.SetupFee+q.VAT)) > 0.001 {
			t.Errorf("profile %d: total %v != %v + %v + %v", i, q.Total, q.SubtotalAfterDiscount, q.SetupFee, q.VAT)
		}
		wantVAT := round2((q.SubtotalAfterDiscount + q.SetupFee) * VATRate)
		if q.VAT != wantVAT {
			t.Errorf("profile %d: VAT = %v, want %v", i, q.VAT, wantVAT)
		}
	}
}

func TestCalculateBuilderQuote_Pure(t *testing.T) {
	p := professionalProfile()
	a := CalculateBuilderQuote(p)
	b := CalculateBuilderQuote(p)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same input produced different output:\n%+v\n%+v", a, b)
	}
}

func TestCalculateBuilderQuote_DefaultsToStarter(t *testing.T) {
	q := CalculateBuilderQuote(profile.Defaults(testTime))

	if q.Tier != catalog.TierStarter {
		t.Errorf("Tier = %q, want starter", q.Tier)
	}
	// 599 platform, no modules, no uplift, no discount, 500 setup
	if q.AdjustedSubtotal != 599 {
		t.Errorf("AdjustedSubtotal = %v, want 599", q.AdjustedSubtotal)
	}
	if math.Abs(q.VAT-230.79) > 0.001 {
		t.Errorf("VAT = %v, want 230.79", q.VAT)
	}
	if math.Abs(q.Total-1329.79) > 0.001 {
		t.Errorf("Total = %v, want 1329.79", q.Total)
	}
	if len(q.Assumptions) == 0 {
		t.Error("expected an assumption about the missing assessment")
	}
}

func TestCalculateBuilderQuote_UnknownServiceContributesZero(t *testing.T) {
	p := profile.Defaults(testTime)
	p.SelectedServices = []catalog.ServiceKey{catalog.LiveChat, "carrier_pigeon"}

	q := CalculateBuilderQuote(p)

	if q.Subtotal != 599+300 {
		t.Errorf("Subtotal = %v, want %v", q.Subtotal, 599+300)
	}
	if len(q.LineItems) != 2 {
		t.Errorf("expected unknown service to have no line item, got %d items", len(q.LineItems))
	}
}

func TestCalculateBuilderQuote_UnknownAnswerNoUplift(t *testing.T) {
	p := profile.Defaults(testTime)
	p.AssessmentAnswers = map[string]string{profile.AnswerCoverage: "whenever"}

	q := CalculateBuilderQuote(p)

	if q.UpliftFactor != 1 {
		t.Errorf("UpliftFactor = %v, want 1", q.UpliftFactor)
	}
	found := false
	for _, a := range q.Assumptions {
		if a == "Coverage: whenever (not recognised, no uplift)" {
			found = true
		}
	}
	if !found {
		t.Errorf("assumptions = %v, want unrecognised coverage note", q.Assumptions)
	}
}

func TestCalculateBuilderQuote_UpliftsSumNotCompound(t *testing.T) {
	p := profile.Defaults(testTime)
	p.AssessmentAnswers = map[string]string{
		profile.AnswerCoverage:   "extended",
		profile.AnswerCallVolume: "medium",
	}
	q := CalculateBuilderQuote(p)

	// 599 * (1 + 0.2 + 0.15) = 808.65; compounding would give 826.62
	if math.Abs(q.AdjustedSubtotal-808.65) > 0.001 {
		t.Errorf("AdjustedSubtotal = %v, want 808.65", q.AdjustedSubtotal)
	}
}

func TestBundleDiscountRate(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, 0},
		{1, 0},
		{2, 0.05},
		{3, 0.10},
		{7, 0.10},
	}
	for _, tt := range tests {
		if got := BundleDiscountRate(tt.count); got != tt.want {
			t.Errorf("BundleDiscountRate(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestCalculateBuilderQuote_DiscountMonotonicity(t *testing.T) {
	// Same fixed uplift and tier; the effective multiplier on the uplifted
	// subtotal must fall as the bundle grows.
	multiplier := func(services ...catalog.ServiceKey) float64 {
		p := profile.Defaults(testTime)
		p.SelectedServices = services
		p.AssessmentAnswers = map[string]string{profile.AnswerCoverage: "extended"}
		q := CalculateBuilderQuote(p)
		return q.SubtotalAfterDiscount / q.AdjustedSubtotal
	}

	none := multiplier()
	one := multiplier(catalog.LiveChat)
	two := multiplier(catalog.LiveChat, catalog.Analytics)
	three := multiplier(catalog.LiveChat, catalog.Analytics, catalog.EmailSupport)

	if math.Abs(none-one) > 1e-9 {
		t.Errorf("0 and 1 services should share a multiplier: %v vs %v", none, one)
	}
	if !(two < one) {
		t.Errorf("2 services multiplier %v should be below 1 service %v", two, one)
	}
	if !(three < two) {
		t.Errorf("3 services multiplier %v should be below 2 services %v", three, two)
	}
}

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sensitiveProfile() ClientProfile {
	p := Defaults(newFakeClock().Now())
	p.BusinessDetails = &BusinessDetails{
		BusinessName:       "Acme BV",
		RegistrationNumber: "NL123",
		PhoneNumbers:       []string{"+31 1", "+31 2"},
		Address:            "Damrak 1",
	}
	p.CompanyOverview = &CompanyOverview{Website: "https://acme.example", Summary: "Anvils"}
	p.AssessmentAnswers = map[string]string{AnswerCoverage: "24/7"}
	return p
}

func TestRedact_DefaultFields(t *testing.T) {
	p := sensitiveProfile()

	got := Redact(p, DefaultRedactFields...)

	assert.Equal(t, "Acme BV", got.BusinessDetails.BusinessName)
	assert.Equal(t, RedactedValue, got.BusinessDetails.RegistrationNumber)
	assert.Equal(t, []string{RedactedValue, RedactedValue}, got.BusinessDetails.PhoneNumbers)
	assert.Equal(t, RedactedValue, got.BusinessDetails.Address)
	assert.Equal(t, RedactedValue, got.CompanyOverview.Website)
	assert.Equal(t, "Anvils", got.CompanyOverview.Summary)
	assert.Equal(t, "24/7", got.AssessmentAnswers[AnswerCoverage])
}

func TestRedact_DoesNotModifyInput(t *testing.T) {
	p := sensitiveProfile()
	_ = Redact(p, RedactPhoneNumbers, RedactAssessmentAnswers)

	assert.Equal(t, "+31 1", p.BusinessDetails.PhoneNumbers[0])
	assert.Equal(t, "24/7", p.AssessmentAnswers[AnswerCoverage])
}

func TestRedact_MissingSubObjects(t *testing.T) {
	p := Defaults(newFakeClock().Now())
	got := Redact(p, DefaultRedactFields...)
	assert.Nil(t, got.BusinessDetails)
	assert.Nil(t, got.CompanyOverview)
}

func TestRedact_EmptyOptionalFieldsStayEmpty(t *testing.T) {
	p := Defaults(newFakeClock().Now())
	p.BusinessDetails = &BusinessDetails{BusinessName: "Solo", PhoneNumbers: []string{}}
	got := Redact(p, RedactRegistrationNumber, RedactAddress)
	assert.Empty(t, got.BusinessDetails.RegistrationNumber)
	assert.Empty(t, got.BusinessDetails.Address)
}

func TestParseRedactFields(t *testing.T) {
	fields, err := ParseRedactFields([]string{" businessDetails.address ", "", "assessmentAnswers"})
	require.NoError(t, err)
	assert.Equal(t, []RedactField{RedactAddress, RedactAssessmentAnswers}, fields)

	_, err = ParseRedactFields([]string{"businessDetails.businessName"})
	assert.Error(t, err)
}

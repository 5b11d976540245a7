package profile

import (
	"fmt"
	"strings"
)

// RedactedValue replaces every blanked string.
const RedactedValue = "[redacted]"

// RedactField names one sensitive profile field that may be blanked.
type RedactField string

const (
	RedactRegistrationNumber RedactField = "businessDetails.registrationNumber"
	RedactPhoneNumbers       RedactField = "businessDetails.phoneNumbers"
	RedactAddress            RedactField = "businessDetails.address"
	RedactWebsite            RedactField = "companyOverview.website"
	RedactAssessmentAnswers  RedactField = "assessmentAnswers"
)

// DefaultRedactFields covers everything that identifies the business.
var DefaultRedactFields = []RedactField{
	RedactRegistrationNumber,
	RedactPhoneNumbers,
	RedactAddress,
	RedactWebsite,
}

var redactors = map[RedactField]func(p *ClientProfile){
	RedactRegistrationNumber: func(p *ClientProfile) {
		if p.BusinessDetails != nil && p.BusinessDetails.RegistrationNumber != "" {
			p.BusinessDetails.RegistrationNumber = RedactedValue
		}
	},
	RedactPhoneNumbers: func(p *ClientProfile) {
		if p.BusinessDetails == nil {
			return
		}
		for i := range p.BusinessDetails.PhoneNumbers {
			p.BusinessDetails.PhoneNumbers[i] = RedactedValue
		}
	},
	RedactAddress: func(p *ClientProfile) {
		if p.BusinessDetails != nil && p.BusinessDetails.Address != "" {
			p.BusinessDetails.Address = RedactedValue
		}
	},
	RedactWebsite: func(p *ClientProfile) {
		if p.CompanyOverview != nil && p.CompanyOverview.Website != "" {
			p.CompanyOverview.Website = RedactedValue
		}
	},
	RedactAssessmentAnswers: func(p *ClientProfile) {
		for k := range p.AssessmentAnswers {
			p.AssessmentAnswers[k] = RedactedValue
		}
	},
}

// ParseRedactFields maps field paths onto known RedactFields. Blank entries
// are skipped; anything else unknown is an error.
func ParseRedactFields(names []string) ([]RedactField, error) {
	var fields []RedactField
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f := RedactField(name)
		if _, ok := redactors[f]; !ok {
			return nil, fmt.Errorf("profile: unknown redact field %q", name)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// Redact returns a copy of p with the given fields blanked. p is not modified.
func Redact(p ClientProfile, fields ...RedactField) ClientProfile {
	out := p.Clone()
	for _, f := range fields {
		if fn, ok := redactors[f]; ok {
			fn(&out)
		}
	}
	return out
}

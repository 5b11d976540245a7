package profile

import (
	"encoding/json"
	"fmt"
	"time"

	"callcenter/catalog"
)

// storedProfile mirrors ClientProfile with every field optional, so a record
// written by an older build decodes with its missing fields left nil.
type storedProfile struct {
	SelectedServices  *[]catalog.ServiceKey `json:"selectedServices"`
	Paid              *bool                 `json:"paid"`
	CreatedAt         *time.Time            `json:"createdAt"`
	AssessmentAnswers map[string]string     `json:"assessmentAnswers"`
	AssessmentResult  *AssessmentResult     `json:"assessmentResult"`
	CompanyOverview   *CompanyOverview      `json:"companyOverview"`
	BusinessDetails   *BusinessDetails      `json:"businessDetails"`
	Tickets           *[]Ticket             `json:"tickets"`
}

// mergeOverDefaults copies every field present in stored over defaults.
func mergeOverDefaults(defaults ClientProfile, stored storedProfile) ClientProfile {
	out := defaults.Clone()
	if stored.SelectedServices != nil && *stored.SelectedServices != nil {
		out.SelectedServices = *stored.SelectedServices
	}
	if stored.Paid != nil {
		out.Paid = *stored.Paid
	}
	if stored.CreatedAt != nil && !stored.CreatedAt.IsZero() {
		out.CreatedAt = *stored.CreatedAt
	}
	if stored.AssessmentAnswers != nil {
		out.AssessmentAnswers = stored.AssessmentAnswers
	}
	if stored.AssessmentResult != nil {
		out.AssessmentResult = stored.AssessmentResult
	}
	if stored.CompanyOverview != nil {
		out.CompanyOverview = stored.CompanyOverview
	}
	if stored.BusinessDetails != nil {
		out.BusinessDetails = stored.BusinessDetails
	}
	if stored.Tickets != nil && *stored.Tickets != nil {
		out.Tickets = *stored.Tickets
	}
	return out
}

// Decode parses a serialized profile and merges it over defaults.
func Decode(data []byte, defaults ClientProfile) (ClientProfile, error) {
	var stored storedProfile
	if err := json.Unmarshal(data, &stored); err != nil {
		return defaults, fmt.Errorf("profile: decode: %w", err)
	}
	return mergeOverDefaults(defaults, stored), nil
}

// Encode serializes a profile for its persistent slot.
func Encode(p ClientProfile) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("profile: encode: %w", err)
	}
	return data, nil
}

// Package profile owns the client onboarding state: selected services,
// assessment, company overview, business details and support tickets.
package profile

import (
	"maps"
	"slices"
	"time"

	"callcenter/catalog"
)

// Assessment answer keys read by pricing and scoring.
const (
	AnswerCoverage   = "coverage"
	AnswerCompliance = "compliance"
	AnswerCallVolume = "callVolume"
)

// Ticket status and priority values.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusClosed     = "Closed"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

// TicketPriorities lists the priorities in form order.
var TicketPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// PlaceholderClientID is stamped on every ticket; the site serves one tenant.
const PlaceholderClientID = "client-001"

type AssessmentResult struct {
	OverallScore      float64              `json:"overallScore"`
	SuggestedTier     catalog.Tier         `json:"suggestedTier"`
	Recommendations   []string             `json:"recommendations"`
	RiskFactors       []string             `json:"riskFactors"`
	Strengths         []string             `json:"strengths"`
	SuggestedServices []catalog.ServiceKey `json:"suggestedServices"`
}

type Source struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type CompanyOverview struct {
	Website   string   `json:"website"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
	Sources   []Source `json:"sources"`
}

type BusinessDetails struct {
	BusinessName       string   `json:"businessName"`
	RegistrationNumber string   `json:"registrationNumber,omitempty"`
	PhoneNumbers       []string `json:"phoneNumbers"`
	Address            string   `json:"address,omitempty"`
}

type Ticket struct {
	ID       string    `json:"id"`
	ClientID string    `json:"clientId"`
	Subject  string    `json:"subject"`
	Status   string    `json:"status"`
	Priority string    `json:"priority"`
	Created  time.Time `json:"created"`
}

// TicketInput is what a caller supplies when opening a ticket.
type TicketInput struct {
	Subject  string
	Priority string
}

// ClientProfile is the persisted record of one client's selections and history.
type ClientProfile struct {
	SelectedServices  []catalog.ServiceKey `json:"selectedServices"`
	Paid              bool                 `json:"paid"`
	CreatedAt         time.Time            `json:"createdAt"`
	AssessmentAnswers map[string]string    `json:"assessmentAnswers"`
	AssessmentResult  *AssessmentResult    `json:"assessmentResult,omitempty"`
	CompanyOverview   *CompanyOverview     `json:"companyOverview,omitempty"`
	BusinessDetails   *BusinessDetails     `json:"businessDetails,omitempty"`
	Tickets           []Ticket             `json:"tickets"`
}

// Defaults returns a fresh profile created at now.
func Defaults(now time.Time) ClientProfile {
	return ClientProfile{
		SelectedServices: []catalog.ServiceKey{},
		Paid:             false,
		CreatedAt:        now,
		Tickets:          []Ticket{},
	}
}

// HasService reports whether key is among the selected services.
func (p ClientProfile) HasService(key catalog.ServiceKey) bool {
	return slices.Contains(p.SelectedServices, key)
}

// Answer returns the assessment answer for key, or "" when unanswered.
func (p ClientProfile) Answer(key string) string {
	if p.AssessmentAnswers == nil {
		return ""
	}
	return p.AssessmentAnswers[key]
}

// Clone returns a deep copy that shares no slices or maps with p.
func (p ClientProfile) Clone() ClientProfile {
	out := p
	out.SelectedServices = slices.Clone(p.SelectedServices)
	out.Tickets = slices.Clone(p.Tickets)
	if p.AssessmentAnswers != nil {
		out.AssessmentAnswers = maps.Clone(p.AssessmentAnswers)
	}
	out.AssessmentResult = p.AssessmentResult.clone()
	out.CompanyOverview = p.CompanyOverview.clone()
	out.BusinessDetails = p.BusinessDetails.clone()
	return out
}

func (r *AssessmentResult) clone() *AssessmentResult {
	if r == nil {
		return nil
	}
	out := *r
	out.Recommendations = slices.Clone(r.Recommendations)
	out.RiskFactors = slices.Clone(r.RiskFactors)
	out.Strengths = slices.Clone(r.Strengths)
	out.SuggestedServices = slices.Clone(r.SuggestedServices)
	return &out
}

func (o *CompanyOverview) clone() *CompanyOverview {
	if o == nil {
		return nil
	}
	out := *o
	out.KeyPoints = slices.Clone(o.KeyPoints)
	out.Sources = slices.Clone(o.Sources)
	return &out
}

func (d *BusinessDetails) clone() *BusinessDetails {
	if d == nil {
		return nil
	}
	out := *d
	out.PhoneNumbers = slices.Clone(d.PhoneNumbers)
	return &out
}

// Package templates renders the site's pages and HTMX fragments as templ
// components.
package templates

import (
	"callcenter/catalog"
	"callcenter/profile"
	"callcenter/services"
)

// HeaderData is the top bar: who the client is and where they stand.
type HeaderData struct {
	BusinessName  string
	Paid          bool
	SelectedCount int
}

// SidebarModule is one dashboard module link.
type SidebarModule struct {
	Key     string
	Label   string
	Enabled bool
}

// SidebarData drives navigation highlighting and the module list.
type SidebarData struct {
	ActivePath string
	Modules    []SidebarModule
}

// ServiceCard is one catalog service as shown to visitors, with admin
// overrides already applied.
type ServiceCard struct {
	Key         string
	Name        string
	Description string
	MonthlyFee  float64
	Selected    bool
}

type LandingData struct {
	Services []ServiceCard
	Tiers    []catalog.TierInfo
}

// QuoteFormData backs the public hours/days quote-request form.
type QuoteFormData struct {
	Name        string
	Email       string
	Company     string
	HoursPerDay string
	DaysPerWeek string
	Errors      map[string]string
	Quote       *services.SimpleQuote
	Incomplete  bool
	Saved       bool
}

type PricingData struct {
	Tiers []catalog.TierInfo
	Form  QuoteFormData
}

// AssessmentQuestion is one radio group of the assessment form.
type AssessmentQuestion struct {
	Key     string
	Label   string
	Options []string
	Answer  string
}

type BuilderData struct {
	Services  []ServiceCard
	Questions []AssessmentQuestion
	Result    *profile.AssessmentResult
	Quote     services.QuoteBreakdown
	Paid      bool
	Errors    map[string]string
}

type ModuleStatus struct {
	Key         string
	Label       string
	Description string
	Enabled     bool
}

type TicketFormData struct {
	Subject  string
	Priority string
	Errors   map[string]string
}

type BusinessFormData struct {
	BusinessName       string
	RegistrationNumber string
	PhoneNumbers       string // one per line
	Address            string
	Errors             map[string]string
}

type OverviewFormData struct {
	Website   string
	Summary   string
	KeyPoints string // one per line
	Errors    map[string]string
}

type DashboardData struct {
	Paid       bool
	Modules    []ModuleStatus
	Tickets    []profile.Ticket
	TicketForm TicketFormData
	Business   BusinessFormData
	Overview   OverviewFormData
}

type TeamData struct {
	Roles       []services.RoleInfo
	Permissions []services.Permission
}

// AdminServiceRow is one editable catalog entry.
type AdminServiceRow struct {
	Key                string
	CatalogName        string
	CatalogDescription string
	Name               string
	Description        string
	Enabled            bool
}

type AdminServicesData struct {
	Rows   []AdminServiceRow
	Errors map[string]string
	Saved  bool
}

// AIProviderView is one provider's key status.
type AIProviderView struct {
	Name      string
	Label     string
	HasKey    bool
	MaskedKey string
	Message   string
	Success   bool
}

type AdminAIData struct {
	Providers []AIProviderView
}

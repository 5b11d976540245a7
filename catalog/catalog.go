// Package catalog holds the static service and tier tables the rest of the
// application prices and renders from.
package catalog

// ServiceKey identifies one add-on module in the service catalog.
type ServiceKey string

const (
	AIAgentCalling    ServiceKey = "ai_agent_calling"
	LiveChat          ServiceKey = "live_chat"
	Analytics         ServiceKey = "analytics"
	InboundSupport    ServiceKey = "inbound_support"
	OutboundSales     ServiceKey = "outbound_sales"
	EmailSupport      ServiceKey = "email_support"
	CRMIntegration    ServiceKey = "crm_integration"
	QualityMonitoring ServiceKey = "quality_monitoring"
)

// Service is one catalog entry with its monthly module fee in EUR.
type Service struct {
	Key         ServiceKey
	Name        string
	Description string
	MonthlyFee  float64
}

// Services is the closed service enumeration, in display order.
var Services = []Service{
	{AIAgentCalling, "AI Agent Calling", "Voice agents that answer and place calls around the clock.", 600},
	{LiveChat, "Live Chat", "Website and in-app chat staffed by trained agents.", 300},
	{Analytics, "Analytics", "Call, chat and ticket reporting with weekly summaries.", 250},
	{InboundSupport, "Inbound Support", "Dedicated agents handling your customer support line.", 450},
	{OutboundSales, "Outbound Sales", "Lead follow-up and appointment setting campaigns.", 500},
	{EmailSupport, "Email Support", "Shared inbox triage with response-time targets.", 200},
	{CRMIntegration, "CRM Integration", "Two-way sync of contacts and call notes with your CRM.", 350},
	{QualityMonitoring, "Quality Monitoring", "Call recording review, scoring and compliance audit trail.", 275},
}

var servicesByKey = func() map[ServiceKey]Service {
	m := make(map[ServiceKey]Service, len(Services))
	for _, s := range Services {
		m[s.Key] = s
	}
	return m
}()

// LookupService returns the catalog entry for key.
func LookupService(key ServiceKey) (Service, bool) {
	s, ok := servicesByKey[key]
	return s, ok
}

// IsKnownService reports whether key belongs to the catalog.
func IsKnownService(key ServiceKey) bool {
	_, ok := servicesByKey[key]
	return ok
}

// ServiceKeys returns every catalog key in display order.
func ServiceKeys() []ServiceKey {
	keys := make([]ServiceKey, 0, len(Services))
	for _, s := range Services {
		keys = append(keys, s.Key)
	}
	return keys
}

// FilterKnownServices drops unknown and duplicate keys, keeping first-seen order.
func FilterKnownServices(keys []ServiceKey) []ServiceKey {
	out := make([]ServiceKey, 0, len(keys))
	seen := make(map[ServiceKey]bool, len(keys))
	for _, k := range keys {
		if !IsKnownService(k) || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

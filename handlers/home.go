package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"callcenter/catalog"
	"callcenter/profile"
	"callcenter/services"
	"callcenter/templates"
)

// serviceCards lists the admin-enabled services with display overrides
// applied, marking those in the client's selection.
func serviceCards(cfg services.ServiceConfig, p profile.ClientProfile) []templates.ServiceCard {
	var cards []templates.ServiceCard
	for _, s := range services.EnabledServices(cfg) {
		cards = append(cards, templates.ServiceCard{
			Key:         string(s.Key),
			Name:        services.ServiceLabel(cfg, s.Key),
			Description: services.ServiceDescription(cfg, s.Key),
			MonthlyFee:  s.MonthlyFee,
			Selected:    p.HasService(s.Key),
		})
	}
	return cards
}

func HandleHome(store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p := store.Snapshot()
		cfg := configs.Load()

		data := templates.LandingData{
			Services: serviceCards(cfg, p),
			Tiers:    catalog.Tiers,
		}
		header, sidebar := layoutData(e.Request, p, cfg, false)
		return templates.LandingPage(data, header, sidebar).Render(e.Request.Context(), e.Response)
	}
}

func HandlePricing(store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p := store.Snapshot()
		cfg := configs.Load()

		data := templates.PricingData{Tiers: catalog.Tiers}
		header, sidebar := layoutData(e.Request, p, cfg, false)
		return templates.PricingPage(data, header, sidebar).Render(e.Request.Context(), e.Response)
	}
}

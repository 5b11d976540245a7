package handlers

import (
	"net/http"

	"callcenter/profile"
	"callcenter/services"
	"callcenter/templates"
)

// BuildSidebarData constructs the SidebarData for the current request. Only
// once the plan is paid do selected modules show as enabled.
func BuildSidebarData(r *http.Request, p profile.ClientProfile, cfg services.ServiceConfig) templates.SidebarData {
	data := templates.SidebarData{ActivePath: r.URL.Path}
	if len(p.SelectedServices) == 0 {
		return data
	}
	for _, s := range services.EnabledServices(cfg) {
		if !p.HasService(s.Key) {
			continue
		}
		data.Modules = append(data.Modules, templates.SidebarModule{
			Key:     string(s.Key),
			Label:   services.ServiceLabel(cfg, s.Key),
			Enabled: p.Paid,
		})
	}
	return data
}

// layoutData returns the header and sidebar prepared by the middleware, or
// builds them on the spot when the handler runs without it (tests, direct
// calls after a mutation).
func layoutData(r *http.Request, p profile.ClientProfile, cfg services.ServiceConfig, fresh bool) (templates.HeaderData, templates.SidebarData) {
	if fresh {
		return BuildHeaderData(p), BuildSidebarData(r, p, cfg)
	}
	if _, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return GetHeaderData(r), GetSidebarData(r)
	}
	return BuildHeaderData(p), BuildSidebarData(r, p, cfg)
}

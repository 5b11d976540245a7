package handlers

import (
	"log"
	"net/http"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"callcenter/catalog"
	"callcenter/profile"
	"callcenter/services"
	"callcenter/templates"
)

func buildAdminServicesData(cfg services.ServiceConfig) templates.AdminServicesData {
	data := templates.AdminServicesData{Errors: map[string]string{}}
	for _, s := range catalog.Services {
		o := cfg.Overrides[s.Key]
		data.Rows = append(data.Rows, templates.AdminServiceRow{
			Key:                string(s.Key),
			CatalogName:        s.Name,
			CatalogDescription: s.Description,
			Name:               o.Name,
			Description:        o.Description,
			Enabled:            services.IsServiceEnabled(cfg, s.Key),
		})
	}
	return data
}

func HandleAdminServices(store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cfg := configs.Load()
		header, sidebar := layoutData(e.Request, store.Snapshot(), cfg, false)
		return templates.AdminServicesPage(buildAdminServicesData(cfg), header, sidebar).Render(e.Request.Context(), e.Response)
	}
}

// HandleAdminServicesSave rewrites the whole service config from the form:
// unchecked services are disabled and blank overrides are removed.
func HandleAdminServicesSave(store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		enabled := e.Request.Form["enabled"]
		cfg := services.ServiceConfig{
			Enabled:   map[catalog.ServiceKey]bool{},
			Overrides: map[catalog.ServiceKey]services.ServiceOverride{},
		}
		errs := map[string]string{}

		for _, s := range catalog.Services {
			key := string(s.Key)
			cfg.Enabled[s.Key] = slices.Contains(enabled, key)

			form := serviceOverrideForm{
				Name:        strings.TrimSpace(e.Request.FormValue("name_" + key)),
				Description: strings.TrimSpace(e.Request.FormValue("description_" + key)),
			}
			for field, msg := range validateForm(form) {
				errs[field+"_"+key] = msg
			}
			if form.Name != "" || form.Description != "" {
				cfg.Overrides[s.Key] = services.ServiceOverride{Name: form.Name, Description: form.Description}
			}
		}

		data := buildAdminServicesData(cfg)
		if len(errs) > 0 {
			data.Errors = errs
			SetToast(e, ToastWarning, "Please fix the errors below")
			return renderAdminServices(e, store, cfg, data)
		}

		if err := configs.Save(cfg); err != nil {
			log.Printf("admin_services: could not save service config: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data.Saved = true
		SetToast(e, ToastSuccess, "Service settings saved")
		return renderAdminServices(e, store, cfg, data)
	}
}

func renderAdminServices(e *core.RequestEvent, store *profile.Store, cfg services.ServiceConfig, data templates.AdminServicesData) error {
	var component templ.Component
	if isHTMX(e.Request.Header) {
		component = templates.AdminServicesContent(data)
	} else {
		header, sidebar := layoutData(e.Request, store.Snapshot(), cfg, true)
		component = templates.AdminServicesPage(data, header, sidebar)
	}
	return component.Render(e.Request.Context(), e.Response)
}

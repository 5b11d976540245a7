package handlers

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"callcenter/catalog"
	"callcenter/profile"
	"callcenter/services"
	"callcenter/templates"
)

// buildDashboardData lists every offered module; a module is live once the
// plan is paid and isModuleEnabled reports it selected.
func buildDashboardData(p profile.ClientProfile, cfg services.ServiceConfig, isModuleEnabled func(catalog.ServiceKey) bool) templates.DashboardData {
	data := templates.DashboardData{
		Paid:       p.Paid,
		Tickets:    p.Tickets,
		TicketForm: templates.TicketFormData{Priority: profile.PriorityMedium},
		Business:   businessFormData(p.BusinessDetails),
		Overview:   overviewFormData(p.CompanyOverview),
	}
	for _, s := range services.EnabledServices(cfg) {
		data.Modules = append(data.Modules, templates.ModuleStatus{
			Key:         string(s.Key),
			Label:       services.ServiceLabel(cfg, s.Key),
			Description: services.ServiceDescription(cfg, s.Key),
			Enabled:     p.Paid && isModuleEnabled(s.Key),
		})
	}
	return data
}

func businessFormData(d *profile.BusinessDetails) templates.BusinessFormData {
	if d == nil {
		return templates.BusinessFormData{}
	}
	return templates.BusinessFormData{
		BusinessName:       d.BusinessName,
		RegistrationNumber: d.RegistrationNumber,
		PhoneNumbers:       strings.Join(d.PhoneNumbers, "\n"),
		Address:            d.Address,
	}
}

func overviewFormData(o *profile.CompanyOverview) templates.OverviewFormData {
	if o == nil {
		return templates.OverviewFormData{}
	}
	return templates.OverviewFormData{
		Website:   o.Website,
		Summary:   o.Summary,
		KeyPoints: strings.Join(o.KeyPoints, "\n"),
	}
}

func HandleDashboard(store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p := store.Snapshot()
		cfg := configs.Load()
		header, sidebar := layoutData(e.Request, p, cfg, false)
		return templates.DashboardPage(buildDashboardData(p, cfg, store.IsModuleEnabled), header, sidebar).Render(e.Request.Context(), e.Response)
	}
}

// renderDashboardPart renders fragment for HTMX requests and the whole
// dashboard otherwise, with edit applied to the page data.
func renderDashboardPart(e *core.RequestEvent, store *profile.Store, configs *services.ServiceConfigStore, fragment templ.Component, edit func(*templates.DashboardData)) error {
	if isHTMX(e.Request.Header) {
		return fragment.Render(e.Request.Context(), e.Response)
	}
	p := store.Snapshot()
	cfg := configs.Load()
	data := buildDashboardData(p, cfg, store.IsModuleEnabled)
	if edit != nil {
		edit(&data)
	}
	header, sidebar := layoutData(e.Request, p, cfg, true)
	return templates.DashboardPage(data, header, sidebar).Render(e.Request.Context(), e.Response)
}

func HandleTicketCreate(store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		form := ticketForm{
			Subject:  strings.TrimSpace(e.Request.FormValue("subject")),
			Priority: strings.TrimSpace(e.Request.FormValue("priority")),
		}
		if errs := validateForm(form); errs != nil {
			formData := templates.TicketFormData{Subject: form.Subject, Priority: form.Priority, Errors: errs}
			SetToast(e, ToastWarning, "Please fix the errors below")
			e.Response.Header().Set("HX-Retarget", "#ticket-form")
			e.Response.Header().Set("HX-Reswap", "outerHTML")
			return renderDashboardPart(e, store, configs, templates.TicketForm(formData), func(d *templates.DashboardData) {
				d.TicketForm = formData
			})
		}

		ticket := store.AddTicket(profile.TicketInput{Subject: form.Subject, Priority: form.Priority})
		SetToast(e, ToastSuccess, "Ticket "+ticket.ID+" opened")
		return renderDashboardPart(e, store, configs, templates.TicketList(store.Snapshot().Tickets), nil)
	}
}

func HandleBusinessDetailsSave(store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		rawPhones := e.Request.FormValue("phone_numbers")
		form := businessDetailsForm{
			BusinessName:       strings.TrimSpace(e.Request.FormValue("business_name")),
			RegistrationNumber: strings.TrimSpace(e.Request.FormValue("registration_number")),
			PhoneNumbers:       splitLines(rawPhones),
			Address:            strings.TrimSpace(e.Request.FormValue("address")),
		}
		formData := templates.BusinessFormData{
			BusinessName:       form.BusinessName,
			RegistrationNumber: form.RegistrationNumber,
			PhoneNumbers:       strings.Join(form.PhoneNumbers, "\n"),
			Address:            form.Address,
		}

		if errs := validateForm(form); errs != nil {
			formData.Errors = errs
			formData.PhoneNumbers = rawPhones
			SetToast(e, ToastWarning, "Please fix the errors below")
		} else {
			store.UpdateBusinessDetails(profile.BusinessDetails{
				BusinessName:       form.BusinessName,
				RegistrationNumber: form.RegistrationNumber,
				PhoneNumbers:       form.PhoneNumbers,
				Address:            form.Address,
			})
			SetToast(e, ToastSuccess, "Business details saved")
		}
		return renderDashboardPart(e, store, configs, templates.BusinessDetailsForm(formData), func(d *templates.DashboardData) {
			d.Business = formData
		})
	}
}

// HandleCompanyOverviewSave replaces the overview. Sources gathered for the
// same website are kept.
func HandleCompanyOverviewSave(store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		rawPoints := e.Request.FormValue("key_points")
		form := companyOverviewForm{
			Website:   strings.TrimSpace(e.Request.FormValue("website")),
			Summary:   strings.TrimSpace(e.Request.FormValue("summary")),
			KeyPoints: splitLines(rawPoints),
		}
		formData := templates.OverviewFormData{
			Website:   form.Website,
			Summary:   form.Summary,
			KeyPoints: strings.Join(form.KeyPoints, "\n"),
		}

		if errs := validateForm(form); errs != nil {
			formData.Errors = errs
			formData.KeyPoints = rawPoints
			SetToast(e, ToastWarning, "Please fix the errors below")
		} else {
			sources := []profile.Source{}
			if prev := store.Snapshot().CompanyOverview; prev != nil && prev.Website == form.Website && prev.Sources != nil {
				sources = prev.Sources
			}
			store.SetCompanyOverview(profile.CompanyOverview{
				Website:   form.Website,
				Summary:   form.Summary,
				KeyPoints: form.KeyPoints,
				Sources:   sources,
			})
			SetToast(e, ToastSuccess, "Company overview saved")
		}
		return renderDashboardPart(e, store, configs, templates.CompanyOverviewForm(formData), func(d *templates.DashboardData) {
			d.Overview = formData
		})
	}
}

func HandleTeam(store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p := store.Snapshot()
		cfg := configs.Load()
		data := templates.TeamData{Roles: services.Roles, Permissions: services.AllPermissions}
		header, sidebar := layoutData(e.Request, p, cfg, false)
		return templates.TeamPage(data, header, sidebar).Render(e.Request.Context(), e.Response)
	}
}

package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"callcenter/catalog"
	"callcenter/collections"
	"callcenter/profile"
	"callcenter/services"
	"callcenter/templates"
)

// HandleQuoteRequest prices the hours/days form and, when the contact
// fields are valid too, records the request for the sales team.
func HandleQuoteRequest(app *pocketbase.PocketBase, store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		form := quoteRequestForm{
			Name:        strings.TrimSpace(e.Request.FormValue("name")),
			Email:       strings.TrimSpace(e.Request.FormValue("email")),
			Company:     strings.TrimSpace(e.Request.FormValue("company")),
			HoursPerDay: strings.TrimSpace(e.Request.FormValue("hours_per_day")),
			DaysPerWeek: strings.TrimSpace(e.Request.FormValue("days_per_week")),
		}
		data := templates.QuoteFormData{
			Name:        form.Name,
			Email:       form.Email,
			Company:     form.Company,
			HoursPerDay: form.HoursPerDay,
			DaysPerWeek: form.DaysPerWeek,
			Errors:      map[string]string{},
		}

		data.Quote = services.CalculateSimpleQuote(form.HoursPerDay, form.DaysPerWeek)
		if data.Quote == nil {
			data.Incomplete = true
			SetToast(e, ToastWarning, "Please fill in all fields")
			return renderQuoteForm(e, store, configs, data)
		}

		if errs := validateForm(form); errs != nil {
			data.Errors = errs
			SetToast(e, ToastWarning, "Please fix the errors below")
			return renderQuoteForm(e, store, configs, data)
		}

		col, err := app.FindCollectionByNameOrId(collections.QuoteRequestsCollection)
		if err != nil {
			log.Printf("quote_request: could not find %s collection: %v", collections.QuoteRequestsCollection, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		q := data.Quote
		record := core.NewRecord(col)
		record.Set("name", form.Name)
		record.Set("email", form.Email)
		record.Set("company", form.Company)
		record.Set("hours_per_day", q.HoursPerDay)
		record.Set("days_per_week", q.DaysPerWeek)
		record.Set("total_hours", q.TotalHours)
		record.Set("base_price", q.BasePrice)
		record.Set("discount", q.Discount)
		record.Set("vat", q.VAT)
		record.Set("total", q.Total)
		record.Set("status", "new")

		if err := app.Save(record); err != nil {
			log.Printf("quote_request: could not save quote request: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data.Saved = true
		SetToast(e, ToastSuccess, "Quote request sent")
		return renderQuoteForm(e, store, configs, data)
	}
}

func renderQuoteForm(e *core.RequestEvent, store *profile.Store, configs *services.ServiceConfigStore, data templates.QuoteFormData) error {
	var component templ.Component
	if isHTMX(e.Request.Header) {
		component = templates.QuoteForm(data)
	} else {
		p := store.Snapshot()
		header, sidebar := layoutData(e.Request, p, configs.Load(), false)
		component = templates.PricingPage(templates.PricingData{Tiers: catalog.Tiers, Form: data}, header, sidebar)
	}
	return component.Render(e.Request.Context(), e.Response)
}

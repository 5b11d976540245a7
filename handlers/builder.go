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

var assessmentQuestions = []struct {
	key   string
	label string
}{
	{profile.AnswerCoverage, "What coverage do you need?"},
	{profile.AnswerCompliance, "How regulated is your industry?"},
	{profile.AnswerCallVolume, "How many contacts do you expect?"},
}

func buildBuilderData(p profile.ClientProfile, cfg services.ServiceConfig, errs map[string]string) templates.BuilderData {
	data := templates.BuilderData{
		Services: serviceCards(cfg, p),
		Result:   p.AssessmentResult,
		Quote:    services.CalculateBuilderQuote(p),
		Paid:     p.Paid,
		Errors:   errs,
	}
	for _, q := range assessmentQuestions {
		data.Questions = append(data.Questions, templates.AssessmentQuestion{
			Key:     q.key,
			Label:   q.label,
			Options: services.AssessmentOptions[q.key],
			Answer:  p.Answer(q.key),
		})
	}
	return data
}

func HandleBuilder(store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p := store.Snapshot()
		cfg := configs.Load()
		return renderBuilder(e, p, cfg, nil, false)
	}
}

// HandleBuilderServices replaces the selection. Unknown and admin-disabled
// keys are dropped here; the store itself accepts anything.
func HandleBuilderServices(store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		cfg := configs.Load()

		var selected []catalog.ServiceKey
		for _, raw := range e.Request.Form["services"] {
			key := catalog.ServiceKey(strings.TrimSpace(raw))
			if services.IsServiceEnabled(cfg, key) {
				selected = append(selected, key)
			}
		}
		store.SetSelectedServices(catalog.FilterKnownServices(selected))

		SetToast(e, ToastSuccess, "Services updated")
		if !isHTMX(e.Request.Header) {
			return e.Redirect(http.StatusFound, "/builder")
		}
		return renderBuilder(e, store.Snapshot(), cfg, nil, true)
	}
}

func HandleBuilderAssessment(store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		cfg := configs.Load()

		form := assessmentForm{
			Coverage:   strings.TrimSpace(e.Request.FormValue(profile.AnswerCoverage)),
			Compliance: strings.TrimSpace(e.Request.FormValue(profile.AnswerCompliance)),
			CallVolume: strings.TrimSpace(e.Request.FormValue(profile.AnswerCallVolume)),
		}
		if errs := validateForm(form); errs != nil {
			SetToast(e, ToastWarning, "Please answer every question")
			return renderBuilder(e, store.Snapshot(), cfg, errs, true)
		}

		answers := map[string]string{
			profile.AnswerCoverage:   form.Coverage,
			profile.AnswerCompliance: form.Compliance,
			profile.AnswerCallVolume: form.CallVolume,
		}
		store.SetAssessment(answers, services.ScoreAssessment(answers))

		SetToast(e, ToastSuccess, "Assessment saved")
		if !isHTMX(e.Request.Header) {
			return e.Redirect(http.StatusFound, "/builder")
		}
		return renderBuilder(e, store.Snapshot(), cfg, nil, true)
	}
}

func renderBuilder(e *core.RequestEvent, p profile.ClientProfile, cfg services.ServiceConfig, errs map[string]string, fresh bool) error {
	data := buildBuilderData(p, cfg, errs)
	var component templ.Component
	if isHTMX(e.Request.Header) {
		component = templates.BuilderContent(data)
	} else {
		header, sidebar := layoutData(e.Request, p, cfg, fresh)
		component = templates.BuilderPage(data, header, sidebar)
	}
	return component.Render(e.Request.Context(), e.Response)
}

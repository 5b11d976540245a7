package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"testing"
	"time"

	"callcenter/catalog"
	"callcenter/profile"
	"callcenter/services"
	"callcenter/testhelpers"
)

func TestHandleDashboard_ModulesFollowPlan(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store, configs := newTestStores(app)
	store.SetSelectedServices([]catalog.ServiceKey{catalog.LiveChat})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleDashboard(store, configs)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Your plan is not active yet", "No tickets yet.")
	testhelpers.AssertHTMLNotContains(t, body, "badge-success")

	store.MarkPaid()
	rec = httptest.NewRecorder()
	e = newTestRequestEvent(app, httptest.NewRequest(http.MethodGet, "/dashboard", nil), rec)
	if err := HandleDashboard(store, configs)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	body = rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, `data-module="live_chat"><h3>Live Chat</h3>`, "badge-success")
	testhelpers.AssertHTMLNotContains(t, body, "Your plan is not active yet")
}

func TestBuildDashboardData_AsksStoreForEachModule(t *testing.T) {
	p := profile.Defaults(time.Now())
	p.Paid = true

	var asked []catalog.ServiceKey
	data := buildDashboardData(p, services.DefaultServiceConfig(), func(k catalog.ServiceKey) bool {
		asked = append(asked, k)
		return k == catalog.LiveChat
	})

	if len(asked) != len(catalog.Services) {
		t.Fatalf("asked about %d modules, want %d", len(asked), len(catalog.Services))
	}
	for _, m := range data.Modules {
		if want := m.Key == string(catalog.LiveChat); m.Enabled != want {
			t.Errorf("module %s enabled = %v, want %v", m.Key, m.Enabled, want)
		}
	}

	p.Paid = false
	for _, m := range buildDashboardData(p, services.DefaultServiceConfig(), func(catalog.ServiceKey) bool { return true }).Modules {
		if m.Enabled {
			t.Errorf("module %s enabled before payment", m.Key)
		}
	}
}

func TestHandleTicketCreate_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store, configs := newTestStores(app)

	form := url.Values{}
	form.Set("subject", "Calls dropping after 5 minutes")
	form.Set("priority", profile.PriorityHigh)

	req := newFormRequest("/dashboard/tickets", form, true)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleTicketCreate(store, configs)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	tickets := store.Snapshot().Tickets
	if len(tickets) != 1 {
		t.Fatalf("expected 1 ticket, got %d", len(tickets))
	}
	tk := tickets[0]
	if tk.Status != profile.StatusOpen || tk.Priority != profile.PriorityHigh {
		t.Errorf("unexpected ticket %+v", tk)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, `id="ticket-list"`, "Calls dropping after 5 minutes", tk.ID)
	testhelpers.AssertHTMLNotContains(t, body, "<html")
}

func TestHandleTicketCreate_Invalid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store, configs := newTestStores(app)

	form := url.Values{}
	form.Set("subject", "")
	form.Set("priority", "Whenever")

	req := newFormRequest("/dashboard/tickets", form, true)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleTicketCreate(store, configs)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if len(store.Snapshot().Tickets) != 0 {
		t.Error("expected no ticket to be created")
	}
	if got := rec.Header().Get("HX-Retarget"); got != "#ticket-form" {
		t.Errorf("HX-Retarget = %q, want #ticket-form", got)
	}
	if got := rec.Header().Get("HX-Reswap"); got != "outerHTML" {
		t.Errorf("HX-Reswap = %q, want outerHTML", got)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		`id="ticket-form"`, "This field is required", "Choose one of: Low, Medium, High, Urgent")
}

func TestHandleBusinessDetailsSave_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store, configs := newTestStores(app)

	form := url.Values{}
	form.Set("business_name", "Acme Logistics")
	form.Set("registration_number", "KVK-12345678")
	form.Set("phone_numbers", "+31 20 555 0100\n\n  +31 20 555 0199  \n")
	form.Set("address", "Dock 4, Rotterdam")

	req := newFormRequest("/dashboard/business", form, true)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleBusinessDetailsSave(store, configs)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	d := store.Snapshot().BusinessDetails
	if d == nil {
		t.Fatal("expected business details to be saved")
	}
	want := []string{"+31 20 555 0100", "+31 20 555 0199"}
	if !slices.Equal(d.PhoneNumbers, want) {
		t.Errorf("phone numbers = %v, want %v", d.PhoneNumbers, want)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `id="business-form"`, "Acme Logistics")
}

func TestHandleBusinessDetailsSave_BadPhone(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store, configs := newTestStores(app)

	form := url.Values{}
	form.Set("business_name", "Acme Logistics")
	form.Set("phone_numbers", "123")

	req := newFormRequest("/dashboard/business", form, true)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleBusinessDetailsSave(store, configs)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if store.Snapshot().BusinessDetails != nil {
		t.Error("expected nothing to be saved")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Must be at least 5 characters")
}

func TestHandleCompanyOverviewSave_KeepsSourcesForSameWebsite(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store, configs := newTestStores(app)
	store.SetCompanyOverview(profile.CompanyOverview{
		Website:   "https://acme.example",
		Summary:   "Old summary",
		KeyPoints: []string{},
		Sources:   []profile.Source{{Type: "website", URL: "https://acme.example/about"}},
	})

	form := url.Values{}
	form.Set("website", "https://acme.example")
	form.Set("summary", "Freight forwarding across the Benelux")
	form.Set("key_points", "Founded 1998\nTwo warehouses")

	req := newFormRequest("/dashboard/overview", form, true)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCompanyOverviewSave(store, configs)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	o := store.Snapshot().CompanyOverview
	if o.Summary != "Freight forwarding across the Benelux" {
		t.Errorf("summary = %q", o.Summary)
	}
	if len(o.KeyPoints) != 2 {
		t.Errorf("key points = %v", o.KeyPoints)
	}
	if len(o.Sources) != 1 {
		t.Errorf("expected sources to be kept, got %v", o.Sources)
	}
}

func TestHandleCompanyOverviewSave_NewWebsiteDropsSources(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store, configs := newTestStores(app)
	store.SetCompanyOverview(profile.CompanyOverview{
		Website: "https://acme.example",
		Sources: []profile.Source{{Type: "website", URL: "https://acme.example/about"}},
	})

	form := url.Values{}
	form.Set("website", "https://acme-logistics.example")

	req := newFormRequest("/dashboard/overview", form, false)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCompanyOverviewSave(store, configs)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := store.Snapshot().CompanyOverview.Sources; len(got) != 0 {
		t.Errorf("expected sources to be cleared, got %v", got)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "<html", `id="overview-form"`)
}

func TestHandleCompanyOverviewSave_InvalidURL(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store, configs := newTestStores(app)

	form := url.Values{}
	form.Set("website", "acme dot example")

	req := newFormRequest("/dashboard/overview", form, true)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCompanyOverviewSave(store, configs)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if store.Snapshot().CompanyOverview != nil {
		t.Error("expected nothing to be saved")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Enter a full URL")
}

func TestHandleTeam(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store, configs := newTestStores(app)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/team", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleTeam(store, configs)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Owner", "Viewer", "Tickets create")
}

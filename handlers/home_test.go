package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"callcenter/catalog"
	"callcenter/services"
	"callcenter/testhelpers"
)

func TestHandleHome_ListsEnabledServices(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store, configs := newTestStores(app)

	cfg := services.DefaultServiceConfig()
	cfg.Enabled[catalog.OutboundSales] = false
	cfg.Overrides[catalog.LiveChat] = services.ServiceOverride{Name: "Web Chat"}
	if err := configs.Save(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleHome(store, configs)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "AI Agent Calling", "Web Chat", "Starter", "Enterprise")
	testhelpers.AssertHTMLNotContains(t, body, "Outbound Sales")
}

func TestHandlePricing_RendersQuoteForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store, configs := newTestStores(app)

	req := httptest.NewRequest(http.MethodGet, "/pricing", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandlePricing(store, configs)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), `id="quote-form"`, "Hours per day", "Days per week", "Professional")
}

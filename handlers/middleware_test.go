package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"callcenter/catalog"
	"callcenter/profile"
	"callcenter/services"
	"callcenter/templates"
	"callcenter/testhelpers"
)

func TestBuildHeaderData(t *testing.T) {
	p := profile.Defaults(time.Now())
	if got := BuildHeaderData(p); got.BusinessName != "" || got.Paid || got.SelectedCount != 0 {
		t.Errorf("unexpected header for default profile: %+v", got)
	}

	p.BusinessDetails = &profile.BusinessDetails{BusinessName: "Acme Logistics"}
	p.SelectedServices = []catalog.ServiceKey{catalog.LiveChat, catalog.Analytics}
	p.Paid = true
	got := BuildHeaderData(p)
	if got.BusinessName != "Acme Logistics" || !got.Paid || got.SelectedCount != 2 {
		t.Errorf("unexpected header: %+v", got)
	}
}

func TestBuildSidebarData(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	cfg := services.DefaultServiceConfig()
	cfg.Enabled[catalog.Analytics] = false

	p := profile.Defaults(time.Now())
	if data := BuildSidebarData(req, p, cfg); len(data.Modules) != 0 || data.ActivePath != "/dashboard" {
		t.Errorf("unexpected sidebar for empty selection: %+v", data)
	}

	p.SelectedServices = []catalog.ServiceKey{catalog.Analytics, catalog.LiveChat}
	data := BuildSidebarData(req, p, cfg)
	if len(data.Modules) != 1 || data.Modules[0].Key != string(catalog.LiveChat) {
		t.Fatalf("expected only live_chat, got %+v", data.Modules)
	}
	if data.Modules[0].Enabled {
		t.Error("module should not be enabled before checkout")
	}

	p.Paid = true
	if data := BuildSidebarData(req, p, cfg); !data.Modules[0].Enabled {
		t.Error("module should be enabled once paid")
	}
}

func TestProfileContextMiddleware(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store, configs := newTestStores(app)
	store.UpdateBusinessDetails(profile.BusinessDetails{BusinessName: "Acme Logistics"})
	store.SetSelectedServices([]catalog.ServiceKey{catalog.LiveChat})

	req := httptest.NewRequest(http.MethodGet, "/builder", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	// Without a following handler e.Next() is a no-op.
	if err := ProfileContextMiddleware(store, configs)(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	header := GetHeaderData(e.Request)
	if header.BusinessName != "Acme Logistics" || header.SelectedCount != 1 {
		t.Errorf("unexpected header data: %+v", header)
	}
	sidebar := GetSidebarData(e.Request)
	if sidebar.ActivePath != "/builder" || len(sidebar.Modules) != 1 {
		t.Errorf("unexpected sidebar data: %+v", sidebar)
	}
}

func TestGetSidebarData_Fallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/pricing", nil)
	if got := GetSidebarData(req); got.ActivePath != "/pricing" {
		t.Errorf("ActivePath = %q, want /pricing", got.ActivePath)
	}
	if got := GetHeaderData(req); got != (templates.HeaderData{}) {
		t.Errorf("expected zero HeaderData, got %+v", got)
	}
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"callcenter/profile"
	"callcenter/services"
	"callcenter/storage"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newTestStores returns the profile and service config stores backed by the
// app's storage_slots collection, the same way main wires them.
func newTestStores(app *pocketbase.PocketBase) (*profile.Store, *services.ServiceConfigStore) {
	store := profile.NewStore(storage.NewRecordSlot(app, "client_profile", nil))
	configs := services.NewServiceConfigStore(storage.NewRecordSlot(app, "service_config", nil), nil)
	return store, configs
}

// newFormRequest builds a urlencoded POST, marked as HTMX when htmx is set.
func newFormRequest(target string, form url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

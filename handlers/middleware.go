package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"callcenter/profile"
	"callcenter/services"
	"callcenter/templates"
)

type contextKey string

const HeaderDataKey contextKey = "headerData"
const SidebarDataKey contextKey = "sidebarData"

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// GetSidebarData extracts the pre-built SidebarData from the request context.
func GetSidebarData(r *http.Request) templates.SidebarData {
	if val, ok := r.Context().Value(SidebarDataKey).(templates.SidebarData); ok {
		return val
	}
	return templates.SidebarData{ActivePath: r.URL.Path}
}

// BuildHeaderData summarises the profile for the top bar.
func BuildHeaderData(p profile.ClientProfile) templates.HeaderData {
	data := templates.HeaderData{
		Paid:          p.Paid,
		SelectedCount: len(p.SelectedServices),
	}
	if p.BusinessDetails != nil {
		data.BusinessName = p.BusinessDetails.BusinessName
	}
	return data
}

// ProfileContextMiddleware snapshots the client profile once per request and
// stores HeaderData and SidebarData in the request context so handlers and
// templates can use them.
func ProfileContextMiddleware(store *profile.Store, configs *services.ServiceConfigStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p := store.Snapshot()
		cfg := configs.Load()

		ctx := context.WithValue(e.Request.Context(), HeaderDataKey, BuildHeaderData(p))
		ctx = context.WithValue(ctx, SidebarDataKey, BuildSidebarData(e.Request, p, cfg))
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

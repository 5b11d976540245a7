package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"callcenter/profile"
)

// HandleCheckout activates the plan. There is no payment step.
func HandleCheckout(store *profile.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if len(store.Snapshot().SelectedServices) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "Choose at least one service first")
		}
		store.MarkPaid()
		SetToast(e, ToastSuccess, "Your plan is active")
		return redirect(e, "/dashboard")
	}
}

func HandleProfileReset(store *profile.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		store.ResetProfile()
		SetToast(e, ToastSuccess, "Started over with a fresh profile")
		return redirect(e, "/builder")
	}
}

// HandleProfileExport downloads the profile as JSON. ?redact=default blanks
// the default sensitive fields; ?redact=a,b blanks the named ones.
func HandleProfileExport(store *profile.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p := store.Snapshot()

		if raw := strings.TrimSpace(e.Request.URL.Query().Get("redact")); raw != "" {
			fields := profile.DefaultRedactFields
			if raw != "default" {
				parsed, err := profile.ParseRedactFields(strings.Split(raw, ","))
				if err != nil {
					return ErrorToast(e, http.StatusBadRequest, err.Error())
				}
				fields = parsed
			}
			p = profile.Redact(p, fields...)
		}

		data, err := profile.Encode(p)
		if err != nil {
			log.Printf("profile_export: could not encode profile: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to export profile")
		}

		filename := "profile_" + time.Now().UTC().Format("2006-01-02") + ".json"
		e.Response.Header().Set("Content-Type", "application/json")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		e.Response.WriteHeader(http.StatusOK)
		_, err = e.Response.Write(data)
		return err
	}
}

// redirect sends HTMX requests an HX-Redirect and everything else a 302.
func redirect(e *core.RequestEvent, url string) error {
	if isHTMX(e.Request.Header) {
		e.Response.Header().Set("HX-Redirect", url)
		return e.String(http.StatusOK, "")
	}
	return e.Redirect(http.StatusFound, url)
}

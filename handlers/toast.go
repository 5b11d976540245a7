package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

// Toast types understood by static/app.js.
const (
	ToastSuccess = "success"
	ToastInfo    = "info"
	ToastWarning = "warning"
	ToastError   = "error"
)

const flashCookieName = "flash_toast"

type toast struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// SetToast queues a toast for the client. HTMX requests pick it up from the
// showToast event in HX-Trigger; full page loads after a 302 read the
// short-lived flash cookie instead.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	t := toast{Message: message, Type: toastType}
	triggerEvent(e, "showToast", t)
	setFlashCookie(e, t)
}

// triggerEvent adds name to the HX-Trigger header, keeping any events that
// are already set. A header that is not a JSON object is replaced.
func triggerEvent(e *core.RequestEvent, name string, payload any) {
	events := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &events); err != nil {
			log.Printf("toast: existing HX-Trigger is not valid JSON, overwriting: %v", err)
			events = map[string]any{}
		}
	}
	events[name] = payload

	data, err := json.Marshal(events)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))
}

func setFlashCookie(e *core.RequestEvent, t toast) {
	data, err := json.Marshal(t)
	if err != nil {
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(string(data)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // read by app.js
		SameSite: http.SameSiteLaxMode,
	})
}

// ErrorToast shows an error toast and answers with statusCode. HX-Reswap:
// none keeps HTMX from swapping the plain-text body into the page.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, ToastError, message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}

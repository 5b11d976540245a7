// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"callcenter/collections"
	"callcenter/storage"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// SetSlot writes raw into the named storage slot, creating it if needed.
func SetSlot(t *testing.T, app *pocketbase.PocketBase, key string, raw string) {
	t.Helper()

	if err := storage.NewRecordSlot(app, key, nil).Save([]byte(raw)); err != nil {
		t.Fatalf("failed to write slot %q: %v", key, err)
	}
}

// GetSlot returns the raw value of the named storage slot ("" when unset).
func GetSlot(t *testing.T, app *pocketbase.PocketBase, key string) string {
	t.Helper()

	data, err := storage.NewRecordSlot(app, key, nil).Load()
	if err != nil {
		t.Fatalf("failed to read slot %q: %v", key, err)
	}
	return string(data)
}

// FindQuoteRequests returns the quote_requests records for email.
func FindQuoteRequests(t *testing.T, app *pocketbase.PocketBase, email string) []*core.Record {
	t.Helper()

	records, err := app.FindRecordsByFilter(collections.QuoteRequestsCollection, "email = {:email}", "", 0, 0,
		map[string]any{"email": email})
	if err != nil {
		t.Fatalf("failed to query quote requests: %v", err)
	}
	return records
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s", frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

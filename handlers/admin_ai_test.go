package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"

	"callcenter/aikeys"
	"callcenter/storage"
	"callcenter/testhelpers"
)

const testOpenAIKey = "sk-valid-key-9876"

// newFakeOpenAIServer accepts testOpenAIKey and echoes the last chat message.
func newFakeOpenAIServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testOpenAIKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "echo: " + req.Messages[0].Content}},
			},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestRegistry(t *testing.T, app *pocketbase.PocketBase) *aikeys.Registry {
	t.Helper()
	srv := newFakeOpenAIServer(t)
	openai := aikeys.NewOpenAI(storage.NewRecordSlot(app, "openai_api_key", nil),
		aikeys.OpenAIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
	gemini := aikeys.NewGemini(storage.NewRecordSlot(app, "gemini_api_key", nil),
		aikeys.GeminiConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
	return aikeys.NewRegistry(openai, gemini)
}

func newProviderRequest(target, provider string, form url.Values) *http.Request {
	req := newFormRequest(target, form, true)
	req.SetPathValue("provider", provider)
	return req
}

func TestHandleAdminAI_ListsProviders(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store, configs := newTestStores(app)
	registry := newTestRegistry(t, app)
	testhelpers.SetSlot(t, app, "openai_api_key", testOpenAIKey)

	req := httptest.NewRequest(http.MethodGet, "/admin/ai", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleAdminAI(registry, store, configs)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, `id="ai-openai"`, `id="ai-gemini"`, "Google Gemini", "9876", "No key stored.")
	testhelpers.AssertHTMLNotContains(t, body, testOpenAIKey)
}

func TestHandleAIKeySave_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	registry := newTestRegistry(t, app)

	form := url.Values{}
	form.Set("api_key", "  "+testOpenAIKey+"  ")
	req := newProviderRequest("/admin/ai/openai/key", "openai", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleAIKeySave(registry)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := testhelpers.GetSlot(t, app, "openai_api_key"); got != testOpenAIKey {
		t.Errorf("stored key = %q", got)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Key saved", aikeys.MaskKey(testOpenAIKey))
}

func TestHandleAIKeySave_TooShort(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	registry := newTestRegistry(t, app)

	form := url.Values{}
	form.Set("api_key", "abc")
	req := newProviderRequest("/admin/ai/openai/key", "openai", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleAIKeySave(registry)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", rec.Code)
	}
	if got := testhelpers.GetSlot(t, app, "openai_api_key"); got != "" {
		t.Errorf("expected no key stored, got %q", got)
	}
}

func TestHandleAIKeySave_UnknownProvider(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	registry := newTestRegistry(t, app)

	form := url.Values{}
	form.Set("api_key", testOpenAIKey)
	req := newProviderRequest("/admin/ai/mistral/key", "mistral", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleAIKeySave(registry)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestHandleAIKeyTest(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	registry := newTestRegistry(t, app)

	tests := []struct {
		name   string
		stored string
		submit string
		want   string
	}{
		{"nothing to test", "", "", "Enter or save a key to test"},
		{"submitted key works", "", testOpenAIKey, "The key works"},
		{"submitted key rejected", "", "sk-wrong-key-0000", "The key was rejected"},
		{"falls back to stored key", testOpenAIKey, "", "The key works"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testhelpers.SetSlot(t, app, "openai_api_key", tt.stored)

			form := url.Values{}
			form.Set("api_key", tt.submit)
			req := newProviderRequest("/admin/ai/openai/test", "openai", form)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := HandleAIKeyTest(registry, 5*time.Second)(e); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", rec.Code)
			}
			testhelpers.AssertHTMLContains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestHandleAIChat(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	registry := newTestRegistry(t, app)

	form := url.Values{}
	form.Set("prompt", "Summarise our coverage")

	req := newProviderRequest("/admin/ai/openai/chat", "openai", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := HandleAIChat(registry, 5*time.Second)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("without key: expected status 400, got %d", rec.Code)
	}

	testhelpers.SetSlot(t, app, "openai_api_key", testOpenAIKey)
	req = newProviderRequest("/admin/ai/openai/chat", "openai", form)
	rec = httptest.NewRecorder()
	e = newTestRequestEvent(app, req, rec)
	if err := HandleAIChat(registry, 5*time.Second)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `class="ai-reply"`, "echo: Summarise our coverage")

	testhelpers.SetSlot(t, app, "openai_api_key", "sk-wrong-key-0000")
	req = newProviderRequest("/admin/ai/openai/chat", "openai", form)
	rec = httptest.NewRecorder()
	e = newTestRequestEvent(app, req, rec)
	if err := HandleAIChat(registry, 5*time.Second)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Errorf("rejected key: expected status 502, got %d", rec.Code)
	}
}

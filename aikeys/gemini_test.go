package aikeys

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"callcenter/storage"
)

func newFakeGemini(t *testing.T, validKey, reply string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("x-goog-api-key") != validKey {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"` + reply + `"}]}}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGemini_KeyRoundTrip(t *testing.T) {
	p := NewGemini(storage.NewMemorySlot(nil), GeminiConfig{}, nil)
	ctx := context.Background()

	_, ok := p.GetAPIKey(ctx)
	assert.False(t, ok)

	require.NoError(t, p.SaveAPIKey(ctx, "AIza-test"))
	key, ok := p.GetAPIKey(ctx)
	assert.True(t, ok)
	assert.Equal(t, "AIza-test", key)

	assert.ErrorIs(t, p.SaveAPIKey(ctx, ""), ErrEmptyAPIKey)
}

func TestGemini_ChatWithoutKey(t *testing.T) {
	p := NewGemini(storage.NewMemorySlot(nil), GeminiConfig{}, nil)
	_, err := p.Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, ChatOptions{})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestGemini_TestAPIKey(t *testing.T) {
	srv := newFakeGemini(t, "AIza-good", "pong")
	p := NewGemini(storage.NewMemorySlot(nil), GeminiConfig{BaseURL: srv.URL}, nil)
	ctx := context.Background()

	assert.True(t, p.TestAPIKey(ctx, "AIza-good"))
	assert.False(t, p.TestAPIKey(ctx, "AIza-bad"))
	assert.False(t, p.TestAPIKey(ctx, "  "))
}

func TestGemini_Chat(t *testing.T) {
	srv := newFakeGemini(t, "AIza-good", "hello from gemini")
	p := NewGemini(storage.NewMemorySlot([]byte("AIza-good")), GeminiConfig{BaseURL: srv.URL}, nil)

	reply, err := p.Chat(context.Background(), []Message{
		{Role: RoleSystem, Content: "be brief"},
		{Role: RoleUser, Content: "hello"},
		{Role: RoleAssistant, Content: "hi"},
		{Role: RoleUser, Content: "again"},
	}, ChatOptions{})
	require.NoError(t, err)
	assert.Equal(t, "hello from gemini", reply)
}

func TestGemini_ChatProviderError(t *testing.T) {
	srv := newFakeGemini(t, "AIza-good", "unused")
	p := NewGemini(storage.NewMemorySlot([]byte("AIza-stale")), GeminiConfig{BaseURL: srv.URL}, nil)

	_, err := p.Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, ChatOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini: chat:")
}

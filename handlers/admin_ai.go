package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"callcenter/aikeys"
	"callcenter/profile"
	"callcenter/services"
	"callcenter/templates"
)

var providerLabels = map[string]string{
	aikeys.OpenAIName: "OpenAI",
	aikeys.GeminiName: "Google Gemini",
}

func providerView(ctx context.Context, p aikeys.Provider) templates.AIProviderView {
	view := templates.AIProviderView{Name: p.Name(), Label: providerLabels[p.Name()]}
	if view.Label == "" {
		view.Label = p.Name()
	}
	if key, ok := p.GetAPIKey(ctx); ok {
		view.HasKey = true
		view.MaskedKey = aikeys.MaskKey(key)
	}
	return view
}

// lookupProvider resolves the {provider} path value.
func lookupProvider(e *core.RequestEvent, registry *aikeys.Registry) (aikeys.Provider, error) {
	p, err := registry.Get(e.Request.PathValue("provider"))
	if err != nil {
		return nil, ErrorToast(e, http.StatusNotFound, "Unknown AI provider")
	}
	return p, nil
}

func HandleAdminAI(registry *aikeys.Registry, store *profile.Store, configs *services.ServiceConfigStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ctx := e.Request.Context()
		var data templates.AdminAIData
		for _, name := range registry.Names() {
			p, err := registry.Get(name)
			if err != nil {
				continue
			}
			data.Providers = append(data.Providers, providerView(ctx, p))
		}
		header, sidebar := layoutData(e.Request, store.Snapshot(), configs.Load(), false)
		return templates.AdminAIPage(data, header, sidebar).Render(ctx, e.Response)
	}
}

func HandleAIKeySave(registry *aikeys.Registry) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, err := lookupProvider(e, registry)
		if p == nil {
			return err
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		form := apiKeyForm{APIKey: strings.TrimSpace(e.Request.FormValue("api_key"))}
		if errs := validateForm(form); errs != nil {
			return ErrorToast(e, http.StatusUnprocessableEntity, "API key: "+errs["api_key"])
		}

		ctx := e.Request.Context()
		if err := p.SaveAPIKey(ctx, form.APIKey); err != nil {
			log.Printf("admin_ai: could not save %s key: %v", p.Name(), err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save API key")
		}

		view := providerView(ctx, p)
		view.Message = "Key saved"
		view.Success = true
		SetToast(e, ToastSuccess, view.Label+" key saved")
		return templates.AIProviderPanel(view).Render(ctx, e.Response)
	}
}

// HandleAIKeyTest checks the submitted key, or the stored one when the field
// is blank. A failed check is a normal response, not an error.
func HandleAIKeyTest(registry *aikeys.Registry, timeout time.Duration) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, err := lookupProvider(e, registry)
		if p == nil {
			return err
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		ctx := e.Request.Context()
		view := providerView(ctx, p)

		key := strings.TrimSpace(e.Request.FormValue("api_key"))
		if key == "" {
			key, _ = p.GetAPIKey(ctx)
		}
		if key == "" {
			view.Message = "Enter or save a key to test"
			return templates.AIProviderPanel(view).Render(ctx, e.Response)
		}

		testCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if p.TestAPIKey(testCtx, key) {
			view.Message = "The key works"
			view.Success = true
			SetToast(e, ToastSuccess, view.Label+" key works")
		} else {
			view.Message = "The key was rejected or the provider could not be reached"
			SetToast(e, ToastWarning, view.Label+" key check failed")
		}
		return templates.AIProviderPanel(view).Render(ctx, e.Response)
	}
}

func HandleAIChat(registry *aikeys.Registry, timeout time.Duration) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		p, err := lookupProvider(e, registry)
		if p == nil {
			return err
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		form := chatForm{Prompt: strings.TrimSpace(e.Request.FormValue("prompt"))}
		if errs := validateForm(form); errs != nil {
			return ErrorToast(e, http.StatusUnprocessableEntity, "Prompt: "+errs["prompt"])
		}

		ctx, cancel := context.WithTimeout(e.Request.Context(), 4*timeout)
		defer cancel()
		reply, err := p.Chat(ctx, []aikeys.Message{{Role: aikeys.RoleUser, Content: form.Prompt}}, aikeys.ChatOptions{MaxTokens: 512})
		if errors.Is(err, aikeys.ErrNoAPIKey) {
			return ErrorToast(e, http.StatusBadRequest, "Save an API key first")
		}
		if err != nil {
			log.Printf("admin_ai: %s chat failed: %v", p.Name(), err)
			return ErrorToast(e, http.StatusBadGateway, "The AI provider returned an error")
		}
		return templates.AIChatReply(reply).Render(e.Request.Context(), e.Response)
	}
}

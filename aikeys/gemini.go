package aikeys

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"callcenter/storage"
)

// GeminiName is the registry name of the Gemini provider.
const GeminiName = "gemini"

// GeminiConfig selects the model and, for tests or proxies, the endpoint.
type GeminiConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Gemini talks to Google's Gemini API through the genai SDK. A client is
// built per call because the stored key can change between calls.
type Gemini struct {
	keys    keySlot
	baseURL string
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewGemini(slot storage.Slot, cfg GeminiConfig, logger *zap.Logger) *Gemini {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	return &Gemini{
		keys:    keySlot{slot: slot, logger: logger},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

func (p *Gemini) Name() string { return GeminiName }

func (p *Gemini) SaveAPIKey(_ context.Context, key string) error {
	return p.keys.save(key)
}

func (p *Gemini) GetAPIKey(_ context.Context) (string, bool) {
	return p.keys.get()
}

func (p *Gemini) newClient(ctx context.Context, key string) (*genai.Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:     key,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: p.timeout},
	}
	if p.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: p.baseURL}
	}
	return genai.NewClient(ctx, cfg)
}

// TestAPIKey sends a one-token prompt with key.
func (p *Gemini) TestAPIKey(ctx context.Context, key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	client, err := p.newClient(ctx, key)
	if err != nil {
		p.logger.Info("gemini: key test client failed", zap.Error(err))
		return false
	}
	_, err = client.Models.GenerateContent(ctx, p.model,
		[]*genai.Content{genai.NewContentFromText("ping", genai.RoleUser)},
		&genai.GenerateContentConfig{MaxOutputTokens: 1},
	)
	if err != nil {
		p.logger.Info("gemini: key test request failed", zap.Error(err))
		return false
	}
	return true
}

// Chat maps system messages to the system instruction and assistant turns to
// the model role.
func (p *Gemini) Chat(ctx context.Context, messages []Message, opts ChatOptions) (string, error) {
	key, ok := p.keys.get()
	if !ok {
		return "", ErrNoAPIKey
	}
	client, err := p.newClient(ctx, key)
	if err != nil {
		return "", fmt.Errorf("gemini: chat: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     opts.Temperature,
		MaxOutputTokens: int32(opts.MaxTokens),
	}
	var system []string
	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	if len(system) > 0 {
		cfg.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}

	model := p.model
	if opts.Model != "" {
		model = opts.Model
	}
	resp, err := client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: chat: %w", err)
	}
	return resp.Text(), nil
}

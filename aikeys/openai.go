package aikeys

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"callcenter/storage"
)

// OpenAIName is the registry name of the OpenAI provider.
const OpenAIName = "openai"

// OpenAIConfig points the provider at an OpenAI-compatible endpoint.
type OpenAIConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAI talks to any API implementing the Chat Completions wire format.
type OpenAI struct {
	keys       keySlot
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewOpenAI(slot storage.Slot, cfg OpenAIConfig, logger *zap.Logger) *OpenAI {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return &OpenAI{
		keys:       keySlot{slot: slot, logger: logger},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (p *OpenAI) Name() string { return OpenAIName }

func (p *OpenAI) SaveAPIKey(_ context.Context, key string) error {
	return p.keys.save(key)
}

func (p *OpenAI) GetAPIKey(_ context.Context) (string, bool) {
	return p.keys.get()
}

// TestAPIKey sends a one-token "ping" chat completion with the key; any
// 2xx counts as valid.
func (p *OpenAI) TestAPIKey(ctx context.Context, key string) bool {
	body, err := json.Marshal(openaiRequest{
		Model:     p.model,
		Messages:  []openaiMessage{{Role: RoleUser, Content: "ping"}},
		MaxTokens: 1,
	})
	if err != nil {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(key))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Info("openai: key test request failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiRequest struct {
	Model       string          `json:"model"`
	Messages    []openaiMessage `json:"messages"`
	Temperature *float32        `json:"temperature,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type openaiResponse struct {
	Choices []struct {
		Message openaiMessage `json:"message"`
	} `json:"choices"`
}

type openaiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (p *OpenAI) Chat(ctx context.Context, messages []Message, opts ChatOptions) (string, error) {
	key, ok := p.keys.get()
	if !ok {
		return "", ErrNoAPIKey
	}

	wire := openaiRequest{
		Model:       p.model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	if opts.Model != "" {
		wire.Model = opts.Model
	}
	for _, m := range messages {
		wire.Messages = append(wire.Messages, openaiMessage{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("openai: chat: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: chat: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: chat: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openai: chat: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr openaiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("openai: chat: HTTP %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("openai: chat: HTTP %d", resp.StatusCode)
	}

	var decoded openaiResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("openai: chat: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("openai: chat: response had no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}

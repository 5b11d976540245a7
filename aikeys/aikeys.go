// Package aikeys stores API keys for the hosted language-model providers and
// talks to them for key checks and admin chat.
package aikeys

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"callcenter/storage"
)

var (
	// ErrNoAPIKey is returned by Chat when no key has been saved.
	ErrNoAPIKey = errors.New("aikeys: no API key stored")
	// ErrEmptyAPIKey is returned by SaveAPIKey for a blank key.
	ErrEmptyAPIKey = errors.New("aikeys: API key is empty")
	// ErrUnknownProvider is returned by Registry.Get.
	ErrUnknownProvider = errors.New("aikeys: unknown provider")
)

// Message roles understood by every provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string
	Content string
}

// ChatOptions tunes a single Chat call. Zero values use provider defaults.
type ChatOptions struct {
	Model       string
	Temperature *float32
	MaxTokens   int
}

// Provider is one hosted model API with its own stored key.
type Provider interface {
	Name() string
	SaveAPIKey(ctx context.Context, key string) error
	GetAPIKey(ctx context.Context) (string, bool)
	// TestAPIKey reports whether one minimal request with key succeeds.
	// Failures of any kind yield false.
	TestAPIKey(ctx context.Context, key string) bool
	Chat(ctx context.Context, messages []Message, opts ChatOptions) (string, error)
}

// keySlot persists a single API key as plain text.
type keySlot struct {
	slot   storage.Slot
	logger *zap.Logger
}

func (k keySlot) save(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyAPIKey
	}
	if err := k.slot.Save([]byte(key)); err != nil {
		return fmt.Errorf("aikeys: save key: %w", err)
	}
	return nil
}

func (k keySlot) get() (string, bool) {
	data, err := k.slot.Load()
	if err != nil {
		k.logger.Warn("aikeys: could not read key slot", zap.Error(err))
		return "", false
	}
	key := strings.TrimSpace(string(data))
	return key, key != ""
}

// Registry looks providers up by name.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	return p, nil
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MaskKey shows only the last four characters of a key.
func MaskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("•", len(key))
	}
	return strings.Repeat("•", 8) + key[len(key)-4:]
}

// Package config loads runtime settings from the environment, after
// reading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the server and CLI read at start.
type Config struct {
	ProfileSlot       string
	ServiceConfigSlot string
	OpenAIKeySlot     string
	GeminiKeySlot     string

	OpenAIBaseURL string
	OpenAIModel   string
	GeminiBaseURL string
	GeminiModel   string
	AITestTimeout time.Duration

	Debug    bool
	SeedDemo bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ProfileSlot:       "client_profile",
		ServiceConfigSlot: "service_config",
		OpenAIKeySlot:     "openai_api_key",
		GeminiKeySlot:     "gemini_api_key",
		OpenAIBaseURL:     "https://api.openai.com",
		OpenAIModel:       "gpt-4o-mini",
		GeminiModel:       "gemini-2.0-flash",
		AITestTimeout:     15 * time.Second,
	}
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, falling back to Default for unset
// variables. The result is validated.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	str("PROFILE_SLOT", &cfg.ProfileSlot)
	str("SERVICE_CONFIG_SLOT", &cfg.ServiceConfigSlot)
	str("OPENAI_KEY_SLOT", &cfg.OpenAIKeySlot)
	str("GEMINI_KEY_SLOT", &cfg.GeminiKeySlot)
	str("OPENAI_BASE_URL", &cfg.OpenAIBaseURL)
	str("OPENAI_MODEL", &cfg.OpenAIModel)
	str("GEMINI_BASE_URL", &cfg.GeminiBaseURL)
	str("GEMINI_MODEL", &cfg.GeminiModel)

	if v, ok := lookup("AI_TEST_TIMEOUT"); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("config: AI_TEST_TIMEOUT: %w", err)
		}
		cfg.AITestTimeout = d
	}
	for _, f := range []struct {
		name string
		dst  *bool
	}{
		{"APP_DEBUG", &cfg.Debug},
		{"SEED_DEMO", &cfg.SeedDemo},
	} {
		v, ok := lookup(f.name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", f.name, err)
		}
		*f.dst = b
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	var errs []error
	slots := []struct{ name, value string }{
		{"PROFILE_SLOT", c.ProfileSlot},
		{"SERVICE_CONFIG_SLOT", c.ServiceConfigSlot},
		{"OPENAI_KEY_SLOT", c.OpenAIKeySlot},
		{"GEMINI_KEY_SLOT", c.GeminiKeySlot},
	}
	seen := map[string]string{}
	for _, s := range slots {
		if s.value == "" {
			errs = append(errs, fmt.Errorf("config: %s must not be empty", s.name))
			continue
		}
		if other, dup := seen[s.value]; dup {
			errs = append(errs, fmt.Errorf("config: %s and %s share slot %q", other, s.name, s.value))
		}
		seen[s.value] = s.name
	}
	if c.AITestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("config: AI_TEST_TIMEOUT must be positive, got %s", c.AITestTimeout))
	}
	return errors.Join(errs...)
}

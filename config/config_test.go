package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "client_profile", cfg.ProfileSlot)
	assert.Equal(t, 15*time.Second, cfg.AITestTimeout)
	assert.False(t, cfg.Debug)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		"PROFILE_SLOT":    " demo_profile ",
		"OPENAI_BASE_URL": "http://localhost:11434",
		"OPENAI_MODEL":    "llama3",
		"GEMINI_MODEL":    "gemini-2.5-pro",
		"AI_TEST_TIMEOUT": "3s",
		"APP_DEBUG":       "true",
		"SEED_DEMO":       "1",
	}))
	require.NoError(t, err)
	assert.Equal(t, "demo_profile", cfg.ProfileSlot)
	assert.Equal(t, "http://localhost:11434", cfg.OpenAIBaseURL)
	assert.Equal(t, "llama3", cfg.OpenAIModel)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	assert.Equal(t, 3*time.Second, cfg.AITestTimeout)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.SeedDemo)
}

func TestFromEnv_BadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad duration", map[string]string{"AI_TEST_TIMEOUT": "soon"}, "AI_TEST_TIMEOUT"},
		{"zero timeout", map[string]string{"AI_TEST_TIMEOUT": "0s"}, "must be positive"},
		{"bad bool", map[string]string{"APP_DEBUG": "maybe"}, "APP_DEBUG"},
		{"bad seed flag", map[string]string{"SEED_DEMO": "sometimes"}, "SEED_DEMO"},
		{"empty slot", map[string]string{"PROFILE_SLOT": "  "}, "PROFILE_SLOT must not be empty"},
		{"shared slot", map[string]string{"SERVICE_CONFIG_SLOT": "client_profile"}, "share slot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(lookupFrom(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENAI_MODEL=from-dotenv\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("GEMINI_MODEL", "from-process")
	t.Cleanup(func() { _ = os.Unsetenv("OPENAI_MODEL") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-process", cfg.GeminiModel)
	assert.Equal(t, "from-dotenv", cfg.OpenAIModel)
}

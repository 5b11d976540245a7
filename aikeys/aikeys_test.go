package aikeys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"callcenter/storage"
)

func TestRegistry(t *testing.T) {
	openai := NewOpenAI(storage.NewMemorySlot(nil), OpenAIConfig{}, nil)
	gemini := NewGemini(storage.NewMemorySlot(nil), GeminiConfig{}, nil)
	r := NewRegistry(openai, gemini)

	assert.Equal(t, []string{"gemini", "openai"}, r.Names())

	p, err := r.Get("openai")
	require.NoError(t, err)
	assert.Same(t, openai, p)

	_, err = r.Get("anthropic")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "", MaskKey(""))
	assert.Equal(t, "•••", MaskKey("abc"))
	assert.Equal(t, "••••••••1234", MaskKey("sk-abcdef1234"))
}

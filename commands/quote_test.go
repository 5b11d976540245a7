package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runQuote(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewQuoteCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestQuoteCommand_Simple(t *testing.T) {
	out, err := runQuote(t, "--hours", "8", "--days", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "160")
	assert.Contains(t, out, "€5,420.80")
	assert.NotContains(t, out, "Discount")
}

func TestQuoteCommand_SimpleWithDiscount(t *testing.T) {
	out, err := runQuote(t, "--hours", "24", "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Discount (10%)")
	assert.Contains(t, out, "€20,490.62")
}

func TestQuoteCommand_SimpleIncomplete(t *testing.T) {
	_, err := runQuote(t, "--hours", "8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--days one of 5, 6, 7")
}

func TestQuoteCommand_ProfessionalBundle(t *testing.T) {
	out, err := runQuote(t,
		"--services", "ai_agent_calling,live_chat,analytics",
		"--tier", "professional",
		"--coverage", "24/7", "--compliance", "strict", "--volume", "high",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Professional platform")
	assert.Contains(t, out, "Bundle discount (10%)")
	assert.Contains(t, out, "€6,785.92")
}

func TestQuoteCommand_DefaultBundleIsStarter(t *testing.T) {
	out, err := runQuote(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Starter platform")
	assert.Contains(t, out, "€1,329.79")
	assert.True(t, strings.Contains(out, "No assessment on file"))
}

func TestQuoteCommand_Errors(t *testing.T) {
	_, err := runQuote(t, "--services", "telepathy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown service "telepathy"`)

	_, err = runQuote(t, "--tier", "platinum")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown tier "platinum"`)

	_, err = runQuote(t, "extra")
	require.Error(t, err)
}

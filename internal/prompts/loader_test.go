package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get(File, KeyQuizAnalysis)
	require.NoError(t, err)
	assert.Contains(t, prompt, "**CAREER PROFILE ANALYSIS:**")
	assert.Contains(t, prompt, "**TOP 3 CAREER RECOMMENDATIONS:**")
	assert.Contains(t, prompt, "**NEXT STEPS:**")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(File, "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestFormat(t *testing.T) {
	got := Format("Hello {{.Name}}, you like {{.Topic}}.{{.Missing}}", map[string]string{
		"Name":  "Ada",
		"Topic": "engines",
	})
	assert.Equal(t, "Hello Ada, you like engines.", got)
}

func TestFormat_ValueContainingPlaceholderSyntaxIsKept(t *testing.T) {
	got := Format("Q: {{.Message}}", map[string]string{"Message": "what is {{x}}?"})
	assert.Equal(t, "Q: what is {{x}}?", got)
}

func TestBuild_IndustryInsights(t *testing.T) {
	got := Build(KeyIndustryInsights, map[string]string{"Industry": "Renewable Energy"})
	assert.Contains(t, got, `"Renewable Energy"`)
	assert.NotContains(t, got, "{{.")
}

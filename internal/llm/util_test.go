package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	const insight = `{"industry": "Healthcare", "trends": ["Telehealth"]}`

	tests := map[string]string{
		"json fence":         "```json\n" + insight + "\n```",
		"bare fence":         "```\n" + insight + "\n```",
		"other language tag": "```jsonc\n" + insight + "\n```",
		"fence on one line":  "```" + insight + "```",
		"surrounding spaces": "\n   " + insight + "  \n",
		"no trailing fence":  "```json\n" + insight,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, insight, CleanJSONBlock(input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before object",
			input:    "As requested, here is the JSON:\n{\"industry\": \"Fintech\"}",
			expected: `{"industry": "Fintech"}`,
		},
		{
			name:     "trailing text",
			input:    "{\"key\": \"value\"}\n\nLet me know if you need anything else!",
			expected: `{"key": "value"}`,
		},
		{
			name:     "fenced nested object",
			input:    "```json\n{\"outer\": {\"inner\": \"value\"}}\n```",
			expected: `{"outer": {"inner": "value"}}`,
		},
		{
			name:     "no object",
			input:    "not json",
			expected: "not json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractJSONObject(tt.input))
		})
	}
}

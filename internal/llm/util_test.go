package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain JSON unchanged",
			input:    `{"entities": ["Person"]}`,
			expected: `{"entities": ["Person"]}`,
		},
		{
			name:     "json code fence",
			input:    "```json\n{\"entities\": [\"Person\"]}\n```",
			expected: `{"entities": ["Person"]}`,
		},
		{
			name:     "generic code fence",
			input:    "```\n{\"entities\": [\"Person\"]}\n```",
			expected: `{"entities": ["Person"]}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"a\": 1}\n  ",
			expected: `{"a": 1}`,
		},
		{
			name:     "fence with language identifier",
			input:    "```javascript\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

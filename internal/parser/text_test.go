package parser

import (
	"strings"
	"testing"

	"github.com/jonathan/docforge/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextParser_Parse(t *testing.T) {
	input := "First paragraph.\n\nSecond paragraph."
	p := &TextParser{}

	doc, err := p.Parse(strings.NewReader(input), "notes.txt")
	require.NoError(t, err)

	assert.Equal(t, "notes.txt", doc.Name)
	require.Len(t, doc.Sections, 1)

	sec := doc.Sections[0]
	assert.Equal(t, 1, sec.Number)
	assert.Equal(t, input, sec.Text)
	assert.Equal(t, input, sec.MD)
	require.Len(t, sec.Items, 1)
	assert.Equal(t, ir.TextItem{MD: input, Text: input}, sec.Items[0])
}

func TestTextParser_EmptyFile(t *testing.T) {
	p := &TextParser{}

	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "", doc.Sections[0].Text)
}

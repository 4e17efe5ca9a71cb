package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForFile_SupportedExtensions(t *testing.T) {
	p, err := ForFile("notes.txt")
	require.NoError(t, err)
	assert.IsType(t, &TextParser{}, p)

	p, err = ForFile("data.CSV")
	require.NoError(t, err)
	assert.IsType(t, &CSVParser{}, p)
}

func TestForFile_UnsupportedExtension(t *testing.T) {
	_, err := ForFile("slides.pptx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".pptx")
}

func TestIsSupportedExtension(t *testing.T) {
	assert.True(t, IsSupportedExtension("a.txt"))
	assert.True(t, IsSupportedExtension("b.csv"))
	assert.False(t, IsSupportedExtension("c.pdf"))
	assert.False(t, IsSupportedExtension("noext"))
}

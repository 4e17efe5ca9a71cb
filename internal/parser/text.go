package parser

import (
	"fmt"
	"io"

	"github.com/jonathan/docforge/internal/ir"
)

// TextParser handles plain text files. The whole file becomes a single
// section whose markdown equals its text.
type TextParser struct{}

// Parse reads the full input and wraps it in a one-section document.
func (p *TextParser) Parse(r io.Reader, filename string) (*ir.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}

	text := string(data)
	doc := ir.FromSections(filename, []ir.Section{
		{
			Number: 1,
			Text:   text,
			MD:     text,
			Items: ir.ItemList{
				ir.TextItem{MD: text, Text: text},
			},
		},
	})
	return &doc, nil
}

package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/docforge/internal/ir"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_PrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := ir.FromSections("report.pdf", []ir.Section{
		{Number: 1, Items: ir.ItemList{ir.TextItem{Text: "a"}}},
		{Number: 2, Images: []ir.Image{{Contents: []byte{1}}}},
	})
	p.PrintDocument(doc)

	out := buf.String()
	assert.Contains(t, out, "PARSED DOCUMENT")
	assert.Contains(t, out, "report.pdf")
	assert.Contains(t, out, "page_1: 1 items, 0 images")
	assert.Contains(t, out, "page_2: 0 items, 1 images")
}

func TestPrinter_PrintSchema(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSchema(&ir.Schema{
		Entities:         []string{"Person", "Organization"},
		Relations:        []string{"works_at"},
		ValidationSchema: map[string][]string{"Person": {"works_at"}},
	})

	out := buf.String()
	assert.Contains(t, out, "INFERRED SCHEMA")
	assert.Contains(t, out, "Person, Organization")
	assert.Contains(t, out, "works_at")
}

func TestPrinter_PrintSchema_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSchema(nil)
	assert.Empty(t, buf.String())
}

func TestPrinter_PrintJobMetadata(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobMetadata(ir.JobMetadata{JobPages: 3, CreditsUsed: 1.5, CreditsMax: 10})

	out := buf.String()
	assert.Contains(t, out, "JOB METADATA")
	assert.Contains(t, out, "Pages:        3")
	assert.Contains(t, out, "1.50 / 10")
}

func TestJoinCapped(t *testing.T) {
	assert.Equal(t, "a, b", joinCapped([]string{"a", "b"}))

	many := []string{"a", "b", "c", "d", "e", "f", "g"}
	assert.Equal(t, "a, b, c, d, e, ... (7 total)", joinCapped(many))
}

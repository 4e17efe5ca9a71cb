// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/docforge/internal/ir"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a human-readable summary of a parsed document.
func (p *Printer) PrintDocument(doc ir.Document) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Name))
	sb.WriteString(fmt.Sprintf("Sections: %d\n", len(doc.Sections)))

	count := min(len(doc.Sections), maxItemsToShow)
	for i := 0; i < count; i++ {
		sec := doc.Sections[i]
		sb.WriteString(fmt.Sprintf("  • %s: %d items, %d images\n", sec.ID(), len(sec.Items), len(sec.Images)))
	}
	if len(doc.Sections) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Sections)-maxItemsToShow))
	}

	p.printBox("PARSED DOCUMENT", sb.String())
}

// PrintSchema outputs a human-readable summary of an inferred schema.
func (p *Printer) PrintSchema(schema *ir.Schema) {
	if schema == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Entities:  %s\n", joinCapped(schema.Entities)))
	sb.WriteString(fmt.Sprintf("Relations: %s\n", joinCapped(schema.Relations)))
	if len(schema.ValidationSchema) > 0 {
		sb.WriteString(fmt.Sprintf("Validation map entries: %d\n", len(schema.ValidationSchema)))
	}

	p.printBox("INFERRED SCHEMA", sb.String())
}

// PrintJobMetadata outputs a summary of a parsing run's telemetry.
func (p *Printer) PrintJobMetadata(meta ir.JobMetadata) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Pages:        %d\n", meta.JobPages))
	sb.WriteString(fmt.Sprintf("Credits used: %.2f / %d\n", meta.CreditsUsed, meta.CreditsMax))
	sb.WriteString(fmt.Sprintf("Cache hit:    %t\n", meta.JobIsCacheHit))

	p.printBox("JOB METADATA", sb.String())
}

func joinCapped(values []string) string {
	if len(values) <= maxItemsToShow {
		return strings.Join(values, ", ")
	}
	shown := strings.Join(values[:maxItemsToShow], ", ")
	return fmt.Sprintf("%s, ... (%d total)", shown, len(values))
}

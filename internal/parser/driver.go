package parser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/docforge/internal/ir"
)

// Result pairs a parsed document with the telemetry of the run that
// produced it. The metadata has no structural link into the document.
type Result struct {
	Document ir.Document
	Metadata ir.JobMetadata
}

// ParseFile selects a parser by extension, parses the file, and attaches
// run metadata. Local parsing consumes no credits; credit fields are
// populated by drivers fronting paid parsing services.
func ParseFile(path string) (*Result, error) {
	p, err := ForFile(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := p.Parse(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &Result{
		Document: *doc,
		Metadata: ir.JobMetadata{
			JobPages: len(doc.Sections),
		},
	}, nil
}

// Package parser is the producer boundary of the document IR: it turns raw
// file bytes into ir.Document values. Parsers here are deliberately plain --
// format-specific extraction engines plug in behind the same interface.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jonathan/docforge/internal/ir"
)

// Parser converts raw document bytes into a Document.
type Parser interface {
	Parse(r io.Reader, filename string) (*ir.Document, error)
}

// SupportedExtensions lists file extensions this module can handle.
var SupportedExtensions = map[string]bool{
	".txt": true,
	".csv": true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

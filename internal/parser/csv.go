package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/docforge/internal/ir"
)

// CSVParser handles CSV files. The file becomes a single section holding
// one table item; the csv field keeps the raw input verbatim.
type CSVParser struct{}

// Parse decodes the CSV and wraps it in a one-section document.
func (p *CSVParser) Parse(r io.Reader, filename string) (*ir.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv file: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // rows need not be rectangular

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	md := markdownTable(rows)
	table := ir.TableItem{
		MD:             md,
		Rows:           rows,
		CSV:            string(data),
		IsPerfectTable: isRectangular(rows),
	}

	doc := ir.FromSections(filename, []ir.Section{
		{
			Number: 1,
			Text:   string(data),
			MD:     md,
			Items:  ir.ItemList{table},
		},
	})
	return &doc, nil
}

// isRectangular reports whether every row has the same cell count.
func isRectangular(rows [][]string) bool {
	if len(rows) == 0 {
		return false
	}
	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != width {
			return false
		}
	}
	return true
}

// markdownTable renders rows as a markdown table, first row as header.
func markdownTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for _, cell := range cells {
			sb.WriteString(" ")
			sb.WriteString(strings.ReplaceAll(cell, "|", "\\|"))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(rows[0])
	sb.WriteString("|")
	sb.WriteString(strings.Repeat(" --- |", len(rows[0])))
	sb.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

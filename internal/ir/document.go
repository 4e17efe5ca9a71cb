package ir

import (
	"fmt"
	"strings"
)

// MergedDocumentName is the sentinel name given to documents produced by
// MergeDocuments. It signals that the result is a synthetic aggregate
// rather than the parse of a single source file.
const MergedDocumentName = "MergedFile"

// Document is the root of the intermediate representation: a named,
// ordered sequence of sections. Section order is the document's reading
// order and is never reordered by this layer. Documents are immutable;
// every operation returns a new value.
type Document struct {
	Name     string    `json:"name"`
	Sections []Section `json:"sections"`
}

// FromSections builds a document directly from a name and section list.
func FromSections(name string, sections []Section) Document {
	return Document{Name: name, Sections: sections}
}

// MergeAll appends the sections of each other document, in input order,
// after the receiver's sections. The result keeps the receiver's name.
// Sections are concatenated as-is: no renumbering, no deduplication;
// duplicate section numbers are the caller's concern.
func (d Document) MergeAll(others ...Document) Document {
	total := len(d.Sections)
	for _, other := range others {
		total += len(other.Sections)
	}

	sections := make([]Section, 0, total)
	sections = append(sections, d.Sections...)
	for _, other := range others {
		sections = append(sections, other.Sections...)
	}

	return Document{Name: d.Name, Sections: sections}
}

// MergeDocuments combines the sections of all given documents into one
// document named MergedDocumentName. An empty or nil input yields an empty
// document with the sentinel name.
func MergeDocuments(docs []Document) Document {
	total := 0
	for _, doc := range docs {
		total += len(doc.Sections)
	}

	sections := make([]Section, 0, total)
	for _, doc := range docs {
		sections = append(sections, doc.Sections...)
	}

	return Document{Name: MergedDocumentName, Sections: sections}
}

// Markdown joins every section's markdown in section order, separated by
// newlines. Sections without markup contribute an empty string.
func (d Document) Markdown() string {
	parts := make([]string, len(d.Sections))
	for i, sec := range d.Sections {
		parts[i] = sec.MD
	}
	return strings.Join(parts, "\n")
}

// PromptText renders the document for LLM consumption: the file name plus
// each section's markdown wrapped in zero-based positional tags. This is a
// prompt-formatting convenience, not a persisted form, and has no
// round-trip guarantee.
func (d Document) PromptText() string {
	tagged := make([]string, len(d.Sections))
	for i, sec := range d.Sections {
		tagged[i] = fmt.Sprintf("<section_%d> %s </section_%d>", i, sec.MD, i)
	}
	return fmt.Sprintf("<file>\n\n**name:** %s \n**sections:** %s\n\n</file>", d.Name, strings.Join(tagged, " "))
}

// SectionTexts returns each section's plain text in section order. Schema
// inference consumes this rather than the markdown views.
func (d Document) SectionTexts() []string {
	texts := make([]string, len(d.Sections))
	for i, sec := range d.Sections {
		texts[i] = sec.Text
	}
	return texts
}

// Package ir defines the format-agnostic intermediate representation for
// parsed document content. Every supported source format is reduced to the
// same Document/Section/Item shape so downstream consumers (renderers,
// indexers, LLM pipelines) never see format-specific structures.
package ir

import (
	"encoding/json"
	"fmt"
)

// ItemKind discriminates the content item variants on the wire.
type ItemKind string

// Item kind constants are part of the wire contract and must not change
// without a format version bump.
const (
	KindText    ItemKind = "text"
	KindHeading ItemKind = "heading"
	KindTable   ItemKind = "table"
)

// Item is one atomic structured unit inside a Section: plain text, a
// heading, or a table. Every variant carries a markdown rendering.
type Item interface {
	// Kind returns the wire discriminator for this variant.
	Kind() ItemKind
	// Markdown returns the rendered markdown form of the item.
	Markdown() string
}

// TextItem is a plain text run within a section.
type TextItem struct {
	MD   string `json:"md"`
	Text string `json:"text"`
}

// Kind returns KindText.
func (TextItem) Kind() ItemKind { return KindText }

// Markdown returns the markdown rendering of the text item.
func (t TextItem) Markdown() string { return t.MD }

// MarshalJSON writes the item with its type discriminator.
func (t TextItem) MarshalJSON() ([]byte, error) {
	type alias TextItem
	return json.Marshal(struct {
		Type ItemKind `json:"type"`
		alias
	}{KindText, alias(t)})
}

// HeadingItem is a heading with a nesting level. Level is 1-based by
// convention; this layer does not enforce it.
type HeadingItem struct {
	MD      string `json:"md"`
	Heading string `json:"heading"`
	Level   int    `json:"lvl"`
}

// Kind returns KindHeading.
func (HeadingItem) Kind() ItemKind { return KindHeading }

// Markdown returns the markdown rendering of the heading.
func (h HeadingItem) Markdown() string { return h.MD }

// MarshalJSON writes the item with its type discriminator.
func (h HeadingItem) MarshalJSON() ([]byte, error) {
	type alias HeadingItem
	return json.Marshal(struct {
		Type ItemKind `json:"type"`
		alias
	}{KindHeading, alias(h)})
}

// TableItem is a table extracted from a section. Rows need not be
// rectangular. CSV and IsPerfectTable are producer-supplied; this layer
// does not derive them from Rows.
type TableItem struct {
	MD             string     `json:"md"`
	Rows           [][]string `json:"rows"`
	CSV            string     `json:"csv"`
	IsPerfectTable bool       `json:"is_perfect_table"`
}

// Kind returns KindTable.
func (TableItem) Kind() ItemKind { return KindTable }

// Markdown returns the markdown rendering of the table.
func (t TableItem) Markdown() string { return t.MD }

// MarshalJSON writes the item with its type discriminator.
func (t TableItem) MarshalJSON() ([]byte, error) {
	type alias TableItem
	return json.Marshal(struct {
		Type ItemKind `json:"type"`
		alias
	}{KindTable, alias(t)})
}

// ItemList is an ordered, heterogeneous sequence of content items that
// round-trips through JSON without losing variant identity.
type ItemList []Item

// UnmarshalJSON decodes each element by its type discriminator. Elements
// with an unknown or missing discriminator fail with a DecodeError; they
// are never silently coerced to a default variant.
func (l *ItemList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Message: "items is not a JSON array", Cause: err}
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}

	items := make(ItemList, 0, len(raw))
	for i, msg := range raw {
		item, err := decodeItem(msg)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	*l = items
	return nil
}

func decodeItem(data []byte) (Item, error) {
	var probe struct {
		Type ItemKind `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &DecodeError{Message: "invalid item object", Cause: err}
	}

	switch probe.Type {
	case KindText:
		var item TextItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, &DecodeError{Message: "invalid text item", Cause: err}
		}
		return item, nil
	case KindHeading:
		var item HeadingItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, &DecodeError{Message: "invalid heading item", Cause: err}
		}
		return item, nil
	case KindTable:
		var item TableItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, &DecodeError{Message: "invalid table item", Cause: err}
		}
		return item, nil
	default:
		return nil, &DecodeError{Message: fmt.Sprintf("unknown item type %q", probe.Type)}
	}
}

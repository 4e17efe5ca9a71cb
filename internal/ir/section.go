package ir

import "fmt"

// Section is one page, slide, or logical unit of a parsed document. It is
// created once by a producer and never mutated; Merge returns a new value.
type Section struct {
	Number int      `json:"number"`
	Text   string   `json:"text"`
	MD     string   `json:"md,omitempty"`
	Images []Image  `json:"images,omitempty"`
	Items  ItemList `json:"items,omitempty"`
}

// ID returns an identifier derived from the section number. Numbers are
// not guaranteed unique across a merged document; callers needing global
// uniqueness must disambiguate themselves.
func (s Section) ID() string {
	return fmt.Sprintf("page_%d", s.Number)
}

// Merge concatenates other onto s and returns the combined section. The
// receiver's number is authoritative; text and markup are concatenated with
// no separator, and images and items keep left-then-right order. Neither
// operand is modified. Merge exists to stitch together artificially split
// sections, e.g. a table straddling a page boundary.
func (s Section) Merge(other Section) Section {
	images := make([]Image, 0, len(s.Images)+len(other.Images))
	images = append(images, s.Images...)
	images = append(images, other.Images...)

	items := make(ItemList, 0, len(s.Items)+len(other.Items))
	items = append(items, s.Items...)
	items = append(items, other.Items...)

	return Section{
		Number: s.Number,
		Text:   s.Text + other.Text,
		MD:     s.MD + other.MD,
		Images: images,
		Items:  items,
	}
}

// Package mirror holds format-native shadow representations of PDF and
// PPTX sources. These trees keep page and slide structure that the
// format-agnostic IR intentionally flattens; they do not participate in
// the IR merge algebra. Their element lists use the same discriminated
// union encoding as IR content items.
package mirror

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/docforge/internal/ir"
)

// PDFMetadata holds document-level PDF properties.
type PDFMetadata struct {
	Title            string     `json:"title"`
	Author           string     `json:"author"`
	Subject          string     `json:"subject"`
	Keywords         []string   `json:"keywords,omitempty"`
	CreationDate     time.Time  `json:"creation_date"`
	ModificationDate *time.Time `json:"modification_date,omitempty"`
}

// PDFElementKind discriminates PDF page element variants on the wire.
type PDFElementKind string

// PDF element kinds.
const (
	PDFElementText  PDFElementKind = "text"
	PDFElementImage PDFElementKind = "image"
)

// PDFElement is one positioned content element on a PDF page.
type PDFElement interface {
	ElementKind() PDFElementKind
}

// PDFTextBlock is formatted text content within a PDF page. Coordinates
// are the bounding box (x1, y1, x2, y2) in points.
type PDFTextBlock struct {
	Coordinates [4]float64 `json:"coordinates"`
	Text        string     `json:"text"`
	Font        string     `json:"font"`
	FontSize    float64    `json:"font_size"`
	Color       string     `json:"color,omitempty"`
}

// ElementKind returns PDFElementText.
func (PDFTextBlock) ElementKind() PDFElementKind { return PDFElementText }

// MarshalJSON writes the element with its type discriminator.
func (b PDFTextBlock) MarshalJSON() ([]byte, error) {
	type alias PDFTextBlock
	return json.Marshal(struct {
		Type PDFElementKind `json:"type"`
		alias
	}{PDFElementText, alias(b)})
}

// PDFImage is an embedded image within a PDF page. Resolution is
// horizontal and vertical DPI.
type PDFImage struct {
	Coordinates [4]float64 `json:"coordinates"`
	Data        []byte     `json:"data"`
	Format      string     `json:"format"`
	Resolution  [2]int     `json:"resolution"`
}

// ElementKind returns PDFElementImage.
func (PDFImage) ElementKind() PDFElementKind { return PDFElementImage }

// MarshalJSON writes the element with its type discriminator.
func (i PDFImage) MarshalJSON() ([]byte, error) {
	type alias PDFImage
	return json.Marshal(struct {
		Type PDFElementKind `json:"type"`
		alias
	}{PDFElementImage, alias(i)})
}

// PDFElementList is an ordered, heterogeneous sequence of page elements.
type PDFElementList []PDFElement

// UnmarshalJSON decodes each element by its type discriminator. Unknown
// discriminators fail with a decode error.
func (l *PDFElementList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ir.DecodeError{Message: "pdf content is not a JSON array", Cause: err}
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}

	elements := make(PDFElementList, 0, len(raw))
	for i, msg := range raw {
		element, err := decodePDFElement(msg)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		elements = append(elements, element)
	}
	*l = elements
	return nil
}

func decodePDFElement(data []byte) (PDFElement, error) {
	var probe struct {
		Type PDFElementKind `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &ir.DecodeError{Message: "invalid pdf element object", Cause: err}
	}

	switch probe.Type {
	case PDFElementText:
		var block PDFTextBlock
		if err := json.Unmarshal(data, &block); err != nil {
			return nil, &ir.DecodeError{Message: "invalid pdf text block", Cause: err}
		}
		return block, nil
	case PDFElementImage:
		var img PDFImage
		if err := json.Unmarshal(data, &img); err != nil {
			return nil, &ir.DecodeError{Message: "invalid pdf image", Cause: err}
		}
		return img, nil
	default:
		return nil, &ir.DecodeError{Message: fmt.Sprintf("unknown pdf element type %q", probe.Type)}
	}
}

// PDFPage is one page of a PDF document. Size is width and height in
// points; Rotation is the clockwise angle in degrees.
type PDFPage struct {
	Number   int            `json:"number"`
	Size     [2]float64     `json:"size"`
	Content  PDFElementList `json:"content"`
	Rotation int            `json:"rotation,omitempty"`
}

// PDFOutlineEntry is one entry of the document's table of contents.
type PDFOutlineEntry struct {
	Title string `json:"title"`
	Page  int    `json:"page"`
}

// PDFAttachment is a file embedded in the document.
type PDFAttachment struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}

// PDFDocument is the complete format-native PDF structure.
type PDFDocument struct {
	Metadata    PDFMetadata       `json:"metadata"`
	Pages       []PDFPage         `json:"pages"`
	Outline     []PDFOutlineEntry `json:"outline,omitempty"`
	Attachments []PDFAttachment   `json:"attachments,omitempty"`
}

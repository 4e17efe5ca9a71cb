package mirror

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/docforge/internal/ir"
)

// PPTXElementKind discriminates slide element variants on the wire.
type PPTXElementKind string

// PPTX element kinds.
const (
	PPTXElementText  PPTXElementKind = "text"
	PPTXElementMedia PPTXElementKind = "media"
)

// PPTXElement is one positioned element on a presentation slide.
type PPTXElement interface {
	ElementKind() PPTXElementKind
}

// PPTXTextElement is formatted text content in a slide. Position and
// Dimensions are in slide points.
type PPTXTextElement struct {
	Position   [2]float64     `json:"position"`
	Dimensions [2]float64     `json:"dimensions"`
	Content    string         `json:"content"`
	Style      string         `json:"style"`
	Font       map[string]any `json:"font,omitempty"`
}

// ElementKind returns PPTXElementText.
func (PPTXTextElement) ElementKind() PPTXElementKind { return PPTXElementText }

// MarshalJSON writes the element with its type discriminator.
func (e PPTXTextElement) MarshalJSON() ([]byte, error) {
	type alias PPTXTextElement
	return json.Marshal(struct {
		Type PPTXElementKind `json:"type"`
		alias
	}{PPTXElementText, alias(e)})
}

// PPTXMediaElement is embedded media in a slide. MediaType classifies the
// payload (image, video, audio); Preview is an optional thumbnail.
type PPTXMediaElement struct {
	Position   [2]float64 `json:"position"`
	Dimensions [2]float64 `json:"dimensions"`
	MediaType  string     `json:"media_type"`
	Data       []byte     `json:"data"`
	Preview    []byte     `json:"preview,omitempty"`
}

// ElementKind returns PPTXElementMedia.
func (PPTXMediaElement) ElementKind() PPTXElementKind { return PPTXElementMedia }

// MarshalJSON writes the element with its type discriminator.
func (e PPTXMediaElement) MarshalJSON() ([]byte, error) {
	type alias PPTXMediaElement
	return json.Marshal(struct {
		Type PPTXElementKind `json:"type"`
		alias
	}{PPTXElementMedia, alias(e)})
}

// PPTXElementList is an ordered, heterogeneous sequence of slide elements.
type PPTXElementList []PPTXElement

// UnmarshalJSON decodes each element by its type discriminator. Unknown
// discriminators fail with a decode error.
func (l *PPTXElementList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &ir.DecodeError{Message: "slide elements is not a JSON array", Cause: err}
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}

	elements := make(PPTXElementList, 0, len(raw))
	for i, msg := range raw {
		element, err := decodePPTXElement(msg)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		elements = append(elements, element)
	}
	*l = elements
	return nil
}

func decodePPTXElement(data []byte) (PPTXElement, error) {
	var probe struct {
		Type PPTXElementKind `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &ir.DecodeError{Message: "invalid slide element object", Cause: err}
	}

	switch probe.Type {
	case PPTXElementText:
		var element PPTXTextElement
		if err := json.Unmarshal(data, &element); err != nil {
			return nil, &ir.DecodeError{Message: "invalid slide text element", Cause: err}
		}
		return element, nil
	case PPTXElementMedia:
		var element PPTXMediaElement
		if err := json.Unmarshal(data, &element); err != nil {
			return nil, &ir.DecodeError{Message: "invalid slide media element", Cause: err}
		}
		return element, nil
	default:
		return nil, &ir.DecodeError{Message: fmt.Sprintf("unknown slide element type %q", probe.Type)}
	}
}

// PPTXSlide is one slide of a presentation.
type PPTXSlide struct {
	Number     int             `json:"number"`
	Layout     string          `json:"layout"`
	Elements   PPTXElementList `json:"elements"`
	Background map[string]any  `json:"background,omitempty"`
}

// PPTXDocument is the complete format-native presentation structure.
// Document metadata reuses the PDF metadata shape. Masters carries the
// slide master definitions the slides derive from.
type PPTXDocument struct {
	Metadata PDFMetadata      `json:"metadata"`
	Slides   []PPTXSlide      `json:"slides"`
	Masters  []map[string]any `json:"masters,omitempty"`
	Template map[string]any   `json:"template,omitempty"`
}

package mirror

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/docforge/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPPTXElementList_RoundTrip(t *testing.T) {
	elements := PPTXElementList{
		PPTXTextElement{
			Position:   [2]float64{100, 150},
			Dimensions: [2]float64{300, 200},
			Content:    "Main Title",
			Style:      "Title",
			Font:       map[string]any{"size": float64(44), "bold": true},
		},
		PPTXMediaElement{
			Position:   [2]float64{50, 400},
			Dimensions: [2]float64{200, 200},
			MediaType:  "image",
			Data:       []byte{0x89, 0x50},
		},
	}

	data, err := json.Marshal(elements)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"text"`)
	assert.Contains(t, string(data), `"type":"media"`)
	assert.Contains(t, string(data), `"media_type":"image"`)

	var decoded PPTXElementList
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, elements, decoded)
}

func TestPPTXElementList_UnknownTypeFails(t *testing.T) {
	input := `[{"type":"chart","position":[0,0],"dimensions":[0,0]}]`

	var decoded PPTXElementList
	err := json.Unmarshal([]byte(input), &decoded)
	require.Error(t, err)

	var decodeErr *ir.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Error(), `"chart"`)
}

func TestPPTXDocument_RoundTrip(t *testing.T) {
	doc := PPTXDocument{
		Metadata: PDFMetadata{Title: "Deck", Author: "Acme Corporation"},
		Slides: []PPTXSlide{
			{
				Number:   1,
				Layout:   "Title Slide",
				Elements: PPTXElementList{PPTXTextElement{Content: "Welcome", Style: "Title"}},
			},
		},
		Masters:  []map[string]any{{"name": "Office Theme"}},
		Template: map[string]any{"name": "default"},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"masters"`)

	var decoded PPTXDocument
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestPPTXSlide_RoundTrip(t *testing.T) {
	slide := PPTXSlide{
		Number: 1,
		Layout: "Title Slide",
		Elements: PPTXElementList{
			PPTXTextElement{Content: "Welcome", Style: "Title"},
		},
		Background: map[string]any{"color": "#FFFFFF"},
	}

	data, err := json.Marshal(slide)
	require.NoError(t, err)

	var decoded PPTXSlide
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, slide, decoded)
}

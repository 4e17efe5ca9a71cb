package mirror

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonathan/docforge/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFElementList_RoundTrip(t *testing.T) {
	elements := PDFElementList{
		PDFTextBlock{
			Coordinates: [4]float64{72, 700, 500, 720},
			Text:        "Introduction",
			Font:        "Helvetica",
			FontSize:    12,
			Color:       "#000000",
		},
		PDFImage{
			Coordinates: [4]float64{72, 100, 300, 400},
			Data:        []byte{0x89, 0x50},
			Format:      "PNG",
			Resolution:  [2]int{300, 300},
		},
	}

	data, err := json.Marshal(elements)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"text"`)
	assert.Contains(t, string(data), `"type":"image"`)

	var decoded PDFElementList
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, elements, decoded)
}

func TestPDFElementList_UnknownTypeFails(t *testing.T) {
	input := `[{"type":"annotation","coordinates":[0,0,0,0]}]`

	var decoded PDFElementList
	err := json.Unmarshal([]byte(input), &decoded)
	require.Error(t, err)

	var decodeErr *ir.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Error(), `"annotation"`)
}

func TestPDFDocument_RoundTrip(t *testing.T) {
	created := time.Date(2023, 1, 1, 9, 0, 0, 0, time.UTC)
	doc := PDFDocument{
		Metadata: PDFMetadata{
			Title:        "Annual Report 2023",
			Author:       "Acme Corporation",
			Subject:      "Financial Report",
			Keywords:     []string{"finance", "report"},
			CreationDate: created,
		},
		Pages: []PDFPage{
			{
				Number: 1,
				Size:   [2]float64{612, 792},
				Content: PDFElementList{
					PDFTextBlock{Text: "Q4 Results", Font: "Helvetica", FontSize: 14},
				},
			},
			{Number: 2, Size: [2]float64{612, 792}, Rotation: 90},
		},
		Outline:     []PDFOutlineEntry{{Title: "Chapter 1", Page: 1}},
		Attachments: []PDFAttachment{{Name: "data.csv", Content: []byte("a,b")}},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded PDFDocument
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestPDFPage_EmptyContent(t *testing.T) {
	input := `{"number": 1, "size": [612, 792], "content": []}`

	var page PDFPage
	err := json.Unmarshal([]byte(input), &page)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, 1, page.Number)
}

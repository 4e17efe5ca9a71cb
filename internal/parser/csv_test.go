package parser

import (
	"strings"
	"testing"

	"github.com/jonathan/docforge/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVParser_Parse(t *testing.T) {
	input := "name,city\nAlice,Austin\nBob,Boston\n"
	p := &CSVParser{}

	doc, err := p.Parse(strings.NewReader(input), "people.csv")
	require.NoError(t, err)

	assert.Equal(t, "people.csv", doc.Name)
	require.Len(t, doc.Sections, 1)

	sec := doc.Sections[0]
	require.Len(t, sec.Items, 1)

	table, ok := sec.Items[0].(ir.TableItem)
	require.True(t, ok, "expected a table item")
	assert.Equal(t, [][]string{{"name", "city"}, {"Alice", "Austin"}, {"Bob", "Boston"}}, table.Rows)
	assert.Equal(t, input, table.CSV)
	assert.True(t, table.IsPerfectTable)
	assert.Contains(t, table.MD, "| name | city |")
	assert.Contains(t, table.MD, "| Alice | Austin |")
}

func TestCSVParser_RaggedRowsNotPerfect(t *testing.T) {
	input := "a,b,c\n1,2\n"
	p := &CSVParser{}

	doc, err := p.Parse(strings.NewReader(input), "ragged.csv")
	require.NoError(t, err)

	table := doc.Sections[0].Items[0].(ir.TableItem)
	assert.False(t, table.IsPerfectTable)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"1", "2"}}, table.Rows)
}

func TestIsRectangular(t *testing.T) {
	assert.False(t, isRectangular(nil))
	assert.True(t, isRectangular([][]string{{"a"}}))
	assert.True(t, isRectangular([][]string{{"a", "b"}, {"1", "2"}}))
	assert.False(t, isRectangular([][]string{{"a", "b"}, {"1"}}))
}

func TestMarkdownTable(t *testing.T) {
	md := markdownTable([][]string{{"h1", "h2"}, {"a", "b"}})
	assert.Equal(t, "| h1 | h2 |\n| --- | --- |\n| a | b |", md)

	assert.Equal(t, "", markdownTable(nil))
}

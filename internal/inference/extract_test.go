package inference

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseanalytics/pulse/internal/entity"
)

// sliceSource yields a fixed set of rows.
type sliceSource struct {
	rows [][]Field
	pos  int
}

func (s *sliceSource) Next() ([]Field, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}

func TestExtractEmptyInput(t *testing.T) {
	_, err := NewExtractor().Extract(&sliceSource{})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestExtractSingleRow(t *testing.T) {
	src := &sliceSource{rows: [][]Field{
		{{Name: "amount", Value: "12"}, {Name: "region", Value: "west"}},
	}}

	summary, err := NewExtractor().Extract(src)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.RowCount)
	require.Len(t, summary.Sample, 1)
	assert.Equal(t, entity.Row{"amount": "12", "region": "west"}, summary.Sample[0])
	require.Equal(t, []entity.Column{
		{Name: "amount", Type: "int"},
		{Name: "region", Type: "string"},
	}, summary.Columns)
}

func TestExtractSampleCap(t *testing.T) {
	var rows [][]Field
	for i := 0; i < 150; i++ {
		rows = append(rows, []Field{{Name: "n", Value: fmt.Sprintf("%d", i)}})
	}

	summary, err := NewExtractor().Extract(&sliceSource{rows: rows})
	require.NoError(t, err)

	assert.Equal(t, 150, summary.RowCount)
	require.Len(t, summary.Sample, 100)
	// First N rows verbatim, source order preserved.
	assert.Equal(t, entity.Row{"n": "0"}, summary.Sample[0])
	assert.Equal(t, entity.Row{"n": "99"}, summary.Sample[99])
}

func TestExtractWinningTypes(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{name: "int majority", values: []string{"1", "2", "3", "2.5"}, expected: "int"},
		{name: "float majority", values: []string{"1.5", "2.5", "x"}, expected: "float"},
		{name: "string majority", values: []string{"a", "b", "1"}, expected: "string"},
		{name: "all null defaults to string", values: []string{"", " ", ""}, expected: "string"},
		{name: "int float tie goes to float", values: []string{"1", "2", "1.5", "2.5"}, expected: "float"},
		{name: "nulls excluded from contention", values: []string{"", "", "", "7"}, expected: "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rows [][]Field
			for _, v := range tt.values {
				rows = append(rows, []Field{{Name: "col", Value: v}})
			}

			summary, err := NewExtractor().Extract(&sliceSource{rows: rows})
			require.NoError(t, err)
			require.Len(t, summary.Columns, 1)
			assert.Equal(t, tt.expected, summary.Columns[0].Type)
		})
	}
}

func TestExtractColumnUnionAcrossRows(t *testing.T) {
	// A column absent from early rows must still be discovered and tallied
	// for the rows where it appears.
	src := &sliceSource{rows: [][]Field{
		{{Name: "a", Value: "1"}},
		{{Name: "a", Value: "2"}, {Name: "b", Value: "late"}},
		{{Name: "a", Value: "3"}, {Name: "b", Value: "late"}},
	}}

	summary, err := NewExtractor().Extract(src)
	require.NoError(t, err)

	require.Equal(t, []entity.Column{
		{Name: "a", Type: "int"},
		{Name: "b", Type: "string"},
	}, summary.Columns)
}

func TestExtractIdempotent(t *testing.T) {
	rows := [][]Field{
		{{Name: "x", Value: "1"}, {Name: "y", Value: "foo"}},
		{{Name: "x", Value: "2.5"}, {Name: "y", Value: ""}},
		{{Name: "x", Value: "3"}, {Name: "y", Value: "bar"}},
	}

	first, err := NewExtractor().Extract(&sliceSource{rows: rows})
	require.NoError(t, err)
	second, err := NewExtractor().Extract(&sliceSource{rows: rows})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCSVSource(t *testing.T) {
	input := "name,age,city\nalice,30,berlin\nbob,41,ankara\ncarol,29,lima\n"

	summary, err := NewExtractor().Extract(NewCSVSource(strings.NewReader(input)))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.RowCount)
	require.Len(t, summary.Sample, 3)
	assert.Equal(t, entity.Row{"name": "alice", "age": "30", "city": "berlin"}, summary.Sample[0])
	require.Equal(t, []entity.Column{
		{Name: "name", Type: "string"},
		{Name: "age", Type: "int"},
		{Name: "city", Type: "string"},
	}, summary.Columns)
}

func TestCSVSourceRaggedRows(t *testing.T) {
	// Short records present missing trailing fields as empty values; fields
	// beyond the header are dropped.
	input := "a,b\n1\n2,x,extra\n"

	summary, err := NewExtractor().Extract(NewCSVSource(strings.NewReader(input)))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.RowCount)
	assert.Equal(t, entity.Row{"a": "1", "b": ""}, summary.Sample[0])
	assert.Equal(t, entity.Row{"a": "2", "b": "x"}, summary.Sample[1])
	require.Equal(t, []entity.Column{
		{Name: "a", Type: "int"},
		{Name: "b", Type: "string"},
	}, summary.Columns)
}

func TestCSVSourceHeaderOnly(t *testing.T) {
	_, err := NewExtractor().Extract(NewCSVSource(strings.NewReader("a,b,c\n")))
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestCSVSourceEmptyContent(t *testing.T) {
	_, err := NewExtractor().Extract(NewCSVSource(strings.NewReader("")))
	require.ErrorIs(t, err, ErrEmptyInput)
}

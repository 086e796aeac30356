package inference

import (
	"errors"
	"fmt"
	"io"

	"github.com/pulseanalytics/pulse/internal/apperrors"
	"github.com/pulseanalytics/pulse/internal/entity"
)

// ErrEmptyInput is returned when a row source yields no data rows. Ingestion
// treats this as fatal: no dataset is persisted.
var ErrEmptyInput = fmt.Errorf("%w: input contains no data rows", apperrors.ErrValidation)

// Field is one named cell of a row, in source order.
type Field struct {
	Name  string
	Value string
}

// RowSource yields rows one at a time. Next returns io.EOF after the last
// row. Sources may be arbitrarily long; the extractor never buffers more than
// the sample.
type RowSource interface {
	Next() ([]Field, error)
}

const defaultSampleSize = 100

// Summary is the result of a full extraction pass: the inferred column set in
// first-encountered order, the leading sample rows verbatim, and the total
// number of rows consumed.
type Summary struct {
	Columns  []entity.Column
	Sample   []entity.Row
	RowCount int
}

// Extractor folds a row source into a Summary in a single pass. Type votes
// are tallied over every row, not just the sample, and the column set is the
// union of keys seen across all rows.
type Extractor struct {
	sampleSize int
}

func NewExtractor() *Extractor {
	return &Extractor{sampleSize: defaultSampleSize}
}

type voteTally [4]int // indexed by ValueType

func (e *Extractor) Extract(src RowSource) (*Summary, error) {
	votes := make(map[string]*voteTally)
	var order []string
	var sample []entity.Row
	rowCount := 0

	for {
		fields, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		rowCount++
		if len(sample) < e.sampleSize {
			row := make(entity.Row, len(fields))
			for _, f := range fields {
				row[f.Name] = f.Value
			}
			sample = append(sample, row)
		}

		for _, f := range fields {
			tally, ok := votes[f.Name]
			if !ok {
				tally = &voteTally{}
				votes[f.Name] = tally
				order = append(order, f.Name)
			}
			tally[Infer(f.Value)]++
		}
	}

	if rowCount == 0 {
		return nil, ErrEmptyInput
	}

	columns := make([]entity.Column, 0, len(order))
	for _, name := range order {
		columns = append(columns, entity.Column{
			Name: name,
			Type: winningType(votes[name]).String(),
		})
	}

	return &Summary{Columns: columns, Sample: sample, RowCount: rowCount}, nil
}

// winningType picks the most voted type, with null excluded from contention.
// Candidates are scanned in int, float, string order and ties go to the later
// candidate, so equal votes resolve to the wider type and an all-null column
// classifies as string.
func winningType(t *voteTally) ValueType {
	best := TypeInt
	for _, cand := range [...]ValueType{TypeFloat, TypeString} {
		if t[cand] >= t[best] {
			best = cand
		}
	}
	return best
}

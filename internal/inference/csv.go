package inference

import (
	"encoding/csv"
	"io"
)

// CSVSource yields header-named rows from comma-delimited text. The first
// record names the columns. Records shorter than the header present the
// missing trailing fields as empty values; fields beyond the header are
// dropped, so the column set is always header-derived.
type CSVSource struct {
	reader *csv.Reader
	header []string
}

func NewCSVSource(r io.Reader) *CSVSource {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return &CSVSource{reader: cr}
}

func (s *CSVSource) Next() ([]Field, error) {
	if s.header == nil {
		record, err := s.reader.Read()
		if err != nil {
			return nil, err
		}
		s.header = record
	}

	record, err := s.reader.Read()
	if err != nil {
		return nil, err
	}

	fields := make([]Field, len(s.header))
	for i, name := range s.header {
		var value string
		if i < len(record) {
			value = record[i]
		}
		fields[i] = Field{Name: name, Value: value}
	}

	return fields, nil
}

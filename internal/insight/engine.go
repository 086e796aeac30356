package insight

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pulseanalytics/pulse/internal/entity"
)

// Summary is the fixed placeholder line attached to every report. Callers
// must not read real AI behavior into it.
const Summary = "Quick AI-style summary based on your data sample."

// Report is the outcome of one summarization run over a stored sample.
type Report struct {
	Summary string   `json:"summary"`
	Details []string `json:"details"`
}

// Summarize computes descriptive statistics over a dataset's stored sample.
// Columns are partitioned by their declared type, never re-inferred. Numeric
// detail lines come first, then categorical ones, each in column order. A
// dataset with no qualifying columns yields an empty details list, not an
// error. Pure and idempotent: the same inputs always produce the same report.
func Summarize(columns []entity.Column, sample []entity.Row) Report {
	details := []string{}

	for _, col := range columns {
		if col.Type != "int" && col.Type != "float" {
			continue
		}
		if line, ok := numericDetail(col.Name, sample); ok {
			details = append(details, line)
		}
	}

	for _, col := range columns {
		if col.Type != "string" {
			continue
		}
		if line, ok := categoricalDetail(col.Name, sample); ok {
			details = append(details, line)
		}
	}

	return Report{Summary: Summary, Details: details}
}

// numericDetail reports average, minimum and maximum over the values of one
// numeric column that parse as floats. Blank, missing and unparsable cells
// are skipped silently; if nothing parses there is no line for the column.
func numericDetail(name string, sample []entity.Row) (string, bool) {
	var sum, minVal, maxVal float64
	count := 0

	for _, row := range sample {
		raw, ok := row[name]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			continue
		}
		if count == 0 || v < minVal {
			minVal = v
		}
		if count == 0 || v > maxVal {
			maxVal = v
		}
		sum += v
		count++
	}

	if count == 0 {
		return "", false
	}

	avg := sum / float64(count)

	return fmt.Sprintf("%s: avg %.2f, min %.2f, max %.2f based on sample", name, avg, minVal, maxVal), true
}

// categoricalDetail reports the most frequent non-empty value of one string
// column. Ties break in favor of the value encountered first in the sample.
func categoricalDetail(name string, sample []entity.Row) (string, bool) {
	counts := make(map[string]int)
	var order []string

	for _, row := range sample {
		value, ok := row[name]
		if !ok || value == "" {
			continue
		}
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	}

	if len(order) == 0 {
		return "", false
	}

	top := order[0]
	for _, value := range order[1:] {
		if counts[value] > counts[top] {
			top = value
		}
	}

	return fmt.Sprintf("%s: most frequent value is '%s' (%d occurrences in sample)", name, top, counts[top]), true
}

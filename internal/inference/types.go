package inference

import (
	"strconv"
	"strings"
)

// ValueType classifies a single raw cell value.
type ValueType int

const (
	TypeNull ValueType = iota
	TypeInt
	TypeFloat
	TypeString
)

func (t ValueType) String() string {
	return [...]string{"null", "int", "float", "string"}[t]
}

// Infer classifies a raw string value. The cascade is ordered: blank values
// are null, then integer parse, then float parse, then string. Integer parse
// runs before float so "42" classifies as int.
func Infer(raw string) ValueType {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return TypeNull
	}
	if _, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return TypeInt
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return TypeFloat
	}
	return TypeString
}

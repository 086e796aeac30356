package entity

// Column describes one column of a dataset. Type is the winning inferred
// type, one of "int", "float" or "string".
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

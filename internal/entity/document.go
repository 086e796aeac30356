package entity

import "encoding/json"

// ToDocument flattens a record into the schemaless map shape the document
// store persists. Fields tagged omitempty (ids) are dropped when unset so the
// store never persists its own identifier inside the payload.
func ToDocument(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FromDocument decodes a stored document back into a typed record.
func FromDocument(doc map[string]any, v any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

package entity

// Insight is a persisted statistics report for a dataset. Details holds one
// human-readable line per qualifying column.
type Insight struct {
	ID        string   `json:"id,omitempty"`
	DatasetID string   `json:"dataset_id"`
	Summary   string   `json:"summary"`
	Details   []string `json:"details"`
}

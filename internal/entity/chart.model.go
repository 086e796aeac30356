package entity

// Chart is a saved chart configuration referencing a dataset by id. The
// reference is checked at creation time only.
type Chart struct {
	ID        string         `json:"id,omitempty"`
	DatasetID string         `json:"dataset_id" binding:"required"`
	Title     string         `json:"title" binding:"required"`
	ChartType string         `json:"chart_type" binding:"required"`
	X         string         `json:"x" binding:"required"`
	Y         string         `json:"y,omitempty"`
	Agg       string         `json:"agg,omitempty"`
	Options   map[string]any `json:"options"`
}

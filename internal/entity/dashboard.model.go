package entity

// Dashboard groups saved charts under a display name. Chart ids are a loose
// grouping and are not referentially validated.
type Dashboard struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description,omitempty"`
	ChartIDs    []string `json:"chart_ids"`
}

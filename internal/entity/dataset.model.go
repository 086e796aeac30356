package entity

// Row is a single parsed data row, keyed by column name. Values are kept as
// raw strings; missing cells are stored as empty strings.
type Row map[string]string

// Dataset is the stored record for one uploaded file. Sample holds at most
// the first 100 rows even when RowCount is larger. Datasets are immutable
// after creation.
type Dataset struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name"`
	Columns  []Column `json:"columns"`
	Sample   []Row    `json:"sample"`
	RowCount int      `json:"row_count"`
}

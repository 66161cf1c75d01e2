package model

// ColumnStats summarizes one numeric column, missing values excluded.
// Min, Max and Mean are nil when the column has no non-missing values;
// they serialize as JSON null in that case. Sum of an empty column is 0.
type ColumnStats struct {
	Count int      `json:"count"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Mean  *float64 `json:"mean"`
	Sum   float64  `json:"sum"`
}

// PreviewRow maps column name to a display cell value: a float64 for
// numeric cells, a string for text cells, and "" for missing cells.
type PreviewRow map[string]any

// AnalysisResult is the response payload for a single analyzed upload.
// This is a pure domain model with no transport-specific dependencies.
// NumericColumns follows the table's column order and is exactly the key
// set of Stats.
type AnalysisResult struct {
	Filename       string                 `json:"filename"`
	Rows           int                    `json:"rows"`
	Cols           int                    `json:"cols"`
	NumericColumns []string               `json:"numericColumns"`
	Stats          map[string]ColumnStats `json:"stats"`
	Preview        []PreviewRow           `json:"preview"`
}

package models

// CellRow represents a single row of cells with optional hyperlinks.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column letter to cell value.
	C map[string]interface{} `json:"c"`
	// Links maps column letter to hyperlink URL (optional).
	Links map[string]string `json:"links,omitempty"`
}

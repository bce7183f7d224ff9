package models

// SheetReport describes how one required sheet was read.
type SheetReport struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Missing is set when the workbook has no sheet with this name.
	Missing bool `json:"missing,omitempty"`
	// Error holds a conversion failure for this sheet.
	Error string `json:"error,omitempty"`
	// Range is the bounding range of non-empty cells (e.g., "A1:L501"), empty if none.
	Range string `json:"range,omitempty"`
	// Header holds the row 1 labels as read.
	Header []string `json:"header"`
	// HeaderIssues lists label mismatches against the expected columns.
	HeaderIssues []string `json:"header_issues,omitempty"`
	// DataRows is the number of rows after the header.
	DataRows int `json:"data_rows"`
	// Kept is the number of rows that produced a record.
	Kept int `json:"kept"`
	// Skipped lists rows left out of the output.
	Skipped []SkippedRow `json:"skipped,omitempty"`
	// Rows contains raw cell rows when requested.
	Rows []CellRow `json:"rows,omitempty"`
}

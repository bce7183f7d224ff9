package models

// SkippedRow records a sheet row left out of the output.
type SkippedRow struct {
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// Row is the 1-based row number in the sheet.
	Row int `json:"row"`
	// Reason says which required field was missing or unusable.
	Reason string `json:"reason"`
}

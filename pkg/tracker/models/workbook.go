package models

// WorkbookReport is the inspection result for a workbook.
type WorkbookReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists all sheet names found in the workbook.
	Sheets []string `json:"sheets"`
	// Required holds a report per required sheet, in processing order.
	Required []SheetReport `json:"required"`
}

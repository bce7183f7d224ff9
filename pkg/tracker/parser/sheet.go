// Package parser reads the tracker workbook sheets into typed records.
package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one data row of a sheet.
type Row struct {
	// Num is the 1-based row number in the sheet.
	Num int
	// Cells holds raw cell values; trailing blank cells may be absent.
	Cells []string
	// Dates marks the columns of numeric cells whose number format is a
	// date or time format.
	Dates map[int]bool
}

// Cell returns the raw value at the 0-based column index, or "" when absent.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col]
}

// IsDate reports whether the cell at the 0-based column index is a numeric
// cell formatted as a date.
func (r Row) IsDate(col int) bool {
	return r.Dates[col]
}

// Text returns the trimmed value at the 0-based column index.
func (r Row) Text(col int) string {
	return strings.TrimSpace(r.Cell(col))
}

// Blank reports whether every cell in the row is empty after trimming.
func (r Row) Blank() bool {
	for _, c := range r.Cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Sheet is a sheet split into its header and data rows.
type Sheet struct {
	// Name is the sheet name.
	Name string
	// Header holds the trimmed labels of row 1.
	Header []string
	// Rows holds rows 2..n in sheet order.
	Rows []Row
	// Date1904 is set when the workbook uses the 1904 date system.
	Date1904 bool
	// Raw is the full grid as returned by excelize, header included.
	Raw [][]string
}

// ReadSheet reads a sheet with raw (unformatted) cell values.
func ReadSheet(f *excelize.File, sheetName string) (*Sheet, error) {
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	sheet := &Sheet{
		Name:     sheetName,
		Date1904: uses1904(f),
		Raw:      raw,
	}
	if len(raw) == 0 {
		return sheet, nil
	}

	sheet.Header = make([]string, len(raw[0]))
	for i, label := range raw[0] {
		sheet.Header[i] = strings.TrimSpace(label)
	}

	styles := newDateStyles(f)
	sheet.Rows = make([]Row, 0, len(raw)-1)
	for idx, cells := range raw[1:] {
		row := Row{Num: idx + 2, Cells: cells}
		for col, v := range cells {
			if _, text := parseValue(strings.TrimSpace(v)).(string); text {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row.Num)
			if err != nil {
				return nil, err
			}
			isDate, err := styles.isDate(sheetName, cell)
			if err != nil {
				return nil, err
			}
			if isDate {
				if row.Dates == nil {
					row.Dates = make(map[int]bool)
				}
				row.Dates[col] = true
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

func uses1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}

package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/dsatracker-go/pkg/tracker/models"
	"github.com/xuri/excelize/v2"
)

// Layouts for solved dates and for bare times of day.
const (
	dateLayout = "2006-01-02 15:04:05"
	timeLayout = "15:04:05"
)

// ExtractCells extracts raw cell data from a sheet, keyed by column letter.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string, includeLinks bool) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1
		cellMap := make(map[string]interface{})
		linkMap := make(map[string]string)

		for colIdx, cellValue := range row {
			if strings.TrimSpace(cellValue) == "" {
				continue
			}
			col, err := excelize.ColumnNumberToName(colIdx + 1)
			if err != nil {
				return nil, err
			}
			cellMap[col] = parseValue(cellValue)

			if includeLinks {
				hasLink, target, err := f.GetCellHyperLink(sheetName, col+strconv.Itoa(rowNum))
				if err == nil && hasLink && target != "" {
					linkMap[col] = target
				}
			}
		}

		if len(cellMap) == 0 {
			continue
		}
		cellRow := models.CellRow{R: rowNum, C: cellMap}
		if len(linkMap) > 0 {
			cellRow.Links = linkMap
		}
		result = append(result, cellRow)
	}

	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return s
}

// parseInt coerces a trimmed cell to an int. Decimals are truncated toward
// zero; ok is false for blank or non-numeric text and for values outside
// the int64 range.
func parseInt(s string) (n int, ok bool) {
	switch v := parseValue(strings.TrimSpace(s)).(type) {
	case int64:
		return int(v), true
	case float64:
		v = math.Trunc(v)
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// solvedDate renders the date-solved cell. A numeric cell with a date format
// is an Excel serial date; anything else is kept as trimmed text. Blank cells
// yield nil.
func solvedDate(raw string, isDate, date1904 bool) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if !isDate {
		return &s
	}
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &s
	}
	if text, ok := serialText(serial, date1904); ok {
		s = text
	}
	return &s
}

// excelEpoch is the base 1900-system serials count from past 1900-02-28.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// maxSerial is 9999-12-31 in the 1900 date system.
const maxSerial = 2958465

// serialText formats an Excel serial. Serials below one day are times of
// day and render without a date.
func serialText(serial float64, date1904 bool) (string, bool) {
	if serial < 0 || serial > maxSerial {
		return "", false
	}
	days := math.Floor(serial)
	clock := time.Duration(math.Round((serial - days) * float64(24*time.Hour)))
	if days == 0 {
		return time.Time{}.Add(clock).Round(time.Second).Format(timeLayout), true
	}

	var t time.Time
	if !date1904 && days <= 61 {
		// Serials 1-59 predate the fictitious 1900-02-29 that Excel counts.
		if days < 60 {
			days++
		}
		t = excelEpoch.AddDate(0, 0, int(days)).Add(clock)
	} else {
		var err error
		if t, err = excelize.ExcelDateToTime(serial, date1904); err != nil {
			return "", false
		}
	}
	return t.Round(time.Second).Format(dateLayout), true
}

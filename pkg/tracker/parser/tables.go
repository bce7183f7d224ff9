package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for data range detection.
type TableDetectionParams struct {
	DensityMin       float64
	CoverageMin      float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		CoverageMin:      0.2,
		MinNonemptyCells: 3,
	}
}

// cellBounds is the 0-based box around the non-empty cells of a sheet.
type cellBounds struct {
	top, bottom, left, right int
}

func (b cellBounds) rows() int { return b.bottom - b.top + 1 }
func (b cellBounds) cols() int { return b.right - b.left + 1 }

// DetectRange returns the bounding range (e.g., "A1:L501") of the non-empty
// cells in rows, or "" when the data is too sparse to look like a table.
// Coverage is the share of rows inside the bounds that hold any data.
func DetectRange(rows [][]string, params TableDetectionParams) string {
	var (
		b          cellBounds
		found      bool
		cells      int
		filledRows int
	)
	for r, row := range rows {
		filled := false
		for c, v := range row {
			if strings.TrimSpace(v) == "" {
				continue
			}
			if !found {
				b, found = cellBounds{top: r, bottom: r, left: c, right: c}, true
			}
			b.bottom = r
			b.left = min(b.left, c)
			b.right = max(b.right, c)
			cells++
			filled = true
		}
		if filled {
			filledRows++
		}
	}

	switch {
	case !found, cells < params.MinNonemptyCells:
		return ""
	case float64(cells)/float64(b.rows()*b.cols()) < params.DensityMin:
		return ""
	case float64(filledRows)/float64(b.rows()) < params.CoverageMin:
		return ""
	}

	start, _ := excelize.CoordinatesToCellName(b.left+1, b.top+1)
	end, _ := excelize.CoordinatesToCellName(b.right+1, b.bottom+1)
	return fmt.Sprintf("%s:%s", start, end)
}

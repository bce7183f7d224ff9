package tracker

import (
	"path/filepath"

	"github.com/ukaji3/dsatracker-go/pkg/tracker/models"
	"github.com/ukaji3/dsatracker-go/pkg/tracker/parser"
)

// Inspect describes how each required sheet of the workbook would be read:
// header labels, data range, kept and skipped rows. Unlike Convert it keeps
// going past missing sheets and conversion errors, recording them per sheet.
func Inspect(path string, opts Options) (*models.WorkbookReport, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	report := &models.WorkbookReport{
		BookName: filepath.Base(path),
		Sheets:   f.GetSheetList(),
		Required: make([]models.SheetReport, 0, len(parser.RequiredSheets)),
	}

	for _, name := range parser.RequiredSheets {
		if !hasSheet(report.Sheets, name) {
			report.Required = append(report.Required, models.SheetReport{
				Name:    name,
				Missing: true,
				Header:  []string{},
			})
			continue
		}

		sheet, err := parser.ReadSheet(f, name)
		if err != nil {
			return nil, NewSheetError(name, "rows", err)
		}

		issues := parser.CheckHeader(sheet.Header, parser.ColumnsFor(name))
		var sr models.SheetReport
		switch name {
		case parser.ProblemsSheet:
			ps := parser.LoadProblems(sheet)
			sr = sheetReport(sheet, issues, len(ps.Problems), ps.Skipped)
		case parser.StudyPlanSheet:
			plan, skipped := parser.LoadStudyPlan(sheet)
			sr = sheetReport(sheet, issues, len(plan), skipped)
		case parser.TopicSummarySheet:
			summary, skipped, err := parser.LoadTopicSummary(sheet)
			sr = sheetReport(sheet, issues, len(summary), skipped)
			if err != nil {
				sr.Error = err.Error()
			}
		}
		sr.Range = parser.DetectRange(sheet.Raw, parser.DefaultTableParams())

		if opts.IncludeCells {
			rows, err := parser.ExtractCells(f, name, true)
			if err != nil {
				return nil, NewSheetError(name, "cells", err)
			}
			sr.Rows = rows
		}

		opts.logger().Debug("sheet inspected", "sheet", name, "range", sr.Range, "kept", sr.Kept)
		report.Required = append(report.Required, sr)
	}

	return report, nil
}

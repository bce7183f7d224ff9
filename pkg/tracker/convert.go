package tracker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/dsatracker-go/internal/logger"
	"github.com/ukaji3/dsatracker-go/pkg/tracker/models"
	"github.com/ukaji3/dsatracker-go/pkg/tracker/parser"
	"github.com/xuri/excelize/v2"
)

// Convert reads the workbook at path and builds the tracker document.
// The returned report describes each required sheet, including skipped rows.
// Nothing is written to disk.
func Convert(path string, opts Options) (*models.Document, *models.WorkbookReport, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	log := opts.logger().With("workbook", filepath.Base(path))
	report := &models.WorkbookReport{
		BookName: filepath.Base(path),
		Sheets:   f.GetSheetList(),
	}

	sheets := make(map[string]*parser.Sheet, len(parser.RequiredSheets))
	for _, name := range parser.RequiredSheets {
		if !hasSheet(report.Sheets, name) {
			return nil, nil, &MissingInputError{Path: path, Sheet: name, Err: ErrMissingSheet}
		}
		sheet, err := parser.ReadSheet(f, name)
		if err != nil {
			return nil, nil, NewSheetError(name, "rows", err)
		}
		sheets[name] = sheet
	}

	issues := make(map[string][]parser.HeaderIssue, len(sheets))
	for _, name := range parser.RequiredSheets {
		found := checkHeader(log, sheets[name])
		if len(found) > 0 && opts.StrictHeaders {
			return nil, nil, &HeaderMismatchError{Sheet: name, Issues: found}
		}
		issues[name] = found
	}

	problemSheet := sheets[parser.ProblemsSheet]
	ps := parser.LoadProblems(problemSheet)
	logSkipped(log, parser.ProblemsSheet, ps.Skipped)
	for _, d := range ps.Difficulties.Sorted() {
		if d != "" && !models.Difficulty(d).Known() {
			log.Warn("unrecognized difficulty; not counted in totals", "value", d)
		}
	}

	planSheet := sheets[parser.StudyPlanSheet]
	plan, planSkipped := parser.LoadStudyPlan(planSheet)
	logSkipped(log, parser.StudyPlanSheet, planSkipped)

	summarySheet := sheets[parser.TopicSummarySheet]
	summary, summarySkipped, err := parser.LoadTopicSummary(summarySheet)
	if err != nil {
		return nil, nil, err
	}
	logSkipped(log, parser.TopicSummarySheet, summarySkipped)

	report.Required = []models.SheetReport{
		sheetReport(problemSheet, issues[parser.ProblemsSheet], len(ps.Problems), ps.Skipped),
		sheetReport(planSheet, issues[parser.StudyPlanSheet], len(plan), planSkipped),
		sheetReport(summarySheet, issues[parser.TopicSummarySheet], len(summary), summarySkipped),
	}

	doc := &models.Document{
		Problems:     ps.Problems,
		StudyPlan:    plan,
		TopicSummary: summary,
		Metadata:     BuildMetadata(ps, opts.now()),
	}
	log.Debug("workbook converted",
		"problems", len(doc.Problems),
		"study_plan", len(doc.StudyPlan),
		"topic_summary", len(doc.TopicSummary))
	return doc, report, nil
}

// openWorkbook opens path, mapping a missing file to *MissingInputError.
func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: path, Err: ErrFileNotFound}
		}
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return f, nil
}

func hasSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}

func checkHeader(log *logger.Logger, sheet *parser.Sheet) []parser.HeaderIssue {
	issues := parser.CheckHeader(sheet.Header, parser.ColumnsFor(sheet.Name))
	for _, issue := range issues {
		log.Warn("header label mismatch", "sheet", sheet.Name, "issue", issue.String())
	}
	return issues
}

func logSkipped(log *logger.Logger, sheet string, skipped []models.SkippedRow) {
	for _, s := range skipped {
		log.Debug("row skipped", "sheet", sheet, "row", s.Row, "reason", s.Reason)
	}
	if len(skipped) > 0 {
		log.Info("rows skipped", "sheet", sheet, "count", len(skipped))
	}
}

func sheetReport(sheet *parser.Sheet, issues []parser.HeaderIssue, kept int, skipped []models.SkippedRow) models.SheetReport {
	r := models.SheetReport{
		Name:     sheet.Name,
		Header:   sheet.Header,
		DataRows: len(sheet.Rows),
		Kept:     kept,
		Skipped:  skipped,
	}
	if r.Header == nil {
		r.Header = []string{}
	}
	for _, issue := range issues {
		r.HeaderIssues = append(r.HeaderIssues, issue.String())
	}
	return r
}

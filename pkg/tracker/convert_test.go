package tracker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/dsatracker-go/internal/logger"
	"github.com/ukaji3/dsatracker-go/internal/testutil"
	"github.com/ukaji3/dsatracker-go/pkg/tracker/models"
	"github.com/ukaji3/dsatracker-go/pkg/tracker/parser"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.Local)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return fixedNow }
	return opts
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.False(t, opts.StrictHeaders)
	assert.False(t, opts.IncludeCells)
	require.NotNil(t, opts.Logger)
	require.NotNil(t, opts.Now)

	doc, _, err := Convert(testutil.WriteWorkbook(t, testutil.DefaultSheets()), opts)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Metadata.GeneratedAt)
}

func TestConvert_DefaultWorkbook(t *testing.T) {
	path := testutil.WriteWorkbook(t, testutil.DefaultSheets())

	doc, report, err := Convert(path, testOptions())
	require.NoError(t, err)

	require.Len(t, doc.Problems, 4)
	ids := make([]int, len(doc.Problems))
	for i, p := range doc.Problems {
		ids[i] = p.ID
	}
	assert.Equal(t, []int{1, 2, 3, 5}, ids, "input order is preserved")

	first := doc.Problems[0]
	assert.Equal(t, models.DifficultyEasy, first.Difficulty)
	assert.Equal(t, models.StatusUnsolved, first.Status)
	assert.Equal(t, "1", first.LCNumber)
	assert.Nil(t, first.DateSolved)

	second := doc.Problems[1]
	assert.Equal(t, models.StatusSolved, second.Status)
	require.NotNil(t, second.DateSolved)
	assert.Equal(t, "2024-01-15 00:00:00", *second.DateSolved)

	last := doc.Problems[3]
	assert.Equal(t, "2024-02-01", *last.DateSolved)
	assert.Equal(t, "trailing spaces", last.Notes)
	assert.Equal(t, models.StatusSolved, last.Status)

	require.Len(t, doc.StudyPlan, 2)
	assert.Equal(t, models.PlanCompleted, doc.StudyPlan[0].Status)
	assert.Equal(t, models.PlanPending, doc.StudyPlan[1].Status)

	assert.Equal(t, []models.TopicSummaryEntry{
		{Topic: "Array", Total: 42, Easy: 20, Medium: 15, Hard: 7, KeyPatterns: "Two pointers, prefix sums"},
		{Topic: "Graph", Total: 10, Easy: 0, Medium: 6, Hard: 4},
	}, doc.TopicSummary)

	m := doc.Metadata
	assert.Equal(t, 4, m.TotalProblems)
	assert.Equal(t, 2, m.TotalEasy)
	assert.Equal(t, 1, m.TotalMedium)
	assert.Equal(t, 1, m.TotalHard)
	assert.Equal(t, []string{"Array", "Graph", "Sliding Window"}, m.Topics)
	assert.Equal(t, []string{"P1", "P2", "P3"}, m.Priorities)
	assert.Equal(t, []string{"BFS", "Greedy", "Hash Map", "Sliding Window"}, m.Patterns)
	assert.Equal(t, []models.Difficulty{"Easy", "Medium", "Hard"}, m.Difficulties)
	assert.Equal(t, "2026-10-18T09:30:00", m.GeneratedAt)

	assert.Equal(t, "workbook.xlsx", report.BookName)
	assert.Equal(t, parser.RequiredSheets, report.Sheets)
	require.Len(t, report.Required, 3)
	assert.Equal(t, 6, report.Required[0].DataRows)
	assert.Equal(t, 4, report.Required[0].Kept)
	assert.Equal(t, []models.SkippedRow{
		{Sheet: parser.ProblemsSheet, Row: 5, Reason: "missing number"},
		{Sheet: parser.ProblemsSheet, Row: 6, Reason: "blank row"},
	}, report.Required[0].Skipped)
	assert.Len(t, report.Required[1].Skipped, 1)
	assert.Empty(t, report.Required[2].Skipped, "the TOTAL row is not reported as skipped")
}

func TestConvert_LogsSkippedRows(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts := testOptions()
	opts.Logger = logger.FromZap(zap.New(core))

	_, _, err := Convert(testutil.WriteWorkbook(t, testutil.DefaultSheets()), opts)
	require.NoError(t, err)

	assert.Equal(t, 3, logs.FilterMessage("row skipped").Len())
	summaries := logs.FilterMessage("rows skipped").All()
	require.Len(t, summaries, 2)
	assert.Equal(t, zapcore.InfoLevel, summaries[0].Level)
	assert.Equal(t, parser.ProblemsSheet, summaries[0].ContextMap()["sheet"])
	assert.EqualValues(t, 2, summaries[0].ContextMap()["count"])
}

func TestConvert_DifficultyInvariant(t *testing.T) {
	sheets := testutil.DefaultSheets()
	sheets[0].Rows = append(sheets[0].Rows,
		[]interface{}{6, "Array", 11, "Container With Most Water", "medium"},
		[]interface{}{7, "Array", 15, "3Sum"},
	)

	core, logs := observer.New(zapcore.WarnLevel)
	opts := testOptions()
	opts.Logger = logger.FromZap(zap.New(core))

	doc, _, err := Convert(testutil.WriteWorkbook(t, sheets), opts)
	require.NoError(t, err)

	m := doc.Metadata
	assert.Equal(t, len(doc.Problems), m.TotalProblems)
	assert.Equal(t, 6, m.TotalProblems)
	assert.Equal(t, 4, m.TotalEasy+m.TotalMedium+m.TotalHard, "blank and unrecognized difficulties are not tallied")
	assert.Equal(t, 1, logs.FilterMessage("unrecognized difficulty; not counted in totals").Len())
}

func TestConvert_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.xlsx")

	_, _, err := Convert(path, testOptions())

	var missing *MissingInputError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, path, missing.Path)
	assert.Empty(t, missing.Sheet)
	assert.True(t, errors.Is(err, ErrFileNotFound))
}

func TestConvert_InvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

	_, _, err := Convert(path, testOptions())
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestConvert_MissingSheet(t *testing.T) {
	for _, missingName := range parser.RequiredSheets {
		t.Run(missingName, func(t *testing.T) {
			var sheets []testutil.Sheet
			for _, s := range testutil.DefaultSheets() {
				if s.Name != missingName {
					sheets = append(sheets, s)
				}
			}

			doc, _, err := Convert(testutil.WriteWorkbook(t, sheets), testOptions())

			assert.Nil(t, doc)
			var missing *MissingInputError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, missingName, missing.Sheet)
			assert.True(t, errors.Is(err, ErrMissingSheet))
		})
	}
}

func TestConvert_RenamedSheet(t *testing.T) {
	sheets := testutil.DefaultSheets()
	sheets[2].Name = "topic summary"

	_, _, err := Convert(testutil.WriteWorkbook(t, sheets), testOptions())
	assert.True(t, errors.Is(err, ErrMissingSheet), "sheet names are matched exactly")
}

func TestConvert_TypeConversionError(t *testing.T) {
	sheets := testutil.DefaultSheets()
	sheets[2].Rows[2] = []interface{}{"Graph", "ten", 3, 3, 4, ""}

	doc, _, err := Convert(testutil.WriteWorkbook(t, sheets), testOptions())

	assert.Nil(t, doc)
	var convErr *TypeConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, parser.TopicSummarySheet, convErr.Sheet)
	assert.Equal(t, 3, convErr.Row)
	assert.Equal(t, "Total", convErr.Column)
}

func TestConvert_HeaderDrift(t *testing.T) {
	sheets := testutil.DefaultSheets()
	sheets[1].Rows[0] = []interface{}{"Day", "Week", "Date Range", "Topic Focus", "Problems", "Goal", "Status"}
	path := testutil.WriteWorkbook(t, sheets)

	t.Run("lenient", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		opts := testOptions()
		opts.Logger = logger.FromZap(zap.New(core))

		doc, report, err := Convert(path, opts)
		require.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Len(t, report.Required[1].HeaderIssues, 2)
		assert.Equal(t, 2, logs.FilterMessage("header label mismatch").Len())
	})

	t.Run("strict", func(t *testing.T) {
		opts := testOptions()
		opts.StrictHeaders = true

		doc, _, err := Convert(path, opts)
		assert.Nil(t, doc)
		var headerErr *HeaderMismatchError
		require.True(t, errors.As(err, &headerErr))
		assert.Equal(t, parser.StudyPlanSheet, headerErr.Sheet)
		require.Len(t, headerErr.Issues, 2)
		assert.Contains(t, err.Error(), `column A: want "Week", got "Day"`)
	})
}

func TestConvert_EmptySheets(t *testing.T) {
	sheets := []testutil.Sheet{
		{Name: parser.ProblemsSheet, Rows: [][]interface{}{testutil.ProblemsHeader}},
		{Name: parser.StudyPlanSheet},
		{Name: parser.TopicSummarySheet, Rows: [][]interface{}{testutil.TopicSummaryHeader}},
	}

	doc, _, err := Convert(testutil.WriteWorkbook(t, sheets), testOptions())
	require.NoError(t, err)

	assert.NotNil(t, doc.Problems)
	assert.Empty(t, doc.Problems)
	assert.NotNil(t, doc.StudyPlan)
	assert.NotNil(t, doc.Metadata.Topics)
	assert.Equal(t, 0, doc.Metadata.TotalProblems)
}

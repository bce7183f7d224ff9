// Package testutil builds workbook fixtures for tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Sheet is a named grid of cell values; row 0 is the header.
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// ProblemsHeader is the problem list header row.
var ProblemsHeader = []interface{}{"#", "Topic", "LC #", "Problem", "Difficulty", "Pattern", "Priority", "Link", "Key Insight", "Status", "Date Solved", "Notes"}

// StudyPlanHeader is the study plan header row.
var StudyPlanHeader = []interface{}{"Week", "Day", "Date Range", "Topic Focus", "Problems", "Goal", "Status"}

// TopicSummaryHeader is the topic summary header row.
var TopicSummaryHeader = []interface{}{"Topic", "Total", "Easy", "Medium", "Hard", "Key Patterns"}

// DefaultSheets returns a small but complete tracker workbook.
func DefaultSheets() []Sheet {
	return []Sheet{
		{Name: "500 DSA Problems", Rows: [][]interface{}{
			ProblemsHeader,
			{1, "Array", 1, "Two Sum", "Easy", "Hash Map", "P1", "https://leetcode.com/problems/two-sum/", "Store complements", "⬜", nil, ""},
			{2, "Array", 121, "Best Time to Buy and Sell Stock", "Easy", "Greedy", "P1", "", "Track the minimum", "✅", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "needed a hint"},
			{3, "Sliding Window", 3, "Longest Substring Without Repeating Characters", "Medium", "Sliding Window", "P2", "", "", "", nil, nil},
			{nil, "Array", 9, "Orphan Without Number", "Easy", "", "", "", "", "", nil, nil},
			{},
			{5, "Graph", 127, "Word Ladder", "Hard", "BFS", "P3", "", "", "Done", "2024-02-01", "  trailing spaces  "},
		}},
		{Name: "6-Month Daily Plan", Rows: [][]interface{}{
			StudyPlanHeader,
			{"Week 1", "Day 1", "Jan 1 - Jan 7", "Arrays", "#1, #2", "Warm up", "✅"},
			{nil, nil, "", "orphan note", "", "", ""},
			{"Week 1", "Day 2", "", "Arrays", "#3", "", "⬜"},
		}},
		{Name: "Topic Summary", Rows: [][]interface{}{
			TopicSummaryHeader,
			{"Array", 42, 20, 15, 7, "Two pointers, prefix sums"},
			{"Graph", 10, nil, 6, 4, ""},
			{"TOTAL", 500, 150, 250, 100, ""},
		}},
	}
}

// WriteWorkbook saves sheets as an xlsx file in a temp dir and returns its path.
func WriteWorkbook(t *testing.T, sheets []Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.Name))
		} else {
			_, err := f.NewSheet(sheet.Name)
			require.NoError(t, err)
		}
		for r, row := range sheet.Rows {
			if len(row) == 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(sheet.Name, cell, &values))
		}
	}

	path := filepath.Join(t.TempDir(), "workbook.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Sheet names the converter requires.
const (
	ProblemsSheet     = "500 DSA Problems"
	StudyPlanSheet    = "6-Month Daily Plan"
	TopicSummarySheet = "Topic Summary"
)

// RequiredSheets lists the sheets in processing order.
var RequiredSheets = []string{ProblemsSheet, StudyPlanSheet, TopicSummarySheet}

// TotalSentinel is the topic label of the summary's grand-total row.
const TotalSentinel = "TOTAL"

// Column describes one expected header cell.
type Column struct {
	// Label is the canonical header text.
	Label string
	// Aliases are other accepted header texts.
	Aliases []string
}

// Matches reports whether a header label names this column.
func (c Column) Matches(label string) bool {
	got := normalizeLabel(label)
	if got == normalizeLabel(c.Label) {
		return true
	}
	for _, alias := range c.Aliases {
		if got == normalizeLabel(alias) {
			return true
		}
	}
	return false
}

// Column positions in the problem list.
const (
	colNum = iota
	colTopic
	colLCNumber
	colName
	colDifficulty
	colPattern
	colPriority
	colLink
	colKeyInsight
	colStatus
	colDateSolved
	colNotes
)

// ProblemColumns is the fixed column order of the problem list.
var ProblemColumns = []Column{
	{Label: "#", Aliases: []string{"No", "No.", "Num", "Number", "S.No", "Sr", "Sr.", "ID"}},
	{Label: "Topic"},
	{Label: "LC #", Aliases: []string{"LC", "LC No", "LC Number", "LeetCode #", "LeetCode"}},
	{Label: "Problem", Aliases: []string{"Problem Name", "Name", "Title"}},
	{Label: "Difficulty", Aliases: []string{"Level"}},
	{Label: "Pattern", Aliases: []string{"Patterns", "Technique"}},
	{Label: "Priority"},
	{Label: "Link", Aliases: []string{"URL", "LeetCode Link"}},
	{Label: "Key Insight", Aliases: []string{"Insight", "Key Insights", "Hint"}},
	{Label: "Status"},
	{Label: "Date Solved", Aliases: []string{"Solved On", "Date"}},
	{Label: "Notes", Aliases: []string{"Note"}},
}

// Column positions in the study plan.
const (
	colWeek = iota
	colDay
	colDateRange
	colTopicFocus
	colPlanProblems
	colGoal
	colPlanStatus
)

// StudyPlanColumns is the fixed column order of the study plan.
var StudyPlanColumns = []Column{
	{Label: "Week"},
	{Label: "Day"},
	{Label: "Date Range", Aliases: []string{"Dates", "Date"}},
	{Label: "Topic Focus", Aliases: []string{"Topic", "Focus"}},
	{Label: "Problems", Aliases: []string{"Problem", "Problem IDs"}},
	{Label: "Goal", Aliases: []string{"Goals"}},
	{Label: "Status"},
}

// Column positions in the topic summary.
const (
	colSummaryTopic = iota
	colTotal
	colEasy
	colMedium
	colHard
	colKeyPatterns
)

// TopicSummaryColumns is the fixed column order of the topic summary.
var TopicSummaryColumns = []Column{
	{Label: "Topic"},
	{Label: "Total", Aliases: []string{"Total Problems", "Count"}},
	{Label: "Easy"},
	{Label: "Medium"},
	{Label: "Hard"},
	{Label: "Key Patterns", Aliases: []string{"Patterns"}},
}

// ColumnsFor returns the expected columns of a required sheet, or nil.
func ColumnsFor(sheetName string) []Column {
	switch sheetName {
	case ProblemsSheet:
		return ProblemColumns
	case StudyPlanSheet:
		return StudyPlanColumns
	case TopicSummarySheet:
		return TopicSummaryColumns
	}
	return nil
}

// HeaderIssue is one header cell that does not match its expected column.
type HeaderIssue struct {
	// Column is the 1-based column number.
	Column int
	Want   string
	Got    string
}

func (h HeaderIssue) String() string {
	col, _ := excelize.ColumnNumberToName(h.Column)
	if h.Got == "" {
		return fmt.Sprintf("column %s: missing %q", col, h.Want)
	}
	return fmt.Sprintf("column %s: want %q, got %q", col, h.Want, h.Got)
}

// CheckHeader compares header labels against the expected columns.
// Extra trailing header cells are ignored.
func CheckHeader(header []string, cols []Column) []HeaderIssue {
	var issues []HeaderIssue
	for i, col := range cols {
		got := ""
		if i < len(header) {
			got = strings.TrimSpace(header[i])
		}
		if !col.Matches(got) {
			issues = append(issues, HeaderIssue{Column: i + 1, Want: col.Label, Got: got})
		}
	}
	return issues
}

// normalizeLabel folds width, case and inner whitespace.
func normalizeLabel(s string) string {
	s = norm.NFKC.String(s)
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnMatches(t *testing.T) {
	col := Column{Label: "Key Insight", Aliases: []string{"Hint"}}

	assert.True(t, col.Matches("Key Insight"))
	assert.True(t, col.Matches("key insight"))
	assert.True(t, col.Matches("  KEY   INSIGHT "))
	assert.True(t, col.Matches("ＫＥＹ ＩＮＳＩＧＨＴ"), "full-width labels fold to ASCII")
	assert.True(t, col.Matches("hint"))
	assert.False(t, col.Matches("Insights"))
	assert.False(t, col.Matches(""))
}

func TestCheckHeader_Exact(t *testing.T) {
	header := []string{"#", "Topic", "LC #", "Problem", "Difficulty", "Pattern", "Priority", "Link", "Key Insight", "Status", "Date Solved", "Notes"}
	assert.Empty(t, CheckHeader(header, ProblemColumns))
}

func TestCheckHeader_Aliases(t *testing.T) {
	header := []string{"No.", "topic", "LeetCode #", "Problem Name", "Level", "Technique", "Priority", "URL", "Hint", "Status", "Solved On", "Note", "Extra"}
	assert.Empty(t, CheckHeader(header, ProblemColumns), "trailing extra columns are ignored")
}

func TestCheckHeader_Drift(t *testing.T) {
	// Medium and Hard swapped, Key Patterns missing.
	header := []string{"Topic", "Total", "Easy", "Hard", "Medium"}
	issues := CheckHeader(header, TopicSummaryColumns)

	require.Len(t, issues, 3)
	assert.Equal(t, HeaderIssue{Column: 4, Want: "Medium", Got: "Hard"}, issues[0])
	assert.Equal(t, HeaderIssue{Column: 5, Want: "Hard", Got: "Medium"}, issues[1])
	assert.Equal(t, HeaderIssue{Column: 6, Want: "Key Patterns", Got: ""}, issues[2])

	assert.Equal(t, `column D: want "Medium", got "Hard"`, issues[0].String())
	assert.Equal(t, `column F: missing "Key Patterns"`, issues[2].String())
}

func TestColumnsFor(t *testing.T) {
	assert.Equal(t, ProblemColumns, ColumnsFor(ProblemsSheet))
	assert.Equal(t, StudyPlanColumns, ColumnsFor(StudyPlanSheet))
	assert.Equal(t, TopicSummaryColumns, ColumnsFor(TopicSummarySheet))
	assert.Nil(t, ColumnsFor("Sheet1"))
}

package tracker

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/dsatracker-go/pkg/tracker/models"
	"github.com/ukaji3/dsatracker-go/pkg/tracker/parser"
)

func TestBuildMetadata(t *testing.T) {
	ps := &parser.ProblemSet{
		Problems:     make([]models.Problem, 5),
		Topics:       parser.StringSet{"Tree": {}, "Array": {}, "": {}},
		Difficulties: parser.StringSet{"Hard": {}, "Easy": {}},
		Priorities:   parser.StringSet{"P2": {}, "P1": {}},
		Patterns:     parser.StringSet{},
		Counts:       map[models.Difficulty]int{models.DifficultyEasy: 3, models.DifficultyHard: 1},
	}

	m := BuildMetadata(ps, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	assert.Equal(t, models.Metadata{
		TotalProblems: 5,
		TotalEasy:     3,
		TotalMedium:   0,
		TotalHard:     1,
		Topics:        []string{"", "Array", "Tree"},
		Difficulties:  []models.Difficulty{"Easy", "Medium", "Hard"},
		Priorities:    []string{"P1", "P2"},
		Patterns:      []string{},
		GeneratedAt:   "2026-01-02T03:04:05",
	}, m)
	assert.True(t, sort.StringsAreSorted(m.Topics))
}

func TestBuildMetadata_DifficultiesNotShared(t *testing.T) {
	ps := &parser.ProblemSet{Topics: parser.StringSet{}, Priorities: parser.StringSet{}, Patterns: parser.StringSet{}}

	m := BuildMetadata(ps, time.Now())
	m.Difficulties[0] = "Trivial"

	assert.Equal(t, models.DifficultyEasy, models.Difficulties[0])
}

func TestISOTimestamp(t *testing.T) {
	assert.Equal(t, "2026-10-18T09:30:00", isoTimestamp(time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2026-10-18T09:30:00.000250", isoTimestamp(time.Date(2026, 10, 18, 9, 30, 0, 250_000, time.UTC)))
	assert.Equal(t, "2026-10-18T09:30:00.123456", isoTimestamp(time.Date(2026, 10, 18, 9, 30, 0, 123_456_789, time.UTC)))
	// Sub-microsecond remainders are dropped.
	assert.Equal(t, "2026-10-18T09:30:00", isoTimestamp(time.Date(2026, 10, 18, 9, 30, 0, 999, time.UTC)))
}

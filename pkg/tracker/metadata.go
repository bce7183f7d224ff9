package tracker

import (
	"fmt"
	"time"

	"github.com/ukaji3/dsatracker-go/pkg/tracker/models"
	"github.com/ukaji3/dsatracker-go/pkg/tracker/parser"
)

// BuildMetadata aggregates a problem set. Difficulties is always the fixed
// Easy, Medium, Hard list regardless of what was observed.
func BuildMetadata(ps *parser.ProblemSet, now time.Time) models.Metadata {
	difficulties := make([]models.Difficulty, len(models.Difficulties))
	copy(difficulties, models.Difficulties)

	return models.Metadata{
		TotalProblems: len(ps.Problems),
		TotalEasy:     ps.Counts[models.DifficultyEasy],
		TotalMedium:   ps.Counts[models.DifficultyMedium],
		TotalHard:     ps.Counts[models.DifficultyHard],
		Topics:        ps.Topics.Sorted(),
		Difficulties:  difficulties,
		Priorities:    ps.Priorities.Sorted(),
		Patterns:      ps.Patterns.Sorted(),
		GeneratedAt:   isoTimestamp(now),
	}
}

// isoTimestamp formats t as a zone-less ISO-8601 timestamp, adding a
// microsecond fraction only when it is non-zero.
func isoTimestamp(t time.Time) string {
	s := t.Format("2006-01-02T15:04:05")
	if us := t.Nanosecond() / 1000; us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s
}

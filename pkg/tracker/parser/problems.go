package parser

import (
	"strconv"

	"github.com/ukaji3/dsatracker-go/pkg/tracker/models"
)

// ProblemSet is the problem list plus the accumulators built while reading it.
type ProblemSet struct {
	Problems []models.Problem
	// Topics includes "" when a kept row has a blank topic.
	Topics StringSet
	// Difficulties holds every difficulty seen, recognized or not.
	Difficulties StringSet
	Priorities   StringSet
	Patterns     StringSet
	// Counts tallies Easy, Medium and Hard only.
	Counts  map[models.Difficulty]int
	Skipped []models.SkippedRow
}

// LoadProblems converts the problem list rows. Rows without a number or a
// name are skipped, as are rows whose number is not numeric.
func LoadProblems(sheet *Sheet) *ProblemSet {
	ps := &ProblemSet{
		Problems:     make([]models.Problem, 0, len(sheet.Rows)),
		Topics:       make(StringSet),
		Difficulties: make(StringSet),
		Priorities:   make(StringSet),
		Patterns:     make(StringSet),
		Counts:       make(map[models.Difficulty]int, len(models.Difficulties)),
	}

	for _, row := range sheet.Rows {
		num, name := row.Text(colNum), row.Text(colName)
		if num == "" || name == "" {
			var missing []string
			if num == "" {
				missing = append(missing, "number")
			}
			if name == "" {
				missing = append(missing, "name")
			}
			ps.skip(sheet.Name, row, missingReason(row, missing...))
			continue
		}
		id, ok := parseInt(num)
		if !ok {
			ps.skip(sheet.Name, row, "non-numeric number "+strconv.Quote(num))
			continue
		}

		topic := row.Text(colTopic)
		difficulty := models.Difficulty(row.Text(colDifficulty))
		pattern := row.Text(colPattern)
		priority := row.Text(colPriority)

		ps.Topics.Add(topic)
		ps.Difficulties.Add(string(difficulty))
		if priority != "" {
			ps.Priorities.Add(priority)
		}
		if pattern != "" {
			ps.Patterns.Add(pattern)
		}
		if difficulty.Known() {
			ps.Counts[difficulty]++
		}

		status := models.StatusUnsolved
		if IsDone(row.Cell(colStatus)) {
			status = models.StatusSolved
		}

		ps.Problems = append(ps.Problems, models.Problem{
			ID:         id,
			Topic:      topic,
			LCNumber:   row.Text(colLCNumber),
			Name:       name,
			Difficulty: difficulty,
			Pattern:    pattern,
			Priority:   priority,
			Link:       row.Text(colLink),
			KeyInsight: row.Text(colKeyInsight),
			Status:     status,
			DateSolved: solvedDate(row.Cell(colDateSolved), row.IsDate(colDateSolved), sheet.Date1904),
			Notes:      row.Text(colNotes),
		})
	}

	return ps
}

func (ps *ProblemSet) skip(sheet string, row Row, reason string) {
	ps.Skipped = append(ps.Skipped, models.SkippedRow{Sheet: sheet, Row: row.Num, Reason: reason})
}

package parser

import (
	"github.com/ukaji3/dsatracker-go/pkg/tracker/models"
)

// LoadStudyPlan converts the study plan rows, keeping sheet order. Rows with
// neither a week nor a day are skipped.
func LoadStudyPlan(sheet *Sheet) ([]models.StudyPlanEntry, []models.SkippedRow) {
	entries := make([]models.StudyPlanEntry, 0, len(sheet.Rows))
	var skipped []models.SkippedRow

	for _, row := range sheet.Rows {
		week, day := row.Text(colWeek), row.Text(colDay)
		if week == "" && day == "" {
			skipped = append(skipped, models.SkippedRow{
				Sheet:  sheet.Name,
				Row:    row.Num,
				Reason: missingReason(row, "week and day"),
			})
			continue
		}

		status := models.PlanPending
		if IsDone(row.Cell(colPlanStatus)) {
			status = models.PlanCompleted
		}

		entries = append(entries, models.StudyPlanEntry{
			Week:       week,
			Day:        day,
			DateRange:  row.Text(colDateRange),
			TopicFocus: row.Text(colTopicFocus),
			Problems:   row.Text(colPlanProblems),
			Goal:       row.Text(colGoal),
			Status:     status,
		})
	}

	return entries, skipped
}

package models

// PlanStatus is the binary completion state of a study-plan day.
type PlanStatus string

const (
	PlanCompleted PlanStatus = "completed"
	PlanPending   PlanStatus = "pending"
)

// StudyPlanEntry is one day of the study plan. Entries keep sheet order.
// Problems is the free-text list of problems for the day.
type StudyPlanEntry struct {
	Week       string     `json:"week"`
	Day        string     `json:"day"`
	DateRange  string     `json:"dateRange"`
	TopicFocus string     `json:"topicFocus"`
	Problems   string     `json:"problems"`
	Goal       string     `json:"goal"`
	Status     PlanStatus `json:"status"`
}

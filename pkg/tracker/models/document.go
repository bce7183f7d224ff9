package models

// Document is the top-level JSON consumed by the tracker website.
type Document struct {
	Problems     []Problem           `json:"problems"`
	StudyPlan    []StudyPlanEntry    `json:"studyPlan"`
	TopicSummary []TopicSummaryEntry `json:"topicSummary"`
	Metadata     Metadata            `json:"metadata"`
}

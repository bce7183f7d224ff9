package models

// TopicSummaryEntry holds the per-topic counts from the summary sheet.
type TopicSummaryEntry struct {
	Topic       string `json:"topic"`
	Total       int    `json:"total"`
	Easy        int    `json:"easy"`
	Medium      int    `json:"medium"`
	Hard        int    `json:"hard"`
	KeyPatterns string `json:"keyPatterns"`
}

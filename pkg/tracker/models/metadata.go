package models

// Metadata aggregates the problem list.
type Metadata struct {
	// TotalProblems is the number of emitted problems.
	TotalProblems int `json:"totalProblems"`
	// TotalEasy counts problems whose difficulty is exactly "Easy".
	TotalEasy int `json:"totalEasy"`
	// TotalMedium counts problems whose difficulty is exactly "Medium".
	TotalMedium int `json:"totalMedium"`
	// TotalHard counts problems whose difficulty is exactly "Hard".
	TotalHard int `json:"totalHard"`
	// Topics is the sorted set of distinct topics, including "" for blank topics.
	Topics []string `json:"topics"`
	// Difficulties is always Easy, Medium, Hard.
	Difficulties []Difficulty `json:"difficulties"`
	// Priorities is the sorted set of distinct non-empty priorities.
	Priorities []string `json:"priorities"`
	// Patterns is the sorted set of distinct non-empty patterns.
	Patterns []string `json:"patterns"`
	// GeneratedAt is a local ISO-8601 timestamp without zone.
	GeneratedAt string `json:"generatedAt"`
}

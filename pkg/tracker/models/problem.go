// Package models defines the records emitted for the tracker website.
package models

// Difficulty is a problem's complexity class.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties is the fixed ordering published in metadata.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Known reports whether d is one of Easy, Medium or Hard.
func (d Difficulty) Known() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ProblemStatus is the binary solved state of a problem.
type ProblemStatus string

const (
	StatusSolved   ProblemStatus = "solved"
	StatusUnsolved ProblemStatus = "unsolved"
)

// Problem is one row of the problem list.
type Problem struct {
	// ID is the row number from the first column.
	ID int `json:"id"`
	// Topic is the topic grouping (e.g., "Array").
	Topic string `json:"topic"`
	// LCNumber is the LeetCode problem number as text.
	LCNumber string `json:"lcNumber"`
	// Name is the problem title.
	Name string `json:"name"`
	// Difficulty is Easy, Medium, Hard or empty when the cell is blank.
	Difficulty Difficulty `json:"difficulty"`
	// Pattern is the algorithmic technique tag.
	Pattern string `json:"pattern"`
	// Priority is the study-order ranking tag.
	Priority string `json:"priority"`
	// Link is the problem URL.
	Link string `json:"link"`
	// KeyInsight is a short hint for the solution.
	KeyInsight string `json:"keyInsight"`
	// Status is solved or unsolved.
	Status ProblemStatus `json:"status"`
	// DateSolved is nil when the cell is blank.
	DateSolved *string `json:"dateSolved"`
	// Notes is free text.
	Notes string `json:"notes"`
}

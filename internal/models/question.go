package models

import "time"

type Question struct {
	ID         int64     `json:"id"`
	Category   string    `json:"category"`
	Difficulty string    `json:"difficulty"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Answer     string    `json:"answer"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type QuestionFilter struct {
	Category   string
	Difficulty string
	Search     string
	Limit      int
	Offset     int
	OrderBy    string
	OrderDir   string
}

// QuestionWithProgress joins a question with its scheduling state for study views.
type QuestionWithProgress struct {
	Question
	State   ReviewState `json:"state"`
	Version int64       `json:"version"`
	Bucket  string      `json:"bucket,omitempty"`
}

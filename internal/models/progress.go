package models

import "time"

// ReviewState is the per-question spaced-repetition state. It is a value:
// the calculator returns a new state instead of mutating the stored one.
type ReviewState struct {
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	Repetitions    int        `json:"repetitions"`
	NextReviewAt   time.Time  `json:"next_review_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
}

// DefaultEaseFactor is the SM-2 starting ease for a freshly created question.
const DefaultEaseFactor = 2.5

// NewReviewState returns the state a question starts with: due immediately,
// never reviewed.
func NewReviewState(now time.Time) ReviewState {
	return ReviewState{
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: 0,
		Repetitions:  0,
		NextReviewAt: now,
	}
}

// Progress is a stored ReviewState plus the optimistic-concurrency version
// used to detect racing reviews of the same question.
type Progress struct {
	QuestionID int64       `json:"question_id"`
	State      ReviewState `json:"state"`
	Version    int64       `json:"version"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// ProgressFilter narrows which progress records a study session draws from.
type ProgressFilter struct {
	Category   string
	Difficulty string
	ExcludeIDs []int64
}

type ReviewHistoryEntry struct {
	ID             int64     `json:"id"`
	QuestionID     int64     `json:"question_id"`
	Quality        int       `json:"quality"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	WasRevealed    bool      `json:"was_revealed"`
	ReviewedAt     time.Time `json:"reviewed_at"`
}

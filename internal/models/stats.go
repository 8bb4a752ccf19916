package models

import "time"

type ReviewStat struct {
	TotalReviews   int     `json:"total_reviews"`
	CorrectReviews int     `json:"correct_reviews"`
	AverageQuality float64 `json:"average_quality"`
	AvgResponseMs  float64 `json:"avg_response_ms"`
}

type CategoryStat struct {
	Category       string  `json:"category"`
	TotalQuestions int     `json:"total_questions"`
	TotalReviews   int     `json:"total_reviews"`
	AverageQuality float64 `json:"average_quality"`
}

type DailyReviewStat struct {
	Day     time.Time `json:"day"`
	Reviews int       `json:"reviews"`
	Correct int       `json:"correct"`
}

// StudyOverview is the aggregate view the stats endpoint returns.
type StudyOverview struct {
	TotalQuestions int            `json:"total_questions"`
	Buckets        map[string]int `json:"buckets"`
	Mastery        map[string]int `json:"mastery"`
	Reviews        ReviewStat     `json:"reviews"`
	Categories     []CategoryStat `json:"categories"`
}

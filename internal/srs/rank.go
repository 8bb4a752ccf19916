package srs

import (
	"sort"
	"time"

	"github.com/prepdeck/prepdeck/internal/models"
)

// Base score constants per bucket regime. The bases keep the regimes apart:
// an overdue card always outranks a new one, which outranks upcoming.
const (
	overdueBase = 1000.0
	newBase     = 500.0
	futureBase  = 100.0
)

// Score computes the urgency of a card within its bucket. Overdue cards gain
// a point per day late plus a penalty for being harder than the default ease;
// new cards carry only the ease penalty; due-today and upcoming cards decay
// toward zero the further out they are scheduled.
func Score(bucket Bucket, state models.ReviewState, now time.Time) float64 {
	switch bucket {
	case BucketOverdue:
		return overdueBase + float64(daysLate(state.NextReviewAt, now)) + easePenalty(state)
	case BucketNew:
		return newBase + easePenalty(state)
	default:
		s := futureBase - float64(daysUntil(state.NextReviewAt, now))
		if s < 0 {
			s = 0
		}
		return s
	}
}

// Rank orders overdue cards most-urgent first. The sort is stable so records
// with equal scores keep their input order, which keeps repeated calls over
// an unchanged snapshot deterministic.
func Rank(cards []models.QuestionWithProgress, now time.Time) []models.QuestionWithProgress {
	ranked := make([]models.QuestionWithProgress, len(cards))
	copy(ranked, cards)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(BucketOverdue, ranked[i].State, now) > Score(BucketOverdue, ranked[j].State, now)
	})
	return ranked
}

func easePenalty(state models.ReviewState) float64 {
	return (models.DefaultEaseFactor - state.EaseFactor) * 10
}

func daysLate(due, now time.Time) int {
	if due.After(now) {
		return 0
	}
	return int(now.Sub(due).Hours() / 24)
}

func daysUntil(due, now time.Time) int {
	if due.Before(now) {
		return 0
	}
	return int(due.Sub(now).Hours() / 24)
}

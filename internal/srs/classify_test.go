package srs_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/srs"
)

func stateAt(reps int, next time.Time) models.ReviewState {
	return models.ReviewState{
		EaseFactor:   2.5,
		IntervalDays: 1,
		Repetitions:  reps,
		NextReviewAt: next,
	}
}

func TestClassify(t *testing.T) {
	endOfToday := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		state models.ReviewState
		want  srs.Bucket
	}{
		{"never reviewed", stateAt(0, testNow), srs.BucketNew},
		{"new wins over past due date", stateAt(0, testNow.AddDate(0, 0, -30)), srs.BucketNew},
		{"due in the past", stateAt(2, testNow.Add(-time.Minute)), srs.BucketOverdue},
		{"due weeks ago", stateAt(5, testNow.AddDate(0, 0, -14)), srs.BucketOverdue},
		{"due this instant", stateAt(2, testNow), srs.BucketDueToday},
		{"due later today", stateAt(2, endOfToday), srs.BucketDueToday},
		{"due tomorrow", stateAt(2, testNow.AddDate(0, 0, 1)), srs.BucketUpcoming},
		{"due next month", stateAt(4, testNow.AddDate(0, 1, 0)), srs.BucketUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, srs.Classify(tt.state, testNow))
		})
	}
}

func TestPartition_DisjointAndComplete(t *testing.T) {
	var cards []models.QuestionWithProgress
	for i := 0; i < 100; i++ {
		reps := i % 4 // a quarter of the cards are new
		next := testNow.AddDate(0, 0, i%11-5)
		c := models.QuestionWithProgress{State: stateAt(reps, next)}
		c.ID = int64(i + 1)
		cards = append(cards, c)
	}

	b := srs.Partition(cards, testNow)

	total := len(b.New) + len(b.Overdue) + len(b.DueToday) + len(b.Upcoming)
	assert.Equal(t, len(cards), total)

	seen := map[int64]string{}
	for bucket, group := range map[string][]models.QuestionWithProgress{
		"new": b.New, "overdue": b.Overdue, "due_today": b.DueToday, "upcoming": b.Upcoming,
	} {
		for _, c := range group {
			prev, dup := seen[c.ID]
			require.False(t, dup, "card %d in both %s and %s", c.ID, prev, bucket)
			seen[c.ID] = bucket
			assert.Equal(t, bucket, c.Bucket)
		}
	}

	// Overdue must be exactly the reviewed cards scheduled strictly in the past.
	wantOverdue := 0
	for _, c := range cards {
		if c.State.Repetitions > 0 && c.State.NextReviewAt.Before(testNow) {
			wantOverdue++
		}
	}
	assert.Equal(t, wantOverdue, len(b.Overdue))
}

func TestPartition_PreservesInputOrder(t *testing.T) {
	var cards []models.QuestionWithProgress
	for i := 0; i < 10; i++ {
		c := models.QuestionWithProgress{State: stateAt(2, testNow.AddDate(0, 0, -1))}
		c.ID = int64(i + 1)
		cards = append(cards, c)
	}

	b := srs.Partition(cards, testNow)

	require.Len(t, b.Overdue, 10)
	for i, c := range b.Overdue {
		assert.Equal(t, int64(i+1), c.ID, fmt.Sprintf("position %d", i))
	}
}

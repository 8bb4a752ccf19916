package srs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/srs"
)

func TestMastery(t *testing.T) {
	tests := []struct {
		name     string
		reps     int
		interval int
		want     string
	}{
		{"never reviewed", 0, 0, srs.MasteryNew},
		{"never reviewed with interval", 0, 12, srs.MasteryNew},
		{"short interval", 2, 6, srs.MasteryLearning},
		{"week boundary", 3, 7, srs.MasteryReviewing},
		{"under a month", 4, 29, srs.MasteryReviewing},
		{"month boundary", 5, 30, srs.MasteryMastered},
		{"long interval", 8, 180, srs.MasteryMastered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := models.ReviewState{Repetitions: tt.reps, IntervalDays: tt.interval}
			assert.Equal(t, tt.want, srs.Mastery(state))
		})
	}
}

func TestFormatInterval(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "Now"},
		{1, "1 day"},
		{6, "6 days"},
		{7, "1 week"},
		{10, "1 week"},
		{11, "2 weeks"},
		{21, "3 weeks"},
		{30, "1 month"},
		{45, "2 months"}, // 45/30 rounds up
		{180, "6 months"},
		{364, "12 months"},
		{365, "1 year"},
		{548, "2 years"},
		{730, "2 years"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, srs.FormatInterval(tt.days), "days=%d", tt.days)
	}
}

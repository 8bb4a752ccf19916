package srs

import (
	"time"

	"github.com/prepdeck/prepdeck/internal/models"
)

// Bucket is the mutually exclusive due-classification of a card relative to
// a reference time.
type Bucket string

const (
	BucketNew      Bucket = "new"
	BucketOverdue  Bucket = "overdue"
	BucketDueToday Bucket = "due_today"
	BucketUpcoming Bucket = "upcoming"
)

// Classify places a single state into its bucket. The predicate order
// matters: a never-passed card (repetitions == 0) is "new" even when its
// scheduled date is far in the past, so the repetition check runs first.
func Classify(state models.ReviewState, now time.Time) Bucket {
	switch {
	case state.Repetitions == 0:
		return BucketNew
	case state.NextReviewAt.Before(now):
		return BucketOverdue
	case !state.NextReviewAt.After(endOfDay(now)):
		return BucketDueToday
	default:
		return BucketUpcoming
	}
}

// Buckets holds a partition of study candidates. The four slices are disjoint
// and together contain every input record, each in input order.
type Buckets struct {
	New      []models.QuestionWithProgress
	Overdue  []models.QuestionWithProgress
	DueToday []models.QuestionWithProgress
	Upcoming []models.QuestionWithProgress
}

// Partition splits candidates into due buckets relative to now.
func Partition(cards []models.QuestionWithProgress, now time.Time) Buckets {
	var b Buckets
	for _, c := range cards {
		c.Bucket = string(Classify(c.State, now))
		switch Bucket(c.Bucket) {
		case BucketNew:
			b.New = append(b.New, c)
		case BucketOverdue:
			b.Overdue = append(b.Overdue, c)
		case BucketDueToday:
			b.DueToday = append(b.DueToday, c)
		default:
			b.Upcoming = append(b.Upcoming, c)
		}
	}
	return b
}

// endOfDay returns the last instant of now's calendar day in now's location.
func endOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())
}

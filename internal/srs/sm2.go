package srs

import (
	"math"
	"time"

	"github.com/prepdeck/prepdeck/internal/models"
)

// Ease factor bounds. SM-2 never lets ease leave this range, no matter how
// extreme the quality stream is.
const (
	MinEaseFactor = 1.3
	MaxEaseFactor = 3.0
)

// PassThreshold is the lowest quality that counts as a successful recall.
const PassThreshold = 3

// Result carries the outcome of applying a review, with the old state kept
// around so callers can diff the two for feedback and logging.
type Result struct {
	Previous          models.ReviewState `json:"previous"`
	New               models.ReviewState `json:"new"`
	IntervalDeltaDays int                `json:"interval_delta_days"`
	EaseFactorDelta   float64            `json:"ease_factor_delta"`
}

// Apply runs one SM-2 state transition for a review of the given quality
// (0..5) at the given time. The input state is never mutated; quality must be
// validated by the caller, Apply is total over 0..5.
//
// The ease factor is recomputed on every review, including failures. Only the
// interval and repetition logic branches on pass/fail.
func Apply(state models.ReviewState, quality int, now time.Time) Result {
	q := float64(quality)
	ease := state.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}
	if ease > MaxEaseFactor {
		ease = MaxEaseFactor
	}

	next := state
	next.EaseFactor = ease

	if quality < PassThreshold {
		next.Repetitions = 0
		next.IntervalDays = 1
	} else {
		next.Repetitions = state.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			// Old interval, new ease. Round half up, never below a day.
			next.IntervalDays = int(math.Floor(float64(state.IntervalDays)*ease + 0.5))
			if next.IntervalDays < 1 {
				next.IntervalDays = 1
			}
		}
	}

	reviewedAt := now
	next.LastReviewedAt = &reviewedAt
	next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)

	return Result{
		Previous:          state,
		New:               next,
		IntervalDeltaDays: next.IntervalDays - state.IntervalDays,
		EaseFactorDelta:   next.EaseFactor - state.EaseFactor,
	}
}

// Preview returns the state each quality rating would produce, without
// touching anything. Used to show "if you pick Easy, you'll see this again in
// 2 weeks" before the user commits.
func Preview(state models.ReviewState, now time.Time) map[int]Result {
	out := make(map[int]Result, 6)
	for q := 0; q <= 5; q++ {
		out[q] = Apply(state, q, now)
	}
	return out
}

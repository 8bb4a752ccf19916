package srs

import (
	"fmt"
	"math"

	"github.com/prepdeck/prepdeck/internal/models"
)

// Mastery levels derived from scheduling state, for display only.
const (
	MasteryNew       = "new"
	MasteryLearning  = "learning"
	MasteryReviewing = "reviewing"
	MasteryMastered  = "mastered"
)

// Mastery labels a card by how far its interval has grown.
func Mastery(state models.ReviewState) string {
	switch {
	case state.Repetitions == 0:
		return MasteryNew
	case state.IntervalDays < 7:
		return MasteryLearning
	case state.IntervalDays < 30:
		return MasteryReviewing
	default:
		return MasteryMastered
	}
}

// FormatInterval renders a day count as a human-readable duration. Unit
// conversions round to the nearest whole unit rather than truncating, so 10
// days reads "1 week", not "1 week" by accident of integer division.
func FormatInterval(days int) string {
	switch {
	case days <= 0:
		return "Now"
	case days < 7:
		return plural(days, "day")
	case days < 30:
		return plural(roundDiv(days, 7), "week")
	case days < 365:
		return plural(roundDiv(days, 30), "month")
	default:
		return plural(roundDiv(days, 365), "year")
	}
}

func roundDiv(days, unit int) int {
	n := int(math.Floor(float64(days)/float64(unit) + 0.5))
	if n < 1 {
		n = 1
	}
	return n
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

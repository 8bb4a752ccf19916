package srs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/srs"
)

func TestScore_OverdueRegime(t *testing.T) {
	// 5 days late at default ease: 1000 + 5 + 0.
	state := stateAt(3, testNow.AddDate(0, 0, -5))
	assert.InDelta(t, 1005, srs.Score(srs.BucketOverdue, state, testNow), 1e-9)

	// Harder cards (lower ease) rank higher at the same lateness.
	hard := state
	hard.EaseFactor = 1.5
	assert.InDelta(t, 1015, srs.Score(srs.BucketOverdue, hard, testNow), 1e-9)
}

func TestScore_NewRegime(t *testing.T) {
	state := stateAt(0, testNow)
	assert.InDelta(t, 500, srs.Score(srs.BucketNew, state, testNow), 1e-9)

	hard := state
	hard.EaseFactor = 1.3
	assert.InDelta(t, 512, srs.Score(srs.BucketNew, hard, testNow), 1e-9)
}

func TestScore_UpcomingRegime(t *testing.T) {
	soon := stateAt(2, testNow.AddDate(0, 0, 3))
	far := stateAt(2, testNow.AddDate(0, 0, 60))

	assert.InDelta(t, 97, srs.Score(srs.BucketUpcoming, soon, testNow), 1e-9)
	assert.InDelta(t, 40, srs.Score(srs.BucketUpcoming, far, testNow), 1e-9)

	// Never negative, no matter how far out.
	distant := stateAt(2, testNow.AddDate(1, 0, 0))
	assert.Equal(t, 0.0, srs.Score(srs.BucketUpcoming, distant, testNow))
}

func TestScore_RegimesDoNotOverlap(t *testing.T) {
	overdue := srs.Score(srs.BucketOverdue, stateAt(2, testNow.AddDate(0, 0, -1)), testNow)
	fresh := srs.Score(srs.BucketNew, stateAt(0, testNow), testNow)
	upcoming := srs.Score(srs.BucketUpcoming, stateAt(2, testNow.AddDate(0, 0, 1)), testNow)

	assert.Greater(t, overdue, fresh)
	assert.Greater(t, fresh, upcoming)
}

func TestRank_MostOverdueFirst(t *testing.T) {
	mk := func(id int64, daysLate int, ease float64) models.QuestionWithProgress {
		c := models.QuestionWithProgress{State: stateAt(2, testNow.AddDate(0, 0, -daysLate))}
		c.ID = id
		c.State.EaseFactor = ease
		return c
	}

	cards := []models.QuestionWithProgress{
		mk(1, 1, 2.5),
		mk(2, 10, 2.5),
		mk(3, 1, 1.3), // only 1 day late but much harder: 1001 + 12
	}

	ranked := srs.Rank(cards, testNow)

	require.Len(t, ranked, 3)
	assert.Equal(t, int64(3), ranked[0].ID)
	assert.Equal(t, int64(2), ranked[1].ID)
	assert.Equal(t, int64(1), ranked[2].ID)
}

func TestRank_StableAndDeterministic(t *testing.T) {
	var cards []models.QuestionWithProgress
	for i := 0; i < 20; i++ {
		// All identical scores: order must survive the sort.
		c := models.QuestionWithProgress{State: stateAt(2, testNow.AddDate(0, 0, -3))}
		c.ID = int64(i + 1)
		cards = append(cards, c)
	}

	first := srs.Rank(cards, testNow)
	second := srs.Rank(cards, testNow)

	assert.Equal(t, first, second)
	for i, c := range first {
		assert.Equal(t, int64(i+1), c.ID)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	a := models.QuestionWithProgress{State: stateAt(2, testNow.AddDate(0, 0, -1))}
	a.ID = 1
	b := models.QuestionWithProgress{State: stateAt(2, testNow.AddDate(0, 0, -9))}
	b.ID = 2
	cards := []models.QuestionWithProgress{a, b}

	_ = srs.Rank(cards, testNow)

	assert.Equal(t, int64(1), cards[0].ID)
	assert.Equal(t, int64(2), cards[1].ID)
}

package repository

import (
	"context"
	"errors"

	"github.com/prepdeck/prepdeck/internal/models"
)

// ErrVersionConflict is returned by ProgressRepository.Update when the stored
// version no longer matches the expected one, i.e. a concurrent review won.
var ErrVersionConflict = errors.New("progress version conflict")

// QuestionRepository handles question data access
type QuestionRepository interface {
	Get(ctx context.Context, id int64) (*models.Question, error)
	List(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error)
	Count(ctx context.Context, filter models.QuestionFilter) (int, error)
	// Insert creates the question and seeds its default scheduling state in
	// the same transaction.
	Insert(ctx context.Context, q models.Question) (int64, error)
	InsertBatch(ctx context.Context, qs []models.Question) ([]int64, error)
	Update(ctx context.Context, q models.Question) error
	Delete(ctx context.Context, id int64) error
}

// ProgressRepository handles spaced-repetition state data access
type ProgressRepository interface {
	Get(ctx context.Context, questionID int64) (*models.Progress, error)
	Insert(ctx context.Context, p models.Progress) error
	// Update persists the new state only if the stored version still equals
	// expectedVersion, bumping the version on success.
	Update(ctx context.Context, p models.Progress, expectedVersion int64) error
	List(ctx context.Context, filter models.ProgressFilter) ([]models.QuestionWithProgress, error)
	InsertReviewHistory(ctx context.Context, entry models.ReviewHistoryEntry) error
}

// StatsRepository handles reporting aggregates
type StatsRepository interface {
	CountQuestions(ctx context.Context) (int, error)
	ReviewStats(ctx context.Context) (*models.ReviewStat, error)
	CategoryStats(ctx context.Context) ([]models.CategoryStat, error)
	DailyReviewStats(ctx context.Context, days int) ([]models.DailyReviewStat, error)
}

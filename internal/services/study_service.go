package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/prepdeck/prepdeck/internal/errors"
	"github.com/prepdeck/prepdeck/internal/logger"
	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/repository"
	"github.com/prepdeck/prepdeck/internal/srs"
)

// ReviewFeedback is what the UI shows after a review: the state transition
// plus a human-readable "see you again in ..." string.
type ReviewFeedback struct {
	srs.Result
	NextReviewIn string `json:"next_review_in"`
}

// StudyService orchestrates the scheduling engine against the progress store.
// It answers two questions: what should be studied next, and how does a
// finished review advance the card.
type StudyService interface {
	// NextQuestion returns the most urgent card matching the filter, or
	// (nil, nil) when nothing matches. An empty result is session completion,
	// not an error.
	NextQuestion(ctx context.Context, filter models.ProgressFilter) (*models.QuestionWithProgress, error)
	// RecordReview applies one review and persists the new state. Fails with
	// a CONFLICT error when a concurrent review of the same question won the
	// write; the caller should re-fetch and retry.
	RecordReview(ctx context.Context, questionID int64, quality int, responseTimeMs int64, wasRevealed bool) (*ReviewFeedback, error)
	// IntervalPreview dry-runs every quality rating without persisting,
	// mapping each to the formatted interval it would produce.
	IntervalPreview(ctx context.Context, questionID int64) (map[int]string, error)
}

type studyService struct {
	progressRepo repository.ProgressRepository
	now          func() time.Time
}

// NewStudyService creates a new StudyService. The clock is injectable so
// tests can pin "now".
func NewStudyService(progressRepo repository.ProgressRepository, now func() time.Time) StudyService {
	if now == nil {
		now = time.Now
	}
	return &studyService{progressRepo: progressRepo, now: now}
}

func (s *studyService) NextQuestion(ctx context.Context, filter models.ProgressFilter) (*models.QuestionWithProgress, error) {
	log := logger.FromContext(ctx)
	log.Debug("selecting next question: category=%s, difficulty=%s", filter.Category, filter.Difficulty)

	cards, err := s.progressRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	now := s.now()
	buckets := srs.Partition(cards, now)

	// Priority order across buckets; overdue cards are additionally ranked
	// by urgency. The other buckets keep the repository's stable order.
	if len(buckets.Overdue) > 0 {
		ranked := srs.Rank(buckets.Overdue, now)
		return &ranked[0], nil
	}
	for _, group := range [][]models.QuestionWithProgress{buckets.DueToday, buckets.New, buckets.Upcoming} {
		if len(group) > 0 {
			return &group[0], nil
		}
	}

	log.Debug("no questions match the filter")
	return nil, nil
}

func (s *studyService) RecordReview(ctx context.Context, questionID int64, quality int, responseTimeMs int64, wasRevealed bool) (*ReviewFeedback, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording review: question_id=%d, quality=%d", questionID, quality)

	// Reject, never clamp: a clamped rating would feed the ease formula a
	// value the user didn't give.
	if quality < 0 || quality > 5 {
		return nil, errors.NewValidationError("quality", "must be between 0 and 5")
	}

	progress, err := s.progressRepo.Get(ctx, questionID)
	if err != nil {
		log.Error("failed to load progress: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if progress == nil {
		return nil, errors.NewNotFoundError("question", questionID)
	}

	now := s.now()
	result := srs.Apply(progress.State, quality, now)

	updated := *progress
	updated.State = result.New
	if err := s.progressRepo.Update(ctx, updated, progress.Version); err != nil {
		if stderrors.Is(err, repository.ErrVersionConflict) {
			return nil, errors.NewConflictError("review", questionID)
		}
		log.Error("failed to save progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Debug("review applied: interval=%d days, ease=%.2f", result.New.IntervalDays, result.New.EaseFactor)

	// History is reporting data, not scheduling state; its failure must not
	// undo a successful review.
	entry := models.ReviewHistoryEntry{
		QuestionID:     questionID,
		Quality:        quality,
		ResponseTimeMs: responseTimeMs,
		WasRevealed:    wasRevealed,
		ReviewedAt:     now,
	}
	if err := s.progressRepo.InsertReviewHistory(ctx, entry); err != nil {
		log.Warn("failed to store review history: %v", err)
	}

	return &ReviewFeedback{
		Result:       result,
		NextReviewIn: srs.FormatInterval(result.New.IntervalDays),
	}, nil
}

func (s *studyService) IntervalPreview(ctx context.Context, questionID int64) (map[int]string, error) {
	log := logger.FromContext(ctx)
	log.Debug("previewing intervals: question_id=%d", questionID)

	progress, err := s.progressRepo.Get(ctx, questionID)
	if err != nil {
		log.Error("failed to load progress: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if progress == nil {
		return nil, errors.NewNotFoundError("question", questionID)
	}

	preview := srs.Preview(progress.State, s.now())
	out := make(map[int]string, len(preview))
	for quality, result := range preview {
		out[quality] = srs.FormatInterval(result.New.IntervalDays)
	}
	return out, nil
}

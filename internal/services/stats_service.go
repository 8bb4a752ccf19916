package services

import (
	"context"
	"time"

	"github.com/prepdeck/prepdeck/internal/errors"
	"github.com/prepdeck/prepdeck/internal/logger"
	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/repository"
	"github.com/prepdeck/prepdeck/internal/srs"
)

// StatsService handles study statistics and reporting
type StatsService interface {
	GetOverview(ctx context.Context) (*models.StudyOverview, error)
	GetDailyReviews(ctx context.Context, days int) ([]models.DailyReviewStat, error)
}

type statsService struct {
	statsRepo    repository.StatsRepository
	progressRepo repository.ProgressRepository
	now          func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo repository.StatsRepository, progressRepo repository.ProgressRepository, now func() time.Time) StatsService {
	if now == nil {
		now = time.Now
	}
	return &statsService{statsRepo: statsRepo, progressRepo: progressRepo, now: now}
}

func (s *statsService) GetOverview(ctx context.Context) (*models.StudyOverview, error) {
	log := logger.FromContext(ctx)
	log.Debug("building study overview")

	total, err := s.statsRepo.CountQuestions(ctx)
	if err != nil {
		log.Error("failed to count questions: %v", err)
		return nil, errors.NewInternalError(err)
	}

	reviews, err := s.statsRepo.ReviewStats(ctx)
	if err != nil {
		log.Error("failed to load review stats: %v", err)
		return nil, errors.NewInternalError(err)
	}

	categories, err := s.statsRepo.CategoryStats(ctx)
	if err != nil {
		log.Error("failed to load category stats: %v", err)
		return nil, errors.NewInternalError(err)
	}

	cards, err := s.progressRepo.List(ctx, models.ProgressFilter{})
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	now := s.now()
	buckets := map[string]int{}
	mastery := map[string]int{}
	for _, c := range cards {
		buckets[string(srs.Classify(c.State, now))]++
		mastery[srs.Mastery(c.State)]++
	}

	return &models.StudyOverview{
		TotalQuestions: total,
		Buckets:        buckets,
		Mastery:        mastery,
		Reviews:        *reviews,
		Categories:     categories,
	}, nil
}

func (s *statsService) GetDailyReviews(ctx context.Context, days int) ([]models.DailyReviewStat, error) {
	log := logger.FromContext(ctx)

	stats, err := s.statsRepo.DailyReviewStats(ctx, days)
	if err != nil {
		log.Error("failed to load daily review stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return stats, nil
}

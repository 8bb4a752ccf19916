package sqlite

import (
	"context"
	"database/sql"

	"github.com/prepdeck/prepdeck/internal/logger"
	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/repository"
	"github.com/prepdeck/prepdeck/internal/srs"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountQuestions(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		log.Error("failed to count questions: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *statsRepository) ReviewStats(ctx context.Context) (*models.ReviewStat, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("computing review stats")

	var s models.ReviewStat
	var avgQuality, avgResponse sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN quality >= ? THEN 1 ELSE 0 END), 0),
       AVG(quality),
       AVG(response_time_ms)
FROM review_history
`, srs.PassThreshold).Scan(&s.TotalReviews, &s.CorrectReviews, &avgQuality, &avgResponse)
	if err != nil {
		log.Error("failed to compute review stats: %v", err)
		return nil, err
	}
	if avgQuality.Valid {
		s.AverageQuality = avgQuality.Float64
	}
	if avgResponse.Valid {
		s.AvgResponseMs = avgResponse.Float64
	}
	return &s, nil
}

func (r *statsRepository) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("computing category stats")

	rows, err := r.db.QueryContext(ctx, `
SELECT q.category,
       COUNT(DISTINCT q.id),
       COUNT(h.id),
       COALESCE(AVG(h.quality), 0)
FROM questions q
LEFT JOIN review_history h ON h.question_id = q.id
GROUP BY q.category
ORDER BY q.category ASC
`)
	if err != nil {
		log.Error("failed to compute category stats: %v", err)
		return nil, err
	}
	defer rows.Close()

	var stats []models.CategoryStat
	for rows.Next() {
		var s models.CategoryStat
		if err := rows.Scan(&s.Category, &s.TotalQuestions, &s.TotalReviews, &s.AverageQuality); err != nil {
			log.Error("failed to scan category stat row: %v", err)
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *statsRepository) DailyReviewStats(ctx context.Context, days int) ([]models.DailyReviewStat, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("computing daily review stats: days=%d", days)

	if days <= 0 {
		days = 30
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT DATE(reviewed_at),
       COUNT(*),
       COALESCE(SUM(CASE WHEN quality >= ? THEN 1 ELSE 0 END), 0)
FROM review_history
WHERE reviewed_at >= DATE('now', ?)
GROUP BY DATE(reviewed_at)
ORDER BY DATE(reviewed_at) ASC
`, srs.PassThreshold, "-"+itoa(days)+" days")
	if err != nil {
		log.Error("failed to compute daily review stats: %v", err)
		return nil, err
	}
	defer rows.Close()

	var stats []models.DailyReviewStat
	for rows.Next() {
		var s models.DailyReviewStat
		var day string
		if err := rows.Scan(&day, &s.Reviews, &s.Correct); err != nil {
			log.Error("failed to scan daily stat row: %v", err)
			return nil, err
		}
		if t, err := parseDay(day); err == nil {
			s.Day = t
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

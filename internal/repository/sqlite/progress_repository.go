package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/prepdeck/prepdeck/internal/logger"
	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get(ctx context.Context, questionID int64) (*models.Progress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: question_id=%d", questionID)

	var p models.Progress
	var lastReviewed sql.NullTime
	err := r.db.QueryRowContext(ctx, `
SELECT question_id, ease_factor, interval_days, repetitions, next_review_at, last_reviewed_at, version, created_at, updated_at
FROM progress
WHERE question_id = ?
`, questionID).Scan(&p.QuestionID, &p.State.EaseFactor, &p.State.IntervalDays, &p.State.Repetitions,
		&p.State.NextReviewAt, &lastReviewed, &p.Version, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("progress not found: question_id=%d", questionID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}
	if lastReviewed.Valid {
		t := lastReviewed.Time
		p.State.LastReviewedAt = &t
	}
	return &p, nil
}

func (r *progressRepository) Insert(ctx context.Context, p models.Progress) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("inserting progress: question_id=%d", p.QuestionID)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO progress (question_id, ease_factor, interval_days, repetitions, next_review_at, last_reviewed_at)
VALUES (?, ?, ?, ?, ?, ?)
`, p.QuestionID, p.State.EaseFactor, p.State.IntervalDays, p.State.Repetitions,
		p.State.NextReviewAt, nullableTime(p.State.LastReviewedAt))
	if err != nil {
		log.Error("failed to insert progress: %v", err)
	}
	return err
}

// Update persists the new state only when the stored version still matches
// expectedVersion. A concurrent review that committed first bumps the version
// and makes this update a no-op, which surfaces as ErrVersionConflict instead
// of a silent lost update.
func (r *progressRepository) Update(ctx context.Context, p models.Progress, expectedVersion int64) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("updating progress: question_id=%d, expected_version=%d", p.QuestionID, expectedVersion)

	res, err := r.db.ExecContext(ctx, `
UPDATE progress
SET ease_factor = ?, interval_days = ?, repetitions = ?, next_review_at = ?, last_reviewed_at = ?,
    version = version + 1, updated_at = CURRENT_TIMESTAMP
WHERE question_id = ? AND version = ?
`, p.State.EaseFactor, p.State.IntervalDays, p.State.Repetitions, p.State.NextReviewAt,
		nullableTime(p.State.LastReviewedAt), p.QuestionID, expectedVersion)
	if err != nil {
		log.Error("failed to update progress: %v", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Warn("progress version conflict: question_id=%d, expected_version=%d", p.QuestionID, expectedVersion)
		return repository.ErrVersionConflict
	}
	return nil
}

func (r *progressRepository) List(ctx context.Context, filter models.ProgressFilter) ([]models.QuestionWithProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("listing progress: category=%s, difficulty=%s, excluded=%d", filter.Category, filter.Difficulty, len(filter.ExcludeIDs))

	query := sqlBuilder.
		Select("q.id", "q.category", "q.difficulty", "q.title", "q.body", "q.answer", "q.created_at", "q.updated_at",
			"p.ease_factor", "p.interval_days", "p.repetitions", "p.next_review_at", "p.last_reviewed_at", "p.version").
		From("progress p").
		Join("questions q ON q.id = p.question_id")
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"q.category": filter.Category})
	}
	if filter.Difficulty != "" {
		query = query.Where(squirrel.Eq{"q.difficulty": filter.Difficulty})
	}
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where(squirrel.NotEq{"q.id": filter.ExcludeIDs})
	}
	// Deterministic order so repeated study queries see a stable snapshot.
	query = query.OrderBy("p.next_review_at ASC", "q.id ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.QuestionWithProgress
	for rows.Next() {
		var c models.QuestionWithProgress
		var lastReviewed sql.NullTime
		if err := rows.Scan(&c.ID, &c.Category, &c.Difficulty, &c.Title, &c.Body, &c.Answer, &c.CreatedAt, &c.UpdatedAt,
			&c.State.EaseFactor, &c.State.IntervalDays, &c.State.Repetitions, &c.State.NextReviewAt, &lastReviewed, &c.Version); err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, err
		}
		if lastReviewed.Valid {
			t := lastReviewed.Time
			c.State.LastReviewedAt = &t
		}
		cards = append(cards, c)
	}
	log.Debug("found %d progress records", len(cards))
	return cards, rows.Err()
}

func (r *progressRepository) InsertReviewHistory(ctx context.Context, entry models.ReviewHistoryEntry) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("inserting review history: question_id=%d, quality=%d", entry.QuestionID, entry.Quality)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO review_history (question_id, quality, response_time_ms, was_revealed, reviewed_at)
VALUES (?, ?, ?, ?, ?)
`, entry.QuestionID, entry.Quality, entry.ResponseTimeMs, entry.WasRevealed, entry.ReviewedAt)
	if err != nil {
		log.Error("failed to insert review history: %v", err)
	}
	return err
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

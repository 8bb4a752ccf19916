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

type questionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new QuestionRepository implementation
func NewQuestionRepository(db *sql.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Get(ctx context.Context, id int64) (*models.Question, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("getting question: id=%d", id)

	var q models.Question
	err := r.db.QueryRowContext(ctx, `
SELECT id, category, difficulty, title, body, answer, created_at, updated_at
FROM questions
WHERE id = ?
`, id).Scan(&q.ID, &q.Category, &q.Difficulty, &q.Title, &q.Body, &q.Answer, &q.CreatedAt, &q.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("question not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get question: %v", err)
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) List(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("listing questions: category=%s, difficulty=%s", filter.Category, filter.Difficulty)

	query := sqlBuilder.
		Select("id", "category", "difficulty", "title", "body", "answer", "created_at", "updated_at").
		From("questions")
	query = applyQuestionFilter(query, filter)

	// Safe ORDER BY with validation
	orderBy := "created_at"
	if filter.OrderBy == "updated_at" || filter.OrderBy == "title" {
		orderBy = filter.OrderBy
	}
	orderDir := "DESC"
	if filter.OrderDir == "ASC" {
		orderDir = "ASC"
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list questions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Category, &q.Difficulty, &q.Title, &q.Body, &q.Answer, &q.CreatedAt, &q.UpdatedAt); err != nil {
			log.Error("failed to scan question row: %v", err)
			return nil, err
		}
		questions = append(questions, q)
	}
	log.Debug("found %d questions", len(questions))
	return questions, rows.Err()
}

func (r *questionRepository) Count(ctx context.Context, filter models.QuestionFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")

	query := sqlBuilder.Select("COUNT(*)").From("questions")
	query = applyQuestionFilter(query, filter)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build count query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count questions: %v", err)
		return 0, err
	}
	return count, nil
}

func applyQuestionFilter(query squirrel.SelectBuilder, filter models.QuestionFilter) squirrel.SelectBuilder {
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Difficulty != "" {
		query = query.Where(squirrel.Eq{"difficulty": filter.Difficulty})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.Like{"title": like},
			squirrel.Like{"body": like},
		})
	}
	return query
}

func (r *questionRepository) Insert(ctx context.Context, q models.Question) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("inserting question: title=%s", q.Title)

	var id int64
	err := tx(ctx, r.db, func(t *sql.Tx) error {
		res, err := t.ExecContext(ctx, `
INSERT INTO questions (category, difficulty, title, body, answer)
VALUES (?, ?, ?, ?, ?)
`, q.Category, q.Difficulty, q.Title, q.Body, q.Answer)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		if err != nil {
			return err
		}
		return seedProgress(ctx, t, id, time.Now())
	})
	if err != nil {
		log.Error("failed to insert question: %v", err)
		return 0, err
	}
	log.Debug("question inserted: id=%d", id)
	return id, nil
}

func (r *questionRepository) InsertBatch(ctx context.Context, qs []models.Question) ([]int64, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("inserting %d questions", len(qs))

	ids := make([]int64, 0, len(qs))
	err := tx(ctx, r.db, func(t *sql.Tx) error {
		now := time.Now()
		for _, q := range qs {
			res, err := t.ExecContext(ctx, `
INSERT INTO questions (category, difficulty, title, body, answer)
VALUES (?, ?, ?, ?, ?)
`, q.Category, q.Difficulty, q.Title, q.Body, q.Answer)
			if err != nil {
				return err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}
			if err := seedProgress(ctx, t, id, now); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to insert questions: %v", err)
		return nil, err
	}
	return ids, nil
}

// seedProgress creates the default scheduling state for a new question:
// due immediately, never reviewed.
func seedProgress(ctx context.Context, t *sql.Tx, questionID int64, now time.Time) error {
	state := models.NewReviewState(now)
	_, err := t.ExecContext(ctx, `
INSERT INTO progress (question_id, ease_factor, interval_days, repetitions, next_review_at)
VALUES (?, ?, ?, ?, ?)
`, questionID, state.EaseFactor, state.IntervalDays, state.Repetitions, state.NextReviewAt)
	return err
}

func (r *questionRepository) Update(ctx context.Context, q models.Question) error {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("updating question: id=%d", q.ID)

	_, err := r.db.ExecContext(ctx, `
UPDATE questions
SET category = ?, difficulty = ?, title = ?, body = ?, answer = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, q.Category, q.Difficulty, q.Title, q.Body, q.Answer, q.ID)
	if err != nil {
		log.Error("failed to update question: %v", err)
	}
	return err
}

func (r *questionRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("deleting question and related data: id=%d", id)

	return tx(ctx, r.db, func(t *sql.Tx) error {
		// Progress and history go first to respect FK constraints.
		if _, err := t.ExecContext(ctx, `DELETE FROM review_history WHERE question_id = ?`, id); err != nil {
			return err
		}
		if _, err := t.ExecContext(ctx, `DELETE FROM progress WHERE question_id = ?`, id); err != nil {
			return err
		}
		_, err := t.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
		return err
	})
}

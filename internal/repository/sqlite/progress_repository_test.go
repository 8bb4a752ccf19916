package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/repository"
	"github.com/prepdeck/prepdeck/internal/repository/sqlite"
	"github.com/prepdeck/prepdeck/internal/testutil"
)

type ProgressRepositorySuite struct {
	suite.Suite
	db        *sql.DB
	repo      repository.ProgressRepository
	questions repository.QuestionRepository
}

func (s *ProgressRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewProgressRepository(s.db)
	s.questions = sqlite.NewQuestionRepository(s.db)
}

func (s *ProgressRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ProgressRepositorySuite) createQuestion(category, difficulty, title string) int64 {
	id, err := s.questions.Insert(context.Background(), models.Question{
		Category:   category,
		Difficulty: difficulty,
		Title:      title,
		Body:       "body",
		Answer:     "answer",
	})
	s.Require().NoError(err)
	return id
}

func (s *ProgressRepositorySuite) TestInsertSeededWithQuestion() {
	ctx := context.Background()
	id := s.createQuestion("go", "medium", "What is a goroutine?")

	p, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(p)

	s.Assert().Equal(id, p.QuestionID)
	s.Assert().Equal(models.DefaultEaseFactor, p.State.EaseFactor)
	s.Assert().Equal(0, p.State.IntervalDays)
	s.Assert().Equal(0, p.State.Repetitions)
	s.Assert().Nil(p.State.LastReviewedAt)
	s.Assert().Equal(int64(1), p.Version)
}

func (s *ProgressRepositorySuite) TestGetMissingReturnsNil() {
	p, err := s.repo.Get(context.Background(), 9999)
	s.Require().NoError(err)
	s.Assert().Nil(p)
}

func (s *ProgressRepositorySuite) TestUpdateBumpsVersion() {
	ctx := context.Background()
	id := s.createQuestion("go", "medium", "Explain channels")

	p, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)

	now := time.Now().UTC().Truncate(time.Second)
	p.State.EaseFactor = 2.6
	p.State.IntervalDays = 1
	p.State.Repetitions = 1
	p.State.NextReviewAt = now.AddDate(0, 0, 1)
	p.State.LastReviewedAt = &now

	err = s.repo.Update(ctx, *p, p.Version)
	s.Require().NoError(err)

	updated, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Equal(int64(2), updated.Version)
	s.Assert().Equal(1, updated.State.Repetitions)
	s.Assert().Equal(2.6, updated.State.EaseFactor)
	s.Require().NotNil(updated.State.LastReviewedAt)
}

func (s *ProgressRepositorySuite) TestUpdateStaleVersionConflicts() {
	ctx := context.Background()
	id := s.createQuestion("go", "hard", "Describe the memory model")

	p, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)

	// Two racing reviews load the same base state. The first write wins.
	first := *p
	first.State.Repetitions = 1
	second := *p
	second.State.Repetitions = 1

	err = s.repo.Update(ctx, first, p.Version)
	s.Require().NoError(err)

	err = s.repo.Update(ctx, second, p.Version)
	s.Require().ErrorIs(err, repository.ErrVersionConflict)

	// The losing write must not have touched the row.
	stored, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Equal(int64(2), stored.Version)
}

func (s *ProgressRepositorySuite) TestListFilters() {
	ctx := context.Background()
	goID := s.createQuestion("go", "medium", "Question A")
	s.createQuestion("go", "hard", "Question B")
	sqlID := s.createQuestion("sql", "medium", "Question C")

	all, err := s.repo.List(ctx, models.ProgressFilter{})
	s.Require().NoError(err)
	s.Assert().Len(all, 3)

	goOnly, err := s.repo.List(ctx, models.ProgressFilter{Category: "go"})
	s.Require().NoError(err)
	s.Assert().Len(goOnly, 2)

	hardOnly, err := s.repo.List(ctx, models.ProgressFilter{Category: "go", Difficulty: "hard"})
	s.Require().NoError(err)
	s.Require().Len(hardOnly, 1)
	s.Assert().Equal("Question B", hardOnly[0].Title)

	excluded, err := s.repo.List(ctx, models.ProgressFilter{ExcludeIDs: []int64{goID, sqlID}})
	s.Require().NoError(err)
	s.Require().Len(excluded, 1)
	s.Assert().Equal("Question B", excluded[0].Title)
}

func (s *ProgressRepositorySuite) TestInsertReviewHistory() {
	ctx := context.Background()
	id := s.createQuestion("go", "easy", "What does defer do?")

	err := s.repo.InsertReviewHistory(ctx, models.ReviewHistoryEntry{
		QuestionID:     id,
		Quality:        4,
		ResponseTimeMs: 3200,
		WasRevealed:    true,
		ReviewedAt:     time.Now(),
	})
	s.Require().NoError(err)

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM review_history WHERE question_id = ?`, id).Scan(&count)
	s.Require().NoError(err)
	s.Assert().Equal(1, count)
}

func TestProgressRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProgressRepositorySuite))
}

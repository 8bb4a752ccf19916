package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/repository"
	"github.com/prepdeck/prepdeck/internal/repository/sqlite"
	"github.com/prepdeck/prepdeck/internal/testutil"
)

type QuestionRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.QuestionRepository
}

func (s *QuestionRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewQuestionRepository(s.db)
}

func (s *QuestionRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *QuestionRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, models.Question{
		Category:   "system-design",
		Difficulty: "hard",
		Title:      "Design a URL shortener",
		Body:       "Walk through the *write path* first.",
		Answer:     "Hashing, storage, redirects.",
	})
	s.Require().NoError(err)
	s.Assert().Greater(id, int64(0))

	q, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(q)
	s.Assert().Equal("Design a URL shortener", q.Title)
	s.Assert().Equal("system-design", q.Category)

	missing, err := s.repo.Get(ctx, id+100)
	s.Require().NoError(err)
	s.Assert().Nil(missing)
}

func (s *QuestionRepositorySuite) TestInsertBatch() {
	ctx := context.Background()

	ids, err := s.repo.InsertBatch(ctx, []models.Question{
		{Category: "go", Title: "Q1"},
		{Category: "go", Title: "Q2"},
		{Category: "sql", Title: "Q3"},
	})
	s.Require().NoError(err)
	s.Require().Len(ids, 3)

	// Every imported question gets scheduling state.
	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM progress`).Scan(&count)
	s.Require().NoError(err)
	s.Assert().Equal(3, count)
}

func (s *QuestionRepositorySuite) TestListAndCount() {
	ctx := context.Background()

	_, err := s.repo.InsertBatch(ctx, []models.Question{
		{Category: "go", Difficulty: "easy", Title: "Slices vs arrays"},
		{Category: "go", Difficulty: "hard", Title: "Scheduler internals"},
		{Category: "sql", Difficulty: "easy", Title: "Indexes"},
	})
	s.Require().NoError(err)

	goQuestions, err := s.repo.List(ctx, models.QuestionFilter{Category: "go"})
	s.Require().NoError(err)
	s.Assert().Len(goQuestions, 2)

	count, err := s.repo.Count(ctx, models.QuestionFilter{Category: "go"})
	s.Require().NoError(err)
	s.Assert().Equal(2, count)

	found, err := s.repo.List(ctx, models.QuestionFilter{Search: "scheduler"})
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Assert().Equal("Scheduler internals", found[0].Title)
}

func (s *QuestionRepositorySuite) TestUpdate() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, models.Question{Category: "go", Title: "Old title"})
	s.Require().NoError(err)

	err = s.repo.Update(ctx, models.Question{
		ID:       id,
		Category: "go",
		Title:    "New title",
		Body:     "updated body",
	})
	s.Require().NoError(err)

	q, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Equal("New title", q.Title)
	s.Assert().Equal("updated body", q.Body)
}

func (s *QuestionRepositorySuite) TestDeleteCascades() {
	ctx := context.Background()

	id, err := s.repo.Insert(ctx, models.Question{Category: "go", Title: "Doomed"})
	s.Require().NoError(err)

	progressRepo := sqlite.NewProgressRepository(s.db)
	err = progressRepo.InsertReviewHistory(ctx, models.ReviewHistoryEntry{QuestionID: id, Quality: 4})
	s.Require().NoError(err)

	err = s.repo.Delete(ctx, id)
	s.Require().NoError(err)

	q, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Nil(q)

	p, err := progressRepo.Get(ctx, id)
	s.Require().NoError(err)
	s.Assert().Nil(p)

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM review_history WHERE question_id = ?`, id).Scan(&count)
	s.Require().NoError(err)
	s.Assert().Equal(0, count)
}

func TestQuestionRepositorySuite(t *testing.T) {
	suite.Run(t, new(QuestionRepositorySuite))
}

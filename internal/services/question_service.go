package services

import (
	"context"
	"strings"

	"github.com/prepdeck/prepdeck/internal/errors"
	"github.com/prepdeck/prepdeck/internal/logger"
	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/repository"
)

// QuestionService handles question-bank business logic
type QuestionService interface {
	GetQuestion(ctx context.Context, id int64) (*models.Question, error)
	ListQuestions(ctx context.Context, filter models.QuestionFilter) ([]models.Question, int, error)
	CreateQuestion(ctx context.Context, q models.Question) (*models.Question, error)
	UpdateQuestion(ctx context.Context, q models.Question) error
	DeleteQuestion(ctx context.Context, id int64) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func (s *questionService) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting question: id=%d", id)

	q, err := s.questionRepo.Get(ctx, id)
	if err != nil {
		log.Error("failed to get question: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("question", id)
	}
	return q, nil
}

func (s *questionService) ListQuestions(ctx context.Context, filter models.QuestionFilter) ([]models.Question, int, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing questions: category=%s, search=%q", filter.Category, filter.Search)

	questions, err := s.questionRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list questions: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}

	total, err := s.questionRepo.Count(ctx, filter)
	if err != nil {
		log.Error("failed to count questions: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}

	return questions, total, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, q models.Question) (*models.Question, error) {
	log := logger.FromContext(ctx)

	if err := validateQuestion(q); err != nil {
		return nil, err
	}

	id, err := s.questionRepo.Insert(ctx, q)
	if err != nil {
		log.Error("failed to create question: %v", err)
		return nil, errors.NewInternalError(err)
	}

	created, err := s.questionRepo.Get(ctx, id)
	if err != nil {
		log.Error("failed to reload created question: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("question created: id=%d, title=%s", id, created.Title)
	return created, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, q models.Question) error {
	log := logger.FromContext(ctx)
	log.Debug("updating question: id=%d", q.ID)

	if err := validateQuestion(q); err != nil {
		return err
	}

	existing, err := s.questionRepo.Get(ctx, q.ID)
	if err != nil {
		log.Error("failed to load question: %v", err)
		return errors.NewInternalError(err)
	}
	if existing == nil {
		return errors.NewNotFoundError("question", q.ID)
	}

	if err := s.questionRepo.Update(ctx, q); err != nil {
		log.Error("failed to update question: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting question: id=%d", id)

	existing, err := s.questionRepo.Get(ctx, id)
	if err != nil {
		log.Error("failed to load question: %v", err)
		return errors.NewInternalError(err)
	}
	if existing == nil {
		return errors.NewNotFoundError("question", id)
	}

	if err := s.questionRepo.Delete(ctx, id); err != nil {
		log.Error("failed to delete question: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("question deleted: id=%d", id)
	return nil
}

func validateQuestion(q models.Question) error {
	if strings.TrimSpace(q.Title) == "" {
		return errors.NewValidationError("title", "must not be empty")
	}
	return nil
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/prepdeck/prepdeck/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, questionID int64) (*models.Progress, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

func (m *MockProgressRepository) Insert(ctx context.Context, p models.Progress) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProgressRepository) Update(ctx context.Context, p models.Progress, expectedVersion int64) error {
	args := m.Called(ctx, p, expectedVersion)
	return args.Error(0)
}

func (m *MockProgressRepository) List(ctx context.Context, filter models.ProgressFilter) ([]models.QuestionWithProgress, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuestionWithProgress), args.Error(1)
}

func (m *MockProgressRepository) InsertReviewHistory(ctx context.Context, entry models.ReviewHistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

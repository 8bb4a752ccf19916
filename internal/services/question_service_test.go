package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/errors"
	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/services"
	"github.com/prepdeck/prepdeck/internal/testutil/mocks"
)

func TestCreateQuestion_RequiresTitle(t *testing.T) {
	repo := new(mocks.MockQuestionRepository)

	svc := services.NewQuestionService(repo)
	_, err := svc.CreateQuestion(context.Background(), models.Question{Body: "no title"})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateQuestion_ReturnsStoredQuestion(t *testing.T) {
	in := models.Question{Title: "What is a closure?", Category: "javascript"}
	stored := in
	stored.ID = 42

	repo := new(mocks.MockQuestionRepository)
	repo.On("Insert", mock.Anything, in).Return(int64(42), nil)
	repo.On("Get", mock.Anything, int64(42)).Return(&stored, nil)

	svc := services.NewQuestionService(repo)
	out, err := svc.CreateQuestion(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(42), out.ID)
	repo.AssertExpectations(t)
}

func TestGetQuestion_NotFound(t *testing.T) {
	repo := new(mocks.MockQuestionRepository)
	repo.On("Get", mock.Anything, int64(7)).Return(nil, nil)

	svc := services.NewQuestionService(repo)
	_, err := svc.GetQuestion(context.Background(), 7)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestUpdateQuestion_ChecksExistence(t *testing.T) {
	repo := new(mocks.MockQuestionRepository)
	repo.On("Get", mock.Anything, int64(8)).Return(nil, nil)

	svc := services.NewQuestionService(repo)
	err := svc.UpdateQuestion(context.Background(), models.Question{ID: 8, Title: "edited"})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteQuestion_ChecksExistence(t *testing.T) {
	repo := new(mocks.MockQuestionRepository)
	repo.On("Get", mock.Anything, int64(9)).Return(nil, nil)

	svc := services.NewQuestionService(repo)
	err := svc.DeleteQuestion(context.Background(), 9)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListQuestions_PassesFilterThrough(t *testing.T) {
	filter := models.QuestionFilter{Category: "go", Limit: 10}
	repo := new(mocks.MockQuestionRepository)
	repo.On("List", mock.Anything, filter).Return([]models.Question{{ID: 1, Title: "q"}}, nil)
	repo.On("Count", mock.Anything, filter).Return(1, nil)

	svc := services.NewQuestionService(repo)
	questions, total, err := svc.ListQuestions(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, 1, total)
	repo.AssertExpectations(t)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/prepdeck/prepdeck/internal/models"
)

// MockChatClient is a mock implementation of services.ChatClient
type MockChatClient struct {
	mock.Mock
}

func (m *MockChatClient) Chat(ctx context.Context, messages []models.ChatMessage) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

func (m *MockChatClient) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockChatClient) Model() string {
	args := m.Called()
	return args.String(0)
}

package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/prepdeck/prepdeck/internal/errors"
	"github.com/prepdeck/prepdeck/internal/interview"
	"github.com/prepdeck/prepdeck/internal/logger"
	"github.com/prepdeck/prepdeck/internal/models"
	"github.com/prepdeck/prepdeck/internal/repository"
)

const interviewerPrompt = `You are a strict but fair technical interviewer.
Ask one question at a time, let the candidate answer, then give concise
feedback: what was right, what was missing, and one follow-up question.
Do not reveal full model answers unless the candidate gives up.`

// ChatClient is the chat-completion boundary the interview service talks to.
type ChatClient interface {
	Chat(ctx context.Context, messages []models.ChatMessage) (string, error)
	Configured() bool
	Model() string
}

// InterviewService handles AI mock-interview conversations
type InterviewService interface {
	Chat(ctx context.Context, req models.InterviewRequest) (*models.InterviewReply, error)
}

type interviewService struct {
	client       ChatClient
	questionRepo repository.QuestionRepository
}

// NewInterviewService creates a new InterviewService
func NewInterviewService(client ChatClient, questionRepo repository.QuestionRepository) InterviewService {
	return &interviewService{client: client, questionRepo: questionRepo}
}

func (s *interviewService) Chat(ctx context.Context, req models.InterviewRequest) (*models.InterviewReply, error) {
	log := logger.FromContext(ctx)

	if !s.client.Configured() {
		return nil, errors.NewUnavailableError("interview service", interview.ErrNotConfigured)
	}
	if len(req.Messages) == 0 {
		return nil, errors.NewValidationError("messages", "must not be empty")
	}

	messages := make([]models.ChatMessage, 0, len(req.Messages)+2)
	messages = append(messages, models.ChatMessage{Role: "system", Content: interviewerPrompt})

	// Seed the interviewer with a concrete question from the bank when the
	// caller names one, typically the scheduler's next due card.
	if req.QuestionID != 0 {
		q, err := s.questionRepo.Get(ctx, req.QuestionID)
		if err != nil {
			log.Error("failed to load interview question: %v", err)
			return nil, errors.NewInternalError(err)
		}
		if q == nil {
			return nil, errors.NewNotFoundError("question", req.QuestionID)
		}
		messages = append(messages, models.ChatMessage{
			Role:    "system",
			Content: fmt.Sprintf("Interview question to use:\n%s\n\n%s\n\nReference answer (for your eyes only):\n%s", q.Title, q.Body, q.Answer),
		})
	}

	messages = append(messages, req.Messages...)

	log.Debug("interview chat: %d messages, model=%s", len(messages), s.client.Model())
	reply, err := s.client.Chat(ctx, messages)
	if err != nil {
		if stderrors.Is(err, interview.ErrNotConfigured) {
			return nil, errors.NewUnavailableError("interview service", err)
		}
		log.Error("chat completion failed: %v", err)
		return nil, errors.NewUnavailableError("interview service", err)
	}

	return &models.InterviewReply{Reply: reply, Model: s.client.Model()}, nil
}

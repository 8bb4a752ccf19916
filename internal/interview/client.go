package interview

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/prepdeck/prepdeck/internal/logger"
	"github.com/prepdeck/prepdeck/internal/models"
)

// ErrNotConfigured is returned when no API key is set. The rest of the app
// keeps working without the interview feature.
var ErrNotConfigured = errors.New("interview: no API key configured")

// Config holds the chat-completion provider configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	MaxRetries int
	Timeout    time.Duration
}

// Client is a stateless chat-completion wrapper used for mock interviews.
// Conversation state lives with the caller; every call carries the full
// message history.
type Client struct {
	api   *openai.Client
	model string

	maxRetries int
	timeout    time.Duration
}

// NewClient creates an interview client. Returns a client in unconfigured
// state (all calls fail with ErrNotConfigured) when the API key is empty.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	c := &Client{
		model:      cfg.Model,
		maxRetries: cfg.MaxRetries,
		timeout:    cfg.Timeout,
	}
	if cfg.APIKey == "" {
		return c
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	c.api = openai.NewClientWithConfig(clientConfig)
	return c
}

// Configured reports whether an API key was provided.
func (c *Client) Configured() bool {
	return c.api != nil
}

// Model returns the chat model in use.
func (c *Client) Model() string {
	return c.model
}

// Chat performs one chat-completion round trip over the given messages.
func (c *Client) Chat(ctx context.Context, messages []models.ChatMessage) (string, error) {
	if c.api == nil {
		return "", ErrNotConfigured
	}

	llmMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		llmMessages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	var reply string
	err := c.doWithRetry(ctx, func(ctx context.Context) error {
		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    c.model,
			Messages: llmMessages,
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("empty completion response")
		}
		reply = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}
	return reply, nil
}

// doWithRetry runs fn with a per-attempt timeout and exponential backoff.
func (c *Client) doWithRetry(ctx context.Context, fn func(context.Context) error) error {
	log := logger.FromContext(ctx).WithPrefix("interview")

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			log.Debug("retrying after %s (attempt %d/%d): %v", backoff, attempt+1, c.maxRetries, lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := fn(attemptCtx)
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("after %d attempts: %w", c.maxRetries, lastErr)
}

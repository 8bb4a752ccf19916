package models

// ChatMessage is one turn of a mock-interview conversation.
// Role follows the chat-completion convention: system, user or assistant.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type InterviewRequest struct {
	Messages   []ChatMessage `json:"messages"`
	QuestionID int64         `json:"question_id,omitempty"`
}

type InterviewReply struct {
	Reply string `json:"reply"`
	Model string `json:"model"`
}

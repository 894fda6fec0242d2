package app

import (
	"context"
	"fmt"
	"strings"
)

// ChatService is the chat placeholder: it accepts a message and returns a
// canned assistant reply. Nothing is persisted.
type ChatService struct{}

// NewChatService creates a ChatService.
func NewChatService() *ChatService {
	return &ChatService{}
}

// ChatMessage is one message in the chat exchange.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply returns the placeholder assistant response for a user message.
func (s *ChatService) Reply(_ context.Context, message string) (ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return ChatMessage{}, fmt.Errorf("%w: message is required", ErrValidation)
	}
	return ChatMessage{
		Role:    "assistant",
		Content: "This is a placeholder response. In a real implementation, this would be the response from Claude AI.",
	}, nil
}

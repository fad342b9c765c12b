package services

import (
	"context"
	"fmt"

	"github.com/fintrack-labs/fintrack-go/client"
	"github.com/fintrack-labs/fintrack-go/models"
)

type ChatService struct {
	client *client.Client
}

func NewChatService(c *client.Client) *ChatService {
	return &ChatService{client: c}
}

// Start opens a new conversation with an initial message. model is optional;
// the backend falls back to its default.
func (s *ChatService) Start(ctx context.Context, content, model string) (*models.StartChatResponse, error) {
	if err := requireField("content", content); err != nil {
		return nil, err
	}

	var resp models.StartChatResponse
	if err := s.client.Post(ctx, "/ai/chat/start/", models.StartChatRequest{Content: content, Model: model}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ask sends a follow-up message to an existing conversation.
func (s *ChatService) Ask(ctx context.Context, conversationID int, content string) (*models.SendMessageResponse, error) {
	if err := requireField("content", content); err != nil {
		return nil, err
	}

	var resp models.SendMessageResponse
	if err := s.client.Post(ctx, fmt.Sprintf("/ai/chat/%d/ask", conversationID), models.SendMessageRequest{Content: content}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *ChatService) ListConversations(ctx context.Context) ([]models.ChatConversation, error) {
	var conversations []models.ChatConversation
	if err := s.client.Get(ctx, "/ai/chat/list/", &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

func (s *ChatService) Messages(ctx context.Context, conversationID int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := s.client.Get(ctx, fmt.Sprintf("/ai/chat/%d/messages", conversationID), &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

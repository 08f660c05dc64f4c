//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"

	"slingshot/domain"
	"slingshot/repositories"
)

type IChatService interface {
	PostMessage(ctx context.Context, content string, role domain.Role, userID string, projectID *int64) (domain.Message, error)
	ListMessages(ctx context.Context, userID string, projectID *int64) ([]domain.Message, error)
	DeleteMessage(ctx context.Context, id int64) error
}

// ChatService fronts the message store. It never touches the realtime
// channel: a durable write and a broadcast are two independent steps and the
// caller decides whether to do both.
type ChatService struct {
	messages repositories.IMessageRepository
}

func NewChatService(messages repositories.IMessageRepository) *ChatService {
	return &ChatService{messages: messages}
}

func (s *ChatService) PostMessage(ctx context.Context, content string, role domain.Role, userID string, projectID *int64) (domain.Message, error) {
	return s.messages.Append(ctx, content, role, userID, projectID)
}

func (s *ChatService) ListMessages(ctx context.Context, userID string, projectID *int64) ([]domain.Message, error) {
	return s.messages.List(ctx, userID, projectID)
}

func (s *ChatService) DeleteMessage(ctx context.Context, id int64) error {
	return s.messages.Remove(ctx, id)
}

package impl

import (
	"context"
	"fmt"
	"time"

	"finboard/config"
	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
	"finboard/internal/domain/service"
	"finboard/internal/usecase"
)

type chatService struct {
	chatRepo repository.ChatRepository
	advisor  service.Advisor
	cfg      *config.Config
	now      func() time.Time
}

// NewChatService creates a new chat service instance
func NewChatService(chatRepo repository.ChatRepository, advisor service.Advisor, cfg *config.Config) usecase.ChatUsecase {
	return &chatService{
		chatRepo: chatRepo,
		advisor:  advisor,
		cfg:      cfg,
		now:      time.Now,
	}
}

// SendMessage persists the user's message, asks the advisor for a reply,
// persists the reply, and returns it. Every user message is followed by
// exactly one advisor reply.
func (s *chatService) SendMessage(ctx context.Context, input *usecase.SendMessageInput) (*entity.ChatMessage, error) {
	userMessage := &entity.ChatMessage{
		UserID:    input.UserID,
		Message:   input.Message,
		IsUser:    true,
		Timestamp: s.now(),
		RelatedTo: input.RelatedTo,
	}

	if _, err := s.chatRepo.CreateChatMessage(ctx, userMessage); err != nil {
		return nil, fmt.Errorf("failed to create chat message: %w", err)
	}

	replyText, err := s.advisor.Reply(ctx, input.Message, input.RelatedTo)
	if err != nil {
		return nil, fmt.Errorf("failed to generate advisor reply: %w", err)
	}

	reply := &entity.ChatMessage{
		UserID:    input.UserID,
		Message:   replyText,
		IsUser:    false,
		Timestamp: s.now(),
		RelatedTo: input.RelatedTo,
	}

	created, err := s.chatRepo.CreateChatMessage(ctx, reply)
	if err != nil {
		return nil, fmt.Errorf("failed to create advisor reply: %w", err)
	}

	return created, nil
}

// GetHistory retrieves a user's conversation ascending by timestamp. When
// the caller sends no limit, the configured default applies (zero keeps
// the full history).
func (s *chatService) GetHistory(ctx context.Context, userID int64, limit int) ([]*entity.ChatMessage, error) {
	if limit <= 0 && s.cfg.Chat != nil {
		limit = s.cfg.Chat.DefaultHistoryLimit
	}

	messages, err := s.chatRepo.FindChatMessagesByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find chat messages by user: %w", err)
	}

	return messages, nil
}

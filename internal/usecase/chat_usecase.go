package usecase

import (
	"context"

	"finboard/internal/domain/entity"
)

// SendMessageInput represents a user chat message sent to the advisor.
type SendMessageInput struct {
	UserID    int64  `json:"userId" validate:"required"`
	Message   string `json:"message" validate:"required"`
	RelatedTo string `json:"relatedTo"`
}

// ChatUsecase defines the advisor conversation use cases.
type ChatUsecase interface {
	// SendMessage persists the user's message, generates and persists the
	// advisor reply, and returns the reply. The user message itself is a
	// side effect, not part of the response.
	SendMessage(ctx context.Context, input *SendMessageInput) (*entity.ChatMessage, error)

	// GetHistory retrieves a user's conversation ascending by timestamp.
	// A limit greater than zero keeps only the last limit messages.
	GetHistory(ctx context.Context, userID int64, limit int) ([]*entity.ChatMessage, error)
}

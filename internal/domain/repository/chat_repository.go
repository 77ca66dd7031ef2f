package repository

import (
	"context"

	"finboard/internal/domain/entity"
)

// ChatRepository defines the interface for chat message store operations.
type ChatRepository interface {
	// CreateChatMessage assigns the next sequential ID, inserts the
	// message, and returns the stored value.
	CreateChatMessage(ctx context.Context, msg *entity.ChatMessage) (*entity.ChatMessage, error)

	// FindChatMessagesByUser retrieves the user's messages sorted ascending
	// by timestamp. A limit greater than zero keeps only the last limit
	// messages, still in ascending order.
	FindChatMessagesByUser(ctx context.Context, userID int64, limit int) ([]*entity.ChatMessage, error)
}

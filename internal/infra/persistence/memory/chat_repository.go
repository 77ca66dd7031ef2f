package memory

import (
	"context"
	"sort"
	"sync"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
)

// ChatRepository is the in-memory chat message collection.
type ChatRepository struct {
	mu       sync.RWMutex
	messages map[int64]*entity.ChatMessage
	nextID   int64
}

// NewChatRepository creates an empty chat message collection.
func NewChatRepository() repository.ChatRepository {
	return &ChatRepository{
		messages: make(map[int64]*entity.ChatMessage),
		nextID:   1,
	}
}

// CreateChatMessage assigns the next sequential ID and inserts the message.
func (r *ChatRepository) CreateChatMessage(_ context.Context, msg *entity.ChatMessage) (*entity.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneChatMessage(msg)
	stored.ID = r.nextID
	r.nextID++
	r.messages[stored.ID] = stored

	return cloneChatMessage(stored), nil
}

// FindChatMessagesByUser retrieves the user's history ascending by
// timestamp. A limit greater than zero keeps only the tail of the history,
// preserving ascending order.
func (r *ChatRepository) FindChatMessagesByUser(_ context.Context, userID int64, limit int) ([]*entity.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.ChatMessage, 0)
	for _, msg := range r.messages {
		if msg.UserID == userID {
			result = append(result, cloneChatMessage(msg))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].ID < result[j].ID
		}

		return result[i].Timestamp.Before(result[j].Timestamp)
	})

	if limit > 0 && len(result) > limit {
		result = result[len(result)-limit:]
	}

	return result, nil
}

func cloneChatMessage(msg *entity.ChatMessage) *entity.ChatMessage {
	clone := *msg

	return &clone
}

package entity

import "time"

// ChatMessage represents a single message in a user's advisor conversation.
// User-authored messages are immediately followed by exactly one
// advisor-authored reply.
type ChatMessage struct {
	ID        int64     `json:"id"`                  // Sequential identifier assigned by the store.
	UserID    int64     `json:"userId"`              // The user whose conversation this message belongs to.
	Message   string    `json:"message"`             // Message text.
	IsUser    bool      `json:"isUser"`              // True for human messages, false for advisor replies.
	Timestamp time.Time `json:"timestamp"`           // Server-assigned creation time; history is read ascending.
	RelatedTo string    `json:"relatedTo,omitempty"` // Optional topic link, e.g. a dashboard section.
}

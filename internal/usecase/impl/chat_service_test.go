package impl

import (
	"context"
	"log/slog"
	"testing"

	"finboard/config"
	"finboard/internal/infra/advisor"
	"finboard/internal/infra/persistence/memory"
	"finboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServiceForTest(cfg *config.Config) usecase.ChatUsecase {
	logger := slog.Default()

	return NewChatService(memory.NewChatRepository(), advisor.NewService(logger), cfg)
}

func TestChatService_SendMessage_ReturnsAdvisorReply(t *testing.T) {
	service := newChatServiceForTest(&config.Config{})
	ctx := context.Background()

	reply, err := service.SendMessage(ctx, &usecase.SendMessageInput{
		UserID:    1,
		Message:   "Should I rebalance?",
		RelatedTo: "portfolio",
	})
	require.NoError(t, err)

	assert.Equal(t, "AI response to: Should I rebalance?", reply.Message)
	assert.False(t, reply.IsUser)
	assert.Equal(t, "portfolio", reply.RelatedTo)
	assert.Equal(t, int64(1), reply.UserID)
}

func TestChatService_SendMessage_PersistsBothSides(t *testing.T) {
	service := newChatServiceForTest(&config.Config{})
	ctx := context.Background()

	_, err := service.SendMessage(ctx, &usecase.SendMessageInput{UserID: 1, Message: "hello"})
	require.NoError(t, err)

	history, err := service.GetHistory(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].IsUser)
	assert.Equal(t, "hello", history[0].Message)
	assert.False(t, history[1].IsUser)
	assert.Equal(t, "AI response to: hello", history[1].Message)
}

func TestChatService_GetHistory_LimitKeepsMostRecent(t *testing.T) {
	service := newChatServiceForTest(&config.Config{})
	ctx := context.Background()

	for _, text := range []string{"one", "two", "three"} {
		_, err := service.SendMessage(ctx, &usecase.SendMessageInput{UserID: 1, Message: text})
		require.NoError(t, err)
	}

	history, err := service.GetHistory(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "three", history[0].Message)
	assert.Equal(t, "AI response to: three", history[1].Message)
}

func TestChatService_GetHistory_DefaultLimitFromConfig(t *testing.T) {
	cfg := &config.Config{Chat: &config.ChatConfig{DefaultHistoryLimit: 2}}
	service := newChatServiceForTest(cfg)
	ctx := context.Background()

	for _, text := range []string{"one", "two"} {
		_, err := service.SendMessage(ctx, &usecase.SendMessageInput{UserID: 1, Message: text})
		require.NoError(t, err)
	}

	history, err := service.GetHistory(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestChatService_GetHistory_IsolatedPerUser(t *testing.T) {
	service := newChatServiceForTest(&config.Config{})
	ctx := context.Background()

	_, err := service.SendMessage(ctx, &usecase.SendMessageInput{UserID: 1, Message: "mine"})
	require.NoError(t, err)

	history, err := service.GetHistory(ctx, 2, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/infra/newswire"
	"finboard/internal/infra/persistence/memory"
	"finboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNewsServiceForTest() (usecase.NewsUsecase, repository.NewsRepository) {
	repo := memory.NewNewsRepository()

	return NewNewsService(repo, newswire.NewSearcher(slog.Default())), repo
}

func TestNewsService_SearchNews_PersistsResults(t *testing.T) {
	service, repo := newNewsServiceForTest()
	ctx := context.Background()

	results, err := service.SearchNews(ctx, "interest rates")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Latest financial news related to: interest rates", results[0].Title)
	assert.Equal(t, "Financial Times", results[0].Source)
	assert.Equal(t, 95, results[0].RelevanceScore)
	assert.Equal(t, "Market update on: interest rates", results[1].Title)
	assert.Equal(t, "Wall Street Journal", results[1].Source)
	assert.Equal(t, 88, results[1].RelevanceScore)

	// Returned items carry store-assigned IDs.
	assert.Equal(t, int64(1), results[0].ID)
	assert.Equal(t, int64(2), results[1].ID)

	stored, err := repo.FindNewsItems(ctx, 0, "")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestNewsService_ListNews_AfterSearchIsDescending(t *testing.T) {
	service, _ := newNewsServiceForTest()
	ctx := context.Background()

	_, err := service.SearchNews(ctx, "inflation")
	require.NoError(t, err)

	items, err := service.ListNews(ctx, 0, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	// The FT article is two hours old, the WSJ one seven.
	assert.Equal(t, "Financial Times", items[0].Source)
	assert.Equal(t, "Wall Street Journal", items[1].Source)
}

func TestNewsService_ListNews_CategoryFilter(t *testing.T) {
	service, _ := newNewsServiceForTest()
	ctx := context.Background()

	_, err := service.SearchNews(ctx, "earnings")
	require.NoError(t, err)

	items, err := service.ListNews(ctx, 0, "Markets")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Wall Street Journal", items[0].Source)
}

func TestNewsService_CreateNewsItem(t *testing.T) {
	service, _ := newNewsServiceForTest()
	ctx := context.Background()

	item, err := service.CreateNewsItem(ctx, &usecase.CreateNewsItemInput{
		Title:          "Fed holds rates",
		Content:        "The Federal Reserve held rates steady.",
		Source:         "Reuters",
		URL:            "https://reuters.com/fed",
		PublishDate:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		Category:       "Finance",
		RelevanceScore: 70,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)

	found, err := service.GetNewsItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fed holds rates", found.Title)
}

func TestNewsService_GetNewsItem_NotFound(t *testing.T) {
	service, _ := newNewsServiceForTest()

	_, err := service.GetNewsItem(context.Background(), 42)
	assert.ErrorIs(t, err, domainerrors.ErrNewsItemNotFound)
}

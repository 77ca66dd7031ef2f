package memory

import (
	"context"
	"testing"
	"time"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNews(t *testing.T, repo repository.NewsRepository) {
	t.Helper()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	items := []*entity.NewsItem{
		{Title: "oldest", Category: "Finance", PublishDate: base.Add(-3 * time.Hour)},
		{Title: "newest", Category: "Markets", PublishDate: base},
		{Title: "middle", Category: "Finance", PublishDate: base.Add(-1 * time.Hour)},
	}
	for _, item := range items {
		_, err := repo.CreateNewsItem(context.Background(), item)
		require.NoError(t, err)
	}
}

func TestNewsRepository_FindNewsItems_DescendingByPublishDate(t *testing.T) {
	repo := NewNewsRepository()
	seedNews(t, repo)

	items, err := repo.FindNewsItems(context.Background(), 0, "")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "newest", items[0].Title)
	assert.Equal(t, "middle", items[1].Title)
	assert.Equal(t, "oldest", items[2].Title)
}

func TestNewsRepository_FindNewsItems_LimitKeepsHead(t *testing.T) {
	repo := NewNewsRepository()
	seedNews(t, repo)

	items, err := repo.FindNewsItems(context.Background(), 2, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "newest", items[0].Title)
	assert.Equal(t, "middle", items[1].Title)
}

func TestNewsRepository_FindNewsItems_CategoryFilter(t *testing.T) {
	repo := NewNewsRepository()
	seedNews(t, repo)

	items, err := repo.FindNewsItems(context.Background(), 0, "Finance")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "middle", items[0].Title)
	assert.Equal(t, "oldest", items[1].Title)
}

func TestNewsRepository_FindNewsItemByID_NotFound(t *testing.T) {
	repo := NewNewsRepository()

	_, err := repo.FindNewsItemByID(context.Background(), 7)
	assert.ErrorIs(t, err, repository.ErrNewsItemNotFound)
}

func TestNewsRepository_CreateNewsItem_AssignsSequentialIDs(t *testing.T) {
	repo := NewNewsRepository()
	ctx := context.Background()

	first, err := repo.CreateNewsItem(ctx, &entity.NewsItem{Title: "a"})
	require.NoError(t, err)
	second, err := repo.CreateNewsItem(ctx, &entity.NewsItem{Title: "b"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

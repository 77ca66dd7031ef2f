package memory

import (
	"context"
	"sort"
	"sync"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
)

// NewsRepository is the in-memory global news feed.
type NewsRepository struct {
	mu     sync.RWMutex
	items  map[int64]*entity.NewsItem
	nextID int64
}

// NewNewsRepository creates an empty news feed.
func NewNewsRepository() repository.NewsRepository {
	return &NewsRepository{
		items:  make(map[int64]*entity.NewsItem),
		nextID: 1,
	}
}

// CreateNewsItem assigns the next sequential ID and inserts the item.
func (r *NewsRepository) CreateNewsItem(_ context.Context, item *entity.NewsItem) (*entity.NewsItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneNewsItem(item)
	stored.ID = r.nextID
	r.nextID++
	r.items[stored.ID] = stored

	return cloneNewsItem(stored), nil
}

// FindNewsItemByID retrieves an item by ID.
func (r *NewsRepository) FindNewsItemByID(_ context.Context, id int64) (*entity.NewsItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNewsItemNotFound
	}

	return cloneNewsItem(item), nil
}

// FindNewsItems retrieves the feed descending by publish date, optionally
// filtered by category. A limit greater than zero keeps only the head.
func (r *NewsRepository) FindNewsItems(_ context.Context, limit int, category string) ([]*entity.NewsItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.NewsItem, 0)
	for _, item := range r.items {
		if category != "" && item.Category != category {
			continue
		}
		result = append(result, cloneNewsItem(item))
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].PublishDate.Equal(result[j].PublishDate) {
			return result[i].ID < result[j].ID
		}

		return result[i].PublishDate.After(result[j].PublishDate)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

func cloneNewsItem(item *entity.NewsItem) *entity.NewsItem {
	clone := *item

	return &clone
}

package repository

import (
	"context"

	"finboard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNewsItemNotFound is returned when a news item is not found.
var ErrNewsItemNotFound = errors.New("news item not found")

// NewsRepository defines the interface for the global news feed store.
type NewsRepository interface {
	// CreateNewsItem assigns the next sequential ID, inserts the item, and
	// returns the stored value.
	CreateNewsItem(ctx context.Context, item *entity.NewsItem) (*entity.NewsItem, error)

	// FindNewsItemByID retrieves an item by ID, or ErrNewsItemNotFound.
	FindNewsItemByID(ctx context.Context, id int64) (*entity.NewsItem, error)

	// FindNewsItems retrieves the feed sorted descending by publish date,
	// filtered by category when category is non-empty. A limit greater than
	// zero keeps only the first limit items.
	FindNewsItems(ctx context.Context, limit int, category string) ([]*entity.NewsItem, error)
}

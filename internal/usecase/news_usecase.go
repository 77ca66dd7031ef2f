package usecase

import (
	"context"
	"time"

	"finboard/internal/domain/entity"
)

// CreateNewsItemInput represents the payload for adding a feed article.
type CreateNewsItemInput struct {
	Title          string    `json:"title" validate:"required"`
	Content        string    `json:"content" validate:"required"`
	Source         string    `json:"source" validate:"required"`
	URL            string    `json:"url" validate:"required,url"`
	PublishDate    time.Time `json:"publishDate" validate:"required"`
	Category       string    `json:"category"`
	RelevanceScore int       `json:"relevanceScore" validate:"omitempty,min=0,max=100"`
}

// NewsUsecase defines the news feed use cases.
type NewsUsecase interface {
	// ListNews retrieves the feed descending by publish date, optionally
	// filtered by category. A limit greater than zero keeps the head.
	ListNews(ctx context.Context, limit int, category string) ([]*entity.NewsItem, error)

	// GetNewsItem retrieves a single article by ID.
	GetNewsItem(ctx context.Context, id int64) (*entity.NewsItem, error)

	// CreateNewsItem adds an article to the feed.
	CreateNewsItem(ctx context.Context, input *CreateNewsItemInput) (*entity.NewsItem, error)

	// SearchNews fetches articles for a query through the news searcher
	// and persists them into the feed as a side effect.
	SearchNews(ctx context.Context, query string) ([]*entity.NewsItem, error)
}

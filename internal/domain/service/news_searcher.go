package service

import (
	"context"

	"finboard/internal/domain/entity"
)

// NewsSearcher fetches news articles for a free-text query. Returned items
// carry no IDs; the caller persists them into the news feed. The shipped
// implementation generates templated articles.
type NewsSearcher interface {
	Search(ctx context.Context, query string) ([]*entity.NewsItem, error)
}

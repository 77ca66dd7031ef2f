// Package newswire implements the service.NewsSearcher collaborator with
// templated articles. No external news API is called; each search yields a
// fixed pair of articles derived from the query.
package newswire

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/service"
)

// Searcher is the templated news search implementation.
type Searcher struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewSearcher creates the templated news searcher.
func NewSearcher(logger *slog.Logger) service.NewsSearcher {
	return &Searcher{
		logger: logger,
		now:    time.Now,
	}
}

// Search generates two templated articles for the query. Publish dates sit
// two and seven hours in the past so the feed's descending order is stable
// against freshly created items.
func (s *Searcher) Search(_ context.Context, query string) ([]*entity.NewsItem, error) {
	s.logger.Debug("generating search results", slog.String("query", query))

	now := s.now()

	return []*entity.NewsItem{
		{
			Title:          fmt.Sprintf("Latest financial news related to: %s", query),
			Content:        "This is the content of the first news article...",
			Source:         "Financial Times",
			URL:            "https://ft.com/article1",
			PublishDate:    now.Add(-2 * time.Hour),
			Category:       "Finance",
			RelevanceScore: 95,
		},
		{
			Title:          fmt.Sprintf("Market update on: %s", query),
			Content:        "This is the content of the second news article...",
			Source:         "Wall Street Journal",
			URL:            "https://wsj.com/article2",
			PublishDate:    now.Add(-7 * time.Hour),
			Category:       "Markets",
			RelevanceScore: 88,
		},
	}, nil
}

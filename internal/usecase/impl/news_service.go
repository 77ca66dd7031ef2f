package impl

import (
	"context"
	"fmt"

	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/domain/service"
	"finboard/internal/usecase"

	"github.com/pkg/errors"
)

type newsService struct {
	newsRepo repository.NewsRepository
	searcher service.NewsSearcher
}

// NewNewsService creates a new news feed service instance
func NewNewsService(newsRepo repository.NewsRepository, searcher service.NewsSearcher) usecase.NewsUsecase {
	return &newsService{
		newsRepo: newsRepo,
		searcher: searcher,
	}
}

// ListNews retrieves the feed descending by publish date.
func (s *newsService) ListNews(ctx context.Context, limit int, category string) ([]*entity.NewsItem, error) {
	items, err := s.newsRepo.FindNewsItems(ctx, limit, category)
	if err != nil {
		return nil, fmt.Errorf("failed to find news items: %w", err)
	}

	return items, nil
}

// GetNewsItem retrieves a single article by ID.
func (s *newsService) GetNewsItem(ctx context.Context, id int64) (*entity.NewsItem, error) {
	item, err := s.newsRepo.FindNewsItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNewsItemNotFound) {
			return nil, domainerrors.ErrNewsItemNotFound
		}

		return nil, fmt.Errorf("failed to find news item by ID: %w", err)
	}

	return item, nil
}

// CreateNewsItem adds an article to the feed.
func (s *newsService) CreateNewsItem(ctx context.Context, input *usecase.CreateNewsItemInput) (*entity.NewsItem, error) {
	item := &entity.NewsItem{
		Title:          input.Title,
		Content:        input.Content,
		Source:         input.Source,
		URL:            input.URL,
		PublishDate:    input.PublishDate,
		Category:       input.Category,
		RelevanceScore: input.RelevanceScore,
	}

	created, err := s.newsRepo.CreateNewsItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create news item: %w", err)
	}

	return created, nil
}

// SearchNews fetches articles for the query and persists them into the
// feed, returning the stored items.
func (s *newsService) SearchNews(ctx context.Context, query string) ([]*entity.NewsItem, error) {
	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search news: %w", err)
	}

	stored := make([]*entity.NewsItem, 0, len(results))
	for _, item := range results {
		created, err := s.newsRepo.CreateNewsItem(ctx, item)
		if err != nil {
			return nil, fmt.Errorf("failed to store search result: %w", err)
		}
		stored = append(stored, created)
	}

	return stored, nil
}

package entity

import "time"

// NewsItem represents one article in the global news feed. The feed is not
// user-scoped and is read descending by publish date.
type NewsItem struct {
	ID             int64     `json:"id"`                       // Sequential identifier assigned by the store.
	Title          string    `json:"title"`                    // Headline.
	Content        string    `json:"content"`                  // Article body or excerpt.
	Source         string    `json:"source"`                   // Publisher name.
	URL            string    `json:"url"`                      // Link to the original article.
	PublishDate    time.Time `json:"publishDate"`              // Publication time used for ordering.
	Category       string    `json:"category,omitempty"`       // Optional topic category.
	RelevanceScore int       `json:"relevanceScore,omitempty"` // Optional 0-100 relevance to the user's query.
}

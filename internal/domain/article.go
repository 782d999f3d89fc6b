package domain

import "time"

// Article is the selection output handed to content generation. Not persisted.
type Article struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Source          string           `json:"source"`
	URL             string           `json:"url"`
	PublishedAt     *time.Time       `json:"publishedAt,omitempty"`
	Sentiment       *string          `json:"sentiment,omitempty"`
	ImpactScope     string           `json:"impact_scope,omitempty"`
	Category        string           `json:"category"`
	Keywords        []string         `json:"keywords"`
	RelatedArticles []RelatedArticle `json:"related_articles,omitempty"`
}

type RelatedArticle struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

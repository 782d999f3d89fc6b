package domain

import "time"

type SourceKind string

const (
	SourceKindFeed SourceKind = "feed"
	SourceKindAPI  SourceKind = "api"
)

// RawNewsItem is a fetched item before classification.
type RawNewsItem struct {
	ID          string     `db:"id" json:"id"`
	SourceID    string     `db:"source_id" json:"source_id"`
	SourceName  string     `db:"source_name" json:"source_name"`
	SourceType  SourceKind `db:"source_type" json:"source_type"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description,omitempty"`
	Content     *string    `db:"content" json:"content,omitempty"`
	URL         string     `db:"url" json:"url"`
	ImageURL    *string    `db:"image_url" json:"image_url,omitempty"`
	Author      *string    `db:"author" json:"author,omitempty"`
	Language    string     `db:"language" json:"language"`
	Category    string     `db:"category" json:"category"`
	PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`
	FetchedAt   time.Time  `db:"fetched_at" json:"fetched_at"`
	Processed   bool       `db:"processed" json:"processed"`
}

// ProcessedNewsItem is the classification result for one RawNewsItem.
// It is never modified after creation.
type ProcessedNewsItem struct {
	ID             int64      `json:"id"`
	RawItemID      string     `json:"raw_item_id"`
	Title          string     `json:"title"`
	Summary        string     `json:"summary"`
	Category       string     `json:"category"`
	RelevanceScore int        `json:"relevance_score"`
	Language       string     `json:"language"`
	Keywords       []string   `json:"keywords"`
	URL            string     `json:"url"`
	SourceName     string     `json:"source_name"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	ProcessedAt    time.Time  `json:"processed_at"`
	Sentiment      *string    `json:"sentiment,omitempty"`
	ImpactScope    string     `json:"impact_scope,omitempty"`
	StoryID        *string    `json:"story_id,omitempty"`
}

// UngroupedStory marks an item that must not be grouped with others.
const UngroupedStory = "uncategorized"

// StoryKey returns the story grouping key, or "" for standalone items.
func (p ProcessedNewsItem) StoryKey() string {
	if p.StoryID == nil || *p.StoryID == "" || *p.StoryID == UngroupedStory {
		return ""
	}
	return *p.StoryID
}

const (
	MinRelevance = 1
	MaxRelevance = 10
)

// ClampRelevance forces a score into [MinRelevance, MaxRelevance].
func ClampRelevance(score int) int {
	if score < MinRelevance {
		return MinRelevance
	}
	if score > MaxRelevance {
		return MaxRelevance
	}
	return score
}

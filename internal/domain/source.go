package domain

import "time"

// FetchResult is what a source adapter returns for one fetch attempt.
// Failures are reported through Success and Error, never as a Go error.
type FetchResult struct {
	SourceID   string        `json:"source_id"`
	SourceName string        `json:"source_name"`
	Kind       SourceKind    `json:"kind"`
	Items      []RawNewsItem `json:"-"`
	Success    bool          `json:"success"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"-"`
}

type SourceHealth struct {
	SourceID      string     `db:"source_id" json:"source_id"`
	SourceName    string     `db:"source_name" json:"source_name"`
	SourceKind    SourceKind `db:"source_kind" json:"source_kind"`
	LastSuccess   bool       `db:"last_success" json:"last_success"`
	LastItemCount int        `db:"last_item_count" json:"last_item_count"`
	LastError     *string    `db:"last_error" json:"last_error,omitempty"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

type TrendingTopic struct {
	Topic        string    `db:"topic" json:"topic"`
	Score        float64   `db:"score" json:"score"`
	ArticleCount int       `db:"article_count" json:"article_count"`
	Category     string    `db:"category" json:"category"`
	Date         time.Time `db:"date" json:"date"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

package domain

import "time"

// SourceReport is the per-source line of a FetchSummary.
type SourceReport struct {
	SourceID   string `json:"source_id"`
	SourceName string `json:"source_name"`
	Success    bool   `json:"success"`
	Items      int    `json:"items"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// FetchSummary holds statistics about a fetchAll run.
type FetchSummary struct {
	Success       bool           `json:"success"`
	ArticlesFound int            `json:"articlesFound"`
	Stored        int            `json:"stored"`
	SourcesOK     int            `json:"sourcesOk"`
	SourcesTotal  int            `json:"sourcesTotal"`
	Sources       []SourceReport `json:"perSourceDetail"`
	Duration      time.Duration  `json:"-"`
}

// ProcessSummary holds statistics about a processAll run.
// Duplicates counts items removed by the deduplicator; Dropped counts items
// lost to classification batches that failed twice.
type ProcessSummary struct {
	Success    bool          `json:"success"`
	Processed  int           `json:"processed"`
	Duplicates int           `json:"duplicates"`
	Dropped    int           `json:"dropped"`
	Published  int           `json:"published"`
	Trending   int           `json:"trending"`
	Duration   time.Duration `json:"-"`
}

type CleanupSummary struct {
	ProcessedDeleted    int64 `json:"processed_deleted"`
	RawProcessedDeleted int64 `json:"raw_processed_deleted"`
	RawStaleDeleted     int64 `json:"raw_stale_deleted"`
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news_curator/internal/config"
	"news_curator/internal/domain"
)

// NewsService serves read queries over processed items and applies retention.
type NewsService struct {
	raw       RawItemStore
	processed ProcessedItemStore
	logger    *slog.Logger
	config    config.RetentionConfig
	now       func() time.Time
}

func NewNewsService(
	raw RawItemStore,
	processed ProcessedItemStore,
	logger *slog.Logger,
	cfg config.RetentionConfig,
) *NewsService {
	return &NewsService{
		raw:       raw,
		processed: processed,
		logger:    logger.With("component", "news"),
		config:    cfg,
		now:       time.Now,
	}
}

// GetTopNews returns the most relevant items processed on date, or today when
// date is nil.
func (n *NewsService) GetTopNews(ctx context.Context, limit int, date *time.Time) ([]domain.ProcessedNewsItem, error) {
	if limit <= 0 {
		limit = 10
	}

	day := n.now().UTC()
	if date != nil {
		day = date.UTC()
	}

	items, err := n.processed.TopByDay(ctx, truncateDay(day), limit)
	if err != nil {
		return nil, fmt.Errorf("top processed items: %w", err)
	}
	return items, nil
}

// Cleanup deletes processed items and consumed raw items past retention, and
// raw items that were never processed past the longer stale window.
func (n *NewsService) Cleanup(ctx context.Context) (*domain.CleanupSummary, error) {
	now := n.now().UTC()
	summary := &domain.CleanupSummary{}

	var err error
	summary.ProcessedDeleted, err = n.processed.DeleteBefore(ctx, now.AddDate(0, 0, -n.config.ProcessedDays))
	if err != nil {
		return summary, fmt.Errorf("delete processed items: %w", err)
	}

	summary.RawProcessedDeleted, err = n.raw.DeleteProcessedBefore(ctx, now.AddDate(0, 0, -n.config.RawProcessedDays))
	if err != nil {
		return summary, fmt.Errorf("delete processed raw items: %w", err)
	}

	summary.RawStaleDeleted, err = n.raw.DeleteUnprocessedBefore(ctx, now.AddDate(0, 0, -n.config.RawUnprocessedDays))
	if err != nil {
		return summary, fmt.Errorf("delete stale raw items: %w", err)
	}

	n.logger.Info("cleanup completed",
		"processed_deleted", summary.ProcessedDeleted,
		"raw_processed_deleted", summary.RawProcessedDeleted,
		"raw_stale_deleted", summary.RawStaleDeleted,
	)

	return summary, nil
}

package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"news_curator/internal/domain"
)

// Source fetches raw items from one upstream. Fetch never returns an error;
// failures are reported through FetchResult.
type Source interface {
	ID() string
	Name() string
	Kind() domain.SourceKind
	Fetch(ctx context.Context) domain.FetchResult
}

type RawItemStore interface {
	InsertBatch(ctx context.Context, items []domain.RawNewsItem) (int, error)
	ListUnprocessed(ctx context.Context, limit int) ([]domain.RawNewsItem, error)
	MarkProcessed(ctx context.Context, ids []string) error
	DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteUnprocessedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type ProcessedItemStore interface {
	InsertBatch(ctx context.Context, items []domain.ProcessedNewsItem) error
	ListPublishedSince(ctx context.Context, since time.Time) ([]domain.ProcessedNewsItem, error)
	TopByDay(ctx context.Context, day time.Time, limit int) ([]domain.ProcessedNewsItem, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type SourceHealthStore interface {
	Upsert(ctx context.Context, health domain.SourceHealth) error
	List(ctx context.Context) ([]domain.SourceHealth, error)
}

type TrendingStore interface {
	UpsertBatch(ctx context.Context, topics []domain.TrendingTopic) error
	DeleteBefore(ctx context.Context, day time.Time) (int64, error)
	ListByDate(ctx context.Context, day time.Time, limit int) ([]domain.TrendingTopic, error)
}

type TrendingUpdater interface {
	UpdateTrendingTopics(ctx context.Context) (int, error)
}

type Classifier interface {
	Classify(ctx context.Context, items []domain.RawNewsItem) []domain.ProcessedNewsItem
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, item *domain.ProcessedNewsItem) error
	Close() error
}

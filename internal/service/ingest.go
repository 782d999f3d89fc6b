package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"news_curator/internal/config"
	"news_curator/internal/dedup"
	"news_curator/internal/domain"
)

var ErrClassifierUnavailable = errors.New("classifier unavailable")

type IngestService struct {
	sources    []Source
	raw        RawItemStore
	processed  ProcessedItemStore
	health     *HealthTracker
	classifier Classifier
	trending   TrendingUpdater
	txManager  TransactionManager
	publisher  Publisher
	logger     *slog.Logger
	config     config.IngestionConfig
}

// NewIngestService wires the pipeline. classifier, trending and publisher may
// be nil; processing then reports unavailability, skips aggregation or skips
// publishing respectively.
func NewIngestService(
	sources []Source,
	raw RawItemStore,
	processed ProcessedItemStore,
	health *HealthTracker,
	classifier Classifier,
	trending TrendingUpdater,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.IngestionConfig,
) *IngestService {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	return &IngestService{
		sources:    sources,
		raw:        raw,
		processed:  processed,
		health:     health,
		classifier: classifier,
		trending:   trending,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger.With("component", "ingest"),
		config:     cfg,
	}
}

// FetchAll runs every source, stores what they returned and records health for
// each one. Feed sources run concurrently; api sources run one after another
// alongside them.
func (s *IngestService) FetchAll(ctx context.Context) (*domain.FetchSummary, error) {
	startTime := time.Now()
	s.logger.Info("starting fetch", "sources", len(s.sources))

	results := s.runSources(ctx)

	summary := &domain.FetchSummary{
		SourcesTotal: len(results),
		Sources:      make([]domain.SourceReport, 0, len(results)),
	}

	for i := range results {
		r := &results[i]

		if len(r.Items) > 0 {
			stored, err := s.raw.InsertBatch(ctx, r.Items)
			if err != nil {
				s.logger.Error("failed to store raw items", "source", r.SourceID, "error", err)
				r.Success = false
				r.Error = fmt.Sprintf("store items: %v", err)
			} else {
				summary.Stored += stored
			}
		}

		if err := s.health.Update(ctx, r.SourceID, r.SourceName, r.Kind, r.Success, len(r.Items), r.Error); err != nil {
			s.logger.Error("failed to update source health", "source", r.SourceID, "error", err)
		}

		if r.Success {
			summary.SourcesOK++
		}
		summary.ArticlesFound += len(r.Items)
		summary.Sources = append(summary.Sources, domain.SourceReport{
			SourceID:   r.SourceID,
			SourceName: r.SourceName,
			Success:    r.Success,
			Items:      len(r.Items),
			Error:      r.Error,
			DurationMS: r.Duration.Milliseconds(),
		})
	}

	summary.Success = summary.SourcesTotal == 0 || summary.SourcesOK > 0
	summary.Duration = time.Since(startTime)

	s.logger.Info("fetch completed",
		"articles_found", summary.ArticlesFound,
		"stored", summary.Stored,
		"sources_ok", summary.SourcesOK,
		"sources_total", summary.SourcesTotal,
		"duration", summary.Duration,
	)

	return summary, nil
}

// runSources returns one result per source in configuration order.
func (s *IngestService) runSources(ctx context.Context) []domain.FetchResult {
	results := make([]domain.FetchResult, len(s.sources))

	var apiIdx []int
	var wg sync.WaitGroup

	for i, src := range s.sources {
		if src.Kind() == domain.SourceKindAPI {
			apiIdx = append(apiIdx, i)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.fetchSource(ctx, src)
		}()
	}

	if len(apiIdx) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, i := range apiIdx {
				results[i] = s.fetchSource(ctx, s.sources[i])
			}
		}()
	}

	wg.Wait()
	return results
}

func (s *IngestService) fetchSource(ctx context.Context, src Source) (result domain.FetchResult) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("source panicked", "source", src.ID(), "panic", rec)
			result = domain.FetchResult{
				SourceID:   src.ID(),
				SourceName: src.Name(),
				Kind:       src.Kind(),
				Error:      fmt.Sprintf("panic: %v", rec),
				Duration:   time.Since(start),
			}
		}
	}()

	result = src.Fetch(ctx)
	if result.SourceID == "" {
		result.SourceID = src.ID()
	}
	if result.SourceName == "" {
		result.SourceName = src.Name()
	}
	if result.Kind == "" {
		result.Kind = src.Kind()
	}
	return result
}

// ProcessAll classifies the next batch of unprocessed raw items. Every item
// read is marked processed, including duplicates and items lost to dropped
// classification batches, so a batch that keeps failing cannot hold the head
// of the backlog.
func (s *IngestService) ProcessAll(ctx context.Context) (*domain.ProcessSummary, error) {
	startTime := time.Now()
	summary := &domain.ProcessSummary{}

	if s.classifier == nil {
		return summary, ErrClassifierUnavailable
	}

	items, err := s.raw.ListUnprocessed(ctx, s.config.BatchSize)
	if err != nil {
		return summary, fmt.Errorf("list unprocessed: %w", err)
	}

	s.logger.Info("starting processing", "batch", len(items))

	if len(items) == 0 {
		summary.Success = true
		summary.Duration = time.Since(startTime)
		return summary, nil
	}

	unique := dedup.Dedupe(items)
	summary.Duplicates = len(items) - len(unique)

	processed := s.classifier.Classify(ctx, unique)
	summary.Dropped = len(unique) - len(processed)

	if summary.Dropped > 0 {
		s.logger.Warn("classification dropped items", "dropped", summary.Dropped)
	}

	consumed := itemIDs(items)

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if len(processed) > 0 {
			if err := s.processed.InsertBatch(txCtx, processed); err != nil {
				return fmt.Errorf("insert processed items: %w", err)
			}
		}
		if len(consumed) > 0 {
			if err := s.raw.MarkProcessed(txCtx, consumed); err != nil {
				return fmt.Errorf("mark processed: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return summary, err
	}

	summary.Processed = len(processed)
	summary.Published = s.publish(ctx, processed)

	if s.trending != nil && len(processed) > 0 {
		n, err := s.trending.UpdateTrendingTopics(ctx)
		if err != nil {
			s.logger.Error("trending update failed", "error", err)
		}
		summary.Trending = n
	}

	summary.Success = true
	summary.Duration = time.Since(startTime)

	s.logger.Info("processing completed",
		"processed", summary.Processed,
		"duplicates", summary.Duplicates,
		"dropped", summary.Dropped,
		"published", summary.Published,
		"trending", summary.Trending,
		"duration", summary.Duration,
	)

	return summary, nil
}

func (s *IngestService) publish(ctx context.Context, items []domain.ProcessedNewsItem) int {
	if s.publisher == nil {
		return 0
	}

	published := 0
	for i := range items {
		if err := s.publisher.Publish(ctx, &items[i]); err != nil {
			s.logger.Warn("failed to publish processed item", "raw_item_id", items[i].RawItemID, "error", err)
			continue
		}
		published++
	}
	return published
}

func itemIDs(items []domain.RawNewsItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

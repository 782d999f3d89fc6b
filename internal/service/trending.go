package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"news_curator/internal/config"
	"news_curator/internal/domain"
)

const minKeywordLen = 2

// TrendingService ranks keywords of recently published items by
// count × average relevance.
type TrendingService struct {
	processed ProcessedItemStore
	store     TrendingStore
	logger    *slog.Logger
	config    config.TrendingConfig
	now       func() time.Time
}

func NewTrendingService(
	processed ProcessedItemStore,
	store TrendingStore,
	logger *slog.Logger,
	cfg config.TrendingConfig,
) *TrendingService {
	if cfg.Window <= 0 {
		cfg.Window = 24 * time.Hour
	}
	if cfg.TopN <= 0 {
		cfg.TopN = 20
	}
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = 7
	}
	return &TrendingService{
		processed: processed,
		store:     store,
		logger:    logger.With("component", "trending"),
		config:    cfg,
		now:       time.Now,
	}
}

// UpdateTrendingTopics recomputes today's ranking from scratch and prunes
// rankings past retention. It returns the number of topics written. A read
// failure writes nothing; an empty window leaves existing rows untouched.
func (t *TrendingService) UpdateTrendingTopics(ctx context.Context) (int, error) {
	now := t.now().UTC()

	items, err := t.processed.ListPublishedSince(ctx, now.Add(-t.config.Window))
	if err != nil {
		return 0, fmt.Errorf("list recent processed items: %w", err)
	}

	today := truncateDay(now)
	topics := Rank(items, t.config.TopN)
	if len(topics) == 0 {
		t.logger.Info("no trending keywords in window", "items", len(items))
		return 0, nil
	}

	for i := range topics {
		topics[i].Date = today
		topics[i].UpdatedAt = now
	}

	if err := t.store.UpsertBatch(ctx, topics); err != nil {
		return 0, fmt.Errorf("upsert trending topics: %w", err)
	}

	cutoff := today.AddDate(0, 0, -t.config.RetentionDays)
	deleted, err := t.store.DeleteBefore(ctx, cutoff)
	if err != nil {
		t.logger.Warn("failed to prune trending topics", "cutoff", cutoff, "error", err)
	}

	t.logger.Info("trending topics updated",
		"items", len(items),
		"topics", len(topics),
		"pruned", deleted,
	)

	return len(topics), nil
}

// List returns the ranking for day, highest score first.
func (t *TrendingService) List(ctx context.Context, day time.Time, limit int) ([]domain.TrendingTopic, error) {
	if limit <= 0 {
		limit = t.config.TopN
	}
	topics, err := t.store.ListByDate(ctx, truncateDay(day.UTC()), limit)
	if err != nil {
		return nil, fmt.Errorf("list trending topics: %w", err)
	}
	return topics, nil
}

type keywordStats struct {
	count    int
	sum      int
	category string
}

// Rank aggregates keywords across items and returns the topN by score, ties
// broken alphabetically. Date fields are left zero.
func Rank(items []domain.ProcessedNewsItem, topN int) []domain.TrendingTopic {
	stats := make(map[string]*keywordStats)

	for _, item := range items {
		for _, kw := range item.Keywords {
			topic := strings.ToLower(strings.TrimSpace(kw))
			if utf8.RuneCountInString(topic) < minKeywordLen {
				continue
			}

			st, ok := stats[topic]
			if !ok {
				st = &keywordStats{}
				stats[topic] = st
			}
			st.count++
			st.sum += item.RelevanceScore
			if st.category == "" {
				st.category = item.Category
			}
		}
	}

	topics := make([]domain.TrendingTopic, 0, len(stats))
	for topic, st := range stats {
		avg := float64(st.sum) / float64(st.count)
		topics = append(topics, domain.TrendingTopic{
			Topic:        topic,
			Score:        float64(st.count) * avg,
			ArticleCount: st.count,
			Category:     st.category,
		})
	}

	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Score != topics[j].Score {
			return topics[i].Score > topics[j].Score
		}
		return topics[i].Topic < topics[j].Topic
	})

	if topN > 0 && len(topics) > topN {
		topics = topics[:topN]
	}
	return topics
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

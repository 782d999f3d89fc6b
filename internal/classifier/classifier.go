// Package classifier assigns category, relevance, summary and keywords to raw
// items through a hosted text-generation model.
package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"news_curator/internal/domain"
	"news_curator/internal/retry"
)

// Completer sends a prompt to a text-generation model and returns its reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	BatchSize   int
	RetryDelay  time.Duration
	CallTimeout time.Duration
}

type Classifier struct {
	completer Completer
	cfg       Config
	logger    *slog.Logger
	now       func() time.Time
}

func New(completer Completer, cfg Config, logger *slog.Logger) *Classifier {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 3 * time.Second
	}
	return &Classifier{
		completer: completer,
		cfg:       cfg,
		logger:    logger.With("component", "classifier"),
		now:       time.Now,
	}
}

// Classify processes items in fixed-size batches. A batch whose call or
// parse fails twice is dropped; the remaining batches still run. Output order
// follows the indices in each response, not the input.
func (c *Classifier) Classify(ctx context.Context, items []domain.RawNewsItem) []domain.ProcessedNewsItem {
	out := make([]domain.ProcessedNewsItem, 0, len(items))

	for start := 0; start < len(items); start += c.cfg.BatchSize {
		if ctx.Err() != nil {
			c.logger.Warn("classification interrupted", "remaining", len(items)-start, "error", ctx.Err())
			break
		}

		end := min(start+c.cfg.BatchSize, len(items))
		batch := items[start:end]

		processed, err := c.classifyBatch(ctx, batch)
		if err != nil {
			c.logger.Error("dropping classification batch",
				"batch_start", start,
				"batch_size", len(batch),
				"error", err,
			)
			continue
		}

		out = append(out, processed...)
	}

	return out
}

func (c *Classifier) classifyBatch(ctx context.Context, batch []domain.RawNewsItem) ([]domain.ProcessedNewsItem, error) {
	prompt := buildPrompt(batch)

	var results []result
	err := retry.Do(ctx, retry.Config{
		MaxAttempts:    2,
		InitialBackoff: c.cfg.RetryDelay,
		OnRetry: func(attempt int, delay time.Duration, err error) {
			c.logger.Warn("classification failed, retrying batch",
				"attempt", attempt,
				"delay", delay,
				"error", err,
			)
		},
	}, func(ctx context.Context) error {
		callCtx := ctx
		if c.cfg.CallTimeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, c.cfg.CallTimeout)
			defer cancel()
		}

		text, err := c.completer.Complete(callCtx, prompt)
		if err != nil {
			return fmt.Errorf("complete: %w", err)
		}

		parsed, err := parseResponse(text)
		if err != nil {
			return err
		}
		results = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.merge(batch, results), nil
}

func (c *Classifier) merge(batch []domain.RawNewsItem, results []result) []domain.ProcessedNewsItem {
	now := c.now()
	seen := make(map[int]struct{}, len(results))
	out := make([]domain.ProcessedNewsItem, 0, len(results))

	for _, r := range results {
		idx, ok := asInt(r.Index)
		if !ok || idx < 1 || idx > len(batch) {
			c.logger.Warn("ignoring classification with invalid index", "index", r.Index, "batch_size", len(batch))
			continue
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}

		out = append(out, toProcessed(batch[idx-1], r, now))
	}

	return out
}

func toProcessed(item domain.RawNewsItem, r result, now time.Time) domain.ProcessedNewsItem {
	score := 5
	if s, ok := asInt(r.RelevanceScore); ok {
		score = s
	}

	category := fallbackCategory(item.Category)
	if s, ok := asString(r.Category); ok {
		if cat, known := domain.NormalizeCategory(s); known {
			category = cat
		}
	}

	summary, ok := asString(r.Summary)
	if !ok {
		summary = fallbackSummary(item)
	}

	language, ok := asString(r.Language)
	if !ok {
		language = item.Language
	}

	keywords := asStrings(r.Keywords)
	for i, k := range keywords {
		keywords[i] = strings.ToLower(k)
	}

	p := domain.ProcessedNewsItem{
		RawItemID:      item.ID,
		Title:          item.Title,
		Summary:        summary,
		Category:       category,
		RelevanceScore: domain.ClampRelevance(score),
		Language:       strings.ToLower(language),
		Keywords:       keywords,
		URL:            item.URL,
		SourceName:     item.SourceName,
		PublishedAt:    item.PublishedAt,
		ProcessedAt:    now,
	}

	if s, ok := oneOf(r.Sentiment, domain.Sentiments); ok {
		p.Sentiment = &s
	}
	if s, ok := oneOf(r.ImpactScope, domain.ImpactScopes); ok {
		p.ImpactScope = s
	}
	if s, ok := asString(r.StoryID); ok && !strings.EqualFold(s, domain.UngroupedStory) {
		story := strings.ToLower(s)
		p.StoryID = &story
	}

	return p
}

func fallbackCategory(raw string) string {
	if cat, ok := domain.NormalizeCategory(raw); ok {
		return cat
	}
	return domain.CategoryGeneral
}

func fallbackSummary(item domain.RawNewsItem) string {
	if item.Description != nil && strings.TrimSpace(*item.Description) != "" {
		return truncate(*item.Description, 300)
	}
	return item.Title
}

// Package feed polls RSS and Atom endpoints.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"news_curator/internal/domain"
	"news_curator/internal/source/item"
)

type Config struct {
	ID        string
	Name      string
	URL       string
	Language  string
	Category  string
	Timeout   time.Duration
	UserAgent string
}

type Source struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Category == "" {
		cfg.Category = domain.CategoryGeneral
	}
	return &Source{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     logger.With("source", cfg.ID),
		now:        time.Now,
	}
}

func (s *Source) ID() string              { return s.cfg.ID }
func (s *Source) Name() string            { return s.cfg.Name }
func (s *Source) Kind() domain.SourceKind { return domain.SourceKindFeed }

// Fetch polls the feed once. Network, status and parse failures are returned
// as an unsuccessful result.
func (s *Source) Fetch(ctx context.Context) domain.FetchResult {
	start := time.Now()
	result := domain.FetchResult{
		SourceID:   s.cfg.ID,
		SourceName: s.cfg.Name,
		Kind:       domain.SourceKindFeed,
	}

	parsed, err := s.fetchFeed(ctx)
	result.Duration = time.Since(start)
	if err != nil {
		s.logger.Warn("feed fetch failed", "error", err, "duration", result.Duration)
		result.Error = err.Error()
		result.Items = []domain.RawNewsItem{}
		return result
	}

	result.Items = s.transform(parsed.Items)
	result.Success = true

	s.logger.Debug("fetched feed",
		"entries", len(parsed.Items),
		"items", len(result.Items),
		"duration", result.Duration,
	)

	return result
}

func (s *Source) fetchFeed(ctx context.Context) (*gofeed.Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	return parsed, nil
}

func (s *Source) transform(entries []*gofeed.Item) []domain.RawNewsItem {
	fetchedAt := s.now().UTC()
	seen := item.Seen{}
	items := make([]domain.RawNewsItem, 0, len(entries))

	for _, e := range entries {
		if e == nil {
			continue
		}

		title := item.PlainText(e.Title)
		link := strings.TrimSpace(e.Link)
		if link == "" && len(e.Links) > 0 {
			link = strings.TrimSpace(e.Links[0])
		}
		if title == "" || link == "" || !seen.Add(link) {
			continue
		}

		raw := domain.RawNewsItem{
			ID:          item.ID(s.cfg.ID, link),
			SourceID:    s.cfg.ID,
			SourceName:  s.cfg.Name,
			SourceType:  domain.SourceKindFeed,
			Title:       title,
			Description: item.Optional(e.Description),
			Content:     item.Optional(e.Content),
			URL:         link,
			ImageURL:    imageURL(e),
			Author:      author(e),
			Language:    s.cfg.Language,
			Category:    s.cfg.Category,
			PublishedAt: publishedAt(e),
			FetchedAt:   fetchedAt,
		}

		items = append(items, raw)
	}

	return items
}

func publishedAt(e *gofeed.Item) *time.Time {
	switch {
	case e.PublishedParsed != nil:
		t := e.PublishedParsed.UTC()
		return &t
	case e.UpdatedParsed != nil:
		t := e.UpdatedParsed.UTC()
		return &t
	}
	return nil
}

func imageURL(e *gofeed.Item) *string {
	if e.Image != nil && e.Image.URL != "" {
		return item.OptionalRaw(e.Image.URL)
	}
	for _, enc := range e.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return item.OptionalRaw(enc.URL)
		}
	}
	return nil
}

func author(e *gofeed.Item) *string {
	for _, a := range e.Authors {
		if a != nil && a.Name != "" {
			return item.OptionalRaw(a.Name)
		}
	}
	return nil
}

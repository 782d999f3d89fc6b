// Package newsapi fetches paginated headline listings per category.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"news_curator/internal/domain"
	"news_curator/internal/retry"
	"news_curator/internal/source/item"
)

// removedTitle marks listings withdrawn by the publisher.
const removedTitle = "[Removed]"

type Config struct {
	ID         string
	Name       string
	BaseURL    string
	APIKey     string
	Language   string
	Country    string
	Category   string
	Categories []string
	PageSize   int
	MaxPages   int
	Timeout    time.Duration
	UserAgent  string
	Retry      retry.Config
}

type Source struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 1
	}
	if cfg.Category == "" {
		cfg.Category = domain.CategoryGeneral
	}
	if cfg.Retry.Multiplier == 0 {
		cfg.Retry.Multiplier = 2
	}
	return &Source{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With("source", cfg.ID),
		now:    time.Now,
	}
}

func (s *Source) ID() string              { return s.cfg.ID }
func (s *Source) Name() string            { return s.cfg.Name }
func (s *Source) Kind() domain.SourceKind { return domain.SourceKindAPI }

// query is one listing pass: a category with country, or the language-only
// pass when category is empty.
type query struct {
	category string
}

// Fetch runs one pass per category sequentially, then a language-only pass.
// A failed pass is recorded and the next one still runs; the result is
// successful when at least one pass succeeded.
func (s *Source) Fetch(ctx context.Context) domain.FetchResult {
	start := time.Now()
	result := domain.FetchResult{
		SourceID:   s.cfg.ID,
		SourceName: s.cfg.Name,
		Kind:       domain.SourceKindAPI,
		Items:      []domain.RawNewsItem{},
	}

	queries := make([]query, 0, len(s.cfg.Categories)+1)
	for _, c := range s.cfg.Categories {
		queries = append(queries, query{category: c})
	}
	queries = append(queries, query{})

	seen := item.Seen{}
	var failures []error
	succeeded := 0

	for _, q := range queries {
		if ctx.Err() != nil {
			failures = append(failures, ctx.Err())
			break
		}

		articles, err := s.fetchQuery(ctx, q)
		if err != nil {
			label := q.category
			if label == "" {
				label = "language:" + s.cfg.Language
			}
			s.logger.Warn("query failed", "query", label, "error", err)
			failures = append(failures, fmt.Errorf("%s: %w", label, err))
		} else {
			succeeded++
		}

		result.Items = append(result.Items, s.transform(articles, q, seen)...)
	}

	result.Duration = time.Since(start)
	result.Success = succeeded > 0
	if err := errors.Join(failures...); err != nil {
		result.Error = err.Error()
	}

	s.logger.Debug("fetched listings",
		"queries", len(queries),
		"failed", len(failures),
		"items", len(result.Items),
		"duration", result.Duration,
	)

	return result
}

// fetchQuery pages through one listing. Articles from pages fetched before a
// failure are still returned.
func (s *Source) fetchQuery(ctx context.Context, q query) ([]Article, error) {
	var all []Article

	for page := 1; page <= s.cfg.MaxPages; page++ {
		resp, err := s.fetchPage(ctx, q, page)
		if err != nil {
			return all, fmt.Errorf("fetch page %d: %w", page, err)
		}

		all = append(all, resp.Articles...)

		if len(resp.Articles) < s.cfg.PageSize || page*s.cfg.PageSize >= resp.TotalResults {
			break
		}
	}

	return all, nil
}

func (s *Source) fetchPage(ctx context.Context, q query, page int) (*APIResponse, error) {
	pageURL, err := s.buildURL(q, page)
	if err != nil {
		return nil, retry.Permanent(err)
	}

	cfg := s.cfg.Retry
	cfg.OnRetry = func(attempt int, delay time.Duration, err error) {
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", delay,
			"error", err,
		)
	}

	var resp *APIResponse
	err = retry.Do(ctx, cfg, func(ctx context.Context) error {
		r, err := s.doRequest(ctx, pageURL)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *Source) buildURL(q query, page int) (string, error) {
	u, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	params := u.Query()
	if q.category != "" {
		params.Set("category", q.category)
		if s.cfg.Country != "" {
			params.Set("country", s.cfg.Country)
		}
	} else if s.cfg.Language != "" {
		params.Set("language", s.cfg.Language)
	}
	params.Set("pageSize", strconv.Itoa(s.cfg.PageSize))
	params.Set("page", strconv.Itoa(page))
	u.RawQuery = params.Encode()

	return u.String(), nil
}

func (s *Source) doRequest(ctx context.Context, pageURL string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.cfg.UserAgent)
	req.Header.Set("X-Api-Key", s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status: %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, retry.Permanent(err)
		}
		return nil, err
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if apiResp.Status == "error" {
		return nil, retry.Permanent(fmt.Errorf("api error %s: %s", apiResp.Code, apiResp.Message))
	}

	return &apiResp, nil
}

func (s *Source) transform(articles []Article, q query, seen item.Seen) []domain.RawNewsItem {
	fetchedAt := s.now().UTC()
	category := s.cfg.Category
	if q.category != "" {
		category = q.category
	}

	items := make([]domain.RawNewsItem, 0, len(articles))
	for _, a := range articles {
		title := item.PlainText(a.Title)
		if title == "" || title == removedTitle || a.URL == "" || !seen.Add(a.URL) {
			continue
		}

		raw := domain.RawNewsItem{
			ID:          item.ID(s.cfg.ID, a.URL),
			SourceID:    s.cfg.ID,
			SourceName:  s.cfg.Name,
			SourceType:  domain.SourceKindAPI,
			Title:       title,
			Description: item.Optional(a.Description),
			Content:     item.Optional(a.Content),
			URL:         a.URL,
			ImageURL:    item.OptionalRaw(a.URLToImage),
			Author:      item.OptionalRaw(a.Author),
			Language:    s.cfg.Language,
			Category:    category,
			FetchedAt:   fetchedAt,
		}

		if a.PublishedAt != "" {
			publishedAt, err := time.Parse(time.RFC3339, a.PublishedAt)
			if err != nil {
				s.logger.Warn("failed to parse date", "url", a.URL, "date", a.PublishedAt)
			} else {
				publishedAt = publishedAt.UTC()
				raw.PublishedAt = &publishedAt
			}
		}

		items = append(items, raw)
	}

	return items
}

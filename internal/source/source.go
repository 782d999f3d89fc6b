// Package source builds adapters from configuration.
package source

import (
	"log/slog"

	"news_curator/internal/config"
	"news_curator/internal/retry"
	"news_curator/internal/service"
	"news_curator/internal/source/feed"
	"news_curator/internal/source/newsapi"
)

// Build returns one adapter per enabled source. Paginated sources without an
// API key are skipped so the remaining sources keep working.
func Build(cfg *config.Config, logger *slog.Logger) []service.Source {
	sources := make([]service.Source, 0, len(cfg.Sources))

	for _, sc := range cfg.Sources {
		if !sc.IsEnabled() {
			logger.Debug("source disabled", "source", sc.ID)
			continue
		}

		switch sc.Kind {
		case "feed":
			sources = append(sources, feed.New(feed.Config{
				ID:        sc.ID,
				Name:      sc.Name,
				URL:       sc.URL,
				Language:  sc.Language,
				Category:  sc.Category,
				Timeout:   sc.Timeout,
				UserAgent: cfg.Ingestion.UserAgent,
			}, logger))
		case "api":
			if sc.APIKey == "" {
				logger.Warn("skipping api source without api key", "source", sc.ID)
				continue
			}
			sources = append(sources, newsapi.New(newsapi.Config{
				ID:         sc.ID,
				Name:       sc.Name,
				BaseURL:    sc.URL,
				APIKey:     sc.APIKey,
				Language:   sc.Language,
				Country:    sc.Country,
				Category:   sc.Category,
				Categories: sc.Categories,
				PageSize:   sc.PageSize,
				MaxPages:   sc.MaxPages,
				Timeout:    sc.Timeout,
				UserAgent:  cfg.Ingestion.UserAgent,
				Retry: retry.Config{
					MaxAttempts:    cfg.Ingestion.Retry.MaxAttempts,
					InitialBackoff: cfg.Ingestion.Retry.InitialBackoff,
					MaxBackoff:     cfg.Ingestion.Retry.MaxBackoff,
					Multiplier:     2,
				},
			}, logger))
		}
	}

	return sources
}

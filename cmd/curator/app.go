package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"news_curator/internal/ai"
	"news_curator/internal/cache"
	"news_curator/internal/classifier"
	"news_curator/internal/config"
	"news_curator/internal/domain"
	"news_curator/internal/publisher"
	"news_curator/internal/selector"
	"news_curator/internal/service"
	"news_curator/internal/source"
	"news_curator/internal/storage/postgres"
)

// app holds the wired components shared by every command.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	raw       *postgres.RawItemStore
	processed *postgres.ProcessedItemStore
	health    *service.HealthTracker
	trending  *service.TrendingService
	news      *service.NewsService
	ingest    *service.IngestService

	closers []io.Closer
}

func loadApp(ctx context.Context, opts *options) (*app, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}

	logger := setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database")

	a := &app{cfg: cfg, logger: logger, db: db}
	a.closers = append(a.closers, db)

	version, err := postgres.Migrate(db.DB)
	if err != nil {
		a.Close()
		return nil, err
	}
	logger.Info("database schema ready", "version", version)

	a.raw = postgres.NewRawItemStore(db)
	a.processed = postgres.NewProcessedItemStore(db)
	a.health = service.NewHealthTracker(postgres.NewSourceHealthStore(db), logger)
	a.trending = service.NewTrendingService(a.processed, postgres.NewTrendingStore(db), logger, cfg.Trending)
	a.news = service.NewNewsService(a.raw, a.processed, logger, cfg.Retention)

	var cls service.Classifier
	if c := a.buildClassifier(ctx); c != nil {
		cls = c
	}

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbit, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Warn("publishing disabled", "error", err)
		} else {
			a.closers = append(a.closers, rabbit)
			pub = rabbit
		}
	}

	a.ingest = service.NewIngestService(
		source.Build(cfg, logger),
		a.raw,
		a.processed,
		a.health,
		cls,
		a.trending,
		postgres.NewTransactionManager(db),
		pub,
		logger,
		cfg.Ingestion,
	)

	return a, nil
}

// buildClassifier returns nil when the AI provider cannot be configured, so
// fetching keeps working while processing reports unavailability.
func (a *app) buildClassifier(ctx context.Context) *classifier.Classifier {
	cfg := a.cfg.AI
	if cfg.APIKey == "" {
		a.logger.Warn("classifier disabled: missing ai.api_key", "provider", cfg.Provider)
		return nil
	}

	var completer classifier.Completer
	switch cfg.Provider {
	case "openai":
		completer = ai.NewOpenAI(cfg.APIKey, cfg.Model, cfg.BaseURL)
	default:
		gemini, err := ai.NewGemini(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			a.logger.Warn("classifier disabled", "provider", cfg.Provider, "error", err)
			return nil
		}
		a.closers = append(a.closers, gemini)
		completer = gemini
	}

	a.logger.Info("classifier ready", "provider", cfg.Provider, "model", cfg.Model)

	return classifier.New(completer, classifier.Config{
		BatchSize:   a.cfg.Classifier.BatchSize,
		RetryDelay:  a.cfg.Classifier.RetryDelay,
		CallTimeout: cfg.Timeout,
	}, a.logger)
}

// buildSelector uses Redis when configured and falls back to process memory.
func (a *app) buildSelector() *selector.Selector {
	mem := cache.NewMemory[[]domain.Article](cache.WithCleanup[[]domain.Article](a.cfg.Selector.CacheTTL))
	a.closers = append(a.closers, mem)
	var c selector.Cache = mem

	if a.cfg.Redis.Addr != "" {
		r, err := cache.NewRedis[[]domain.Article](cache.RedisConfig{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
			Prefix:   "news_curator:selection:",
		}, a.logger)
		if err != nil {
			a.logger.Warn("using in-memory selection cache", "error", err)
		} else {
			a.closers = append(a.closers, r)
			c = r
		}
	}

	return selector.New(a.processed, c, a.logger, selector.Config{
		CacheTTL:        a.cfg.Selector.CacheTTL,
		Lookback:        a.cfg.Selector.Lookback,
		MaxPerSource:    a.cfg.Selector.MaxPerSource,
		SurpriseLimit:   a.cfg.Selector.SurpriseLimit,
		SurpriseMinimum: a.cfg.Selector.SurpriseMinimum,
		Topics:          a.cfg.Topics,
	})
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"news_curator/internal/api"
	"news_curator/internal/config"
	"news_curator/internal/ratelimit"
	"news_curator/internal/scheduler"
	"news_curator/internal/storage/postgres"
)

type serveCommand struct {
	opts *options
}

func (c *serveCommand) Execute(args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := loadApp(ctx, c.opts)
	if err != nil {
		return err
	}
	defer a.Close()

	sched := scheduler.NewScheduler(a.logger, a.jobs()...)

	handler := api.NewHandler(a.health, a.news, a.trending, a.buildSelector(), sched)
	limiter := ratelimit.New(a.cfg.HTTP.RateLimit.Requests, a.cfg.HTTP.RateLimit.Window)

	server := &http.Server{
		Addr:         a.cfg.HTTP.Addr,
		Handler:      api.NewServer(handler, limiter, a.logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		a.logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("http server: %w", err)
			cancel()
		}
	}()

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error("scheduler error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Warn("http shutdown", "error", err)
	}

	select {
	case err := <-serverErr:
		return err
	default:
		return nil
	}
}

// jobs returns the scheduled pipeline operations. trending has no interval of
// its own since processing already refreshes it.
func (a *app) jobs() []scheduler.Job {
	ing := a.cfg.Ingestion
	return []scheduler.Job{
		{
			Name:     "fetch",
			Interval: ing.FetchInterval,
			Timeout:  5 * time.Minute,
			Run: func(ctx context.Context) error {
				summary, err := a.ingest.FetchAll(ctx)
				if err != nil {
					return err
				}
				if !summary.Success {
					return fmt.Errorf("all %d sources failed", summary.SourcesTotal)
				}
				return nil
			},
		},
		{
			Name:     "process",
			Interval: ing.ProcessInterval,
			Timeout:  15 * time.Minute,
			Run: func(ctx context.Context) error {
				_, err := a.ingest.ProcessAll(ctx)
				return err
			},
		},
		{
			Name:    "trending",
			Timeout: 2 * time.Minute,
			Run: func(ctx context.Context) error {
				_, err := a.trending.UpdateTrendingTopics(ctx)
				return err
			},
		},
		{
			Name:     "cleanup",
			Interval: ing.CleanupInterval,
			Timeout:  10 * time.Minute,
			Run: func(ctx context.Context) error {
				_, err := a.news.Cleanup(ctx)
				return err
			},
		},
	}
}

type fetchCommand struct {
	opts *options
}

func (c *fetchCommand) Execute(args []string) error {
	return runOnce(c.opts, func(ctx context.Context, a *app) (any, error) {
		return a.ingest.FetchAll(ctx)
	})
}

type processCommand struct {
	opts *options
}

func (c *processCommand) Execute(args []string) error {
	return runOnce(c.opts, func(ctx context.Context, a *app) (any, error) {
		return a.ingest.ProcessAll(ctx)
	})
}

type trendingCommand struct {
	opts *options
}

func (c *trendingCommand) Execute(args []string) error {
	return runOnce(c.opts, func(ctx context.Context, a *app) (any, error) {
		count, err := a.trending.UpdateTrendingTopics(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]int{"topics": count}, nil
	})
}

type cleanupCommand struct {
	opts *options
}

func (c *cleanupCommand) Execute(args []string) error {
	return runOnce(c.opts, func(ctx context.Context, a *app) (any, error) {
		return a.news.Cleanup(ctx)
	})
}

type selectCommand struct {
	opts   *options
	Target int `short:"n" long:"target" default:"5" description:"Number of articles to select"`
	Args   struct {
		Topics []string `positional-arg-name:"topic" required:"1"`
	} `positional-args:"yes"`
}

func (c *selectCommand) Execute(args []string) error {
	return runOnce(c.opts, func(ctx context.Context, a *app) (any, error) {
		return a.buildSelector().Select(ctx, c.Args.Topics, c.Target)
	})
}

type migrateCommand struct {
	opts *options
}

func (c *migrateCommand) Execute(args []string) error {
	cfg, err := config.Load(c.opts.Config)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	version, err := postgres.Migrate(db.DB)
	if err != nil {
		return err
	}
	logger.Info("migrations applied", "version", version)
	return nil
}

// runOnce wires the app, runs fn under SIGINT/SIGTERM cancellation and prints
// its result as JSON.
func runOnce(opts *options, fn func(ctx context.Context, a *app) (any, error)) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := loadApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := fn(ctx, a)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news_curator/internal/domain"
)

// HealthTracker records the outcome of the latest fetch per source.
type HealthTracker struct {
	store  SourceHealthStore
	logger *slog.Logger
	now    func() time.Time
}

func NewHealthTracker(store SourceHealthStore, logger *slog.Logger) *HealthTracker {
	return &HealthTracker{
		store:  store,
		logger: logger.With("component", "source_health"),
		now:    time.Now,
	}
}

// Update overwrites the health row for sourceID. An empty errMsg clears the
// last error.
func (h *HealthTracker) Update(
	ctx context.Context,
	sourceID, sourceName string,
	kind domain.SourceKind,
	success bool,
	itemCount int,
	errMsg string,
) error {
	health := domain.SourceHealth{
		SourceID:      sourceID,
		SourceName:    sourceName,
		SourceKind:    kind,
		LastSuccess:   success,
		LastItemCount: itemCount,
		UpdatedAt:     h.now().UTC(),
	}
	if errMsg != "" {
		health.LastError = &errMsg
	}

	if err := h.store.Upsert(ctx, health); err != nil {
		return fmt.Errorf("upsert source health: %w", err)
	}

	if !success {
		h.logger.Warn("source unhealthy", "source", sourceID, "error", errMsg)
	}
	return nil
}

func (h *HealthTracker) List(ctx context.Context) ([]domain.SourceHealth, error) {
	rows, err := h.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list source health: %w", err)
	}
	return rows, nil
}

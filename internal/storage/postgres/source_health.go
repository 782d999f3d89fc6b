package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"news_curator/internal/domain"
)

type SourceHealthStore struct {
	db *sqlx.DB
}

func NewSourceHealthStore(db *sqlx.DB) *SourceHealthStore {
	return &SourceHealthStore{db: db}
}

func (s *SourceHealthStore) Upsert(ctx context.Context, health domain.SourceHealth) error {
	query := `
		INSERT INTO source_health (
			source_id, source_name, source_kind, last_success, last_item_count, last_error, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (source_id) DO UPDATE SET
			source_name = EXCLUDED.source_name,
			source_kind = EXCLUDED.source_kind,
			last_success = EXCLUDED.last_success,
			last_item_count = EXCLUDED.last_item_count,
			last_error = EXCLUDED.last_error,
			updated_at = EXCLUDED.updated_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		health.SourceID,
		health.SourceName,
		string(health.SourceKind),
		health.LastSuccess,
		health.LastItemCount,
		health.LastError,
		health.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert source health: %w", err)
	}
	return nil
}

func (s *SourceHealthStore) List(ctx context.Context) ([]domain.SourceHealth, error) {
	query := `
		SELECT source_id, source_name, source_kind, last_success, last_item_count, last_error, updated_at
		FROM source_health
		ORDER BY source_id`

	rows := []domain.SourceHealth{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query); err != nil {
		return nil, fmt.Errorf("select source health: %w", err)
	}
	return rows, nil
}

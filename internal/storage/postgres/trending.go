package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"news_curator/internal/domain"
)

type TrendingStore struct {
	db *sqlx.DB
}

func NewTrendingStore(db *sqlx.DB) *TrendingStore {
	return &TrendingStore{db: db}
}

// UpsertBatch replaces the values of topics already stored for the same date.
func (s *TrendingStore) UpsertBatch(ctx context.Context, topics []domain.TrendingTopic) error {
	if len(topics) == 0 {
		return nil
	}

	q := psql.Insert("trending_topics").
		Columns("topic", "date", "score", "article_count", "category", "updated_at")
	for _, t := range topics {
		q = q.Values(t.Topic, t.Date, t.Score, t.ArticleCount, t.Category, t.UpdatedAt)
	}
	q = q.Suffix(`ON CONFLICT (topic, date) DO UPDATE SET
		score = EXCLUDED.score,
		article_count = EXCLUDED.article_count,
		category = EXCLUDED.category,
		updated_at = EXCLUDED.updated_at`)

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert trending topics: %w", err)
	}
	return nil
}

func (s *TrendingStore) DeleteBefore(ctx context.Context, day time.Time) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM trending_topics WHERE date < $1`,
		day,
	)
	if err != nil {
		return 0, fmt.Errorf("delete trending topics: %w", err)
	}
	return res.RowsAffected()
}

func (s *TrendingStore) ListByDate(ctx context.Context, day time.Time, limit int) ([]domain.TrendingTopic, error) {
	query := `
		SELECT topic, score, article_count, category, date, updated_at
		FROM trending_topics
		WHERE date = $1
		ORDER BY score DESC, topic ASC
		LIMIT $2`

	topics := []domain.TrendingTopic{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &topics, query, day, limit); err != nil {
		return nil, fmt.Errorf("select trending topics: %w", err)
	}
	return topics, nil
}

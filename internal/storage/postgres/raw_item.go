package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"news_curator/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// insertChunk keeps multi-row inserts well under the 65535 parameter limit.
const insertChunk = 500

const rawColumns = `id, source_id, source_name, source_type, title, description, content,
	url, image_url, author, language, category, published_at, fetched_at, processed`

type RawItemStore struct {
	db *sqlx.DB
}

func NewRawItemStore(db *sqlx.DB) *RawItemStore {
	return &RawItemStore{db: db}
}

// InsertBatch stores new items and ignores ones already stored for the same
// source and url. It returns the number of rows inserted.
func (s *RawItemStore) InsertBatch(ctx context.Context, items []domain.RawNewsItem) (int, error) {
	exec := GetExecutor(ctx, s.db)
	inserted := 0

	for start := 0; start < len(items); start += insertChunk {
		end := min(start+insertChunk, len(items))

		q := psql.Insert("raw_news_items").Columns(
			"id", "source_id", "source_name", "source_type", "title", "description", "content",
			"url", "image_url", "author", "language", "category", "published_at", "fetched_at",
		)
		for _, it := range items[start:end] {
			q = q.Values(
				it.ID, it.SourceID, it.SourceName, string(it.SourceType), it.Title, it.Description, it.Content,
				it.URL, it.ImageURL, it.Author, it.Language, it.Category, it.PublishedAt, it.FetchedAt,
			)
		}
		q = q.Suffix("ON CONFLICT DO NOTHING")

		query, args, err := q.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("build insert: %w", err)
		}

		res, err := exec.ExecContext(ctx, query, args...)
		if err != nil {
			return inserted, fmt.Errorf("insert raw items: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("rows affected: %w", err)
		}
		inserted += int(n)
	}

	return inserted, nil
}

// ListUnprocessed returns the oldest unprocessed items first.
func (s *RawItemStore) ListUnprocessed(ctx context.Context, limit int) ([]domain.RawNewsItem, error) {
	query := `
		SELECT ` + rawColumns + `
		FROM raw_news_items
		WHERE processed = FALSE
		ORDER BY fetched_at ASC, id ASC
		LIMIT $1`

	var items []domain.RawNewsItem
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &items, query, limit); err != nil {
		return nil, fmt.Errorf("select unprocessed: %w", err)
	}
	return items, nil
}

func (s *RawItemStore) MarkProcessed(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE raw_news_items SET processed = TRUE WHERE id = ANY($1)`,
		pq.Array(ids),
	)
	if err != nil {
		return fmt.Errorf("mark processed: %w", err)
	}
	return nil
}

func (s *RawItemStore) DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.deleteBefore(ctx, true, cutoff)
}

func (s *RawItemStore) DeleteUnprocessedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.deleteBefore(ctx, false, cutoff)
}

func (s *RawItemStore) deleteBefore(ctx context.Context, processed bool, cutoff time.Time) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM raw_news_items WHERE processed = $1 AND fetched_at < $2`,
		processed, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("delete raw items: %w", err)
	}
	return res.RowsAffected()
}

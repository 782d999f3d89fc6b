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

var processedColumns = []string{
	"id", "raw_item_id", "title", "summary", "category", "relevance_score", "language",
	"keywords", "url", "source_name", "published_at", "processed_at", "sentiment",
	"impact_scope", "story_id",
}

type processedRow struct {
	ID             int64          `db:"id"`
	RawItemID      string         `db:"raw_item_id"`
	Title          string         `db:"title"`
	Summary        string         `db:"summary"`
	Category       string         `db:"category"`
	RelevanceScore int            `db:"relevance_score"`
	Language       string         `db:"language"`
	Keywords       pq.StringArray `db:"keywords"`
	URL            string         `db:"url"`
	SourceName     string         `db:"source_name"`
	PublishedAt    *time.Time     `db:"published_at"`
	ProcessedAt    time.Time      `db:"processed_at"`
	Sentiment      *string        `db:"sentiment"`
	ImpactScope    string         `db:"impact_scope"`
	StoryID        *string        `db:"story_id"`
}

func (r processedRow) toDomain() domain.ProcessedNewsItem {
	keywords := []string(r.Keywords)
	if keywords == nil {
		keywords = []string{}
	}
	return domain.ProcessedNewsItem{
		ID:             r.ID,
		RawItemID:      r.RawItemID,
		Title:          r.Title,
		Summary:        r.Summary,
		Category:       r.Category,
		RelevanceScore: r.RelevanceScore,
		Language:       r.Language,
		Keywords:       keywords,
		URL:            r.URL,
		SourceName:     r.SourceName,
		PublishedAt:    r.PublishedAt,
		ProcessedAt:    r.ProcessedAt,
		Sentiment:      r.Sentiment,
		ImpactScope:    r.ImpactScope,
		StoryID:        r.StoryID,
	}
}

type ProcessedItemStore struct {
	db *sqlx.DB
}

func NewProcessedItemStore(db *sqlx.DB) *ProcessedItemStore {
	return &ProcessedItemStore{db: db}
}

// InsertBatch stores classification results. A raw item classified twice
// keeps its first result.
func (s *ProcessedItemStore) InsertBatch(ctx context.Context, items []domain.ProcessedNewsItem) error {
	exec := GetExecutor(ctx, s.db)

	for start := 0; start < len(items); start += insertChunk {
		end := min(start+insertChunk, len(items))

		q := psql.Insert("processed_news_items").Columns(processedColumns[1:]...)
		for _, it := range items[start:end] {
			keywords := it.Keywords
			if keywords == nil {
				keywords = []string{}
			}
			q = q.Values(
				it.RawItemID, it.Title, it.Summary, it.Category, it.RelevanceScore, it.Language,
				pq.Array(keywords), it.URL, it.SourceName, it.PublishedAt, it.ProcessedAt, it.Sentiment,
				it.ImpactScope, it.StoryID,
			)
		}
		q = q.Suffix("ON CONFLICT (raw_item_id) DO NOTHING")

		query, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert processed items: %w", err)
		}
	}

	return nil
}

// Candidates returns items processed since q.Since, most relevant first.
func (s *ProcessedItemStore) Candidates(ctx context.Context, q domain.CandidateQuery) ([]domain.ProcessedNewsItem, error) {
	b := psql.Select(processedColumns...).
		From("processed_news_items").
		Where(sq.GtOrEq{"processed_at": q.Since}).
		OrderBy("relevance_score DESC", "processed_at DESC")

	if len(q.Categories) > 0 {
		if q.Exclude {
			b = b.Where(sq.NotEq{"category": q.Categories})
		} else {
			b = b.Where(sq.Eq{"category": q.Categories})
		}
	}
	if q.MinRelevance > 0 {
		b = b.Where(sq.GtOrEq{"relevance_score": q.MinRelevance})
	}
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit))
	}

	return s.selectBuilt(ctx, b)
}

func (s *ProcessedItemStore) ListPublishedSince(ctx context.Context, since time.Time) ([]domain.ProcessedNewsItem, error) {
	b := psql.Select(processedColumns...).
		From("processed_news_items").
		Where(sq.GtOrEq{"published_at": since}).
		OrderBy("published_at DESC")

	return s.selectBuilt(ctx, b)
}

// TopByDay returns items processed on the UTC day starting at day.
func (s *ProcessedItemStore) TopByDay(ctx context.Context, day time.Time, limit int) ([]domain.ProcessedNewsItem, error) {
	b := psql.Select(processedColumns...).
		From("processed_news_items").
		Where(sq.GtOrEq{"processed_at": day}).
		Where(sq.Lt{"processed_at": day.Add(24 * time.Hour)}).
		OrderBy("relevance_score DESC", "processed_at DESC").
		Limit(uint64(limit))

	return s.selectBuilt(ctx, b)
}

func (s *ProcessedItemStore) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM processed_news_items WHERE processed_at < $1`,
		cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("delete processed items: %w", err)
	}
	return res.RowsAffected()
}

func (s *ProcessedItemStore) selectBuilt(ctx context.Context, b sq.SelectBuilder) ([]domain.ProcessedNewsItem, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []processedRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select processed items: %w", err)
	}

	items := make([]domain.ProcessedNewsItem, len(rows))
	for i, r := range rows {
		items[i] = r.toDomain()
	}
	return items, nil
}

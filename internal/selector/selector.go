// Package selector picks a short, diverse set of recent processed items for
// content generation.
package selector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"news_curator/internal/domain"
)

// MaxTargetCount bounds a single selection; candidate pools are sized from it.
const MaxTargetCount = 50

var ErrInvalidTarget = errors.New("target count must be between 1 and 50")

// MaxKeywordOverlap is the highest keyword overlap allowed between two
// selected items.
const MaxKeywordOverlap = 0.5

type CandidateStore interface {
	Candidates(ctx context.Context, q domain.CandidateQuery) ([]domain.ProcessedNewsItem, error)
}

// Cache stores selection results. A miss must always be safe to recompute.
type Cache interface {
	Get(ctx context.Context, key string) ([]domain.Article, bool)
	Set(ctx context.Context, key string, value []domain.Article, ttl time.Duration)
}

type Config struct {
	CacheTTL        time.Duration
	Lookback        time.Duration
	MaxPerSource    int
	SurpriseLimit   int
	SurpriseMinimum int
	Topics          map[string][]string
}

type Selector struct {
	store  CandidateStore
	cache  Cache
	topics TopicMap
	cfg    Config
	group  singleflight.Group
	logger *slog.Logger
	now    func() time.Time
}

func New(store CandidateStore, cache Cache, logger *slog.Logger, cfg Config) *Selector {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	if cfg.Lookback <= 0 {
		cfg.Lookback = 48 * time.Hour
	}
	if cfg.MaxPerSource <= 0 {
		cfg.MaxPerSource = 2
	}
	if cfg.SurpriseLimit <= 0 {
		cfg.SurpriseLimit = 5
	}
	if cfg.SurpriseMinimum <= 0 {
		cfg.SurpriseMinimum = 8
	}
	return &Selector{
		store:  store,
		cache:  cache,
		topics: NewTopicMap(cfg.Topics),
		cfg:    cfg,
		logger: logger.With("component", "selector"),
		now:    time.Now,
	}
}

// Select returns at most targetCount articles covering topics. Unmapped topics
// yield an empty list, not an error. Results are cached per category set,
// target and hour; concurrent identical calls share one computation.
func (s *Selector) Select(ctx context.Context, topics []string, targetCount int) ([]domain.Article, error) {
	if targetCount <= 0 || targetCount > MaxTargetCount {
		return nil, ErrInvalidTarget
	}

	categories := s.topics.Categories(topics)
	if len(categories) == 0 {
		s.logger.Info("no categories for topics", "topics", topics)
		return []domain.Article{}, nil
	}

	key := s.cacheKey(categories, targetCount)
	if cached, ok := s.cache.Get(ctx, key); ok {
		s.logger.Debug("selection cache hit", "key", key)
		return cached, nil
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		articles, err := s.compute(ctx, topics, categories, targetCount)
		if err != nil {
			return nil, err
		}
		s.cache.Set(ctx, key, articles, s.cfg.CacheTTL)
		return articles, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("selection shared with concurrent caller", "key", key)
	}

	return v.([]domain.Article), nil
}

func (s *Selector) cacheKey(categories []string, targetCount int) string {
	hour := s.now().UTC().Format("2006-01-02T15")
	return strings.Join(categories, ",") + "|" + strconv.Itoa(targetCount) + "|" + hour
}

func (s *Selector) compute(ctx context.Context, topics, categories []string, targetCount int) ([]domain.Article, error) {
	since := s.now().UTC().Add(-s.cfg.Lookback)

	var pool, surprise []domain.ProcessedNewsItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.store.Candidates(gctx, domain.CandidateQuery{
			Categories: categories,
			Since:      since,
			Limit:      3 * targetCount,
		})
		if err != nil {
			return fmt.Errorf("query candidates: %w", err)
		}
		pool = items
		return nil
	})
	g.Go(func() error {
		items, err := s.store.Candidates(gctx, domain.CandidateQuery{
			Categories:   categories,
			Exclude:      true,
			Since:        since,
			MinRelevance: s.cfg.SurpriseMinimum,
			Limit:        s.cfg.SurpriseLimit,
		})
		if err != nil {
			s.logger.Warn("surprise candidates unavailable", "error", err)
			return nil
		}
		surprise = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byRelevance(pool)
	byRelevance(surprise)

	sel := newSelection(s.cfg.MaxPerSource)

	// Every requested topic first gets its best still-valid item.
	seenTopic := make(map[string]struct{}, len(topics))
	for _, topic := range topics {
		if sel.len() >= targetCount {
			break
		}
		key := normalizeTopic(topic)
		if _, dup := seenTopic[key]; dup {
			continue
		}
		seenTopic[key] = struct{}{}

		cats := s.topics.Lookup(topic)
		for i := range pool {
			if contains(cats, pool[i].Category) && sel.valid(&pool[i]) {
				sel.accept(&pool[i])
				break
			}
		}
	}

	for i := range pool {
		if sel.len() >= targetCount {
			break
		}
		if sel.valid(&pool[i]) {
			sel.accept(&pool[i])
		}
	}

	if sel.len() < targetCount {
		for i := range surprise {
			if sel.valid(&surprise[i]) {
				sel.accept(&surprise[i])
				break
			}
		}
	}

	articles := groupStories(sel.items)

	s.logger.Info("selection computed",
		"topics", topics,
		"categories", categories,
		"pool", len(pool),
		"surprise_pool", len(surprise),
		"selected", sel.len(),
		"articles", len(articles),
	)

	return articles, nil
}

// selection is the state shared by the passes of one Select call.
type selection struct {
	maxPerSource int
	items        []*domain.ProcessedNewsItem
	used         map[string]struct{}
	perSource    map[string]int
	keywords     []map[string]struct{}
}

func newSelection(maxPerSource int) *selection {
	return &selection{
		maxPerSource: maxPerSource,
		used:         make(map[string]struct{}),
		perSource:    make(map[string]int),
	}
}

func (s *selection) len() int { return len(s.items) }

func (s *selection) valid(item *domain.ProcessedNewsItem) bool {
	if _, ok := s.used[identity(item)]; ok {
		return false
	}
	if s.perSource[item.SourceName] >= s.maxPerSource {
		return false
	}
	kw := keywordSet(item.Keywords)
	for _, other := range s.keywords {
		if overlap(kw, other) > MaxKeywordOverlap {
			return false
		}
	}
	return true
}

func (s *selection) accept(item *domain.ProcessedNewsItem) {
	s.items = append(s.items, item)
	s.used[identity(item)] = struct{}{}
	s.perSource[item.SourceName]++
	s.keywords = append(s.keywords, keywordSet(item.Keywords))
}

func identity(item *domain.ProcessedNewsItem) string {
	if item.RawItemID != "" {
		return item.RawItemID
	}
	return strconv.FormatInt(item.ID, 10)
}

func keywordSet(keywords []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

// overlap is shared keywords over the smaller set, 0 when either is empty.
func overlap(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	shared := 0
	for k := range small {
		if _, ok := large[k]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(small))
}

// groupStories folds items sharing a story into one article led by the most
// relevant member. Each article sits at the position of its first member.
func groupStories(items []*domain.ProcessedNewsItem) []domain.Article {
	type group struct {
		members []*domain.ProcessedNewsItem
	}

	var order []*group
	byStory := make(map[string]*group)

	for _, item := range items {
		key := item.StoryKey()
		if key == "" {
			order = append(order, &group{members: []*domain.ProcessedNewsItem{item}})
			continue
		}
		g, ok := byStory[key]
		if !ok {
			g = &group{}
			byStory[key] = g
			order = append(order, g)
		}
		g.members = append(g.members, item)
	}

	articles := make([]domain.Article, 0, len(order))
	for _, g := range order {
		primary := 0
		for i, m := range g.members {
			if m.RelevanceScore > g.members[primary].RelevanceScore {
				primary = i
			}
		}

		article := toArticle(g.members[primary])
		for i, m := range g.members {
			if i == primary {
				continue
			}
			article.RelatedArticles = append(article.RelatedArticles, domain.RelatedArticle{
				Title:   m.Title,
				Summary: m.Summary,
			})
		}
		articles = append(articles, article)
	}

	return articles
}

func toArticle(item *domain.ProcessedNewsItem) domain.Article {
	keywords := item.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return domain.Article{
		Title:       item.Title,
		Description: item.Summary,
		Source:      item.SourceName,
		URL:         item.URL,
		PublishedAt: item.PublishedAt,
		Sentiment:   item.Sentiment,
		ImpactScope: item.ImpactScope,
		Category:    item.Category,
		Keywords:    keywords,
	}
}

func byRelevance(items []domain.ProcessedNewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RelevanceScore > items[j].RelevanceScore
	})
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

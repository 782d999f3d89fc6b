package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"news_curator/internal/domain"
	"news_curator/internal/ratelimit"
	"news_curator/internal/scheduler"
	"news_curator/internal/selector"
	"news_curator/testdata/utils"
)

type fakeHealth struct {
	rows []domain.SourceHealth
	err  error
}

func (f *fakeHealth) List(ctx context.Context) ([]domain.SourceHealth, error) {
	return f.rows, f.err
}

type fakeNews struct {
	items    []domain.ProcessedNewsItem
	err      error
	gotLimit int
	gotDate  *time.Time
}

func (f *fakeNews) GetTopNews(ctx context.Context, limit int, date *time.Time) ([]domain.ProcessedNewsItem, error) {
	f.gotLimit = limit
	f.gotDate = date
	return f.items, f.err
}

type fakeTrending struct {
	topics []domain.TrendingTopic
	gotDay time.Time
}

func (f *fakeTrending) List(ctx context.Context, day time.Time, limit int) ([]domain.TrendingTopic, error) {
	f.gotDay = day
	return f.topics, nil
}

type fakeSelector struct {
	articles  []domain.Article
	err       error
	gotTopics []string
	gotTarget int
}

func (f *fakeSelector) Select(ctx context.Context, topics []string, targetCount int) ([]domain.Article, error) {
	f.gotTopics = topics
	f.gotTarget = targetCount
	return f.articles, f.err
}

type fakeJobs struct {
	errs      map[string]error
	triggered []string
}

func (f *fakeJobs) Trigger(ctx context.Context, name string) error {
	f.triggered = append(f.triggered, name)
	if err, ok := f.errs[name]; ok {
		return err
	}
	return nil
}

type HandlerSuite struct {
	suite.Suite
	health   *fakeHealth
	news     *fakeNews
	trending *fakeTrending
	selector *fakeSelector
	jobs     *fakeJobs
	limiter  *ratelimit.Limiter
	server   http.Handler
	now      time.Time
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.health = &fakeHealth{}
	s.news = &fakeNews{}
	s.trending = &fakeTrending{}
	s.selector = &fakeSelector{}
	s.jobs = &fakeJobs{errs: map[string]error{
		"process": scheduler.ErrAlreadyRunning,
		"cleanup": errors.New("db down"),
		"unknown": fmt.Errorf("%w: %q", scheduler.ErrUnknownJob, "unknown"),
	}}
	s.now = time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	s.limiter = ratelimit.New(2, time.Minute).WithClock(func() time.Time { return s.now })

	h := NewHandler(s.health, s.news, s.trending, s.selector, s.jobs)
	h.now = func() time.Time { return s.now }

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.server = NewServer(h, s.limiter, logger)
}

func (s *HandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (s *HandlerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal("ok", body["status"])
	s.Equal("2024-05-10T15:00:00Z", body["timestamp"])
}

func (s *HandlerSuite) TestSourceHealth() {
	s.health.rows = []domain.SourceHealth{
		{SourceID: "elpais", SourceName: "El País", SourceKind: domain.SourceKindFeed, LastSuccess: true, LastItemCount: 12},
		{SourceID: "newsapi", SourceName: "NewsAPI", SourceKind: domain.SourceKindAPI, LastError: utils.Ptr("unexpected status: 500")},
	}

	rec := s.do(http.MethodGet, "/v1/sources/health", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(float64(2), body["total"])
}

func (s *HandlerSuite) TestSourceHealth_StoreError() {
	s.health.err = errors.New("connection refused")

	rec := s.do(http.MethodGet, "/v1/sources/health", nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *HandlerSuite) TestTopNews_PassesLimitAndDate() {
	s.news.items = []domain.ProcessedNewsItem{{ID: 1, Title: "A", RelevanceScore: 9}}

	rec := s.do(http.MethodGet, "/v1/news/top?limit=5&date=2024-05-09", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(5, s.news.gotLimit)
	s.Require().NotNil(s.news.gotDate)
	s.Equal(time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), *s.news.gotDate)
	s.Equal(float64(1), s.decode(rec)["total"])
}

func (s *HandlerSuite) TestTopNews_Defaults() {
	rec := s.do(http.MethodGet, "/v1/news/top", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Zero(s.news.gotLimit)
	s.Nil(s.news.gotDate)
}

func (s *HandlerSuite) TestTopNews_BadParams() {
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/v1/news/top?limit=abc", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/v1/news/top?limit=-1", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/v1/news/top?date=10/05/2024", nil).Code)
}

func (s *HandlerSuite) TestTrending_DefaultsToToday() {
	s.trending.topics = []domain.TrendingTopic{{Topic: "ia", Score: 16, ArticleCount: 2}}

	rec := s.do(http.MethodGet, "/v1/trending", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(s.now, s.trending.gotDay)
	s.Equal(float64(1), s.decode(rec)["total"])
}

func (s *HandlerSuite) TestSelectArticles() {
	s.selector.articles = []domain.Article{{Title: "A", Category: "technology"}}

	rec := s.do(http.MethodPost, "/v1/agent/articles", map[string]any{
		"topics":      []string{"tecnología", "economía"},
		"targetCount": 4,
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal([]string{"tecnología", "economía"}, s.selector.gotTopics)
	s.Equal(4, s.selector.gotTarget)
	s.Equal(float64(1), s.decode(rec)["total"])
}

func (s *HandlerSuite) TestSelectArticles_EmptyResultIsArray() {
	rec := s.do(http.MethodPost, "/v1/agent/articles", map[string]any{"topics": []string{"x"}, "targetCount": 3})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"articles":[]`)
}

func (s *HandlerSuite) TestSelectArticles_InvalidTarget() {
	s.selector.err = selector.ErrInvalidTarget

	rec := s.do(http.MethodPost, "/v1/agent/articles", map[string]any{"topics": []string{"ia"}, "targetCount": 0})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestSelectArticles_TargetAboveMaximum() {
	rec := s.do(http.MethodPost, "/v1/agent/articles", map[string]any{"topics": []string{"ia"}, "targetCount": selector.MaxTargetCount + 1})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Nil(s.selector.gotTopics)

	rec = s.do(http.MethodPost, "/v1/agent/articles", map[string]any{"topics": []string{"ia"}, "targetCount": 1 << 62})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Nil(s.selector.gotTopics)
}

func (s *HandlerSuite) TestSelectArticles_BadBody() {
	req := httptest.NewRequest(http.MethodPost, "/v1/agent/articles", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestSelectArticles_RateLimited() {
	body := map[string]any{"topics": []string{"ia"}, "targetCount": 1}

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/v1/agent/articles", body).Code)
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/v1/agent/articles", body).Code)

	rec := s.do(http.MethodPost, "/v1/agent/articles", body)
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal("60", rec.Header().Get("Retry-After"))

	s.now = s.now.Add(time.Minute)
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/v1/agent/articles", body).Code)
}

func (s *HandlerSuite) TestTriggerJob() {
	tests := []struct {
		name string
		want int
	}{
		{"fetch", http.StatusOK},
		{"process", http.StatusConflict},
		{"cleanup", http.StatusInternalServerError},
		{"unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(http.MethodPost, "/v1/jobs/"+tt.name, nil)
			s.Equal(tt.want, rec.Code)
		})
	}

	s.Equal([]string{"fetch", "process", "cleanup", "unknown"}, s.jobs.triggered)
}

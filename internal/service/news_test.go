package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"news_curator/internal/config"
	"news_curator/internal/domain"
	"news_curator/internal/service/mocks"
)

type NewsServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	raw       *mocks.MockRawItemStore
	processed *mocks.MockProcessedItemStore
	health    *mocks.MockSourceHealthStore

	service *NewsService
	tracker *HealthTracker
	now     time.Time
}

func (s *NewsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.raw = mocks.NewMockRawItemStore(s.ctrl)
	s.processed = mocks.NewMockProcessedItemStore(s.ctrl)
	s.health = mocks.NewMockSourceHealthStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.now = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	s.service = NewNewsService(s.raw, s.processed, logger, config.RetentionConfig{
		ProcessedDays:      7,
		RawProcessedDays:   7,
		RawUnprocessedDays: 14,
	})
	s.service.now = func() time.Time { return s.now }

	s.tracker = NewHealthTracker(s.health, logger)
	s.tracker.now = func() time.Time { return s.now }
}

func (s *NewsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNewsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NewsServiceTestSuite))
}

func (s *NewsServiceTestSuite) TestGetTopNews_DefaultsToToday() {
	ctx := context.Background()
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	want := []domain.ProcessedNewsItem{{Title: "a", RelevanceScore: 9}}

	s.processed.EXPECT().TopByDay(ctx, today, 10).Return(want, nil)

	got, err := s.service.GetTopNews(ctx, 0, nil)

	s.NoError(err)
	s.Equal(want, got)
}

func (s *NewsServiceTestSuite) TestGetTopNews_ExplicitDate() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	s.processed.EXPECT().TopByDay(ctx, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 5).Return(nil, errors.New("boom"))

	_, err := s.service.GetTopNews(ctx, 5, &date)

	s.Error(err)
	s.Contains(err.Error(), "top processed items")
}

func (s *NewsServiceTestSuite) TestCleanup() {
	ctx := context.Background()

	s.processed.EXPECT().DeleteBefore(ctx, s.now.AddDate(0, 0, -7)).Return(int64(4), nil)
	s.raw.EXPECT().DeleteProcessedBefore(ctx, s.now.AddDate(0, 0, -7)).Return(int64(6), nil)
	s.raw.EXPECT().DeleteUnprocessedBefore(ctx, s.now.AddDate(0, 0, -14)).Return(int64(1), nil)

	summary, err := s.service.Cleanup(ctx)

	s.NoError(err)
	s.Equal(int64(4), summary.ProcessedDeleted)
	s.Equal(int64(6), summary.RawProcessedDeleted)
	s.Equal(int64(1), summary.RawStaleDeleted)
}

func (s *NewsServiceTestSuite) TestCleanup_StopsOnError() {
	ctx := context.Background()
	s.processed.EXPECT().DeleteBefore(ctx, gomock.Any()).Return(int64(0), errors.New("boom"))

	_, err := s.service.Cleanup(ctx)

	s.Error(err)
}

func (s *NewsServiceTestSuite) TestHealthTracker_Update() {
	ctx := context.Background()

	s.health.EXPECT().Upsert(ctx, domain.SourceHealth{
		SourceID:      "diario",
		SourceName:    "Diario",
		SourceKind:    domain.SourceKindFeed,
		LastSuccess:   true,
		LastItemCount: 12,
		UpdatedAt:     s.now,
	}).Return(nil)

	s.NoError(s.tracker.Update(ctx, "diario", "Diario", domain.SourceKindFeed, true, 12, ""))
}

func (s *NewsServiceTestSuite) TestHealthTracker_UpsertError() {
	ctx := context.Background()
	s.health.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("db down"))

	err := s.tracker.Update(ctx, "diario", "Diario", domain.SourceKindFeed, false, 0, "timeout")

	s.Error(err)
	s.Contains(err.Error(), "upsert source health")
}

func (s *NewsServiceTestSuite) TestHealthTracker_List() {
	ctx := context.Background()
	s.health.EXPECT().List(ctx).Return([]domain.SourceHealth{{SourceID: "a"}}, nil)

	rows, err := s.tracker.List(ctx)

	s.NoError(err)
	s.Len(rows, 1)
}

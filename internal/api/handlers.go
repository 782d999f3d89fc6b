package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"news_curator/internal/domain"
	"news_curator/internal/scheduler"
	"news_curator/internal/selector"
)

const dateLayout = "2006-01-02"

type HealthReader interface {
	List(ctx context.Context) ([]domain.SourceHealth, error)
}

type NewsReader interface {
	GetTopNews(ctx context.Context, limit int, date *time.Time) ([]domain.ProcessedNewsItem, error)
}

type TrendingReader interface {
	List(ctx context.Context, day time.Time, limit int) ([]domain.TrendingTopic, error)
}

type ArticleSelector interface {
	Select(ctx context.Context, topics []string, targetCount int) ([]domain.Article, error)
}

type JobTrigger interface {
	Trigger(ctx context.Context, name string) error
}

type Handler struct {
	health   HealthReader
	news     NewsReader
	trending TrendingReader
	selector ArticleSelector
	jobs     JobTrigger
	now      func() time.Time
}

func NewHandler(
	health HealthReader,
	news NewsReader,
	trending TrendingReader,
	selector ArticleSelector,
	jobs JobTrigger,
) *Handler {
	return &Handler{
		health:   health,
		news:     news,
		trending: trending,
		selector: selector,
		jobs:     jobs,
		now:      time.Now,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) SourceHealth(c *gin.Context) {
	rows, err := h.health.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sources": rows, "total": len(rows)})
}

func (h *Handler) TopNews(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}

	items, err := h.news.GetTopNews(c.Request.Context(), limit, date)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) Trending(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}

	day := h.now().UTC()
	if date != nil {
		day = *date
	}

	topics, err := h.trending.List(c.Request.Context(), day, limit)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics, "total": len(topics)})
}

type selectRequest struct {
	Topics      []string `json:"topics"`
	TargetCount int      `json:"targetCount"`
}

func (h *Handler) SelectArticles(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.TargetCount > selector.MaxTargetCount {
		c.JSON(http.StatusBadRequest, gin.H{"error": selector.ErrInvalidTarget.Error()})
		return
	}

	articles, err := h.selector.Select(c.Request.Context(), req.Topics, req.TargetCount)
	if errors.Is(err, selector.ErrInvalidTarget) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	if articles == nil {
		articles = []domain.Article{}
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "total": len(articles)})
}

func (h *Handler) TriggerJob(c *gin.Context) {
	name := c.Param("name")

	err := h.jobs.Trigger(c.Request.Context(), name)
	switch {
	case errors.Is(err, scheduler.ErrUnknownJob):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, scheduler.ErrAlreadyRunning):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		internalError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"job": name, "status": "completed"})
	}
}

func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// queryInt returns 0 when the parameter is absent.
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}

func queryDate(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ", expected YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}

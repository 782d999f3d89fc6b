package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"news_curator/internal/ratelimit"
)

// NewServer returns the gin engine with every route registered.
func NewServer(h *Handler, limiter *ratelimit.Limiter, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(requestLogger(logger))
	r.Use(gin.Recovery())

	r.GET("/health", h.Health)

	v1 := r.Group("/v1")
	{
		v1.GET("/sources/health", h.SourceHealth)
		v1.GET("/news/top", h.TopNews)
		v1.GET("/trending", h.Trending)
		v1.POST("/agent/articles", rateLimit(limiter), h.SelectArticles)
		v1.POST("/jobs/:name", h.TriggerJob)
	}

	return r
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request", attrs...)
			return
		}
		logger.Debug("request", attrs...)
	}
}

// rateLimit rejects callers that exceed the limiter's window, keyed by client IP.
func rateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := c.ClientIP()
		if !limiter.Allow(key) {
			wait := limiter.RetryAfter(key)
			c.Header("Retry-After", strconv.Itoa(int(wait.Round(time.Second).Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}

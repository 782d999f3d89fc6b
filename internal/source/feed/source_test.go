package feed

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_curator/internal/domain"
)

const rssBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Diario</title>
  <item>
    <title>Nuevo avance en física cuántica</title>
    <link>https://example.com/fisica</link>
    <description>&lt;p&gt;Un &lt;b&gt;avance&lt;/b&gt; notable&lt;/p&gt;</description>
    <pubDate>Mon, 02 Mar 2026 10:00:00 GMT</pubDate>
    <enclosure url="https://example.com/img.jpg" type="image/jpeg" length="1"/>
  </item>
  <item>
    <title>Duplicated link</title>
    <link>https://example.com/fisica</link>
  </item>
  <item>
    <title></title>
    <link>https://example.com/no-title</link>
  </item>
  <item>
    <title>No link</title>
  </item>
  <item>
    <title>La IA revoluciona la medicina</title>
    <link>https://example.com/ia</link>
  </item>
</channel>
</rss>`

func newTestSource(url string) *Source {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s := New(Config{
		ID:        "diario",
		Name:      "Diario",
		URL:       url,
		Language:  "es",
		Category:  "science",
		Timeout:   2 * time.Second,
		UserAgent: "NewsCurator/test",
	}, logger)
	s.now = func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestFetch_ParsesFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "NewsCurator/test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssBody))
	}))
	defer server.Close()

	result := newTestSource(server.URL).Fetch(context.Background())

	require.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, "diario", result.SourceID)
	assert.Equal(t, domain.SourceKindFeed, result.Kind)
	require.Len(t, result.Items, 2)

	first := result.Items[0]
	assert.Equal(t, "Nuevo avance en física cuántica", first.Title)
	assert.Equal(t, "https://example.com/fisica", first.URL)
	require.NotNil(t, first.Description)
	assert.Equal(t, "Un avance notable", *first.Description)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), *first.PublishedAt)
	require.NotNil(t, first.ImageURL)
	assert.Equal(t, "https://example.com/img.jpg", *first.ImageURL)
	assert.Equal(t, "science", first.Category)
	assert.Equal(t, "es", first.Language)
	assert.Equal(t, domain.SourceKindFeed, first.SourceType)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Processed)

	assert.Equal(t, "https://example.com/ia", result.Items[1].URL)
	assert.Nil(t, result.Items[1].PublishedAt)
}

func TestFetch_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	result := newTestSource(server.URL).Fetch(context.Background())

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "unexpected status: 502")
	assert.Empty(t, result.Items)
}

func TestFetch_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not a feed"))
	}))
	defer server.Close()

	result := newTestSource(server.URL).Fetch(context.Background())

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "parse feed")
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	s := newTestSource(server.URL)
	s.cfg.Timeout = 50 * time.Millisecond

	result := s.Fetch(context.Background())
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

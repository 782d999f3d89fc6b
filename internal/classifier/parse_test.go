package classifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_curator/internal/domain"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr error
	}{
		{name: "bare array", text: `[{"index":1},{"index":2}]`, want: 2},
		{name: "fenced with prose", text: "Sure!\n```json\n[{\"index\":1}]\n```\nDone.", want: 1},
		{name: "trailing commas", text: `[{"index":1,"keywords":["a","b",],},]`, want: 1},
		{name: "non-object elements skipped", text: `[1, "x", {"index":3}]`, want: 1},
		{name: "no array", text: `{"index":1}`, wantErr: ErrNoJSONArray},
		{name: "reversed brackets", text: `] nothing [`, wantErr: ErrNoJSONArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseResponse(tt.text)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestParseResponse_Malformed(t *testing.T) {
	_, err := parseResponse(`[{"index": 1 "category": "x"}]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode classification")
}

func TestAsInt(t *testing.T) {
	n, ok := asInt(7.6)
	assert.True(t, ok)
	assert.Equal(t, 8, n)

	n, ok = asInt(" 3 ")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = asInt("high")
	assert.False(t, ok)

	_, ok = asInt(nil)
	assert.False(t, ok)

	_, ok = asInt("NaN")
	assert.False(t, ok)
}

func TestAsInt_Saturates(t *testing.T) {
	n, ok := asInt(1e20)
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt32, n)

	n, ok = asInt(-1e20)
	assert.True(t, ok)
	assert.Equal(t, math.MinInt32, n)

	n, ok = asInt("1e300")
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt32, n)

	n, ok = asInt(math.Inf(1))
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt32, n)

	assert.Equal(t, domain.MaxRelevance, domain.ClampRelevance(n))
}

func TestOneOf(t *testing.T) {
	s, ok := oneOf("Negative", []string{"positive", "negative"})
	assert.True(t, ok)
	assert.Equal(t, "negative", s)

	_, ok = oneOf("mixed", []string{"positive", "negative"})
	assert.False(t, ok)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "a b", truncate("  a\n  b ", 10))
	assert.Equal(t, "ñañ...", truncate("ñañañ", 3))
}

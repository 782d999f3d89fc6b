package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var ErrNoJSONArray = errors.New("no JSON array in response")

// result is one entry of the classification response. Every field is
// untyped because the provider enforces no schema.
type result struct {
	Index          any `json:"index"`
	Category       any `json:"category"`
	RelevanceScore any `json:"relevance_score"`
	Summary        any `json:"summary"`
	Language       any `json:"language"`
	Keywords       any `json:"keywords"`
	Sentiment      any `json:"sentiment"`
	ImpactScope    any `json:"impact_scope"`
	StoryID        any `json:"story_id"`
}

var trailingComma = regexp.MustCompile(`,\s*([\]}])`)

// parseResponse extracts the JSON array from free-form text. When decoding
// fails it retries once with trailing commas stripped.
func parseResponse(text string) ([]result, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, ErrNoJSONArray
	}
	raw := text[start : end+1]

	results, err := decode(raw)
	if err == nil {
		return results, nil
	}

	repaired := trailingComma.ReplaceAllString(raw, "$1")
	if repaired == raw {
		return nil, fmt.Errorf("decode classification: %w", err)
	}

	results, rerr := decode(repaired)
	if rerr != nil {
		return nil, fmt.Errorf("decode repaired classification: %w", rerr)
	}
	return results, nil
}

func decode(raw string) ([]result, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, err
	}

	results := make([]result, 0, len(elems))
	for _, e := range elems {
		var r result
		// Non-object elements are skipped instead of failing the batch.
		if err := json.Unmarshal(e, &r); err != nil {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

// asInt rounds a JSON number or numeric string. Values outside the int32
// range saturate so later clamping keeps their sign.
func asInt(v any) (int, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) {
		return 0, false
	}
	f = math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Round(f)))
	return int(f), true
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func asStrings(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := asString(e); ok {
			out = append(out, s)
		}
	}
	return out
}

func oneOf(v any, allowed []string) (string, bool) {
	s, ok := asString(v)
	if !ok {
		return "", false
	}
	s = strings.ToLower(s)
	for _, a := range allowed {
		if a == s {
			return s, true
		}
	}
	return "", false
}

// Package dedup removes near-duplicate items within one ingestion batch.
package dedup

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"news_curator/internal/domain"
)

// Threshold is the word-overlap ratio above which two titles are duplicates.
const Threshold = 0.70

// minWordLen excludes short words ("la", "de", "en") from overlap.
const minWordLen = 3

type candidate struct {
	normalized string
	words      map[string]struct{}
}

// Dedupe keeps the first occurrence of every near-duplicate group and
// preserves input order. It is O(n²) in batch size.
func Dedupe(items []domain.RawNewsItem) []domain.RawNewsItem {
	if len(items) == 0 {
		return []domain.RawNewsItem{}
	}

	accepted := make([]candidate, 0, len(items))
	out := make([]domain.RawNewsItem, 0, len(items))

	for _, item := range items {
		c := newCandidate(item.Title)

		duplicate := false
		for _, prev := range accepted {
			if isDuplicate(c, prev) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		accepted = append(accepted, c)
		out = append(out, item)
	}

	return out
}

// IsDuplicateTitle compares two raw titles.
func IsDuplicateTitle(a, b string) bool {
	return isDuplicate(newCandidate(a), newCandidate(b))
}

func isDuplicate(a, b candidate) bool {
	if a.normalized != "" && a.normalized == b.normalized {
		return true
	}
	return Overlap(a.words, b.words) > Threshold
}

func newCandidate(title string) candidate {
	n := Normalize(title)
	return candidate{normalized: n, words: significantWords(n)}
}

// Overlap returns shared words divided by the smaller set size, or 0 when
// either set is empty.
func Overlap(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(large) < len(small) {
		small, large = large, small
	}
	shared := 0
	for w := range small {
		if _, ok := large[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(small))
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics, removes punctuation and symbols,
// and collapses whitespace. Punctuation inside a word joins its parts
// ("post-brexit" becomes "postbrexit").
func Normalize(s string) string {
	s = strings.ToLower(s)
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsNumber(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func significantWords(normalized string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(normalized) {
		if utf8.RuneCountInString(w) >= minWordLen {
			words[w] = struct{}{}
		}
	}
	return words
}

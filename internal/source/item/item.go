// Package item holds helpers shared by source adapters for building raw items.
package item

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

// ID derives a stable identifier from the source and canonical URL, so the
// same article fetched twice maps to the same row.
func ID(sourceID, url string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(sourceID+"|"+url)).String()
}

// PlainText strips markup and collapses whitespace.
func PlainText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.ContainsAny(s, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
		if err == nil {
			s = doc.Text()
		}
	}
	return strings.Join(strings.Fields(s), " ")
}

// Optional returns nil for text that is empty after cleanup.
func Optional(s string) *string {
	s = PlainText(s)
	if s == "" {
		return nil
	}
	return &s
}

// OptionalRaw is Optional without markup stripping, for URLs and names.
func OptionalRaw(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Seen tracks URLs already emitted within one fetch.
type Seen map[string]struct{}

// Add reports whether url was not seen before and records it.
func (s Seen) Add(url string) bool {
	if _, ok := s[url]; ok {
		return false
	}
	s[url] = struct{}{}
	return true
}

package domain

import "strings"

const CategoryGeneral = "general"

// Categories is the fixed set a processed item can be classified into.
var Categories = []string{
	"politics",
	"economy",
	"technology",
	"science",
	"health",
	"sports",
	"culture",
	"entertainment",
	"international",
	"environment",
	"society",
	CategoryGeneral,
}

var categorySet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		m[c] = struct{}{}
	}
	return m
}()

// NormalizeCategory returns the canonical category and whether it is known.
func NormalizeCategory(c string) (string, bool) {
	c = strings.ToLower(strings.TrimSpace(c))
	_, ok := categorySet[c]
	return c, ok
}

var (
	Sentiments   = []string{"positive", "negative", "neutral"}
	ImpactScopes = []string{"local", "national", "global"}
)

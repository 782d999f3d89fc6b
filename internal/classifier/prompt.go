package classifier

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"news_curator/internal/domain"
)

const maxDescriptionRunes = 500

func buildPrompt(batch []domain.RawNewsItem) string {
	var b strings.Builder

	b.WriteString("You are a news editor. Classify each numbered article below.\n")
	b.WriteString("Return ONLY a JSON array, one object per article, with the fields:\n")
	b.WriteString(`{"index": <article number>, "category": <one of the categories>, "relevance_score": <integer 1-10>, `)
	b.WriteString(`"summary": <two sentences in the article language>, "language": <ISO 639-1 code>, `)
	b.WriteString(`"keywords": [<3 to 5 short lowercase keywords>], "sentiment": "positive"|"negative"|"neutral", `)
	b.WriteString(`"impact_scope": "local"|"national"|"global", "story_id": <short slug shared by articles about the same event, or "uncategorized">}`)
	b.WriteString("\n\nCategories: ")
	b.WriteString(strings.Join(domain.Categories, ", "))
	b.WriteString("\n\nArticles:\n")

	for i, item := range batch {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Title)
		if item.Description != nil && *item.Description != "" {
			fmt.Fprintf(&b, "   %s\n", truncate(*item.Description, maxDescriptionRunes))
		}
		fmt.Fprintf(&b, "   source: %s | language: %s | category: %s\n", item.SourceName, item.Language, item.Category)
	}

	return b.String()
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

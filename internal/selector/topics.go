package selector

import (
	"sort"

	"news_curator/internal/dedup"
)

// DefaultTopics maps caller topics, in Spanish and English, to categories.
var DefaultTopics = map[string][]string{
	"politica":        {"politics"},
	"politics":        {"politics"},
	"economia":        {"economy"},
	"economy":         {"economy"},
	"negocios":        {"economy"},
	"business":        {"economy"},
	"finanzas":        {"economy"},
	"tecnologia":      {"technology"},
	"technology":      {"technology"},
	"ia":              {"technology", "science"},
	"ai":              {"technology", "science"},
	"ciencia":         {"science"},
	"science":         {"science"},
	"salud":           {"health"},
	"health":          {"health"},
	"deportes":        {"sports"},
	"sports":          {"sports"},
	"cultura":         {"culture", "entertainment"},
	"culture":         {"culture", "entertainment"},
	"entretenimiento": {"entertainment"},
	"entertainment":   {"entertainment"},
	"internacional":   {"international"},
	"international":   {"international"},
	"mundo":           {"international"},
	"world":           {"international"},
	"medio ambiente":  {"environment"},
	"medioambiente":   {"environment"},
	"environment":     {"environment"},
	"clima":           {"environment"},
	"sociedad":        {"society"},
	"society":         {"society"},
	"general":         {"general"},
}

// TopicMap resolves caller topics to categories.
type TopicMap map[string][]string

// NewTopicMap layers overrides on top of DefaultTopics. An override replaces
// the default entry for the same topic.
func NewTopicMap(overrides map[string][]string) TopicMap {
	m := make(TopicMap, len(DefaultTopics)+len(overrides))
	for k, v := range DefaultTopics {
		m[k] = v
	}
	for k, v := range overrides {
		m[normalizeTopic(k)] = v
	}
	return m
}

func (m TopicMap) Lookup(topic string) []string {
	return m[normalizeTopic(topic)]
}

// Categories returns the sorted union of categories for topics.
func (m TopicMap) Categories(topics []string) []string {
	set := make(map[string]struct{})
	for _, t := range topics {
		for _, c := range m.Lookup(t) {
			set[c] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// normalizeTopic folds case, accents and punctuation so "Política" and
// "politica" resolve to the same entry.
func normalizeTopic(t string) string {
	return dedup.Normalize(t)
}

package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"news_curator/internal/domain"
)

func items(titles ...string) []domain.RawNewsItem {
	out := make([]domain.RawNewsItem, len(titles))
	for i, t := range titles {
		out[i] = domain.RawNewsItem{ID: t, Title: t}
	}
	return out
}

func titles(items []domain.RawNewsItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestDedupe_Empty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
	assert.NotNil(t, Dedupe(nil))
}

func TestDedupe_Single(t *testing.T) {
	in := items("Solo una noticia")
	assert.Equal(t, in, Dedupe(in))
}

func TestDedupe_NearDuplicate(t *testing.T) {
	got := Dedupe(items(
		"Apple presenta nuevo iPhone con inteligencia artificial avanzada",
		"Apple presenta nuevo iPhone con tecnologia inteligencia artificial avanzada",
	))
	assert.Equal(t, []string{"Apple presenta nuevo iPhone con inteligencia artificial avanzada"}, titles(got))
}

func TestDedupe_DistinctTitles(t *testing.T) {
	got := Dedupe(items(
		"La IA revoluciona la medicina",
		"Nuevo avance en física cuántica",
	))
	assert.Len(t, got, 2)
}

func TestDedupe_IdenticalAfterNormalization(t *testing.T) {
	got := Dedupe(items(
		"¡Economía en CRISIS!",
		"economia en crisis",
		"Otra cosa distinta sucede hoy",
	))
	assert.Equal(t, []string{"¡Economía en CRISIS!", "Otra cosa distinta sucede hoy"}, titles(got))
}

func TestDedupe_ShortWordTitlesAlwaysKept(t *testing.T) {
	got := Dedupe(items("Yo y tú", "Tú y yo"))
	assert.Len(t, got, 2)
}

func TestDedupe_PreservesOrderFirstWins(t *testing.T) {
	got := Dedupe(items(
		"Gobierno aprueba presupuesto nacional",
		"Terremoto sacude costa pacífica",
		"Gobierno aprueba presupuesto nacional definitivo",
		"Liga española arranca temporada",
	))
	assert.Equal(t, []string{
		"Gobierno aprueba presupuesto nacional",
		"Terremoto sacude costa pacífica",
		"Liga española arranca temporada",
	}, titles(got))
}

func TestOverlap_Boundary(t *testing.T) {
	// 7 of 10 words shared: exactly 0.70 is not a duplicate.
	a := "uno1 dos2 tres3 cuatro4 cinco5 seis6 siete7 ocho8 nueve9 diez10"
	b := "uno1 dos2 tres3 cuatro4 cinco5 seis6 siete7 once11 doce12 trece13"
	assert.False(t, IsDuplicateTitle(a, b))

	c := "uno1 dos2 tres3 cuatro4 cinco5 seis6 siete7 ocho8 once11 doce12"
	assert.True(t, IsDuplicateTitle(a, c))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "canon politica economica", Normalize("  Cañón:   Política,  ECONÓMICA!! "))
	assert.Equal(t, "", Normalize("¿¡...!?"))
}

func TestNormalize_RemovesPunctuationInsideWords(t *testing.T) {
	assert.Equal(t, "acuerdo postbrexit firmado", Normalize("Acuerdo post-brexit firmado"))
	assert.Equal(t, "lhospital dor", Normalize("L'hospital d'Or"))
	assert.Equal(t, "precio 100", Normalize("Precio: 100 €"))
}

func TestDedupe_HyphenatedVariantIsDuplicate(t *testing.T) {
	got := Dedupe(items(
		"Acuerdo post-brexit firmado",
		"Acuerdo postbrexit firmado",
	))
	assert.Equal(t, []string{"Acuerdo post-brexit firmado"}, titles(got))
}

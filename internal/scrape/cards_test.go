package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const sampleCard = `
<div class="game-block">
  <div class="game-header"><span class="badge">08-09</span></div>
  <div class="game-title"><span>Loto&nbsp;5</span></div>
  <div class="game-scores">
    <span class="score">4</span>
    <span class="score">12</span>
    <span class="score">33</span>
    <span class="score">N/A</span>
  </div>
</div>`

func TestExtractCards_Primary(t *testing.T) {
	doc := mustDoc(t, sampleCard+sampleCard)
	cards := ExtractCards(doc, DefaultSelectors())
	assert.Len(t, cards, 2)
}

func TestExtractCards_Fallback(t *testing.T) {
	html := `<div class="lottery-card"><div class="game-title">Loto 5</div></div>`
	doc := mustDoc(t, html)
	cards := ExtractCards(doc, DefaultSelectors())
	require.Len(t, cards, 1)
	assert.Equal(t, "Loto 5", cards[0].Title())
}

func TestExtractCards_NoMatch(t *testing.T) {
	doc := mustDoc(t, `<p>nothing here</p>`)
	assert.Empty(t, ExtractCards(doc, DefaultSelectors()))
}

func TestCard_Title_NormalizesWhitespace(t *testing.T) {
	doc := mustDoc(t, sampleCard)
	cards := ExtractCards(doc, DefaultSelectors())
	require.Len(t, cards, 1)
	// NBSP collapses to a regular space.
	assert.Equal(t, "Loto 5", cards[0].Title())
}

func TestCard_Title_Absent(t *testing.T) {
	doc := mustDoc(t, `<div class="game-block"><span class="score">12</span></div>`)
	cards := ExtractCards(doc, DefaultSelectors())
	require.Len(t, cards, 1)
	assert.Equal(t, "", cards[0].Title())
}

func TestCard_Numbers_DigitOnly(t *testing.T) {
	doc := mustDoc(t, sampleCard)
	cards := ExtractCards(doc, DefaultSelectors())
	require.Len(t, cards, 1)
	// Raw tokens in display order; the non-digit score element is dropped.
	assert.Equal(t, []string{"4", "12", "33"}, cards[0].Numbers())
}

func TestCard_DateTexts_Badge(t *testing.T) {
	doc := mustDoc(t, sampleCard)
	cards := ExtractCards(doc, DefaultSelectors())
	require.Len(t, cards, 1)
	assert.Equal(t, []string{"08-09"}, cards[0].DateTexts())
}

func TestCard_DateTexts_FallbackPrefix(t *testing.T) {
	long := strings.Repeat("x ", 100)
	doc := mustDoc(t, `<div class="game-block"><div class="game-title">T</div>`+long+`</div>`)
	cards := ExtractCards(doc, DefaultSelectors())
	require.Len(t, cards, 1)

	texts := cards[0].DateTexts()
	require.Len(t, texts, 1)
	assert.LessOrEqual(t, len([]rune(texts[0])), cardTextPrefixRunes)
}

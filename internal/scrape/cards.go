package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors holds the CSS expressions that locate cards and their parts.
// Cards and Title are tried in order, stopping at the first that matches;
// Scores and DateTexts are selector groups evaluated once.
type Selectors struct {
	Cards     []string `yaml:"cards"`
	Title     []string `yaml:"title"`
	Scores    string   `yaml:"scores"`
	DateTexts string   `yaml:"date_texts"`
}

// DefaultSelectors returns the selector set for loteriasdominicanas.com
// pages. The trailing card entries are soft fallbacks for class renames.
func DefaultSelectors() Selectors {
	return Selectors{
		Cards:     []string{".game-block", ".game-item, .lottery-card, .card"},
		Title:     []string{".game-title span", ".game-title"},
		Scores:    ".game-scores .score, .scores .score, .score",
		DateTexts: ".game-header .badge, .game-header .date, .game-date, .date, .badge",
	}
}

// cardTextPrefixRunes bounds the whole-card text fallback used for date
// inference.
const cardTextPrefixRunes = 80

// Card is one self-contained markup fragment advertising a single
// game/edition result.
type Card struct {
	sel       *goquery.Selection
	selectors Selectors
}

// ExtractCards yields the card fragments of doc. Each Cards selector is
// tried in order; the first one with any match wins.
func ExtractCards(doc *goquery.Document, selectors Selectors) []Card {
	for _, css := range selectors.Cards {
		found := doc.Find(css)
		if found.Length() == 0 {
			continue
		}
		cards := make([]Card, 0, found.Length())
		found.Each(func(_ int, s *goquery.Selection) {
			cards = append(cards, Card{sel: s, selectors: selectors})
		})
		return cards
	}
	return nil
}

// Title returns the card's normalized display title, or "" when no title
// element matches.
func (c Card) Title() string {
	for _, css := range c.selectors.Title {
		el := c.sel.Find(css).First()
		if el.Length() > 0 {
			return normWS(el.Text())
		}
	}
	return ""
}

// Numbers returns the card's score tokens in display order, keeping only
// elements whose trimmed text is all-digit.
func (c Card) Numbers() []string {
	var nums []string
	c.sel.Find(c.selectors.Scores).Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if allDigits(t) {
			nums = append(nums, t)
		}
	})
	return nums
}

// DateTexts returns the raw text candidates used for date inference:
// badge/date elements when present, else a bounded prefix of the whole
// card text.
func (c Card) DateTexts() []string {
	var texts []string
	c.sel.Find(c.selectors.DateTexts).Each(func(_ int, s *goquery.Selection) {
		if t := normWS(s.Text()); t != "" {
			texts = append(texts, t)
		}
	})
	if len(texts) == 0 {
		full := []rune(normWS(c.sel.Text()))
		if len(full) > cardTextPrefixRunes {
			full = full[:cardTextPrefixRunes]
		}
		texts = []string{string(full)}
	}
	return texts
}

// normWS collapses whitespace runs and NBSPs into single spaces.
func normWS(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, " ", " ")), " ")
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package scrape

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sorteos-rd/sorteos-cli/internal/model"
)

// BuildDraws converts the document's cards into Draw records for one
// provider. A card is silently skipped whenever a required field cannot
// be produced (no title, unmapped title, no numbers) — partial cards are
// expected layout noise from ads and promos, not failures.
func BuildDraws(doc *goquery.Document, provider string, titles TitleMap, selectors Selectors, today time.Time) []model.Draw {
	cards := ExtractCards(doc, selectors)
	zap.L().Debug("cards extracted",
		zap.String("provider", provider),
		zap.Int("cards", len(cards)),
	)

	var out []model.Draw
	for _, card := range cards {
		title := card.Title()
		if title == "" {
			continue
		}
		entry, ok := titles.Resolve(title)
		if !ok {
			continue
		}
		nums := card.Numbers()
		if len(nums) == 0 {
			continue
		}
		date, ok := ResolveCardDate(card.DateTexts(), today)
		if !ok {
			date = today.Format(time.DateOnly)
		}

		d := model.NewDraw(provider, entry.Game, entry.Edition, date, nums)
		applyEditionTime(&d, today.Location())
		out = append(out, d)
	}
	return out
}

var clockRe = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// applyEditionTime fills the optional time refinements when the edition
// label is itself a clock time ("12:30", "7:30"). The draw date stays
// authoritative either way.
func applyEditionTime(d *model.Draw, loc *time.Location) {
	if d.Edition == nil {
		return
	}
	m := clockRe.FindStringSubmatch(*d.Edition)
	if m == nil {
		return
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])

	day, err := time.ParseInLocation(time.DateOnly, d.Date, loc)
	if err != nil {
		return
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), hh, mm, 0, 0, loc)

	hhmm := fmt.Sprintf("%02d:%02d", hh, mm)
	iso := at.Format(time.RFC3339)
	d.Time = &hhmm
	d.DateTime = &iso
}

// Package site defines the provider adapter interface and the registry of
// scraped lottery pages. Each site binds one provider page URL to the
// selector set and title vocabulary needed to turn its cards into draws.
package site

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/sorteos-rd/sorteos-cli/internal/fetcher"
	"github.com/sorteos-rd/sorteos-cli/internal/model"
	"github.com/sorteos-rd/sorteos-cli/internal/scrape"
)

// Site is one provider adapter.
type Site interface {
	// Key returns the unique registry identifier (e.g. "leidsa").
	Key() string

	// URL returns the source page URL.
	URL() string

	// Provider returns the operator display name (e.g. "Leidsa").
	Provider() string

	// FetchDraws retrieves the page and builds its draw records. It
	// returns an error only for fetch/parse faults; incomplete cards are
	// skipped, so zero draws with a nil error is a normal outcome.
	FetchDraws(ctx context.Context, f fetcher.Fetcher) ([]model.Draw, error)
}

// pageSite is a Site bound to a configuration-table entry.
type pageSite struct {
	key       string
	url       string
	provider  string
	titles    scrape.TitleMap
	selectors scrape.Selectors
}

func (s *pageSite) Key() string      { return s.key }
func (s *pageSite) URL() string      { return s.url }
func (s *pageSite) Provider() string { return s.provider }

func (s *pageSite) FetchDraws(ctx context.Context, f fetcher.Fetcher) ([]model.Draw, error) {
	html, err := f.FetchHTML(ctx, s.url)
	if err != nil {
		return nil, eris.Wrapf(err, "site %s: fetch", s.key)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, eris.Wrapf(err, "site %s: parse markup", s.key)
	}

	today := time.Now().In(scrape.ReferenceZone())
	return scrape.BuildDraws(doc, s.provider, s.titles, s.selectors, today), nil
}

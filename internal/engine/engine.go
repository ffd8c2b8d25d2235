// Package engine orchestrates a scrape run: every registered site is
// invoked in key order, per-site failures are contained, and the merged
// draws are published as the run's artifacts.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sorteos-rd/sorteos-cli/internal/fetcher"
	"github.com/sorteos-rd/sorteos-cli/internal/model"
	"github.com/sorteos-rd/sorteos-cli/internal/publish"
	"github.com/sorteos-rd/sorteos-cli/internal/scrape"
	"github.com/sorteos-rd/sorteos-cli/internal/site"
)

// SiteResult is the outcome of one site invocation: draws on success, a
// contained reason on failure. A failed site contributes zero draws and
// never aborts the run.
type SiteResult struct {
	Key   string
	URL   string
	Draws []model.Draw
	Err   error
}

// Report summarizes a completed run.
type Report struct {
	RunID   string
	Sites   []SiteResult
	Total   int
	Updated bool
}

// Options configures an Engine.
type Options struct {
	Source string // payload source string
	Debug  bool   // dump raw markup per site
	Now    func() time.Time
}

// Engine runs the registered sites and publishes the result.
type Engine struct {
	reg   *site.Registry
	fetch fetcher.Fetcher
	pub   *publish.Publisher
	opts  Options
}

// New creates an Engine.
func New(reg *site.Registry, f fetcher.Fetcher, pub *publish.Publisher, opts Options) *Engine {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{reg: reg, fetch: f, pub: pub, opts: opts}
}

// Run executes every site sequentially in key order, merges the draws
// into a canonical payload, and publishes it when the content changed.
// The returned error is reserved for the fatal artifact-write class;
// per-site failures only surface in the report.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	log := zap.L().With(zap.String("run_id", report.RunID))

	var draws []model.Draw
	for _, s := range e.reg.All() {
		res := e.runSite(ctx, log, s)
		report.Sites = append(report.Sites, res)
		draws = append(draws, res.Draws...)
	}
	report.Total = len(draws)

	model.SortDraws(draws)
	now := e.opts.Now()
	payload := model.Payload{
		Source:      e.opts.Source,
		LastUpdated: model.NowISO(now),
		Draws:       draws,
	}

	runDate := now.In(scrape.ReferenceZone()).Format(time.DateOnly)
	updated, err := e.pub.Publish(payload, runDate)
	if err != nil {
		return report, eris.Wrap(err, "engine: publish artifacts")
	}
	report.Updated = updated

	log.Info("run complete",
		zap.Int("total_draws", report.Total),
		zap.Bool("updated", updated),
	)
	return report, nil
}

func (e *Engine) runSite(ctx context.Context, log *zap.Logger, s site.Site) SiteResult {
	sLog := log.With(zap.String("site", s.Key()), zap.String("url", s.URL()))
	sLog.Info("scraping site")

	f := e.fetch
	if e.opts.Debug {
		f = &dumpFetcher{inner: e.fetch, pub: e.pub, key: s.Key()}
	}

	start := time.Now()
	draws, err := s.FetchDraws(ctx, f)
	if err != nil {
		sLog.Warn("site failed, contributing zero draws",
			zap.Error(err),
			zap.Duration("elapsed", time.Since(start)),
		)
		return SiteResult{Key: s.Key(), URL: s.URL(), Err: err}
	}

	fields := []zap.Field{
		zap.Int("draws", len(draws)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if len(draws) > 0 {
		d := draws[0]
		fields = append(fields,
			zap.String("example_game", d.Game),
			zap.Strings("example_numbers", d.Numbers),
		)
	}
	sLog.Info("site scraped", fields...)
	return SiteResult{Key: s.Key(), URL: s.URL(), Draws: draws}
}

// dumpFetcher mirrors fetched markup into the debug dump before handing
// it to the site.
type dumpFetcher struct {
	inner fetcher.Fetcher
	pub   *publish.Publisher
	key   string
}

func (d *dumpFetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	html, err := d.inner.FetchHTML(ctx, url)
	if err == nil {
		if derr := d.pub.WriteDebugHTML(d.key, html); derr != nil {
			zap.L().Warn("debug dump failed", zap.String("site", d.key), zap.Error(derr))
		}
	}
	return html, err
}

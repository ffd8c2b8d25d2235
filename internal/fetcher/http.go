package fetcher

import (
	"context"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// browserHeaders shape the request like a regular browser visit; the
// provider pages gate on user agent and language.
var browserHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/127.0.0.0 Safari/127.0",
	"Accept-Language": "es-ES,es;q=0.9",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Referer":         "https://loteriasdominicanas.com/",
}

// HTTPOptions configures the HTTP fetcher.
type HTTPOptions struct {
	Timeout    time.Duration
	RatePerSec float64
}

// HTTPFetcher implements Fetcher on a resty client with the Cloudflare
// bypass transport and a polite shared rate limit (every provider page
// lives on the same host).
type HTTPFetcher struct {
	client  *resty.Client
	limiter *rate.Limiter
}

// NewHTTPFetcher creates a new HTTPFetcher with the given options.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RatePerSec == 0 {
		opts.RatePerSec = 2
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeaders(browserHeaders)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	return &HTTPFetcher{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(opts.RatePerSec), 1),
	}
}

// FetchHTML downloads the page at url and returns its raw markup.
func (f *HTTPFetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", eris.Wrap(err, "rate limiter wait")
	}

	start := time.Now()
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", eris.Wrapf(err, "fetch %s", url)
	}
	if resp.IsError() {
		return "", eris.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode())
	}

	zap.L().Debug("page fetched",
		zap.String("url", url),
		zap.Int("bytes", len(resp.Body())),
		zap.Duration("elapsed", time.Since(start)),
	)
	return resp.String(), nil
}

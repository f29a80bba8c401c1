// Package fetcher retrieves post pages and expands redirecting share links.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"video-proxy-go/pkg/httpclient"
	"video-proxy-go/pkg/interfaces"
	"video-proxy-go/pkg/logging"
	"video-proxy-go/pkg/types"
	"video-proxy-go/pkg/urlutil"
)

// PageSource is an alternative way to obtain a page, used when the direct
// fetch errors or is refused.
type PageSource interface {
	FetchPage(ctx context.Context, targetURL string) (*types.Page, error)
}

// Fetcher issues browser-like GETs against platform hosts.
type Fetcher struct {
	client   interfaces.HTTPClient
	fallback PageSource
	log      *logging.Logger
}

// New creates a new Fetcher.
func New(client interfaces.HTTPClient, log *logging.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		log:    log.WithComponent("fetcher"),
	}
}

// WithFallback sets the page source tried after a failed direct fetch.
func (f *Fetcher) WithFallback(src PageSource) *Fetcher {
	f.fallback = src
	return f
}

func newRequest(ctx context.Context, targetURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = httpclient.BrowserHeaders(req.URL.Hostname())
	return req, nil
}

// FetchPage GETs targetURL following redirects and returns the status and
// full body. Non-success statuses are not errors; callers judge the page.
func (f *Fetcher) FetchPage(ctx context.Context, targetURL string) (*types.Page, error) {
	page, err := f.fetchDirect(ctx, targetURL)
	if f.fallback == nil || (err == nil && page.StatusCode < http.StatusBadRequest) {
		return page, err
	}

	f.log.Debug("direct fetch refused, trying fallback source", "url", targetURL, "error", err)
	alt, altErr := f.fallback.FetchPage(ctx, targetURL)
	if altErr != nil {
		f.log.Warn("fallback source failed", "url", targetURL, "error", altErr)
		return page, err
	}
	return alt, nil
}

func (f *Fetcher) fetchDirect(ctx context.Context, targetURL string) (*types.Page, error) {
	req, err := newRequest(ctx, targetURL)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	finalURL := targetURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	f.log.Debug("page fetched", "url", targetURL, "final_url", finalURL, "status", resp.StatusCode, "bytes", len(body))

	return &types.Page{
		URL:        finalURL,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

// ResolveRedirects follows redirects by hand, at most maxHops of them, and
// returns the URL where the chain stopped. A 3xx without Location ends the
// chain. Running out of hops is not an error: the last URL reached is returned.
func (f *Fetcher) ResolveRedirects(ctx context.Context, targetURL string, maxHops int) (string, error) {
	current := targetURL
	for hop := 0; hop < maxHops; hop++ {
		req, err := newRequest(ctx, current)
		if err != nil {
			return current, err
		}

		resp, err := f.client.DoNoRedirect(req)
		if err != nil {
			return current, fmt.Errorf("failed to resolve %s: %w", current, err)
		}
		resp.Body.Close()

		if resp.StatusCode < 300 || resp.StatusCode >= 400 {
			return current, nil
		}

		location := resp.Header.Get("Location")
		if location == "" {
			return current, nil
		}

		next := urlutil.ResolveURL(location, current)
		f.log.Debug("redirect", "hop", hop+1, "from", current, "to", next)
		current = next
	}

	f.log.Debug("redirect hop limit reached", "url", current, "max_hops", maxHops)
	return current, nil
}

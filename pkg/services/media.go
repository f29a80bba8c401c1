// Package services composes the fetch, extract and download flows behind the
// HTTP handlers and the CLI.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"video-proxy-go/pkg/config"
	"video-proxy-go/pkg/fallback"
	"video-proxy-go/pkg/logging"
	"video-proxy-go/pkg/platform"
	"video-proxy-go/pkg/registry"
	"video-proxy-go/pkg/types"
)

var (
	// ErrInvalidURL is returned for a url parameter that is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid url")

	// ErrUpstream is returned when no candidate host yields a usable page.
	ErrUpstream = errors.New("upstream error or login required")

	// ErrNoMedia is returned when the page was fetched but held no video URL.
	ErrNoMedia = errors.New("no downloadable video found (public posts only)")
)

// UnsupportedHostError is returned by Extract for hosts with no extractor.
type UnsupportedHostError struct {
	Host string
}

func (e *UnsupportedHostError) Error() string {
	return "Host not supported: " + e.Host
}

// errorPageRe matches the interstitial Facebook serves instead of a post.
var errorPageRe = regexp.MustCompile(`(?i)Sorry[^<]{0,50}went wrong`)

// PageFetcher retrieves pages and expands redirect chains.
type PageFetcher interface {
	FetchPage(ctx context.Context, targetURL string) (*types.Page, error)
	ResolveRedirects(ctx context.Context, targetURL string, maxHops int) (string, error)
}

// StreamOpener opens an upstream media stream.
type StreamOpener interface {
	Open(ctx context.Context, mediaURL, rangeHeader string) (*types.StreamResponse, error)
}

// MediaService handles raw fetches, extraction and downloads.
type MediaService struct {
	log           *logging.Logger
	fetcher       PageFetcher
	relay         StreamOpener
	extractors    *registry.ExtractorRegistry
	maxHops       int
	minBodyLength int
}

// NewMediaService creates a new media service.
func NewMediaService(
	cfg *config.Config,
	log *logging.Logger,
	fetcher PageFetcher,
	relay StreamOpener,
	extractors *registry.ExtractorRegistry,
) *MediaService {
	return &MediaService{
		log:           log.WithComponent("media-service"),
		fetcher:       fetcher,
		relay:         relay,
		extractors:    extractors,
		maxHops:       cfg.MaxRedirectHops,
		minBodyLength: cfg.MinBodyLength,
	}
}

// ValidateURL checks that rawURL is an absolute http or https URL.
func ValidateURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}
	return u, nil
}

// FetchRaw returns the HTML of the first candidate host that answers with a
// non-error status and is not an error page. Only Facebook share links are
// expanded first.
func (s *MediaService) FetchRaw(ctx context.Context, rawURL string) (string, error) {
	if _, err := ValidateURL(rawURL); err != nil {
		return "", err
	}

	target := rawURL
	if platform.IsFacebookShareLink(target) {
		resolved, err := s.fetcher.ResolveRedirects(ctx, target, s.maxHops)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		target = resolved
	}

	page, used, err := fallback.FirstSuccess(ctx, platform.AltHosts(target), func(ctx context.Context, candidate string) (*types.Page, error) {
		page, err := s.fetcher.FetchPage(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if page.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("status %d", page.StatusCode)
		}
		if errorPageRe.MatchString(page.Body) {
			return nil, errors.New("error page")
		}
		return page, nil
	})
	if err != nil {
		s.log.Debug("raw fetch failed", "url", target, "error", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	s.log.Debug("raw fetch succeeded", "url", target, "candidate", used, "bytes", len(page.Body))
	return page.Body, nil
}

// Extract resolves rawURL, fetches the post page and runs the matching
// platform extractor over it.
func (s *MediaService) Extract(ctx context.Context, rawURL string) (*types.ExtractionResult, error) {
	if _, err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	target, err := s.fetcher.ResolveRedirects(ctx, rawURL, s.maxHops)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	host := platform.HostOf(target)
	extractor := s.extractors.Get(host)
	if extractor == nil {
		return nil, &UnsupportedHostError{Host: host}
	}

	page, used, err := fallback.FirstSuccess(ctx, platform.AltHosts(target), func(ctx context.Context, candidate string) (*types.Page, error) {
		page, err := s.fetcher.FetchPage(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if page.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("status %d", page.StatusCode)
		}
		if len(page.Body) <= s.minBodyLength {
			return nil, fmt.Errorf("body too short (%d bytes)", len(page.Body))
		}
		return page, nil
	})
	if err != nil {
		s.log.Debug("extract fetch failed", "url", target, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	result := extractor.Extract(page.Body)
	s.log.Debug("extracted",
		"platform", result.Platform,
		"candidate", used,
		"urls", len(result.URLs),
		"best", result.BestURL)

	if result.BestURL == "" {
		return nil, ErrNoMedia
	}
	return result, nil
}

// Download opens mediaURL upstream for relaying to the client.
func (s *MediaService) Download(ctx context.Context, mediaURL, rangeHeader string) (*types.StreamResponse, error) {
	if _, err := ValidateURL(mediaURL); err != nil {
		return nil, err
	}
	return s.relay.Open(ctx, mediaURL, rangeHeader)
}

// Platforms lists the platforms with a registered extractor.
func (s *MediaService) Platforms() []types.Platform {
	return s.extractors.Platforms()
}

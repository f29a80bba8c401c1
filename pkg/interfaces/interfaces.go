// Package interfaces defines the core abstractions for the proxy.
package interfaces

import (
	"net/http"

	"video-proxy-go/pkg/types"
)

// Extractor pulls media URLs out of one platform's post HTML.
// Extract is pure and never fails; a page with nothing usable yields a result
// with no URLs and an empty BestURL.
//
// To add a new extractor:
// 1. Create a new file in pkg/extractors/
// 2. Implement this interface
// 3. Register it in the ExtractorRegistry
type Extractor interface {
	// Name returns the platform this extractor serves.
	Name() types.Platform

	// CanExtract returns true if this extractor handles the given host.
	CanExtract(host string) bool

	// Extract runs the platform's probes over the page HTML.
	Extract(html string) *types.ExtractionResult
}

// HTTPClient abstracts HTTP operations for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
	DoNoRedirect(req *http.Request) (*http.Response, error)
	Stream(req *http.Request) (*http.Response, error)
}

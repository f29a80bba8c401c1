// Package registry provides the platform extractor registry.
package registry

import (
	"sync"

	"video-proxy-go/pkg/interfaces"
	"video-proxy-go/pkg/types"
)

// ExtractorRegistry manages platform extractors. There is no fallback:
// hosts no extractor claims are unsupported.
type ExtractorRegistry struct {
	mu         sync.RWMutex
	extractors []interfaces.Extractor
}

// NewExtractorRegistry creates a new extractor registry.
func NewExtractorRegistry() *ExtractorRegistry {
	return &ExtractorRegistry{
		extractors: make([]interfaces.Extractor, 0),
	}
}

// Register adds an extractor to the registry.
func (r *ExtractorRegistry) Register(extractor interfaces.Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors = append(r.extractors, extractor)
}

// Get returns the extractor for a normalized host, or nil.
func (r *ExtractorRegistry) Get(host string) interfaces.Extractor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.extractors {
		if e.CanExtract(host) {
			return e
		}
	}
	return nil
}

// Platforms lists the registered platforms in registration order.
func (r *ExtractorRegistry) Platforms() []types.Platform {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]types.Platform, 0, len(r.extractors))
	for _, e := range r.extractors {
		result = append(result, e.Name())
	}
	return result
}

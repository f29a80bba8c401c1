// Package extractors provides per-platform media extractors.
// Each extractor is an ordered list of independent probes over the post HTML;
// markup on these sites is undocumented and changes often, so every probe is
// optional and a page that matches nothing yields an empty result.
//
// To add a new extractor:
// 1. Create a new file (e.g., myplatform.go)
// 2. Describe its probes in a BaseExtractor
// 3. Register it in the registry (see internal/app)
package extractors

import (
	"video-proxy-go/pkg/media"
	"video-proxy-go/pkg/platform"
	"video-proxy-go/pkg/types"
)

// BaseExtractor runs a platform's probe lists and assembles the result.
// Media probes are all collected; title and thumbnail probes are first-wins.
type BaseExtractor struct {
	platform types.Platform
	media    []ListProbe
	title    []Probe
	thumb    []Probe
}

// Name returns the platform served.
func (b *BaseExtractor) Name() types.Platform {
	return b.platform
}

// CanExtract returns true for hosts belonging to the platform.
func (b *BaseExtractor) CanExtract(host string) bool {
	p, ok := platform.Detect(host)
	return ok && p == b.platform
}

// Extract runs the probes over html. It never fails.
func (b *BaseExtractor) Extract(html string) *types.ExtractionResult {
	page := NewPage(html)

	candidates := media.ToCandidates(Collect(page, b.media...))

	return &types.ExtractionResult{
		Platform: b.platform,
		Title:    First(page, b.title...).OrElse(""),
		Thumb:    First(page, b.thumb...).OrElse(""),
		URLs:     candidates,
		BestURL:  media.PickBest(candidates),
	}
}

// Open Graph probes shared by every platform.
var (
	ogVideo = OpenGraph("video")
	ogTitle = OpenGraph("title")
	ogImage = OpenGraph("image")
)

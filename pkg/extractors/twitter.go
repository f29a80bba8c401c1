package extractors

import (
	"regexp"

	"video-proxy-go/pkg/interfaces"
	"video-proxy-go/pkg/types"
)

// mp4VariantRe matches every mp4 variant of a tweet's video; the slash in the
// content type may or may not be escaped.
var mp4VariantRe = regexp.MustCompile(`(?i)"content_type":"video(?:\\/|/)mp4","url":"(https:[^"]+?)"`)

// TwitterExtractor handles twitter.com and x.com status pages.
type TwitterExtractor struct {
	*BaseExtractor
}

// NewTwitterExtractor creates a new Twitter/X extractor.
func NewTwitterExtractor() *TwitterExtractor {
	return &TwitterExtractor{
		BaseExtractor: &BaseExtractor{
			platform: types.PlatformTwitter,
			media: []ListProbe{
				RegexAll(mp4VariantRe),
				ogVideo.List(),
			},
			title: []Probe{ogTitle, Meta("name", "twitter:title")},
			thumb: []Probe{ogImage, Meta("name", "twitter:image")},
		},
	}
}

var _ interfaces.Extractor = (*TwitterExtractor)(nil)

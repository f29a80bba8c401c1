package extractors

import (
	"regexp"

	"video-proxy-go/pkg/interfaces"
	"video-proxy-go/pkg/types"
)

// InstagramExtractor handles public posts and reels.
type InstagramExtractor struct {
	*BaseExtractor
}

// NewInstagramExtractor creates a new Instagram extractor.
func NewInstagramExtractor() *InstagramExtractor {
	return &InstagramExtractor{
		BaseExtractor: &BaseExtractor{
			platform: types.PlatformInstagram,
			media: []ListProbe{
				Regex(regexp.MustCompile(`(?i)"video_url":"(https:[^"]+)"`)).List(),
				Regex(regexp.MustCompile(`(?i)"video_versions":\[\{[^\]]*?"url":"(https:[^"]+)"`)).List(),
				ScriptJSON(`script[type="application/ld+json"]`,
					[]string{"contentUrl"},
					[]string{"video", "[0]", "contentUrl"},
					[]string{"video", "contentUrl"},
				).List(),
				ogVideo.List(),
			},
			title: []Probe{ogTitle},
			thumb: []Probe{ogImage},
		},
	}
}

var _ interfaces.Extractor = (*InstagramExtractor)(nil)

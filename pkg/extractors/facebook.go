package extractors

import (
	"regexp"

	"video-proxy-go/pkg/interfaces"
	"video-proxy-go/pkg/types"
)

// FacebookExtractor reads the video URLs Facebook inlines in its page JSON.
type FacebookExtractor struct {
	*BaseExtractor
}

// NewFacebookExtractor creates a new Facebook extractor.
func NewFacebookExtractor() *FacebookExtractor {
	return &FacebookExtractor{
		BaseExtractor: &BaseExtractor{
			platform: types.PlatformFacebook,
			media: []ListProbe{
				Regex(regexp.MustCompile(`(?i)"browser_native_hd_url":"(https:[^"]+)"`)).List(),
				Regex(regexp.MustCompile(`(?i)"browser_native_sd_url":"(https:[^"]+)"`)).List(),
				Regex(regexp.MustCompile(`(?i)"playable_url_quality_hd":"(https:[^"]+)"`)).List(),
				Regex(regexp.MustCompile(`(?i)"playable_url":"(https:[^"]+)"`)).List(),
				// older watch pages
				Regex(regexp.MustCompile(`(?i)"hd_src":"(https:[^"]+)"`)).List(),
				Regex(regexp.MustCompile(`(?i)"sd_src":"(https:[^"]+)"`)).List(),
				ogVideo.List(),
			},
			title: []Probe{ogTitle},
			thumb: []Probe{ogImage},
		},
	}
}

var _ interfaces.Extractor = (*FacebookExtractor)(nil)

package extractors

import (
	"regexp"

	"video-proxy-go/pkg/interfaces"
	"video-proxy-go/pkg/types"
)

// tiktokItemVideo is the key path to the video object inside the
// rehydration blob of a /video/ page.
var tiktokItemVideo = []string{"__DEFAULT_SCOPE__", "webapp.video-detail", "itemInfo", "itemStruct", "video"}

// TikTokExtractor handles public video pages. downloadAddr is usually
// watermarked, so playAddr is probed first.
type TikTokExtractor struct {
	*BaseExtractor
}

// NewTikTokExtractor creates a new TikTok extractor.
func NewTikTokExtractor() *TikTokExtractor {
	return &TikTokExtractor{
		BaseExtractor: &BaseExtractor{
			platform: types.PlatformTikTok,
			media: []ListProbe{
				Regex(regexp.MustCompile(`(?i)"playAddr":"(https:[^"]+?)"`)).List(),
				Regex(regexp.MustCompile(`(?i)"downloadAddr":"(https:[^"]+?)"`)).List(),
				ScriptJSON(`script#__UNIVERSAL_DATA_FOR_REHYDRATION__`,
					append(append([]string{}, tiktokItemVideo...), "playAddr"),
					append(append([]string{}, tiktokItemVideo...), "downloadAddr"),
				).List(),
				ogVideo.List(),
			},
			title: []Probe{ogTitle},
			thumb: []Probe{ogImage},
		},
	}
}

var _ interfaces.Extractor = (*TikTokExtractor)(nil)

// Package types defines core domain types used throughout the application.
package types

import "io"

// Platform identifies a supported social-media site.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformTwitter   Platform = "twitter"
)

// MediaLabel is a quality guess derived from substrings of a media URL.
type MediaLabel string

const (
	LabelHD    MediaLabel = "HD"
	Label720p  MediaLabel = "720p"
	LabelSD    MediaLabel = "SD"
	LabelVideo MediaLabel = "Video"
)

// MediaCandidate is one discovered media URL. Bitrate is zero when unknown.
type MediaCandidate struct {
	URL     string     `json:"url"`
	Label   MediaLabel `json:"label"`
	Bitrate int        `json:"bitrate,omitempty"`
}

// ExtractionResult is what a platform extractor found on a page.
// BestURL is empty when nothing usable was found.
type ExtractionResult struct {
	Platform Platform         `json:"platform"`
	Title    string           `json:"title"`
	Thumb    string           `json:"thumb"`
	URLs     []MediaCandidate `json:"urls"`
	BestURL  string           `json:"bestUrl"`
}

// Page is a fetched upstream document.
type Page struct {
	URL        string
	StatusCode int
	Body       string
}

// StreamResponse represents the result of stream processing.
type StreamResponse struct {
	ContentType string
	Headers     map[string]string
	Body        io.ReadCloser
	StatusCode  int
}

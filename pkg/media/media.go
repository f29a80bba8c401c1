// Package media turns raw media URLs into labelled candidates and picks the
// best one. Labels and bitrates are guesses from URL substrings.
package media

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"video-proxy-go/pkg/types"
	"video-proxy-go/pkg/urlutil"
)

var (
	bitrateRe   = regexp.MustCompile(`(?i)(?:bitrate|br)=?(\d{3,6})`)
	preferredRe = regexp.MustCompile(`(?i)hd|1080|720`)
)

// Unique drops empty entries and entries that differ from an earlier one only
// by fragment, keeping first-seen order.
func Unique(urls []string) []string {
	nonEmpty := lo.Filter(urls, func(u string, _ int) bool { return u != "" })
	return lo.UniqBy(nonEmpty, urlutil.StripFragment)
}

// GuessLabel classifies a URL by the quality markers it contains.
func GuessLabel(u string) types.MediaLabel {
	s := strings.ToLower(u)
	switch {
	case strings.Contains(s, "hd"), strings.Contains(s, "1080"):
		return types.LabelHD
	case strings.Contains(s, "720"):
		return types.Label720p
	case strings.Contains(s, "480"), strings.Contains(s, "sd"), strings.Contains(s, "360"):
		return types.LabelSD
	}
	return types.LabelVideo
}

// GuessBitrate returns a bitrate embedded in the URL, or 0.
func GuessBitrate(u string) int {
	m := bitrateRe.FindStringSubmatch(u)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// ToCandidates deduplicates urls and annotates each with a label and bitrate.
func ToCandidates(urls []string) []types.MediaCandidate {
	return lo.Map(Unique(urls), func(u string, _ int) types.MediaCandidate {
		return types.MediaCandidate{
			URL:     u,
			Label:   GuessLabel(u),
			Bitrate: GuessBitrate(u),
		}
	})
}

// PickBest chooses, in order of preference: the highest known bitrate (first
// wins on ties), the first HD/720p label, the first entry. Empty input gives "".
func PickBest(list []types.MediaCandidate) string {
	if len(list) == 0 {
		return ""
	}

	withBitrate := lo.Filter(list, func(c types.MediaCandidate, _ int) bool { return c.Bitrate > 0 })
	if len(withBitrate) > 0 {
		best := lo.MaxBy(withBitrate, func(a, b types.MediaCandidate) bool { return a.Bitrate > b.Bitrate })
		return best.URL
	}

	if hd, ok := lo.Find(list, func(c types.MediaCandidate) bool { return preferredRe.MatchString(string(c.Label)) }); ok {
		return hd.URL
	}

	return list[0].URL
}

// Package platform maps hostnames to supported platforms and builds the
// ordered list of alternate hosts to try for a post URL.
package platform

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"video-proxy-go/pkg/types"
	"video-proxy-go/pkg/urlutil"
)

// facebookFallbackHosts are tried after the original URL, in this order.
var facebookFallbackHosts = []string{"m.facebook.com", "mbasic.facebook.com"}

var shareLinkRe = regexp.MustCompile(`(?i)/share/`)

// NormHost lower-cases a hostname and strips a leading "www.".
func NormHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}

// HostOf returns the normalized host of rawURL, or "" if it does not parse.
func HostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return NormHost(u.Hostname())
}

// Detect returns the platform served by a normalized host.
func Detect(host string) (types.Platform, bool) {
	host = NormHost(host)
	switch {
	case hasDomain(host, "facebook.com"):
		return types.PlatformFacebook, true
	case hasDomain(host, "instagram.com"):
		return types.PlatformInstagram, true
	case hasDomain(host, "tiktok.com"):
		return types.PlatformTikTok, true
	case hasDomain(host, "twitter.com"), host == "x.com":
		return types.PlatformTwitter, true
	}
	return "", false
}

// hasDomain reports whether host is domain or one of its subdomains.
func hasDomain(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// IsFacebook reports whether rawURL points at a Facebook host.
func IsFacebook(rawURL string) bool {
	p, ok := Detect(HostOf(rawURL))
	return ok && p == types.PlatformFacebook
}

// IsFacebookShareLink reports whether rawURL is a Facebook /share/ link that
// must be expanded before fetching.
func IsFacebookShareLink(rawURL string) bool {
	return IsFacebook(rawURL) && shareLinkRe.MatchString(rawURL)
}

// AltHosts returns rawURL followed by the same path/query/fragment on the
// mobile and basic Facebook hosts. Other platforms get rawURL alone.
func AltHosts(rawURL string) []string {
	u, err := url.Parse(rawURL)
	if err != nil || !IsFacebook(rawURL) {
		return []string{rawURL}
	}

	rest := urlutil.PathAndAfter(u)
	list := []string{rawURL}
	for _, host := range facebookFallbackHosts {
		list = append(list, "https://"+host+rest)
	}
	return lo.Uniq(list)
}

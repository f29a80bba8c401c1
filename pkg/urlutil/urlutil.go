// Package urlutil provides small URL helpers.
package urlutil

import (
	"net/url"
	"strings"
)

// ResolveURL resolves a possibly relative reference, such as a Location
// header, against baseURL. Unparseable input is returned unchanged.
func ResolveURL(urlStr string, baseURL string) string {
	ref, err := url.Parse(urlStr)
	if err != nil {
		return urlStr
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return urlStr
	}
	return base.ResolveReference(ref).String()
}

// StripFragment removes everything from the first '#'.
func StripFragment(urlStr string) string {
	if idx := strings.Index(urlStr, "#"); idx >= 0 {
		return urlStr[:idx]
	}
	return urlStr
}

// PathAndAfter returns the path, query and fragment of a URL exactly as written.
func PathAndAfter(u *url.URL) string {
	s := u.EscapedPath()
	if u.RawQuery != "" || u.ForceQuery {
		s += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		s += "#" + u.EscapedFragment()
	}
	return s
}

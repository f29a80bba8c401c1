package httpclient

import "net/http"

// DefaultUserAgent is the desktop Chrome UA sent with every upstream request.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

const documentAccept = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8"

// BrowserHeaders returns a navigation-style header set with the Referer
// pointing at the target host.
func BrowserHeaders(host string) http.Header {
	h := make(http.Header)
	h.Set("User-Agent", DefaultUserAgent)
	h.Set("Accept", documentAccept)
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("Cache-Control", "no-cache")
	h.Set("Pragma", "no-cache")
	h.Set("Upgrade-Insecure-Requests", "1")
	h.Set("Referer", "https://"+host+"/")
	h.Set("Sec-Fetch-Site", "same-origin")
	h.Set("Sec-Fetch-Mode", "navigate")
	h.Set("Sec-Fetch-User", "?1")
	h.Set("Sec-Fetch-Dest", "document")
	return h
}

// DownloadHeaders is BrowserHeaders with a media-friendly Accept.
func DownloadHeaders(host string) http.Header {
	h := BrowserHeaders(host)
	h.Set("Accept", "*/*")
	return h
}

package streams

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"

	"video-proxy-go/pkg/httpclient"
	"video-proxy-go/pkg/interfaces"
	"video-proxy-go/pkg/logging"
	"video-proxy-go/pkg/types"
)

const fallbackFilename = "video.mp4"

var (
	dispositionNameRe = regexp.MustCompile(`(?i)filename\*?=(?:UTF-8'')?["']?([^"';]+)["']?`)
	videoExtRe        = regexp.MustCompile(`(?i)\.(mp4|mov|m4v|webm)$`)
)

// Relay streams a media URL from upstream to the client.
type Relay struct {
	client interfaces.HTTPClient
	log    *logging.Logger
}

// NewRelay creates a new stream relay.
func NewRelay(client interfaces.HTTPClient, log *logging.Logger) *Relay {
	return &Relay{
		client: client,
		log:    log.WithComponent("relay"),
	}
}

// Open requests mediaURL upstream, forwarding rangeHeader when set, and
// returns the response ready to be copied to the client. The caller owns
// the returned body.
func (r *Relay) Open(ctx context.Context, mediaURL, rangeHeader string) (*types.StreamResponse, error) {
	r.log.Debug("opening stream", "url", mediaURL, "range", rangeHeader)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header = httpclient.DownloadHeaders(httpReq.URL.Hostname())
	if rangeHeader != "" {
		httpReq.Header.Set("Range", rangeHeader)
	}

	resp, err := r.client.Stream(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stream: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	finalURL := mediaURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	headers := make(map[string]string)
	for _, key := range []string{"Content-Length", "Content-Range", "Accept-Ranges"} {
		if v := resp.Header.Get(key); v != "" {
			headers[key] = v
		}
	}
	name := pickFilename(resp.Header.Get("Content-Disposition"), finalURL)
	headers["Content-Disposition"] = `attachment; filename="` + strings.ReplaceAll(name, `"`, "") + `"`

	r.log.Debug("stream opened", "url", finalURL, "status", resp.StatusCode, "filename", name)

	return &types.StreamResponse{
		ContentType: contentType,
		Body:        resp.Body,
		StatusCode:  resp.StatusCode,
		Headers:     headers,
	}, nil
}

// pickFilename prefers the upstream Content-Disposition name, then the last
// path segment of the media URL, then a fixed name.
func pickFilename(disposition, mediaURL string) string {
	if m := dispositionNameRe.FindStringSubmatch(disposition); m != nil {
		name := strings.TrimSpace(m[1])
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}
		if name != "" {
			return name
		}
	}

	u, err := url.Parse(mediaURL)
	if err != nil {
		return fallbackFilename
	}
	if u.Path == "" || strings.HasSuffix(u.Path, "/") {
		return fallbackFilename
	}
	segment := path.Base(u.Path)
	if decoded, err := url.PathUnescape(segment); err == nil {
		segment = decoded
	}
	if !videoExtRe.MatchString(segment) {
		segment += ".mp4"
	}
	return segment
}

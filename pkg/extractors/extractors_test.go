package extractors

import (
	"reflect"
	"strings"
	"testing"

	"video-proxy-go/pkg/types"
)

// jsonAmp is the JSON escape for '&' as it appears inline in page source.
const jsonAmp = `\` + "u0026"

func esc(s string) string {
	return strings.ReplaceAll(s, "&", jsonAmp)
}

func urlsOf(r *types.ExtractionResult) []string {
	out := make([]string, 0, len(r.URLs))
	for _, c := range r.URLs {
		out = append(out, c.URL)
	}
	return out
}

func TestUnescapeJSONish(t *testing.T) {
	in := `https:\/\/cdn.example.com\/v.mp4?a=1` + jsonAmp + `b` + `\` + `u003d2` + `\` + `u002Fx` + `\"`
	want := `https://cdn.example.com/v.mp4?a=1&b=2/x"`
	if got := UnescapeJSONish(in); got != want {
		t.Errorf("UnescapeJSONish() = %q, want %q", got, want)
	}
}

func TestFacebookExtractor(t *testing.T) {
	html := `<html><head>
<meta property="og:title" content="Sunset reel" />
<meta property="og:image" content="https://scontent.xx.fbcdn.net/thumb.jpg" />
</head><body><script>{"browser_native_hd_url":"` + esc(`https:\/\/video.xx.fbcdn.net\/v\/hd.mp4?efg=1&oh=abc`) +
		`","browser_native_sd_url":"https:\/\/video.xx.fbcdn.net\/v\/sd.mp4","playable_url":"https:\/\/video.xx.fbcdn.net\/v\/sd.mp4"}</script></body></html>`

	r := NewFacebookExtractor().Extract(html)

	want := []string{
		"https://video.xx.fbcdn.net/v/hd.mp4?efg=1&oh=abc",
		"https://video.xx.fbcdn.net/v/sd.mp4",
	}
	if got := urlsOf(r); !reflect.DeepEqual(got, want) {
		t.Fatalf("urls = %v, want %v", got, want)
	}
	if r.Platform != types.PlatformFacebook {
		t.Errorf("platform = %q", r.Platform)
	}
	if r.Title != "Sunset reel" {
		t.Errorf("title = %q", r.Title)
	}
	if r.Thumb != "https://scontent.xx.fbcdn.net/thumb.jpg" {
		t.Errorf("thumb = %q", r.Thumb)
	}
	if r.BestURL != want[0] {
		t.Errorf("bestUrl = %q, want %q", r.BestURL, want[0])
	}
}

func TestFacebookExtractor_OpenGraphFallback(t *testing.T) {
	html := `<html><head><meta property="og:video" content="https://video.xx.fbcdn.net/v/og.mp4?a=1&amp;b=2"></head></html>`

	r := NewFacebookExtractor().Extract(html)

	if r.BestURL != "https://video.xx.fbcdn.net/v/og.mp4?a=1&b=2" {
		t.Errorf("bestUrl = %q", r.BestURL)
	}
}

func TestInstagramExtractor(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "video_url field",
			html: `<script>{"video_url":"` + esc(`https:\/\/scontent.cdninstagram.com\/v\/reel.mp4?_nc_ht=x&oe=1`) + `"}</script>`,
			want: []string{"https://scontent.cdninstagram.com/v/reel.mp4?_nc_ht=x&oe=1"},
		},
		{
			name: "video_versions list",
			html: `<script>{"video_versions":[{"type":101,"width":720,"url":"https:\/\/scontent.cdninstagram.com\/v\/a.mp4"}]}</script>`,
			want: []string{"https://scontent.cdninstagram.com/v/a.mp4"},
		},
		{
			name: "ld+json contentUrl",
			html: `<html><head><script type="application/ld+json">{"@type":"VideoObject","contentUrl":"https://scontent.cdninstagram.com/v/ld.mp4"}</script></head></html>`,
			want: []string{"https://scontent.cdninstagram.com/v/ld.mp4"},
		},
		{
			name: "ld+json nested video array",
			html: `<html><head><script type="application/ld+json">{"@type":"SocialMediaPosting","video":[{"contentUrl":"https://scontent.cdninstagram.com/v/nested.mp4"}]}</script></head></html>`,
			want: []string{"https://scontent.cdninstagram.com/v/nested.mp4"},
		},
		{
			name: "og:video and video_url duplicate collapse",
			html: `<html><head><meta property="og:video" content="https://scontent.cdninstagram.com/v/reel.mp4"></head>
<body><script>{"video_url":"https:\/\/scontent.cdninstagram.com\/v\/reel.mp4"}</script></body></html>`,
			want: []string{"https://scontent.cdninstagram.com/v/reel.mp4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewInstagramExtractor().Extract(tt.html)
			if got := urlsOf(r); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("urls = %v, want %v", got, tt.want)
			}
			if r.BestURL != tt.want[0] {
				t.Errorf("bestUrl = %q, want %q", r.BestURL, tt.want[0])
			}
		})
	}
}

func TestTikTokExtractor(t *testing.T) {
	html := `<html><head><meta property="og:title" content="dance"></head><body>
<script>{"video":{"playAddr":"` + esc(`https:\/\/v16-webapp.tiktok.com\/play\/?a=1988&br=1200`) +
		`","downloadAddr":"https:\/\/v16-webapp.tiktok.com\/dl\/?br=800"}}</script></body></html>`

	r := NewTikTokExtractor().Extract(html)

	want := []string{
		"https://v16-webapp.tiktok.com/play/?a=1988&br=1200",
		"https://v16-webapp.tiktok.com/dl/?br=800",
	}
	if got := urlsOf(r); !reflect.DeepEqual(got, want) {
		t.Fatalf("urls = %v, want %v", got, want)
	}
	if r.BestURL != want[0] {
		t.Errorf("bestUrl = %q, want highest bitrate %q", r.BestURL, want[0])
	}
	if r.Title != "dance" {
		t.Errorf("title = %q", r.Title)
	}
}

func TestTikTokExtractor_RehydrationBlob(t *testing.T) {
	html := `<html><body><script id="__UNIVERSAL_DATA_FOR_REHYDRATION__" type="application/json">` +
		`{"__DEFAULT_SCOPE__":{"webapp.video-detail":{"itemInfo":{"itemStruct":{"video":{"playAddr":"https:\/\/v19.tiktokcdn.com\/blob.mp4"}}}}}}` +
		`</script></body></html>`

	r := NewTikTokExtractor().Extract(html)

	if r.BestURL != "https://v19.tiktokcdn.com/blob.mp4" {
		t.Errorf("bestUrl = %q", r.BestURL)
	}
}

func TestTwitterExtractor(t *testing.T) {
	html := `<html><head><meta name="twitter:title" content="a tweet"><meta name="twitter:image" content="https://pbs.twimg.com/t.jpg"></head><body><script>
{"variants":[{"bitrate":256000,"content_type":"video/mp4","url":"https:\/\/video.twimg.com\/ext_tw_video\/1\/pu\/vid\/480x270\/low.mp4"},
{"content_type":"application/x-mpegURL","url":"https:\/\/video.twimg.com\/pl.m3u8"},
{"bitrate":2176000,"content_type":"video\/mp4","url":"https:\/\/video.twimg.com\/ext_tw_video\/1\/pu\/vid\/1280x720\/high.mp4"}]}
</script></body></html>`

	r := NewTwitterExtractor().Extract(html)

	want := []string{
		"https://video.twimg.com/ext_tw_video/1/pu/vid/480x270/low.mp4",
		"https://video.twimg.com/ext_tw_video/1/pu/vid/1280x720/high.mp4",
	}
	if got := urlsOf(r); !reflect.DeepEqual(got, want) {
		t.Fatalf("urls = %v, want %v", got, want)
	}
	if r.BestURL != want[1] {
		t.Errorf("bestUrl = %q, want the 720p variant %q", r.BestURL, want[1])
	}
	if r.Title != "a tweet" || r.Thumb != "https://pbs.twimg.com/t.jpg" {
		t.Errorf("title/thumb = %q / %q", r.Title, r.Thumb)
	}
}

func TestExtractors_NothingFound(t *testing.T) {
	all := []interface {
		Extract(string) *types.ExtractionResult
	}{
		NewFacebookExtractor(),
		NewInstagramExtractor(),
		NewTikTokExtractor(),
		NewTwitterExtractor(),
	}

	for _, e := range all {
		r := e.Extract(`<html><head><title>Log in</title></head><body>nothing here</body></html>`)
		if len(r.URLs) != 0 || r.BestURL != "" {
			t.Errorf("%s: expected empty result, got %+v", r.Platform, r)
		}
		if r.URLs == nil {
			t.Errorf("%s: urls should be an empty list, not nil", r.Platform)
		}
		if r.Title != "" || r.Thumb != "" {
			t.Errorf("%s: title/thumb should be empty", r.Platform)
		}
	}
}

func TestCanExtract(t *testing.T) {
	tests := []struct {
		host string
		fb   bool
		tw   bool
	}{
		{"facebook.com", true, false},
		{"mbasic.facebook.com", true, false},
		{"x.com", false, true},
		{"twitter.com", false, true},
		{"instagram.com", false, false},
	}

	fb := NewFacebookExtractor()
	tw := NewTwitterExtractor()
	for _, tt := range tests {
		if got := fb.CanExtract(tt.host); got != tt.fb {
			t.Errorf("facebook CanExtract(%q) = %v", tt.host, got)
		}
		if got := tw.CanExtract(tt.host); got != tt.tw {
			t.Errorf("twitter CanExtract(%q) = %v", tt.host, got)
		}
	}
}

package extractors

import (
	"regexp"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/buger/jsonparser"
	"github.com/samber/mo"
)

// Page is the HTML under extraction. The goquery document is parsed on first
// use and shared by every probe of one Extract call.
type Page struct {
	html string
	once sync.Once
	doc  *goquery.Document
}

// NewPage wraps raw HTML.
func NewPage(html string) *Page {
	return &Page{html: html}
}

// HTML returns the raw text.
func (p *Page) HTML() string {
	return p.html
}

// Doc returns the parsed document, or nil if the HTML could not be parsed.
func (p *Page) Doc() *goquery.Document {
	p.once.Do(func() {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(p.html))
		if err == nil {
			p.doc = doc
		}
	})
	return p.doc
}

// Probe is one independent lookup against a page.
type Probe func(p *Page) mo.Option[string]

// ListProbe is a lookup that may find several values.
type ListProbe func(p *Page) []string

// List adapts a single-value probe to a ListProbe.
func (probe Probe) List() ListProbe {
	return func(p *Page) []string {
		if v, ok := probe(p).Get(); ok {
			return []string{v}
		}
		return nil
	}
}

// First returns the first present value, trying probes in order.
func First(p *Page, probes ...Probe) mo.Option[string] {
	for _, probe := range probes {
		if v := probe(p); v.IsPresent() {
			return v
		}
	}
	return mo.None[string]()
}

// Collect runs every probe and concatenates what they found, in order.
func Collect(p *Page, probes ...ListProbe) []string {
	var out []string
	for _, probe := range probes {
		out = append(out, probe(p)...)
	}
	return out
}

var jsonishReplacer = strings.NewReplacer(
	`\u0026`, "&",
	`\u003d`, "=",
	`\u003D`, "=",
	`\u002F`, "/",
	`\u002f`, "/",
	`\/`, "/",
	`\"`, `"`,
)

// UnescapeJSONish undoes the JSON string escapes commonly left in URLs that
// were cut out of inline JSON with a regular expression.
func UnescapeJSONish(s string) string {
	return jsonishReplacer.Replace(s)
}

// Regex returns the first capture group of re, JSON-unescaped.
func Regex(re *regexp.Regexp) Probe {
	return func(p *Page) mo.Option[string] {
		m := re.FindStringSubmatch(p.HTML())
		if len(m) < 2 || m[1] == "" {
			return mo.None[string]()
		}
		return mo.Some(UnescapeJSONish(m[1]))
	}
}

// RegexAll returns the first capture group of every match of re, JSON-unescaped.
func RegexAll(re *regexp.Regexp) ListProbe {
	return func(p *Page) []string {
		var out []string
		for _, m := range re.FindAllStringSubmatch(p.HTML(), -1) {
			if len(m) >= 2 && m[1] != "" {
				out = append(out, UnescapeJSONish(m[1]))
			}
		}
		return out
	}
}

// Meta returns the content of the first <meta> whose attr equals key,
// e.g. Meta("property", "og:video").
func Meta(attr, key string) Probe {
	selector := `meta[` + attr + `="` + key + `"]`
	return func(p *Page) mo.Option[string] {
		doc := p.Doc()
		if doc == nil {
			return mo.None[string]()
		}
		var found string
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if content := strings.TrimSpace(s.AttrOr("content", "")); content != "" {
				found = content
				return false
			}
			return true
		})
		if found == "" {
			return mo.None[string]()
		}
		return mo.Some(found)
	}
}

// OpenGraph is shorthand for Meta("property", "og:<name>").
func OpenGraph(name string) Probe {
	return Meta("property", "og:"+name)
}

// ScriptJSON parses the JSON body of every <script> matching selector and
// returns the first string found at any of the key paths, in path order.
// Key path elements follow jsonparser syntax, so "[0]" indexes arrays.
func ScriptJSON(selector string, paths ...[]string) Probe {
	return func(p *Page) mo.Option[string] {
		doc := p.Doc()
		if doc == nil {
			return mo.None[string]()
		}
		blobs := doc.Find(selector).Map(func(_ int, s *goquery.Selection) string {
			return s.Text()
		})
		for _, path := range paths {
			for _, blob := range blobs {
				if v, err := jsonparser.GetString([]byte(blob), path...); err == nil && v != "" {
					return mo.Some(v)
				}
			}
		}
		return mo.None[string]()
	}
}

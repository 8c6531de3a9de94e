// Package analysis turns a raw fetch result into the snapshot the signal
// functions read. Parsing happens once; every signal sees the same Page.
package analysis

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/MOYARU/crs/internal/engine"
)

type Page struct {
	FinalURL    *url.URL
	StatusCode  int
	ContentType string
	UsedHTTPS   bool

	// IsHTML is false for PDFs, images and other opaque content types.
	// Title and Text are only populated when it is true.
	IsHTML  bool
	Title   string
	Text    string
	BodyLen int
}

// NewPage extracts the per-fetch snapshot from a completed fetch.
func NewPage(fr *engine.FetchResult) *Page {
	p := &Page{
		FinalURL:    fr.FinalURL,
		StatusCode:  fr.StatusCode,
		ContentType: fr.ContentType,
		UsedHTTPS:   fr.UsedHTTPS(),
		BodyLen:     len(fr.Body),
	}

	if !strings.Contains(strings.ToLower(fr.ContentType), "text/html") {
		return p
	}

	doc, err := html.Parse(strings.NewReader(string(fr.Body)))
	if err != nil {
		// Treat unparseable HTML like opaque content.
		return p
	}

	p.IsHTML = true
	p.Title = extractTitle(doc)
	p.Text = extractText(doc)
	return p
}

func extractTitle(doc *html.Node) string {
	var title string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			var sb strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			title = strings.TrimSpace(sb.String())
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(doc)
	return title
}

// extractText flattens the visible text of the document, skipping script and
// style subtrees. Runs of whitespace collapse to a single space so length
// thresholds are stable across formatting styles.
func extractText(doc *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(strings.Join(strings.Fields(trimmed), " "))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sb.String()
}

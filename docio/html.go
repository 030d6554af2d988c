package docio

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

// readHTML extracts visible text from an HTML document, one block element
// per line, so header lines like "Skills" survive for the segmenter. Script,
// style, and navigation chrome are skipped.
func readHTML(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("html read failed; returning empty text")
		return ""
	}
	node, err := html.Parse(strings.NewReader(string(b)))
	if err != nil || node == nil {
		log.Warn().Err(err).Str("path", path).Msg("html parse failed; returning empty text")
		return ""
	}
	var sb strings.Builder
	collectText(&sb, node)
	return sb.String()
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "aside", "iframe", "head":
			return
		case "br", "hr":
			b.WriteString("\n")
		case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr", "ul", "ol", "table":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr":
			b.WriteString("\n")
		}
	}
}

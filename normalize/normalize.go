package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Lines produces the line-preserving view of raw extracted text: Unicode is
// normalized to NFC, non-breaking spaces become ordinary spaces, line endings
// become "\n", whitespace runs inside each line collapse to a single space,
// and each line is trimmed. At most one consecutive blank line is kept so
// downstream line heuristics see document structure without noise.
func Lines(raw string) string {
	if raw == "" {
		return ""
	}
	s := norm.NFC.String(raw)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		collapsed := collapseSpaces(line)
		if collapsed == "" {
			// Keep at most one consecutive blank
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			if len(out) == 0 {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, collapsed)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

// Collapse produces the fully whitespace-collapsed view: every maximal run of
// whitespace, newlines included, becomes a single ASCII space and the result
// is trimmed. Empty input yields the empty string; the function never fails.
func Collapse(raw string) string {
	if raw == "" {
		return ""
	}
	s := norm.NFC.String(raw)
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true // swallow leading whitespace
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}

// collapseSpaces collapses whitespace runs within a single line to one space
// and trims the ends. Control characters count as whitespace so stray form
// feeds and tabs from text extractors disappear.
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}

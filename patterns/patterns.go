// Package patterns provides stateless regex and dictionary extraction over
// the collapsed text view. Singular fields resolve to the leftmost match in
// document order; a miss is the empty string, never an error.
package patterns

import (
	"regexp"
	"sort"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?(?:\(\d{3}\)|\d{3})[\s.-]?\d{3}[\s.-]?\d{4}`)
	urlRe   = regexp.MustCompile(`https?://[\w.-]+(?:/[\w._~:/?#\[\]@!$&'()*+,;=%-]*)?`)

	linkedinRe = regexp.MustCompile(`(?i)https?://(?:www\.)?linkedin\.com/[\w\-/]+`)
	githubRe   = regexp.MustCompile(`(?i)https?://(?:www\.)?github\.com/[\w\-/]+`)
)

// Email returns the first email address in the text, or "".
func Email(text string) string {
	return emailRe.FindString(text)
}

// Phone returns the first phone-shaped match in the text, or "". The pattern
// tolerates an optional country code, separators, and a parenthesized area
// code; it does not validate regions or checksums.
func Phone(text string) string {
	return phoneRe.FindString(text)
}

// URLs returns every http(s) URL, de-duplicated in first-seen order.
func URLs(text string) []string {
	matches := urlRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// Linkedin returns the first linkedin.com URL, or "".
func Linkedin(text string) string {
	return linkedinRe.FindString(text)
}

// Github returns the first github.com URL, or "".
func Github(text string) string {
	return githubRe.FindString(text)
}

// FindSkills scans the text for every dictionary term and returns the unique
// matches, sorted, in lowercase canonical form. A term only counts when it
// sits on its own boundaries: the rune before must not be a word character,
// '+', '#', or '.', and the rune after must not be a word character or '-'.
// That lets "c++" and "c#" match whole while "go" stays quiet inside
// "going". RE2 has no lookaround, so the boundary check is done by hand.
func FindSkills(text string, dictionary []string) []string {
	if text == "" || len(dictionary) == 0 {
		return nil
	}
	lower := strings.ToLower(text)
	found := make([]string, 0, 8)
	for _, term := range dictionary {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if containsTerm(lower, term) {
			found = append(found, term)
		}
	}
	sort.Strings(found)
	return dedupSorted(found)
}

func containsTerm(lower, term string) bool {
	for start := 0; ; {
		i := strings.Index(lower[start:], term)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(term)
		if boundaryBefore(lower, i) && boundaryAfter(lower, end) {
			return true
		}
		start = i + 1
	}
}

// boundaryBefore reports whether position i may begin a term: the preceding
// byte must not be a word character, '+', '#', or '.'.
func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	c := s[i-1]
	return !isWord(c) && c != '+' && c != '#' && c != '.'
}

// boundaryAfter reports whether position end may close a term: the following
// byte must not be a word character or '-'.
func boundaryAfter(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	c := s[end]
	return !isWord(c) && c != '-'
}

func isWord(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

func dedupSorted(in []string) []string {
	out := in[:0]
	var prev string
	for i, s := range in {
		if i > 0 && s == prev {
			continue
		}
		out = append(out, s)
		prev = s
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

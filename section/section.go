package section

import "strings"

// Kind names a logical block of a document. The set is closed: segmentation
// only ever produces the kinds below, with Body as the catch-all for text
// before the first recognized header or when no headers match at all.
type Kind string

const (
	Education        Kind = "education"
	Experience       Kind = "experience"
	Skills           Kind = "skills"
	Projects         Kind = "projects"
	Certifications   Kind = "certifications"
	Responsibilities Kind = "responsibilities"
	Requirements     Kind = "requirements"
	Body             Kind = "body"
)

// Section is one named block in document order. The same kind may appear more
// than once; callers concatenate by kind when they need a single blob.
type Section struct {
	Kind Kind
	Body string
}

// Segmenter splits line-preserving text into sections using a fixed header
// table. It is immutable after construction and safe for concurrent use.
type Segmenter struct {
	headers map[string]Kind
}

// NewSegmenter builds a segmenter from a header table mapping each kind to
// its marker phrases. Phrases are matched case-insensitively against whole
// lines, so "Work Experience" and "work experience:" both hit.
func NewSegmenter(headers map[Kind][]string) *Segmenter {
	idx := make(map[string]Kind, len(headers)*2)
	for kind, phrases := range headers {
		for _, p := range phrases {
			p = strings.ToLower(strings.TrimSpace(p))
			if p == "" {
				continue
			}
			idx[p] = kind
		}
	}
	return &Segmenter{headers: idx}
}

// Split walks the document lines in order. A line is a header iff, after
// trimming and dropping one optional trailing colon, it equals a configured
// marker phrase; anything else accumulates into the current section. Only
// non-empty buffers are flushed, so a header immediately followed by another
// header emits no empty section. When nothing accumulates at all, the whole
// input comes back as a single Body section.
func (s *Segmenter) Split(text string) []Section {
	if strings.TrimSpace(text) == "" {
		return []Section{{Kind: Body, Body: ""}}
	}

	var sections []Section
	current := Body
	var buf []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		sections = append(sections, Section{Kind: current, Body: strings.Join(buf, "\n")})
		buf = buf[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if kind, ok := s.matchHeader(trimmed); ok {
			flush()
			current = kind
			continue
		}
		buf = append(buf, trimmed)
	}
	flush()

	if len(sections) == 0 {
		return []Section{{Kind: Body, Body: text}}
	}
	return sections
}

func (s *Segmenter) matchHeader(line string) (Kind, bool) {
	candidate := strings.ToLower(line)
	if strings.HasSuffix(candidate, ":") {
		candidate = strings.TrimSpace(strings.TrimSuffix(candidate, ":"))
	}
	kind, ok := s.headers[candidate]
	return kind, ok
}

// JoinKind concatenates the bodies of every section of the given kind in
// document order, separated by newlines.
func JoinKind(sections []Section, kind Kind) string {
	var parts []string
	for _, sec := range sections {
		if sec.Kind == kind && sec.Body != "" {
			parts = append(parts, sec.Body)
		}
	}
	return strings.Join(parts, "\n")
}

// Package resume turns raw resume text into structured fields using the
// segmentation, pattern, and keyword heuristics. Every field is best-effort:
// a miss is an empty value, never an error, because document quality is
// inherently unpredictable.
package resume

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hyperifyio/hireparse/ner"
	"github.com/hyperifyio/hireparse/normalize"
	"github.com/hyperifyio/hireparse/patterns"
	"github.com/hyperifyio/hireparse/section"
	"github.com/hyperifyio/hireparse/vocab"
)

// Data is the structured resume output. All fields are JSON-serializable;
// list fields are always non-nil so the wire form stays a list, not null.
type Data struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Linkedin       string   `json:"linkedin"`
	Github         string   `json:"github"`
	Skills         []string `json:"skills"`
	Education      []string `json:"education"`
	Experience     []string `json:"experience"`
	Projects       []string `json:"projects"`
	Certifications []string `json:"certifications"`
	RawText        string   `json:"raw_text"`
}

// nameScanLines bounds how far down the document the name heuristics look.
const nameScanLines = 10

// listCap bounds verbatim line lists for sections without a keyword filter.
const listCap = 20

// Extractor holds the read-only tables and the optional NER capability.
// Safe for concurrent use; each Extract call is a pure function of its
// input.
type Extractor struct {
	vocab       vocab.Vocabulary
	recognizer  ner.Recognizer
	extraSkills []string
	segmenter   *section.Segmenter
}

// NewExtractor builds an extractor. A nil recognizer degrades to the
// null-object capability so Extract needs no branching.
func NewExtractor(v vocab.Vocabulary, recognizer ner.Recognizer, extraSkills []string) *Extractor {
	if recognizer == nil {
		recognizer = ner.Null{}
	}
	return &Extractor{
		vocab:       v,
		recognizer:  recognizer,
		extraSkills: extraSkills,
		segmenter:   section.NewSegmenter(v.SectionHeaders),
	}
}

// Extract parses raw resume text into Data. It never fails; absent fields
// stay empty.
func (e *Extractor) Extract(ctx context.Context, raw string) Data {
	lines := normalize.Lines(raw)
	collapsed := normalize.Collapse(raw)

	sections := e.segmenter.Split(lines)

	skillSource := section.JoinKind(sections, section.Skills)
	if strings.TrimSpace(skillSource) == "" {
		skillSource = collapsed
	}

	return Data{
		Name:           e.guessName(ctx, lines),
		Email:          patterns.Email(collapsed),
		Phone:          patterns.Phone(collapsed),
		Linkedin:       patterns.Linkedin(collapsed),
		Github:         patterns.Github(collapsed),
		Skills:         nonNil(patterns.FindSkills(skillSource, e.vocab.SkillDictionary(e.extraSkills))),
		Education:      keywordLines(section.JoinKind(sections, section.Education), e.vocab.EducationKeywords),
		Experience:     keywordLines(section.JoinKind(sections, section.Experience), e.vocab.ExperienceKeywords),
		Projects:       headLines(section.JoinKind(sections, section.Projects), listCap),
		Certifications: headLines(section.JoinKind(sections, section.Certifications), listCap),
		RawText:        collapsed,
	}
}

// guessName tries the NER capability over the opening lines first and falls
// back to a line-shape heuristic when the capability is absent, errors, or
// finds no person.
func (e *Extractor) guessName(ctx context.Context, lines string) string {
	if lines == "" {
		return ""
	}
	head := headLines(lines, nameScanLines)
	chunk := strings.Join(head, "\n")

	if entities, err := e.recognizer.Recognize(ctx, chunk); err == nil {
		if persons := ner.Persons(entities); len(persons) > 0 {
			return persons[0]
		}
	}

	for _, line := range head {
		if looksLikeName(line) {
			return line
		}
	}
	return ""
}

// looksLikeName accepts a line of 2-5 whitespace-separated tokens where
// every token starts with a letter and at least one starts uppercase.
func looksLikeName(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) < 2 || len(tokens) > 5 {
		return false
	}
	upper := 0
	for _, tok := range tokens {
		r, _ := utf8.DecodeRuneInString(tok)
		if !unicode.IsLetter(r) {
			return false
		}
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return upper >= 1
}

// keywordLines keeps the section lines containing any of the keywords,
// case-insensitively, in document order.
func keywordLines(sectionText string, keywords []string) []string {
	out := []string{}
	for _, line := range splitLines(sectionText) {
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if kw != "" && strings.Contains(lower, kw) {
				out = append(out, line)
				break
			}
		}
	}
	return out
}

// headLines returns up to n non-empty trimmed lines verbatim.
func headLines(text string, n int) []string {
	lines := splitLines(text)
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

func splitLines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// Package job extracts structured fields from job-posting text. Labelled
// single-line captures handle title/company/location; requirement patterns
// prefer the requirements section and fall back to the whole document; a
// second, looser keyword scan backs up the section segmenter when a posting
// uses headers the vocabulary does not know.
package job

import (
	"regexp"
	"strings"

	"github.com/hyperifyio/hireparse/normalize"
	"github.com/hyperifyio/hireparse/patterns"
	"github.com/hyperifyio/hireparse/section"
	"github.com/hyperifyio/hireparse/vocab"
)

// Data is the structured job-posting output. List fields are always
// non-nil so the JSON form stays a list, not null.
type Data struct {
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Location           string   `json:"location"`
	SkillsRequired     []string `json:"skills_required"`
	ExperienceRequired string   `json:"experience_required"`
	EducationRequired  string   `json:"education_required"`
	Responsibilities   []string `json:"responsibilities"`
	RawText            string   `json:"raw_text"`
}

var (
	titleRe    = regexp.MustCompile(`(?im)^(?:job\s*title|title)\s*:?\s*(.+)$`)
	companyRe  = regexp.MustCompile(`(?im)^(?:company|employer|organization)\s*:?\s*(.+)$`)
	locationRe = regexp.MustCompile(`(?im)^(?:location|based\s*in)\s*:?\s*(.+)$`)

	experienceRe = regexp.MustCompile(`(?i)\d+\+?\s*(?:years|yrs)\s+of\s+experience[^\n]*`)
	educationRe  = regexp.MustCompile(`(?i)\b(?:bachelor'?s|master'?s|ph\.?d\.?|bs|ba|ms|ma)\b[^\n]*`)

	bulletRe   = regexp.MustCompile(`^[-*•]\s*`)
	numberedRe = regexp.MustCompile(`^\d+[.):\-]\s*`)
)

// listCap bounds the verbatim fallback when no line looks like a bullet.
const listCap = 20

// Extractor holds the read-only tables. Safe for concurrent use.
type Extractor struct {
	vocab       vocab.Vocabulary
	extraSkills []string
	segmenter   *section.Segmenter
}

// NewExtractor builds an extractor over the given vocabulary.
func NewExtractor(v vocab.Vocabulary, extraSkills []string) *Extractor {
	return &Extractor{
		vocab:       v,
		extraSkills: extraSkills,
		segmenter:   section.NewSegmenter(v.SectionHeaders),
	}
}

// Extract parses raw job-posting text into Data. It never fails; absent
// fields stay empty.
func (e *Extractor) Extract(raw string) Data {
	lines := normalize.Lines(raw)
	collapsed := normalize.Collapse(raw)

	sections := e.segmenter.Split(lines)

	responsibilitiesSec := section.JoinKind(sections, section.Responsibilities)
	if responsibilitiesSec == "" {
		responsibilitiesSec = cueLines(lines, e.vocab.ResponsibilityCues)
	}
	requirementsSec := section.JoinKind(sections, section.Requirements)
	if requirementsSec == "" {
		requirementsSec = cueLines(lines, e.vocab.RequirementCues)
	}

	skillSource := collapsed
	if requirementsSec != "" {
		skillSource = requirementsSec + "\n" + collapsed
	}

	return Data{
		Title:              firstCapture(titleRe, lines),
		Company:            firstCapture(companyRe, lines),
		Location:           firstCapture(locationRe, lines),
		SkillsRequired:     nonNil(patterns.FindSkills(skillSource, e.vocab.SkillDictionary(e.extraSkills))),
		ExperienceRequired: firstMatch(experienceRe, requirementsSec, lines),
		EducationRequired:  firstMatch(educationRe, requirementsSec, lines),
		Responsibilities:   bullets(responsibilitiesSec),
		RawText:            collapsed,
	}
}

func firstCapture(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// firstMatch searches the scoped text first and falls back to the whole
// document when the scope is empty.
func firstMatch(re *regexp.Regexp, scoped, whole string) string {
	src := scoped
	if strings.TrimSpace(src) == "" {
		src = whole
	}
	return strings.TrimSpace(re.FindString(src))
}

// cueLines joins every document line containing one of the loose cues. This
// is the layered fallback for postings whose section headers went
// unrecognized.
func cueLines(lines string, cues []string) string {
	var out []string
	for _, line := range strings.Split(lines, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		for _, cue := range cues {
			if cue != "" && strings.Contains(lower, cue) {
				out = append(out, trimmed)
				break
			}
		}
	}
	return strings.Join(out, "\n")
}

// bullets prefers lines that look like bullets, returned with their marker
// stripped; when nothing looks like a bullet it takes the first lines
// verbatim up to the cap.
func bullets(sectionText string) []string {
	lines := splitLines(sectionText)
	marked := []string{}
	for _, line := range lines {
		switch {
		case bulletRe.MatchString(line):
			marked = append(marked, strings.TrimSpace(bulletRe.ReplaceAllString(line, "")))
		case numberedRe.MatchString(line):
			marked = append(marked, strings.TrimSpace(numberedRe.ReplaceAllString(line, "")))
		}
	}
	if len(marked) > 0 {
		return marked
	}
	if len(lines) > listCap {
		lines = lines[:listCap]
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

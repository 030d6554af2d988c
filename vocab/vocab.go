// Package vocab holds the static marker and keyword tables the heuristics
// run against. Tables are plain values constructed once at startup and never
// mutated; tests and callers substitute their own by building a Vocabulary
// and handing it to the extractors instead of editing package state.
package vocab

import (
	"sort"
	"strings"

	"github.com/hyperifyio/hireparse/section"
)

// Vocabulary bundles every configurable phrase table used by segmentation,
// classification, and field extraction.
type Vocabulary struct {
	// SectionHeaders maps each section kind to the header phrases that open
	// it. Matching is anchored to whole lines, case-insensitive.
	SectionHeaders map[section.Kind][]string

	// ResumeMarkers and JobMarkers are loose substrings counted by the
	// document classifier.
	ResumeMarkers []string
	JobMarkers    []string

	// Skills is the default skill dictionary in canonical lowercase form.
	Skills []string

	// EducationKeywords and ExperienceKeywords filter section lines in the
	// resume extractor. Some entries keep a trailing space on purpose so
	// that e.g. "bs " does not fire inside ordinary words.
	EducationKeywords  []string
	ExperienceKeywords []string

	// ResponsibilityCues and RequirementCues drive the loose line-scan
	// fallback in the job extractor when no section header was recognized.
	ResponsibilityCues []string
	RequirementCues    []string
}

// Default returns the built-in vocabulary. The returned value is a fresh
// copy, so callers may append to its slices without affecting other users.
func Default() Vocabulary {
	return Vocabulary{
		SectionHeaders: map[section.Kind][]string{
			section.Education:        {"education", "academic background"},
			section.Experience:       {"experience", "work experience", "employment history"},
			section.Skills:           {"skills", "technical skills", "skills & endorsements"},
			section.Projects:         {"projects", "personal projects"},
			section.Certifications:   {"certifications", "licenses", "certifications & licenses"},
			section.Responsibilities: {"responsibilities", "what you'll do", "what you will do"},
			section.Requirements:     {"requirements", "what you'll need", "qualifications"},
		},
		ResumeMarkers: []string{
			"resume", "curriculum vitae", "cv", "skills", "experience",
			"education", "linkedin.com/in/",
		},
		JobMarkers: []string{
			"job title", "responsibilities", "requirements", "what you'll do",
			"what you'll need", "company", "employer",
		},
		Skills: []string{
			// Languages
			"python", "java", "javascript", "typescript", "go", "c++", "c#",
			"ruby", "scala", "rust", "sql",
			// Libraries/Frameworks
			"react", "node", "django", "flask", "fastapi", "spring", "rails",
			"angular", "vue",
			// Data/ML
			"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch",
			"spacy", "nltk",
			// Cloud/DevOps
			"aws", "gcp", "azure", "docker", "kubernetes", "terraform", "git",
		},
		EducationKeywords: []string{
			"bsc", "b.s", "bs ", "bachelor", "msc", "m.s", "ms ", "master",
			"phd", "ph.d", "associate", "diploma", "university", "college",
		},
		ExperienceKeywords: []string{
			"engineer", "developer", "manager", "designer", "intern",
			"analyst", "lead", "founder", "consultant", "architect",
		},
		ResponsibilityCues: []string{"responsibilities", "you will", "you'll"},
		RequirementCues:    []string{"requirements", "must have", "qualifications"},
	}
}

// SkillDictionary merges the vocabulary's skill list with caller-supplied
// extras into a sorted, de-duplicated, lowercase dictionary.
func (v Vocabulary) SkillDictionary(extra []string) []string {
	seen := make(map[string]struct{}, len(v.Skills)+len(extra))
	out := make([]string, 0, len(v.Skills)+len(extra))
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range v.Skills {
		add(s)
	}
	for _, s := range extra {
		add(s)
	}
	sort.Strings(out)
	return out
}

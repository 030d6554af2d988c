package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/hireparse/section"
)

// FileVocabulary is the on-disk vocabulary schema. Every field is optional:
// values that are present replace the corresponding default table, values
// that are absent keep the built-in one.
type FileVocabulary struct {
	SectionHeaders map[string][]string `yaml:"sectionHeaders" json:"sectionHeaders"`

	ResumeMarkers []string `yaml:"resumeMarkers" json:"resumeMarkers"`
	JobMarkers    []string `yaml:"jobMarkers" json:"jobMarkers"`

	Skills []string `yaml:"skills" json:"skills"`

	EducationKeywords  []string `yaml:"educationKeywords" json:"educationKeywords"`
	ExperienceKeywords []string `yaml:"experienceKeywords" json:"experienceKeywords"`

	ResponsibilityCues []string `yaml:"responsibilityCues" json:"responsibilityCues"`
	RequirementCues    []string `yaml:"requirementCues" json:"requirementCues"`
}

// LoadFile reads YAML or JSON vocabulary overrides and overlays them on the
// defaults. Unknown extensions try YAML first, then JSON.
func LoadFile(path string) (Vocabulary, error) {
	v := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return v, err
	}
	var fv FileVocabulary
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fv); err != nil {
			return v, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fv); err != nil {
			return v, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fv); err != nil {
			if jerr := json.Unmarshal(b, &fv); jerr != nil {
				return v, fmt.Errorf("parse vocabulary: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	apply(&v, fv)
	return v, nil
}

func apply(v *Vocabulary, fv FileVocabulary) {
	if len(fv.SectionHeaders) > 0 {
		headers := make(map[section.Kind][]string, len(fv.SectionHeaders))
		for name, phrases := range fv.SectionHeaders {
			headers[section.Kind(name)] = append([]string{}, phrases...)
		}
		v.SectionHeaders = headers
	}
	if len(fv.ResumeMarkers) > 0 {
		v.ResumeMarkers = append([]string{}, fv.ResumeMarkers...)
	}
	if len(fv.JobMarkers) > 0 {
		v.JobMarkers = append([]string{}, fv.JobMarkers...)
	}
	if len(fv.Skills) > 0 {
		v.Skills = append([]string{}, fv.Skills...)
	}
	if len(fv.EducationKeywords) > 0 {
		v.EducationKeywords = append([]string{}, fv.EducationKeywords...)
	}
	if len(fv.ExperienceKeywords) > 0 {
		v.ExperienceKeywords = append([]string{}, fv.ExperienceKeywords...)
	}
	if len(fv.ResponsibilityCues) > 0 {
		v.ResponsibilityCues = append([]string{}, fv.ResponsibilityCues...)
	}
	if len(fv.RequirementCues) > 0 {
		v.RequirementCues = append([]string{}, fv.RequirementCues...)
	}
}

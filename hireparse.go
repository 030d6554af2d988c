// Package hireparse classifies unstructured resume and job-posting text and
// extracts structured fields from it. The pipeline is deterministic and
// heuristic: raw text is normalized into two views, segmented into named
// sections by fuzzy header matching, scored against marker vocabularies to
// decide the document type, and mined for typed fields with layered
// fallbacks. Parsing never fails on poor input; missing fields come back
// empty.
package hireparse

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/hireparse/classify"
	"github.com/hyperifyio/hireparse/docio"
	"github.com/hyperifyio/hireparse/job"
	"github.com/hyperifyio/hireparse/ner"
	"github.com/hyperifyio/hireparse/normalize"
	"github.com/hyperifyio/hireparse/resume"
	"github.com/hyperifyio/hireparse/vocab"
)

// Result is the unified routing schema: the detected type, the full
// extractor output for that type, and a smaller normalized projection for
// downstream consumers. Everything is representable as plain nested
// maps/lists/strings/nulls.
type Result struct {
	Type       classify.DocType `json:"type"`
	Data       any              `json:"data"`
	Normalized map[string]any   `json:"normalized"`
}

// Parser ties the components together. Construct once with New and reuse;
// a Parser is immutable and safe for concurrent use, since every parse is a
// pure function of its input plus the read-only vocabularies.
type Parser struct {
	vocab      vocab.Vocabulary
	classifier *classify.Classifier
	resume     *resume.Extractor
	job        *job.Extractor
}

// Options configures a Parser. The zero value means defaults: built-in
// vocabulary, no NER capability, no extra skills.
type Options struct {
	// Vocab overrides the built-in marker and keyword tables. Leave the
	// zero value to use vocab.Default().
	Vocab *vocab.Vocabulary

	// Recognizer is the optional named-entity capability used for resume
	// name detection. Nil degrades to the null recognizer; the line-shape
	// fallback still applies.
	Recognizer ner.Recognizer

	// ExtraSkills extends the skill dictionary for this parser.
	ExtraSkills []string
}

// New builds a Parser from the options.
func New(opts Options) *Parser {
	v := vocab.Default()
	if opts.Vocab != nil {
		v = *opts.Vocab
	}
	return &Parser{
		vocab:      v,
		classifier: classify.New(v.ResumeMarkers, v.JobMarkers),
		resume:     resume.NewExtractor(v, opts.Recognizer, opts.ExtraSkills),
		job:        job.NewExtractor(v, opts.ExtraSkills),
	}
}

// Classify scores the raw text against the marker vocabularies and returns
// the decision together with both scores.
func (p *Parser) Classify(raw string) classify.Result {
	return p.classifier.Classify(normalize.Collapse(raw))
}

// ParseResume extracts resume fields from raw text.
func (p *Parser) ParseResume(ctx context.Context, raw string) resume.Data {
	return p.resume.Extract(ctx, raw)
}

// ParseJob extracts job-posting fields from raw text.
func (p *Parser) ParseJob(raw string) job.Data {
	return p.job.Extract(raw)
}

// Route classifies the raw text and dispatches to the matching extractor.
// The projection is pure: Route runs exactly the same extraction as the
// standalone ParseResume/ParseJob calls, so Route(x).Data always equals the
// standalone output.
func (p *Parser) Route(ctx context.Context, raw string) Result {
	cls := p.Classify(raw)
	switch cls.Type {
	case classify.Resume:
		data := p.ParseResume(ctx, raw)
		return Result{
			Type: cls.Type,
			Data: data,
			Normalized: map[string]any{
				"name": data.Name,
				"contact": map[string]any{
					"email":    data.Email,
					"phone":    data.Phone,
					"linkedin": data.Linkedin,
					"github":   data.Github,
				},
				"skills":         data.Skills,
				"education":      data.Education,
				"experience":     data.Experience,
				"projects":       data.Projects,
				"certifications": data.Certifications,
				"raw_text":       data.RawText,
			},
		}
	case classify.Job:
		data := p.ParseJob(raw)
		return Result{
			Type: cls.Type,
			Data: data,
			Normalized: map[string]any{
				"title":    data.Title,
				"company":  data.Company,
				"location": data.Location,
				"skills":   data.SkillsRequired,
				"requirements": map[string]any{
					"experience": data.ExperienceRequired,
					"education":  data.EducationRequired,
				},
				"responsibilities": data.Responsibilities,
				"raw_text":         data.RawText,
			},
		}
	default:
		log.Debug().Int("resume_score", cls.ResumeScore).Int("job_score", cls.JobScore).Msg("document type unknown")
		return Result{
			Type:       classify.Unknown,
			Data:       map[string]any{},
			Normalized: map[string]any{"raw_text": normalize.Collapse(raw)},
		}
	}
}

// RouteFile reads a document from disk via the docio collaborator and routes
// its text. Missing files and unsupported formats surface as errors; decode
// failures inside a supported format degrade to empty text and therefore an
// Unknown result.
func (p *Parser) RouteFile(ctx context.Context, path string) (Result, error) {
	raw, err := docio.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return p.Route(ctx, raw), nil
}

// Package classify decides whether a document reads like a resume or a job
// posting by counting marker phrases. It is a best-effort heuristic with no
// confidence threshold; callers must tolerate Unknown gracefully.
package classify

import "strings"

// DocType is the classification outcome.
type DocType string

const (
	Resume  DocType = "resume"
	Job     DocType = "job"
	Unknown DocType = "unknown"
)

// Result carries the decision plus the raw marker scores that produced it.
// The scores exist for explainability and tests; the API boundary only
// needs Type.
type Result struct {
	Type        DocType
	ResumeScore int
	JobScore    int
}

// Classifier counts case-insensitive marker substrings. Immutable after
// construction; safe for concurrent use.
type Classifier struct {
	resumeMarkers []string
	jobMarkers    []string
}

// New builds a classifier from the two marker lists. Markers are lowered
// once here so Classify only pays for the substring scans.
func New(resumeMarkers, jobMarkers []string) *Classifier {
	return &Classifier{
		resumeMarkers: lowerAll(resumeMarkers),
		jobMarkers:    lowerAll(jobMarkers),
	}
}

// Classify scores the collapsed text view against both marker lists. Each
// marker counts at most once no matter how often it repeats. Both scores
// zero means Unknown; ties go to Resume, since resume markers are the more
// common false positives and resumes are the default document class.
func (c *Classifier) Classify(collapsed string) Result {
	lower := strings.ToLower(collapsed)
	res := Result{
		ResumeScore: score(lower, c.resumeMarkers),
		JobScore:    score(lower, c.jobMarkers),
	}
	switch {
	case res.ResumeScore == 0 && res.JobScore == 0:
		res.Type = Unknown
	case res.ResumeScore >= res.JobScore:
		res.Type = Resume
	default:
		res.Type = Job
	}
	return res
}

func score(lower string, markers []string) int {
	n := 0
	for _, m := range markers {
		if m != "" && strings.Contains(lower, m) {
			n++
		}
	}
	return n
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}

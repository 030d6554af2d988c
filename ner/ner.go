// Package ner abstracts the optional named-entity capability used for name
// detection. The capability may be absent at runtime: callers hold a
// Recognizer and fall back to line-shape heuristics whenever it errors or
// returns nothing, so absence degrades behavior but never fails a parse.
package ner

import "context"

// Label values follow the usual NER tagset convention; only PERSON is
// consumed by the resume extractor today.
const LabelPerson = "PERSON"

// Entity is one recognized span of text with its label.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognizer detects named entities in a text. Implementations must be safe
// for concurrent use.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// Null is the absent-capability implementation. It recognizes nothing and
// never errors, so call sites need no branching beyond their documented
// fallback.
type Null struct{}

func (Null) Recognize(context.Context, string) ([]Entity, error) { return nil, nil }

// Persons filters entities down to the PERSON-labelled ones, preserving
// order.
func Persons(entities []Entity) []string {
	var out []string
	for _, e := range entities {
		if e.Label == LabelPerson && e.Text != "" {
			out = append(out, e.Text)
		}
	}
	return out
}

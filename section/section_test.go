package section

import (
	"reflect"
	"testing"
)

func testHeaders() map[Kind][]string {
	return map[Kind][]string{
		Education:        {"education", "academic background"},
		Experience:       {"experience", "work experience"},
		Skills:           {"skills", "technical skills"},
		Responsibilities: {"responsibilities"},
		Requirements:     {"requirements", "qualifications"},
	}
}

func TestSplit_OrderAndLeadingBody(t *testing.T) {
	text := "John Smith\nSkills\nPython, AWS\nExperience\nSenior Engineer at Acme"
	got := NewSegmenter(testHeaders()).Split(text)
	want := []Section{
		{Kind: Body, Body: "John Smith"},
		{Kind: Skills, Body: "Python, AWS"},
		{Kind: Experience, Body: "Senior Engineer at Acme"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplit_TrailingColonAndCase(t *testing.T) {
	text := "WORK EXPERIENCE:\nBuilt things\nSkills :\nGo"
	got := NewSegmenter(testHeaders()).Split(text)
	want := []Section{
		{Kind: Experience, Body: "Built things"},
		{Kind: Skills, Body: "Go"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplit_HeaderIsAnchoredNotSubstring(t *testing.T) {
	text := "Experience with Python\nmore text"
	got := NewSegmenter(testHeaders()).Split(text)
	if len(got) != 1 || got[0].Kind != Body {
		t.Fatalf("expected a single body section, got %v", got)
	}
}

func TestSplit_ConsecutiveHeadersEmitNoEmptySection(t *testing.T) {
	text := "Skills\nExperience\nSenior Engineer"
	got := NewSegmenter(testHeaders()).Split(text)
	want := []Section{{Kind: Experience, Body: "Senior Engineer"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplit_RepeatedKindsStaySeparate(t *testing.T) {
	text := "Experience\nfirst job\nSkills\nGo\nExperience\nsecond job"
	got := NewSegmenter(testHeaders()).Split(text)
	want := []Section{
		{Kind: Experience, Body: "first job"},
		{Kind: Skills, Body: "Go"},
		{Kind: Experience, Body: "second job"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if joined := JoinKind(got, Experience); joined != "first job\nsecond job" {
		t.Fatalf("expected concatenated experience, got %q", joined)
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	got := NewSegmenter(testHeaders()).Split("")
	want := []Section{{Kind: Body, Body: ""}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplit_OnlyHeadersFallsBackToBody(t *testing.T) {
	text := "Skills\nExperience"
	got := NewSegmenter(testHeaders()).Split(text)
	want := []Section{{Kind: Body, Body: text}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplit_MultilineSectionBody(t *testing.T) {
	text := "Requirements\n3+ years of experience\nBachelor's degree"
	got := NewSegmenter(testHeaders()).Split(text)
	want := []Section{{Kind: Requirements, Body: "3+ years of experience\nBachelor's degree"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

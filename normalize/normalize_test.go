package normalize

import (
	"strings"
	"testing"
)

func TestCollapse_WhitespaceRuns(t *testing.T) {
	in := "  John Smith \t senior   engineer \r\n\r\n at  Acme \n"
	got := Collapse(in)
	want := "John Smith senior engineer at Acme"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCollapse_Idempotent(t *testing.T) {
	cases := []string{
		"",
		"plain text",
		"  a \t b\r\nc  ",
		"  ",
		"multi\n\n\nline\tdoc",
	}
	for _, in := range cases {
		once := Collapse(in)
		twice := Collapse(once)
		if once != twice {
			t.Fatalf("Collapse not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestCollapse_Empty(t *testing.T) {
	if got := Collapse(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := Collapse("   \n\t "); got != "" {
		t.Fatalf("expected empty string for all-whitespace input, got %q", got)
	}
}

func TestLines_PreservesLineBreaks(t *testing.T) {
	in := "John Smith\r\nSkills\rPython,   AWS"
	got := Lines(in)
	want := "John Smith\nSkills\nPython, AWS"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLines_CollapsesBlankRuns(t *testing.T) {
	in := "Experience\n\n\n\nSenior Engineer\n\n"
	got := Lines(in)
	want := "Experience\n\nSenior Engineer"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLines_DropsControlCharacters(t *testing.T) {
	in := "Header\x0c\nBody\x00 text"
	got := Lines(in)
	if strings.ContainsAny(got, "\x0c\x00") {
		t.Fatalf("expected control characters to be removed, got %q", got)
	}
	if !strings.Contains(got, "Body text") {
		t.Fatalf("expected control run to collapse to one space, got %q", got)
	}
}

func TestLines_Idempotent(t *testing.T) {
	in := "  a  \n\n\n b\tc \r\n d "
	once := Lines(in)
	if twice := Lines(once); once != twice {
		t.Fatalf("Lines not idempotent: %q vs %q", once, twice)
	}
}

func TestCollapseOfLines_MatchesCollapse(t *testing.T) {
	in := " Resume \r\n\r\n Skills:\tGo,  SQL \n"
	if got, want := Collapse(Lines(in)), Collapse(in); got != want {
		t.Fatalf("views disagree: %q vs %q", got, want)
	}
}

package patterns

import (
	"reflect"
	"testing"
)

func TestEmail_FirstMatchWins(t *testing.T) {
	text := "Reach me at jane.doe+work@example.co.uk or fallback@example.com"
	if got := Email(text); got != "jane.doe+work@example.co.uk" {
		t.Fatalf("expected first email, got %q", got)
	}
	if got := Email("no address here"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestPhone_Variants(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"call (555) 123-4567 today", "(555) 123-4567"},
		{"+1 555.123.4567", "+1 555.123.4567"},
		{"5551234567", "5551234567"},
		{"no digits", ""},
	}
	for _, tc := range cases {
		if got := Phone(tc.in); got != tc.want {
			t.Fatalf("Phone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestURLs_DedupPreservesOrder(t *testing.T) {
	text := "see https://b.example/x then https://a.example and again https://b.example/x"
	got := URLs(text)
	want := []string{"https://b.example/x", "https://a.example"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLinkedinAndGithub_HostRestricted(t *testing.T) {
	text := "profiles: https://WWW.LinkedIn.com/in/jdoe and https://github.com/jdoe plus https://example.com/jdoe"
	if got := Linkedin(text); got != "https://WWW.LinkedIn.com/in/jdoe" {
		t.Fatalf("expected linkedin URL, got %q", got)
	}
	if got := Github(text); got != "https://github.com/jdoe" {
		t.Fatalf("expected github URL, got %q", got)
	}
	if got := Linkedin("https://example.com/linkedin.com/in/x"); got != "" {
		t.Fatalf("expected no match for non-linkedin host, got %q", got)
	}
}

func TestFindSkills_CaseInsensitiveSortedUnique(t *testing.T) {
	dict := []string{"python", "aws", "go"}
	got := FindSkills("Python PYTHON python and AWS", dict)
	want := []string{"aws", "python"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFindSkills_Boundaries(t *testing.T) {
	dict := []string{"go", "c++", "c#", "java"}

	got := FindSkills("I code in Go.", dict)
	if !reflect.DeepEqual(got, []string{"go"}) {
		t.Fatalf("expected [go], got %v", got)
	}

	if got := FindSkills("I am going home", dict); len(got) != 0 {
		t.Fatalf("expected no match inside 'going', got %v", got)
	}

	got = FindSkills("c++ and c# on the JVM", dict)
	want := []string{"c#", "c++"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// "java" must not fire inside "javascript"
	if got := FindSkills("javascript only", dict); len(got) != 0 {
		t.Fatalf("expected no match inside 'javascript', got %v", got)
	}
}

func TestFindSkills_EmptyInputs(t *testing.T) {
	if got := FindSkills("", []string{"go"}); got != nil {
		t.Fatalf("expected nil for empty text, got %v", got)
	}
	if got := FindSkills("anything", nil); got != nil {
		t.Fatalf("expected nil for empty dictionary, got %v", got)
	}
}

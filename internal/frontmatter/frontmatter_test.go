package frontmatter

import (
	"strings"
	"testing"
)

func TestParse_NoDelimiter(t *testing.T) {
	input := "# Just a heading\n\nSome body text.\n"
	res := Parse(input)

	if res.Status != Absent {
		t.Errorf("expected Absent, got %v", res.Status)
	}
	if len(res.Meta) != 0 {
		t.Errorf("expected empty meta, got %v", res.Meta)
	}
	if res.Body != input {
		t.Errorf("body changed: expected %q, got %q", input, res.Body)
	}
}

func TestParse_WellFormed(t *testing.T) {
	input := "---\ntitle: Our Story\nsidebar: Handbook\n---\n\n# The beginning\n"
	res := Parse(input)

	if res.Status != Parsed {
		t.Fatalf("expected Parsed, got %v", res.Status)
	}
	if got := res.Title(); got != "Our Story" {
		t.Errorf("expected title %q, got %q", "Our Story", got)
	}
	if res.Meta["sidebar"] != "Handbook" {
		t.Errorf("expected sidebar %q, got %v", "Handbook", res.Meta["sidebar"])
	}
	if !strings.Contains(res.Body, "# The beginning") {
		t.Errorf("body missing content: %q", res.Body)
	}
	if strings.Contains(res.Body, "title:") {
		t.Errorf("metadata leaked into body: %q", res.Body)
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	input := "---\ntitle: [unclosed\n---\n\nBody text.\n"
	res := Parse(input)

	if res.Status != Malformed {
		t.Fatalf("expected Malformed, got %v", res.Status)
	}
	if len(res.Meta) != 0 {
		t.Errorf("expected empty meta, got %v", res.Meta)
	}
	// Malformed metadata degrades to treating the whole input as body.
	if res.Body != input {
		t.Errorf("expected full input as body, got %q", res.Body)
	}
}

func TestParse_MissingClosingDelimiter(t *testing.T) {
	input := "---\ntitle: Dangling\n\nNo closing marker here.\n"
	res := Parse(input)

	if res.Status != Absent {
		t.Fatalf("expected Absent, got %v", res.Status)
	}
	if res.Body != input {
		t.Errorf("expected full input as body, got %q", res.Body)
	}
}

func TestTitle_NonStringValue(t *testing.T) {
	input := "---\ntitle: 42\n---\nBody.\n"
	res := Parse(input)

	if res.Status != Parsed {
		t.Fatalf("expected Parsed, got %v", res.Status)
	}
	if got := res.Title(); got != "" {
		t.Errorf("expected empty title for non-string value, got %q", got)
	}
}

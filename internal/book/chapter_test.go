package book

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestAssembleChapter_FrontmatterTitleWins(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "story.md",
		"---\ntitle: Our Story\n---\n\nIt all started in a shed.\n")

	ch, err := AssembleChapter(path, "Story")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.Title != "Our Story" {
		t.Errorf("expected frontmatter title %q, got %q", "Our Story", ch.Title)
	}
	if !strings.Contains(ch.Body, "<h1>Our Story</h1>") {
		t.Errorf("missing title heading: %q", ch.Body)
	}
	if !strings.Contains(ch.Body, "It all started in a shed.") {
		t.Errorf("missing body content: %q", ch.Body)
	}
}

func TestAssembleChapter_FallbackTitle(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "culture.mdx", "No metadata at all.\n")

	ch, err := AssembleChapter(path, "Culture")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.Title != "Culture" {
		t.Errorf("expected fallback title, got %q", ch.Title)
	}
	if !strings.Contains(ch.Body, "<h1>Culture</h1>") {
		t.Errorf("missing title heading: %q", ch.Body)
	}
}

func TestAssembleChapter_TitleEscaped(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "page.md",
		"---\ntitle: \"CS & Onboarding\"\n---\nBody.\n")

	ch, err := AssembleChapter(path, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(ch.Body, "<h1>CS &amp; Onboarding</h1>") {
		t.Errorf("title not escaped: %q", ch.Body)
	}
}

func TestAssembleChapter_ComponentsStripped(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "page.mdx",
		"import Hero from './Hero'\n\n<Hero slogan=\"hi\" />\n\n<Callout>Read this</Callout>\n")

	ch, err := AssembleChapter(path, "Page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(ch.Body, "Hero") || strings.Contains(ch.Body, "Callout") {
		t.Errorf("component syntax survived rendering: %q", ch.Body)
	}
	if !strings.Contains(ch.Body, "Read this") {
		t.Errorf("inner content lost: %q", ch.Body)
	}
}

func TestAssembleChapter_MissingFile(t *testing.T) {
	if _, err := AssembleChapter(filepath.Join(t.TempDir(), "gone.md"), "x"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

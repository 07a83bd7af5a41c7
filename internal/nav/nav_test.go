package nav

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "handbook.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	links, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing manifest should not error: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("expected no links, got %d", len(links))
	}
}

func TestLoad_FirstGroupOnly(t *testing.T) {
	path := writeManifest(t, `[
		{"name": "Handbook", "links": [
			{"to": "/handbook/why-does-posthog-exist", "name": "Why we exist"},
			{"to": "/handbook/company/story", "name": "Our story"}
		]},
		{"name": "Second", "links": [{"to": "/handbook/ignored", "name": "Ignored"}]}
	]`)

	links, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].To != "/handbook/why-does-posthog-exist" || links[0].Name != "Why we exist" {
		t.Errorf("unexpected first link: %+v", links[0])
	}
	if links[1].To != "/handbook/company/story" {
		t.Errorf("unexpected second link: %+v", links[1])
	}
}

func TestLoad_EmptyManifest(t *testing.T) {
	path := writeManifest(t, `[]`)
	links, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("expected no links, got %d", len(links))
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeManifest(t, `{not json`)
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed manifest")
	}
}

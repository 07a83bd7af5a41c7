package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.RepoPath != "." {
		t.Errorf("expected default repo path %q, got %q", ".", cfg.RepoPath)
	}
	if cfg.OutputPath != "posthog-handbook.epub" {
		t.Errorf("unexpected default output: %q", cfg.OutputPath)
	}
	if cfg.Author != "PostHog" {
		t.Errorf("unexpected default author: %q", cfg.Author)
	}
	if cfg.GitTimeout != 10*time.Second {
		t.Errorf("unexpected default git timeout: %v", cfg.GitTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HANDBOOK_REPO_PATH", "/srv/posthog.com")
	t.Setenv("HANDBOOK_GIT_TIMEOUT", "30s")

	cfg := Load()
	if cfg.RepoPath != "/srv/posthog.com" {
		t.Errorf("env override ignored: %q", cfg.RepoPath)
	}
	if cfg.GitTimeout != 30*time.Second {
		t.Errorf("env override ignored: %v", cfg.GitTimeout)
	}
}

func TestValidate_MissingContentRoot(t *testing.T) {
	cfg := Load()
	cfg.RepoPath = t.TempDir()

	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for a repo without contents/handbook")
	}
}

func TestValidate_OK(t *testing.T) {
	repo := t.TempDir()
	if err := os.MkdirAll(filepath.Join(repo, "contents", "handbook"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg := Load()
	cfg.RepoPath = repo
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPaths(t *testing.T) {
	cfg := Config{RepoPath: "/srv/site"}

	if got := cfg.ContentRoot(); got != filepath.Join("/srv/site", "contents", "handbook") {
		t.Errorf("unexpected content root: %q", got)
	}
	if got := cfg.NavPath(); got != filepath.Join("/srv/site", "src", "navs", "handbook.json") {
		t.Errorf("unexpected nav path: %q", got)
	}
}

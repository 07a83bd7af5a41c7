package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds everything one build needs. Values come from environment
// variables; cmd/handbook-epub layers command-line flags on top.
type Config struct {
	// RepoPath is a clone of the handbook site repository.
	RepoPath string
	// OutputPath is where the finished EPUB is written.
	OutputPath string
	// CoverImage is an optional custom cover; a cover is generated when empty.
	CoverImage string

	// Book metadata.
	Title   string
	Author  string
	RepoURL string
	LiveURL string

	// GitTimeout bounds the git metadata subprocess.
	GitTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		RepoPath:   envOr("HANDBOOK_REPO_PATH", "."),
		OutputPath: envOr("HANDBOOK_OUTPUT", "posthog-handbook.epub"),
		CoverImage: os.Getenv("HANDBOOK_COVER"),

		Title:   envOr("HANDBOOK_TITLE", "The PostHog Handbook"),
		Author:  envOr("HANDBOOK_AUTHOR", "PostHog"),
		RepoURL: envOr("HANDBOOK_REPO_URL", "https://github.com/PostHog/posthog.com"),
		LiveURL: envOr("HANDBOOK_LIVE_URL", "https://posthog.com/handbook"),

		GitTimeout: envDuration("HANDBOOK_GIT_TIMEOUT", 10*time.Second),
	}

	if cfg.GitTimeout <= 0 {
		cfg.GitTimeout = 10 * time.Second
	}

	return cfg
}

// ContentRoot is the directory holding the handbook source documents.
func (c Config) ContentRoot() string {
	return filepath.Join(c.RepoPath, "contents", "handbook")
}

// NavPath is the navigation manifest defining the primary chapter order.
func (c Config) NavPath() string {
	return filepath.Join(c.RepoPath, "src", "navs", "handbook.json")
}

func (c Config) Validate() error {
	info, err := os.Stat(c.ContentRoot())
	if err != nil {
		return fmt.Errorf("handbook not found at %s (does -repo-path point at a site repo clone?)", c.ContentRoot())
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", c.ContentRoot())
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

package gitinfo

import (
	"context"
	"testing"
	"time"
)

func TestLookup_NotARepository(t *testing.T) {
	info := Lookup(context.Background(), t.TempDir(), "https://github.com/PostHog/posthog.com", 5*time.Second)

	if info.Known() {
		t.Errorf("expected unknown revision, got %+v", info)
	}
	if info.Short != "unknown" || info.Hash != "unknown" {
		t.Errorf("expected placeholders, got %+v", info)
	}
	if info.CommitURL != "" {
		t.Errorf("expected no commit URL, got %q", info.CommitURL)
	}
}

func TestHumanDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid ISO date",
			input:    "2026-03-14T09:26:53+01:00",
			expected: "14 March 2026 at 08:26 UTC",
		},
		{
			name:     "unparseable passes through",
			input:    "unknown",
			expected: "unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := humanDate(tt.input); got != tt.expected {
				t.Errorf("humanDate(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInfo_Known(t *testing.T) {
	if Unknown().Known() {
		t.Error("Unknown() must not report a known revision")
	}
	if !(Info{Short: "abc1234"}).Known() {
		t.Error("real short hash must report known")
	}
}

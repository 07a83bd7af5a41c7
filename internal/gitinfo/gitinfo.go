// Package gitinfo extracts source revision metadata for the book's
// identifier and colophon. Git being unavailable never fails a build.
package gitinfo

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// Info describes the source revision a build was produced from.
type Info struct {
	Hash      string
	Short     string
	Date      string // ISO author date as reported by git
	DateHuman string
	Message   string
	CommitURL string
}

const placeholder = "unknown"

// Unknown is the fallback when the repository has no usable git metadata.
func Unknown() Info {
	return Info{
		Hash:      placeholder,
		Short:     placeholder,
		Date:      placeholder,
		DateHuman: placeholder,
	}
}

// Known reports whether real revision metadata was found.
func (i Info) Known() bool {
	return i.Short != "" && i.Short != placeholder
}

// Lookup reads the latest commit of the repository at repoPath. repoURL,
// when non-empty, is used to build a commit permalink. Failures and the
// timeout both degrade to Unknown.
func Lookup(ctx context.Context, repoPath, repoURL string, timeout time.Duration) Info {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "log", "-1", "--format=%H%n%h%n%aI%n%s")
	cmd.Dir = repoPath
	out, err := cmd.Output()
	if err != nil {
		return Unknown()
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) < 4 {
		return Unknown()
	}

	info := Info{
		Hash:    lines[0],
		Short:   lines[1],
		Date:    lines[2],
		Message: lines[3],
	}
	if repoURL != "" {
		info.CommitURL = strings.TrimSuffix(repoURL, "/") + "/commit/" + info.Hash
	}
	info.DateHuman = humanDate(info.Date)
	return info
}

// humanDate renders an ISO commit date like "02 January 2006 at 15:04 UTC".
func humanDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.UTC().Format("02 January 2006 at 15:04 UTC")
}

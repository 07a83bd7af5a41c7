// Package content maps logical handbook references to files on disk and
// enumerates section directories for fallback chapters.
package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports a navigation reference with no file behind it. The
// manifest may reference since-removed pages, so callers log and move on.
var ErrNotFound = errors.New("content: no file for reference")

// Resolve maps a logical reference like /handbook/company/story to a file
// under root, probing <slug>.md, <slug>.mdx, <slug>/index.md and
// <slug>/index.mdx in that order. The returned path is canonical so it can
// serve as a deduplication key.
func Resolve(root, ref string) (string, error) {
	slug := strings.Trim(strings.TrimPrefix(ref, "/handbook"), "/")
	candidates := []string{
		filepath.Join(root, slug+".md"),
		filepath.Join(root, slug+".mdx"),
		filepath.Join(root, slug, "index.md"),
		filepath.Join(root, slug, "index.mdx"),
	}
	for _, c := range candidates {
		info, err := os.Stat(c)
		if err != nil || info.IsDir() {
			continue
		}
		return Canonical(c)
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
}

// Canonical normalizes a path for identity comparison. Symlink resolution is
// best effort; an absolute path is always returned.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("canonicalize %s: %w", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

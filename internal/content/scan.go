package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zmarkan/handbook-epub/internal/frontmatter"
)

// File is one scanned handbook document with its display title.
type File struct {
	Path  string // canonical
	Title string
}

// snippetSegment marks shared include files that never stand alone.
const snippetSegment = "_snippets"

// ScanSection enumerates the markdown-family files under one section
// directory, both extensions together, sorted by full path. A missing
// directory yields an empty list. Filtering out files already placed by the
// navigation manifest is the caller's job.
func ScanSection(root, dir string) ([]File, error) {
	base := filepath.Join(root, dir)
	if _, err := os.Stat(base); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat section %s: %w", dir, err)
	}

	var paths []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == snippetSegment {
				return filepath.SkipDir
			}
			return nil
		}
		if ext := filepath.Ext(path); ext != ".md" && ext != ".mdx" {
			return nil
		}
		if hasSnippetSegment(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan section %s: %w", dir, err)
	}
	sort.Strings(paths)

	files := make([]File, 0, len(paths))
	for _, p := range paths {
		canonical, err := Canonical(p)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: canonical, Title: TitleFor(p)})
	}
	return files, nil
}

func hasSnippetSegment(path string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		if seg == snippetSegment {
			return true
		}
	}
	return false
}

// TitleFor derives a display title for a document: the frontmatter title
// when present, otherwise the humanized file stem.
func TitleFor(path string) string {
	if raw, err := os.ReadFile(path); err == nil {
		if t := frontmatter.Parse(string(raw)).Title(); t != "" {
			return t
		}
	}
	return HumanizeStem(path)
}

// HumanizeStem turns a filename into a title: "org-structure.md" becomes
// "Org Structure".
func HumanizeStem(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.ReplaceAll(stem, "-", " ")
	stem = strings.ReplaceAll(stem, "_", " ")
	return cases.Title(language.English).String(stem)
}

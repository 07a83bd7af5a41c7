package book

import (
	"fmt"
	"html"
	"os"

	"github.com/zmarkan/handbook-epub/internal/frontmatter"
	"github.com/zmarkan/handbook-epub/internal/mdx"
	"github.com/zmarkan/handbook-epub/internal/render"
)

// Chapter is one rendered output unit of the book.
type Chapter struct {
	Title string
	Body  string // rendered markup, prefixed with the title heading
}

// AssembleChapter builds a chapter from one source document: split
// frontmatter, sanitize, render, and prefix the title heading. The
// frontmatter title wins over the caller-supplied fallback. Pure function of
// its inputs.
func AssembleChapter(path, fallbackTitle string) (Chapter, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Chapter{}, fmt.Errorf("read %s: %w", path, err)
	}

	fm := frontmatter.Parse(string(raw))
	title := fm.Title()
	if title == "" {
		title = fallbackTitle
	}

	body, err := render.HTML(mdx.Clean(fm.Body))
	if err != nil {
		return Chapter{}, fmt.Errorf("render %s: %w", path, err)
	}

	return Chapter{
		Title: title,
		Body:  fmt.Sprintf("<h1>%s</h1>\n%s", html.EscapeString(title), body),
	}, nil
}

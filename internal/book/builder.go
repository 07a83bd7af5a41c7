// Package book assembles the handbook EPUB: manifest-ordered chapters first,
// then the fixed-priority sections of everything else.
package book

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	epub "github.com/go-shiori/go-epub"
	"github.com/google/uuid"

	"github.com/zmarkan/handbook-epub/internal/config"
	"github.com/zmarkan/handbook-epub/internal/content"
	"github.com/zmarkan/handbook-epub/internal/cover"
	"github.com/zmarkan/handbook-epub/internal/gitinfo"
	"github.com/zmarkan/handbook-epub/internal/nav"
)

const (
	partOneNavTitle = "Part I: The PostHog Story"
	partOneTitle    = "Part I"
	partOneSubtitle = "The PostHog Story"
	partOneBlurb    = "The core handbook — why PostHog exists, how we work, and where we're going."
)

// Builder orchestrates one EPUB build. A Builder is single-use: the included
// set it accumulates is scoped to one Build call.
type Builder struct {
	cfg      config.Config
	log      *slog.Logger
	sections []Section
	progress bool
}

// Option customizes a Builder.
type Option func(*Builder)

// WithSections overrides the default section ordering, mainly for tests.
func WithSections(sections []Section) Option {
	return func(b *Builder) { b.sections = sections }
}

// WithProgress toggles the terminal progress bar.
func WithProgress(on bool) Option {
	return func(b *Builder) { b.progress = on }
}

func New(cfg config.Config, log *slog.Logger, opts ...Option) *Builder {
	b := &Builder{cfg: cfg, log: log, sections: DefaultSections}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Stats summarizes a finished build.
type Stats struct {
	Chapters int
	Parts    int
}

// plannedChapter is one output unit scheduled for assembly.
type plannedChapter struct {
	path          string // canonical source path
	fallbackTitle string
	filename      string // internal container filename
}

// plannedPart groups planned chapters under one part divider.
type plannedPart struct {
	navTitle string // TOC entry for the divider
	title    string // big numeral on the divider page
	subtitle string
	blurb    string
	filename string
	chapters []plannedChapter
}

// Build assembles and writes the EPUB.
func (b *Builder) Build(ctx context.Context) (Stats, error) {
	now := time.Now().UTC()
	buildDate := now.Format("2006-01-02")
	buildMonth := now.Format("January 2006")
	editionLabel := buildMonth + " Edition"

	git := gitinfo.Lookup(ctx, b.cfg.RepoPath, b.cfg.RepoURL, b.cfg.GitTimeout)
	b.log.Info("source revision", "commit", git.Short, "date", git.DateHuman)

	links, err := nav.Load(b.cfg.NavPath())
	if err != nil {
		b.log.Warn("navigation manifest unusable, falling back to section scan", "error", err)
		links = nil
	}
	parts := b.plan(links)

	e, err := epub.NewEpub(fmt.Sprintf("%s — %s", b.cfg.Title, editionLabel))
	if err != nil {
		return Stats{}, fmt.Errorf("create epub: %w", err)
	}
	e.SetLang("en")
	e.SetAuthor(b.cfg.Author)
	e.SetIdentifier(b.identifier(git, buildDate))
	e.SetDescription(fmt.Sprintf("%s — %s. Built from commit %s.",
		b.cfg.Title, editionLabel, git.Short))

	cssPath, err := e.AddCSS(dataURL("text/css", []byte(stylesheet)), "default.css")
	if err != nil {
		return Stats{}, fmt.Errorf("embed stylesheet: %w", err)
	}

	if data := b.coverPNG(editionLabel, buildMonth); data != nil {
		img, err := e.AddImage(dataURL("image/png", data), "cover.png")
		if err != nil {
			return Stats{}, fmt.Errorf("embed cover: %w", err)
		}
		e.SetCover(img, "")
	}

	credits := creditsPage(b.cfg.Title, editionLabel, buildDate, b.cfg.RepoURL, b.cfg.LiveURL, git)
	if _, err := e.AddSection(credits, "About This Edition", "edition.xhtml", cssPath); err != nil {
		return Stats{}, fmt.Errorf("add credits page: %w", err)
	}

	stats := Stats{Parts: len(parts)}
	var bar *pb.ProgressBar
	if b.progress {
		total := 0
		for _, p := range parts {
			total += len(p.chapters)
		}
		bar = pb.StartNew(total)
	}

	for _, part := range parts {
		b.log.Info("assembling part",
			"part", part.title,
			"section", part.subtitle,
			"chapters", len(part.chapters))

		parent, err := e.AddSection(partDividerPage(part.title, part.subtitle, part.blurb),
			part.navTitle, part.filename, cssPath)
		if err != nil {
			return Stats{}, fmt.Errorf("add part divider %s: %w", part.filename, err)
		}
		for _, pc := range part.chapters {
			ch, err := AssembleChapter(pc.path, pc.fallbackTitle)
			if err != nil {
				return Stats{}, err
			}
			if _, err := e.AddSubSection(parent, ch.Body, ch.Title, pc.filename, cssPath); err != nil {
				return Stats{}, fmt.Errorf("add chapter %s: %w", pc.filename, err)
			}
			stats.Chapters++
			if bar != nil {
				bar.Increment()
			}
		}
	}
	if bar != nil {
		bar.Finish()
	}

	colophon := colophonPage(editionLabel, b.cfg.RepoURL, b.cfg.LiveURL, git)
	if _, err := e.AddSection(colophon, "Colophon", "colophon.xhtml", cssPath); err != nil {
		return Stats{}, fmt.Errorf("add colophon: %w", err)
	}

	if dir := filepath.Dir(b.cfg.OutputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Stats{}, fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := e.Write(b.cfg.OutputPath); err != nil {
		return Stats{}, fmt.Errorf("write epub: %w", err)
	}
	return stats, nil
}

// plan resolves the manifest references and scans the fallback sections,
// deduplicating by canonical path so nothing placed by the manifest shows up
// again in a section.
func (b *Builder) plan(links []nav.Link) []plannedPart {
	root := b.cfg.ContentRoot()
	included := make(map[string]struct{})
	var parts []plannedPart

	var first []plannedChapter
	for i, link := range links {
		path, err := content.Resolve(root, link.To)
		if err != nil {
			b.log.Warn("skipping unresolved reference", "ref", link.To)
			continue
		}
		title := link.Name
		if title == "" {
			title = content.HumanizeStem(path)
		}
		first = append(first, plannedChapter{
			path:          path,
			fallbackTitle: title,
			filename:      fmt.Sprintf("ch_%02d.xhtml", i+1),
		})
		included[path] = struct{}{}
	}
	if len(first) > 0 {
		parts = append(parts, plannedPart{
			navTitle: partOneNavTitle,
			title:    partOneTitle,
			subtitle: partOneSubtitle,
			blurb:    partOneBlurb,
			filename: "part1.xhtml",
			chapters: first,
		})
	}

	num := 2
	for _, s := range b.sections {
		files, err := content.ScanSection(root, s.Dir)
		if err != nil {
			b.log.Warn("section scan failed", "section", s.Dir, "error", err)
			continue
		}
		var chapters []plannedChapter
		for _, f := range files {
			if _, ok := included[f.Path]; ok {
				continue
			}
			included[f.Path] = struct{}{}
			chapters = append(chapters, plannedChapter{
				path:          f.Path,
				fallbackTitle: f.Title,
				filename:      fmt.Sprintf("s%d_%02d.xhtml", num, len(chapters)+1),
			})
		}
		if len(chapters) == 0 {
			continue
		}
		parts = append(parts, plannedPart{
			navTitle: fmt.Sprintf("Part %d: %s", num, s.Title),
			title:    fmt.Sprintf("Part %d", num),
			subtitle: s.Title,
			filename: fmt.Sprintf("part%d.xhtml", num),
			chapters: chapters,
		})
		num++
	}
	return parts
}

// coverPNG returns the cover image bytes: the custom cover with the edition
// label overlaid, or a generated one. A nil return means no cover, which is
// a degraded build rather than a failed one.
func (b *Builder) coverPNG(editionLabel, buildMonth string) []byte {
	if b.cfg.CoverImage != "" {
		data, err := cover.Overlay(b.cfg.CoverImage, editionLabel)
		if err == nil {
			b.log.Info("using custom cover", "path", b.cfg.CoverImage)
			return data
		}
		b.log.Warn("custom cover unusable, generating one",
			"path", b.cfg.CoverImage, "error", err)
	}
	data, err := cover.Generate(buildMonth)
	if err != nil {
		b.log.Warn("cover generation failed, continuing without a cover", "error", err)
		return nil
	}
	return data
}

// identifier derives the book identifier from the source revision and build
// date, falling back to a fresh UUID when no revision is available.
func (b *Builder) identifier(git gitinfo.Info, buildDate string) string {
	if git.Known() {
		return fmt.Sprintf("posthog-handbook-%s-%s", git.Short, buildDate)
	}
	return "urn:uuid:" + uuid.NewString()
}

func dataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

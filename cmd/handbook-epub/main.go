package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/zmarkan/handbook-epub/internal/book"
	"github.com/zmarkan/handbook-epub/internal/config"
)

func main() {
	cfg := config.Load()

	fs := flag.NewFlagSet("handbook-epub", flag.ExitOnError)
	fs.StringVar(&cfg.RepoPath, "repo-path", cfg.RepoPath, "Path to the handbook site repository clone")
	fs.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "Output EPUB file path")
	fs.StringVar(&cfg.CoverImage, "cover", cfg.CoverImage, "Custom cover image (JPG/PNG); generated when omitted")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// The bar and debug logs fight over the terminal; keep one of them.
	progress := isatty.IsTerminal(os.Stderr.Fd()) && !*verbose

	builder := book.New(cfg, log, book.WithProgress(progress))
	stats, err := builder.Build(context.Background())
	if err != nil {
		log.Error("build failed", "error", err)
		os.Exit(1)
	}

	sizeKB := int64(0)
	if fi, err := os.Stat(cfg.OutputPath); err == nil {
		sizeKB = fi.Size() / 1024
	}
	log.Info("built",
		"output", cfg.OutputPath,
		"chapters", stats.Chapters,
		"parts", stats.Parts,
		"size_kb", sizeKB)
}

// Package render converts sanitized markdown into chapter body markup.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	mdhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Safe for concurrent use; goldmark converters are stateless after New.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		mdhtml.WithHardWraps(),
		mdhtml.WithUnsafe(),
	),
)

// HTML renders markdown to body markup and normalizes the result.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return Normalize(buf.String())
}

// Elements that e-readers will not run, dropped wholesale.
var skipElements = map[string]bool{
	"script": true,
	"style":  true,
	"iframe": true,
}

// Normalize reparses a rendered fragment so every chapter body handed to the
// EPUB container is well formed, and drops non-content elements.
func Normalize(fragment string) (string, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return "", fmt.Errorf("normalize markup: %w", err)
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		if skip(n) {
			continue
		}
		prune(n)
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("serialize markup: %w", err)
		}
	}
	return buf.String(), nil
}

func skip(n *html.Node) bool {
	return n.Type == html.ElementNode && skipElements[n.Data]
}

func prune(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if skip(c) {
			n.RemoveChild(c)
		} else {
			prune(c)
		}
		c = next
	}
}

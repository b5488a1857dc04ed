// Package services holds rendering helpers shared by the shell and its tools.
package services

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for a given terminal width.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour, caching one renderer per width.
type GlamourRenderer struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer using a glamour standard style ("dark", "light", "notty", ...).
func NewGlamourRenderer(style string) *GlamourRenderer {
	if style == "" {
		style = "dark"
	}
	return &GlamourRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// Render renders content wrapped at width.
func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	r, err := g.rendererFor(width)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

func (g *GlamourRenderer) rendererFor(width int) (*glamour.TermRenderer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if r, ok := g.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(g.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	g.renderers[width] = r
	return r, nil
}

// RenderMarkdown renders content and trims the padding glamour adds around blocks.
// Widths below 20 are clamped to keep glamour margins from swallowing the text.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) (string, error) {
	if width < 20 {
		width = 20
	}
	out, err := renderer.Render(content, width)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

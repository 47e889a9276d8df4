package ui

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for terminal display.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// GlamourRenderer renders markdown with glamour.
type GlamourRenderer struct {
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer using the named glamour style
// ("auto", "dark", "light", "notty", ...) wrapped at width columns.
func NewGlamourRenderer(style string, width int) (*GlamourRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &GlamourRenderer{renderer: r}, nil
}

// Render implements MarkdownRenderer
func (g *GlamourRenderer) Render(markdown string) (string, error) {
	return g.renderer.Render(markdown)
}

// PlainRenderer returns markdown unchanged.
type PlainRenderer struct{}

// Render implements MarkdownRenderer
func (PlainRenderer) Render(markdown string) (string, error) {
	return markdown, nil
}

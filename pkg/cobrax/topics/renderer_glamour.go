package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders ".md" topics with glamour. Other formats, and
// markdown glamour fails on, go to Fallback, or are returned as they are.
type GlamourRenderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or a path
	// to a style file. Empty or "auto" picks one from the terminal.
	Style string
	// Width wraps the rendered text. Zero keeps glamour's default.
	Width    int
	Fallback Renderer
}

// NewGlamourRenderer returns a renderer with the style picked from the
// terminal.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// NewGlamourRendererWithWidth wraps rendered markdown at width columns.
func NewGlamourRendererWithWidth(width int) *GlamourRenderer {
	r := NewGlamourRenderer()
	r.Width = width
	return r
}

func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return r.fallback(content, format)
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return r.fallback(content, format)
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return r.fallback(content, format)
	}
	return rendered
}

func (r *GlamourRenderer) fallback(content, format string) string {
	if r.Fallback == nil {
		return content
	}
	return r.Fallback.Render(content, format)
}

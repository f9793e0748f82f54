package topics

import (
	"bytes"

	"github.com/arthur-debert/clio/pkg/clio"
	"github.com/arthur-debert/clio/pkg/terminal"
)

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer is the default renderer that returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// MarkupRenderer shows ".txt" topics through a clio session, so they can
// use the "**bold**" and "__underline__" markup.
type MarkupRenderer struct {
	Mode terminal.Mode
}

// Render styles text topics and returns other formats unchanged.
func (r *MarkupRenderer) Render(content string, format string) string {
	if format != ".txt" {
		return content
	}
	var buf bytes.Buffer
	c := clio.New(clio.Options{Output: &buf, Mode: r.Mode})
	c.Display(content).Clear(true)
	return buf.String()
}

// ByFormat picks a renderer per file extension, falling back to Default.
type ByFormat struct {
	Formats map[string]Renderer
	Default Renderer
}

func (r *ByFormat) Render(content string, format string) string {
	if renderer, ok := r.Formats[format]; ok {
		return renderer.Render(content, format)
	}
	if r.Default != nil {
		return r.Default.Render(content, format)
	}
	return content
}

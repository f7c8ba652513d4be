package dialog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/alexcabrera/surface/layout"
)

// rendererCache stores glamour renderers by width to avoid recreating
// them on every dialog.
var rendererCache sync.Map // map[int]*glamour.TermRenderer

const markdownWidth = 72

// markdownRenderer returns a cached auto-style glamour renderer for
// the given width, clamped to keep the cache small.
func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	width = layout.Clamp(width, 40, 200)

	if r, ok := rendererCache.Load(width); ok {
		return r.(*glamour.TermRenderer), nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}

	rendererCache.Store(width, r)
	return r, nil
}

func renderMarkdown(body string) (string, error) {
	r, err := markdownRenderer(markdownWidth)
	if err != nil {
		return "", err
	}
	out, err := r.Render(body)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimSpace(out), nil
}

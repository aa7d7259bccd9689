package tui

import (
	"io"

	"github.com/charmbracelet/glamour"

	"tro/internal/adapters/tui/styles"
)

// defaultWordWrap is used when the terminal width is unknown
const defaultWordWrap = 80

// RenderMarkdown renders a card document for display on w. Plain text is
// returned unchanged when w does not support color.
func RenderMarkdown(w io.Writer, text string, width int) (string, error) {
	if !styles.UseColor(w) {
		return text, nil
	}
	if width <= 0 {
		width = defaultWordWrap
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}

// Package clipboard writes to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"

	"tro/internal/ports"
)

// System implements ports.Clipboard using the platform clipboard tools
type System struct{}

var _ ports.Clipboard = System{}

// Available reports whether a clipboard backend was found
func (System) Available() bool {
	return !clipboard.Unsupported
}

// WriteAll replaces the clipboard contents with text
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

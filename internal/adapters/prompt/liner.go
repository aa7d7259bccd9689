// Package prompt reads single lines of user input from the terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/peterh/liner"

	"tro/internal/ports"
)

// ErrAborted is returned when the user presses Ctrl-C or closes input
var ErrAborted = errors.New("input aborted")

// LinePrompter implements ports.Prompter with line editing.
//
// The terminal is only switched to raw mode for the duration of a prompt,
// so an editor can be started between prompts.
type LinePrompter struct{}

var _ ports.Prompter = (*LinePrompter)(nil)

// NewLinePrompter creates a new LinePrompter
func NewLinePrompter() *LinePrompter {
	return &LinePrompter{}
}

// Prompt shows label and reads one line
func (p *LinePrompter) Prompt(label string) (string, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	input, err := line.Prompt(label)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", ErrAborted, err)
		}
		return "", err
	}
	return input, nil
}

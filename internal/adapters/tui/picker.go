package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tro/internal/adapters/tui/views"
	"tro/internal/ports"
)

// ErrPickCancelled is returned when the user dismisses the picker
var ErrPickCancelled = errors.New("selection cancelled")

// TerminalPicker implements ports.Picker with an inline bubbletea list
type TerminalPicker struct {
	in  io.Reader
	out io.Writer
}

var _ ports.Picker = (*TerminalPicker)(nil)

// NewTerminalPicker creates a picker reading keys from stdin and drawing on
// stderr, so stdout stays clean for command output
func NewTerminalPicker() *TerminalPicker {
	return &TerminalPicker{in: os.Stdin, out: os.Stderr}
}

// Pick shows options and returns the chosen index
func (p *TerminalPicker) Pick(title string, options []string) (int, error) {
	prog := tea.NewProgram(
		views.NewPickerModel(title, options),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := prog.Run()
	if err != nil {
		return -1, fmt.Errorf("picker: %w", err)
	}

	m := final.(views.PickerModel)
	if m.Cancelled() || m.Chosen() < 0 {
		return -1, ErrPickCancelled
	}
	return m.Chosen(), nil
}

package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"tro/internal/ports"
)

// DefaultEditor is used when neither a configured editor nor $EDITOR is set
const DefaultEditor = "vi"

// Opener implements ports.EditorOpener
type Opener struct {
	configured string
	getenv     func(string) string
}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener. configured takes precedence over
// $EDITOR when non-empty.
func NewOpener(configured string) *Opener {
	return &Opener{configured: configured, getenv: os.Getenv}
}

// OpenFile opens a file in the user's preferred editor and waits for it
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor. The editor
// setting may carry arguments ("code --wait"); path is always appended last.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	fields := strings.Fields(o.Editor())
	if len(fields) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR or the editor config key")
	}

	args := append(fields[1:], path)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// Editor returns the editor command line to use
func (o *Opener) Editor() string {
	if o.configured != "" {
		return o.configured
	}
	if editor := o.getenv("EDITOR"); editor != "" {
		return editor
	}
	return DefaultEditor
}

package ports

import (
	"context"
	"os/exec"

	"tro/internal/domain"
)

// EditorOpener defines the interface for opening files in an external editor
type EditorOpener interface {
	// OpenFile opens the specified file in the user's preferred editor and
	// waits for the editor to exit
	OpenFile(path string) error

	// Command returns an unstarted exec.Cmd that edits path. The edit
	// session starts it and polls for its exit without blocking on it.
	Command(path string) (*exec.Cmd, error)
}

// CardEditor runs an interactive edit of a card. It returns the card as
// last accepted by the remote service, or nil when nothing was saved.
type CardEditor interface {
	Edit(ctx context.Context, card domain.Card) (*domain.Card, error)
}

// Package editsync keeps a card in sync with edits made in an external
// editor.
//
// The card is rendered into a scratch file and the user's editor is started
// on it. While the editor runs the file is re-read every poll interval; each
// parsable state that differs from what was last pushed is sent to Trello.
// When the editor exits after a failed update the user is asked to
// acknowledge the error and the editor is opened again on the same file.
package editsync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"tro/internal/domain"
	"tro/internal/logging"
	"tro/internal/ports"
)

// DefaultInterval is the delay between two checks of the scratch file
const DefaultInterval = 500 * time.Millisecond

// RetryPrompt is shown before the editor is reopened after a failed update
const RetryPrompt = "Press enter to re-enter editor"

// ErrRetryDeclined is returned when the user does not acknowledge a failed
// update. It wraps the last update error.
var ErrRetryDeclined = errors.New("card update failed and retry was declined")

// Codec converts a card to its editable text and back
type Codec interface {
	Render(card domain.Card) string
	Parse(text string) (domain.CardContents, error)
}

// Syncer runs edit sessions. It holds configuration only; all per-session
// state lives in session.
type Syncer struct {
	updater  ports.CardUpdater
	editor   ports.EditorOpener
	prompter ports.Prompter
	codec    Codec
	log      logging.Logger
	stderr   io.Writer
	interval time.Duration
	watch    bool
	tempDir  string
}

// Option configures a Syncer
type Option func(*Syncer)

// WithInterval overrides the poll interval
func WithInterval(d time.Duration) Option {
	return func(s *Syncer) {
		s.interval = d
	}
}

// WithCodec overrides the card codec
func WithCodec(c Codec) Option {
	return func(s *Syncer) {
		s.codec = c
	}
}

// WithLogger sets the logger
func WithLogger(l logging.Logger) Option {
	return func(s *Syncer) {
		s.log = l
	}
}

// WithStderr sets where update errors are reported
func WithStderr(w io.Writer) Option {
	return func(s *Syncer) {
		s.stderr = w
	}
}

// WithWatch enables waking the poll loop on file system events in addition
// to the poll interval
func WithWatch(enabled bool) Option {
	return func(s *Syncer) {
		s.watch = enabled
	}
}

// WithTempDir sets the directory scratch files are created in
func WithTempDir(dir string) Option {
	return func(s *Syncer) {
		s.tempDir = dir
	}
}

// NewSyncer creates a Syncer
func NewSyncer(updater ports.CardUpdater, editor ports.EditorOpener, prompter ports.Prompter, opts ...Option) *Syncer {
	s := &Syncer{
		updater:  updater,
		editor:   editor,
		prompter: prompter,
		codec:    domain.CardCodec{},
		log:      logging.Nop(),
		stderr:   os.Stderr,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// session is the state of one edit of one card
type session struct {
	*Syncer
	log      logging.Logger
	path     string
	baseline string
	card     domain.Card
	outcome  Outcome
	// resubmit is set when the editor is reopened after a failed update
	resubmit bool
}

// Edit runs an edit session for card. It returns the card as last accepted
// by Trello, or nil when the user never saved a change.
func (s *Syncer) Edit(ctx context.Context, card domain.Card) (*domain.Card, error) {
	sess, err := s.start(card)
	if err != nil {
		return nil, err
	}
	defer sess.cleanup()

	for {
		if err := sess.runEditor(ctx); err != nil {
			return nil, err
		}

		switch {
		case !sess.outcome.Attempted():
			sess.log.Debug(ctx, "exiting edit session, no update was attempted")
			return nil, nil

		case !sess.outcome.Failed():
			sess.log.Debug(ctx, "exiting edit session after successful update")
			return sess.outcome.Card, nil
		}

		fmt.Fprintln(s.stderr, "An error occurred while trying to update the card.")
		fmt.Fprintln(s.stderr, sess.outcome.Err)
		fmt.Fprintln(s.stderr)

		if _, err := s.prompter.Prompt(RetryPrompt); err != nil {
			sess.log.Debug(ctx, "retry prompt aborted", "error", err)
			return nil, fmt.Errorf("%w: %w", ErrRetryDeclined, sess.outcome.Err)
		}
		sess.resubmit = true
	}
}

// start creates the scratch file holding the rendered card
func (s *Syncer) start(card domain.Card) (*session, error) {
	f, err := os.CreateTemp(s.tempDir, "tro-*.md")
	if err != nil {
		return nil, fmt.Errorf("create scratch file: %w", err)
	}

	rendered := s.codec.Render(card)
	if _, err := fmt.Fprintln(f, rendered); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("close scratch file: %w", err)
	}

	log := s.log.With("session", uuid.NewString(), "card", card.ID)

	return &session{
		Syncer:   s,
		log:      log,
		path:     f.Name(),
		baseline: trimEnd(rendered),
		card:     card,
	}, nil
}

func (sess *session) cleanup() {
	if err := os.Remove(sess.path); err != nil && !os.IsNotExist(err) {
		sess.log.Warn(context.Background(), "failed to remove scratch file", "path", sess.path, "error", err)
	}
}

// runEditor starts the editor and polls the scratch file until the editor
// exits. Only scratch file I/O errors, editor start failures and context
// cancellation are returned.
func (sess *session) runEditor(ctx context.Context) error {
	cmd, err := sess.editor.Command(sess.path)
	if err != nil {
		return fmt.Errorf("prepare editor: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start editor: %w", err)
	}
	sess.log.Debug(ctx, "editor started", "editor", cmd.Path, "path", sess.path)

	exited := make(chan struct{})
	go func() {
		// The exit status is not meaningful for deciding success
		err := cmd.Wait()
		sess.log.Debug(ctx, "editor exited", "error", err)
		close(exited)
	}()
	defer stopEditor(cmd, exited)

	var wake <-chan struct{}
	if sess.watch {
		w, err := newFileWatcher(sess.path)
		if err != nil {
			sess.log.Warn(ctx, "file watch unavailable, polling only", "error", err)
		} else {
			defer w.Close()
			wake = w.Wake()
		}
	}

	timer := time.NewTimer(sess.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		case <-wake:
			timer.Stop()
		}

		// Observe the exit before reading so the last save is always polled
		done := false
		select {
		case <-exited:
			done = true
		default:
		}

		if err := sess.poll(ctx); err != nil {
			return err
		}
		if done {
			return nil
		}

		timer.Reset(sess.interval)
	}
}

// stopEditor kills the editor if it is still running and waits for it
func stopEditor(cmd *exec.Cmd, exited <-chan struct{}) {
	select {
	case <-exited:
		return
	default:
	}
	if cmd.Process != nil {
		cmd.Process.Kill()
	}
	<-exited
}

// poll reads the scratch file and pushes its contents when needed
func (sess *session) poll(ctx context.Context) error {
	data, err := os.ReadFile(sess.path)
	if err != nil {
		return fmt.Errorf("read scratch file: %w", err)
	}

	// Editors commonly append a trailing newline
	text := trimEnd(string(data))

	contents, err := sess.codec.Parse(text)
	if err != nil {
		sess.log.Debug(ctx, "unable to parse card contents", "error", err)
		return nil
	}

	if !sess.shouldUpdate(text, contents) {
		return nil
	}

	sess.card.Name = contents.Name
	sess.card.Desc = contents.Desc
	sess.resubmit = false

	sess.log.Debug(ctx, "updating card", "name", sess.card.Name)
	card := sess.card
	updated, err := sess.updater.UpdateCard(ctx, &card)
	if err != nil {
		sess.log.Debug(ctx, "error updating card", "error", err)
		sess.outcome = failure(err)
		return nil
	}

	sess.log.Debug(ctx, "updated card")
	sess.outcome = success(updated)
	return nil
}

// shouldUpdate decides whether parsed contents are pushed: when a field
// differs from the last pushed state, for the first attempt once the
// document differs from its initial rendering, and once more after the
// editor is reopened following a failure. A failure is never retried while
// the same editor is still open and the content is unchanged.
func (sess *session) shouldUpdate(text string, c domain.CardContents) bool {
	if sess.outcome.Failed() && sess.resubmit {
		return true
	}
	if !sess.outcome.Attempted() {
		return text != sess.baseline
	}
	return sess.card.Name != c.Name || sess.card.Desc != c.Desc
}

func trimEnd(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

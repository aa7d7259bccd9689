package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForVerbosity(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LevelForVerbosity(0))
	assert.Equal(t, slog.LevelInfo, LevelForVerbosity(1))
	assert.Equal(t, slog.LevelDebug, LevelForVerbosity(2))
	assert.Equal(t, slog.LevelDebug, LevelForVerbosity(5))
}

func TestNew_FiltersByVerbosity(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, 1)
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=v")
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, 2).With("session", "abc")
	log.Debug(context.Background(), "polling", "card", "c1")

	out := buf.String()
	for _, s := range []string{"level=DEBUG", "msg=polling", "session=abc", "card=c1"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	log := Nop()
	ctx := context.TODO()
	log.Debug(ctx, "x")
	log.Info(ctx, "x")
	log.Warn(ctx, "x")
	log.Error(ctx, "x")
	log.With("a", 1).Info(ctx, "y")
}

package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestLabelColor(t *testing.T) {
	if got := LabelColor("red"); got != lipgloss.Color("#EB5A46") {
		t.Errorf("LabelColor(red) = %v", got)
	}
	if got := LabelColor("chartreuse"); got != Muted {
		t.Errorf("unknown color should be muted, got %v", got)
	}
}

func TestUseColor_NotTerminal(t *testing.T) {
	if UseColor(&bytes.Buffer{}) {
		t.Error("buffers are not terminals")
	}
}

func TestConfigure_Ascii(t *testing.T) {
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })
	t.Setenv("NO_COLOR", "1")

	Configure(&bytes.Buffer{})

	if got := Label("bug", "red"); got != "bug" {
		t.Errorf("expected plain label, got %q", got)
	}
	if got := Label("", "green"); got != "green" {
		t.Errorf("expected color name for unnamed label, got %q", got)
	}
}

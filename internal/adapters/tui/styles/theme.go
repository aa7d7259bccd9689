package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	// Colors
	Primary   = lipgloss.Color("#0079BF") // Trello blue
	Secondary = lipgloss.Color("#61BD4F") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EB5A46") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Names of boards, lists and cards in messages
	Name = lipgloss.NewStyle().
		Foreground(Secondary)

	// Closed marker in search results
	Closed = lipgloss.NewStyle().
		Foreground(Error)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	// Picker rows
	Selected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Option = lipgloss.NewStyle().
		PaddingLeft(2)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// labelColors maps Trello label color names to display colors
var labelColors = map[string]lipgloss.Color{
	"green":  "#61BD4F",
	"yellow": "#F2D600",
	"orange": "#FF9F1A",
	"red":    "#EB5A46",
	"purple": "#C377E0",
	"blue":   "#0079BF",
	"sky":    "#00C2E0",
	"lime":   "#51E898",
	"pink":   "#FF78CB",
	"black":  "#344563",
}

// LabelColor returns the display color for a Trello label color name.
// Unknown and empty names map to Muted.
func LabelColor(name string) lipgloss.Color {
	if c, ok := labelColors[name]; ok {
		return c
	}
	return Muted
}

// Label renders a label name in its color. Labels without a name show
// their color name.
func Label(name, color string) string {
	if name == "" {
		name = color
	}
	return lipgloss.NewStyle().Foreground(LabelColor(color)).Render(name)
}

// UseColor reports whether color output should be written to w
func UseColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Configure selects the lipgloss color profile for w. Color is disabled
// when NO_COLOR is set or w is not a terminal.
func Configure(w io.Writer) {
	if !UseColor(w) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(w).Profile)
}

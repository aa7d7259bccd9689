package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tro/internal/adapters/tui/styles"
)

// PickerKeyMap defines key bindings for the picker
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Cancel key.Binding
}

// DefaultPickerKeys returns the default picker key bindings
var DefaultPickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc/q", "cancel"),
	),
}

// defaultPageSize is the number of options shown when the terminal height
// is unknown
const defaultPageSize = 10

// PickerModel lets the user choose one option from a list
type PickerModel struct {
	ViewState
	Keys      PickerKeyMap
	title     string
	options   []string
	cursor    int
	offset    int
	chosen    int
	cancelled bool
}

// NewPickerModel creates a picker over options
func NewPickerModel(title string, options []string) PickerModel {
	m := PickerModel{
		Keys:    DefaultPickerKeys,
		title:   title,
		options: options,
		chosen:  -1,
	}
	if len(options) == 0 {
		m.SetMessage("nothing to choose from")
	}
	return m
}

// Chosen returns the chosen index, or -1 when nothing was chosen
func (m PickerModel) Chosen() int {
	return m.chosen
}

// Cancelled reports whether the user dismissed the picker
func (m PickerModel) Cancelled() bool {
	return m.cancelled
}

// Cursor returns the highlighted index
func (m PickerModel) Cursor() int {
	return m.cursor
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.scroll()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Choose):
			if len(m.options) > 0 {
				m.chosen = m.cursor
			}
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.scroll()
		case key.Matches(msg, m.Keys.Down):
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
			m.scroll()
		}
	}
	return m, nil
}

// pageSize returns how many options fit on screen below the title and help
func (m PickerModel) pageSize() int {
	if m.Height <= 0 {
		return defaultPageSize
	}
	return max(m.Height-5, 1)
}

// scroll keeps the cursor inside the visible window
func (m *PickerModel) scroll() {
	size := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+size {
		m.offset = m.cursor - size + 1
	}
}

func (m PickerModel) View() string {
	if m.chosen >= 0 || m.cancelled {
		return ""
	}

	vb := NewViewBuilder().Title(m.title)

	end := min(m.offset+m.pageSize(), len(m.options))
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			vb.Line(styles.Selected.Render("> " + m.options[i]))
		} else {
			vb.Line(styles.Option.Render(m.options[i]))
		}
	}
	if len(m.options) > end-m.offset {
		vb.Muted(fmt.Sprintf("%d/%d", m.cursor+1, len(m.options)))
	}

	return vb.Error(m.Message).
		Help(m.Keys.Up, m.Keys.Down, m.Keys.Choose, m.Keys.Cancel).
		String()
}

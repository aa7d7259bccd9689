package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m PickerModel, msgs ...tea.Msg) (PickerModel, tea.Cmd) {
	var cmd tea.Cmd
	var model tea.Model = m
	for _, msg := range msgs {
		model, cmd = model.Update(msg)
	}
	return model.(PickerModel), cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyJ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
)

func TestPickerModel_Choose(t *testing.T) {
	m := NewPickerModel("Pick a board", []string{"Work", "Workshop", "Homework"})

	m, cmd := press(m, keyDown, keyJ, keyUp, keyEnter)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.Chosen() != 1 {
		t.Errorf("expected index 1, got %d", m.Chosen())
	}
	if m.Cancelled() {
		t.Error("picker should not be cancelled")
	}
}

func TestPickerModel_CursorStopsAtEnds(t *testing.T) {
	m := NewPickerModel("Pick", []string{"a", "b"})

	m, _ = press(m, keyUp)
	if m.Cursor() != 0 {
		t.Errorf("cursor moved above first option: %d", m.Cursor())
	}
	m, _ = press(m, keyDown, keyDown, keyDown)
	if m.Cursor() != 1 {
		t.Errorf("cursor moved past last option: %d", m.Cursor())
	}
}

func TestPickerModel_Cancel(t *testing.T) {
	m := NewPickerModel("Pick", []string{"a", "b"})

	m, cmd := press(m, keyEsc)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !m.Cancelled() || m.Chosen() != -1 {
		t.Errorf("expected cancelled picker, got chosen=%d", m.Chosen())
	}
}

func TestPickerModel_View(t *testing.T) {
	m := NewPickerModel("Multiple boards match \"Wor\"", []string{"Work", "Workshop"})
	m, _ = press(m, keyDown)

	view := m.View()
	if !strings.Contains(view, "Multiple boards match") {
		t.Error("expected title in view")
	}
	if !strings.Contains(view, "> Workshop") {
		t.Errorf("expected cursor on Workshop, got:\n%s", view)
	}
	if !strings.Contains(view, "choose") {
		t.Error("expected help line in view")
	}
}

func TestPickerModel_Scrolls(t *testing.T) {
	options := make([]string, 20)
	for i := range options {
		options[i] = string(rune('a' + i))
	}
	m := NewPickerModel("Pick", options)
	m, _ = press(m, tea.WindowSizeMsg{Width: 80, Height: 8})

	for range 10 {
		m, _ = press(m, keyDown)
	}

	view := m.View()
	if !strings.Contains(view, "> k") {
		t.Errorf("expected cursor row visible, got:\n%s", view)
	}
	if strings.Contains(view, "  a\n") {
		t.Errorf("expected first row scrolled out, got:\n%s", view)
	}
	if !strings.Contains(view, "11/20") {
		t.Errorf("expected position indicator, got:\n%s", view)
	}
}

func TestPickerModel_Empty(t *testing.T) {
	m := NewPickerModel("Pick", nil)
	if !strings.Contains(m.View(), "nothing to choose from") {
		t.Errorf("expected empty message, got:\n%s", m.View())
	}

	m, _ = press(m, keyEnter)
	if m.Chosen() != -1 {
		t.Errorf("expected no choice, got %d", m.Chosen())
	}
}

package dashboardtui

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSearchBackspaceTrimsWholeRunes(t *testing.T) {
	m := &dashboardUIModel{searching: true, searchInput: "andré"}

	m.searchInputUpdate(tea.KeyMsg{Type: tea.KeyBackspace})

	if m.searchInput != "andr" {
		t.Errorf("backspace: got %q, want %q", m.searchInput, "andr")
	}
	if !utf8.ValidString(m.searchInput) {
		t.Errorf("backspace left invalid UTF-8: %q", m.searchInput)
	}
}

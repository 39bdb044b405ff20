package feedtui

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSearchBackspaceTrimsWholeRunes(t *testing.T) {
	backspace := tea.KeyMsg{Type: tea.KeyBackspace}

	cases := []struct {
		input string
		want  string
	}{
		{"café", "caf"},
		{"josé 🎉", "josé "},
		{"a", ""},
		{"", ""},
	}

	for _, c := range cases {
		m := &feedUIModel{searching: true, searchInput: c.input}
		m.searchInputUpdate(backspace)

		if m.searchInput != c.want {
			t.Errorf("backspace on %q: got %q, want %q", c.input, m.searchInput, c.want)
		}
		if !utf8.ValidString(m.searchInput) {
			t.Errorf("backspace on %q left invalid UTF-8: %q", c.input, m.searchInput)
		}
	}
}

package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirmModel_Yes(t *testing.T) {
	m := NewConfirmModel("Remove 3 package(s)?")

	updated, cmd := m.Update(keyMsg('y'))
	got := updated.(ConfirmModel)

	if !got.Confirmed {
		t.Error("Confirmed = false after pressing y")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestConfirmModel_No(t *testing.T) {
	for _, r := range []rune{'n', 'q'} {
		m := NewConfirmModel("Remove?")
		updated, cmd := m.Update(keyMsg(r))
		got := updated.(ConfirmModel)

		if got.Confirmed {
			t.Errorf("Confirmed = true after pressing %q", r)
		}
		if cmd == nil {
			t.Errorf("expected tea.Quit command after pressing %q", r)
		}
	}
}

func TestConfirmModel_IgnoresOtherKeys(t *testing.T) {
	m := NewConfirmModel("Remove?")

	updated, cmd := m.Update(keyMsg('x'))
	got := updated.(ConfirmModel)

	if got.Confirmed || cmd != nil {
		t.Error("unrelated key should not answer the prompt")
	}
}

func TestConfirmModel_View(t *testing.T) {
	m := NewConfirmModel("Remove 2 package(s)?")

	view := m.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}
}

package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// ConfirmModel - Yes/no prompt
// =============================================================================

// ConfirmModel is the bubbletea model for the pre-removal confirmation.
type ConfirmModel struct {
	Question  string
	Confirmed bool
	answered  bool
}

// NewConfirmModel creates a confirmation prompt with the given question.
func NewConfirmModel(question string) ConfirmModel {
	return ConfirmModel{Question: question}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y":
			m.Confirmed = true
			m.answered = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.Confirmed = false
			m.answered = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.Question))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render("[y/n]"))
	if m.answered {
		b.WriteString("\n")
	}
	return b.String()
}

// confirm runs the prompt and reports the user's choice.
// A prompt that cannot run (e.g., no TTY) counts as a refusal.
func confirm(question string) bool {
	model, err := tea.NewProgram(NewConfirmModel(question)).Run()
	if err != nil {
		return false
	}
	m, ok := model.(ConfirmModel)
	return ok && m.Confirmed
}

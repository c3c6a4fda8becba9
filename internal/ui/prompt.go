package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptState is the / keyword prompt.
type promptState struct {
	active bool
	input  textinput.Model
}

func newPrompt() promptState {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "keyword"
	ti.CharLimit = 200
	return promptState{input: ti}
}

func (m *Model) openPrompt() tea.Cmd {
	m.prompt.active = true
	m.prompt.input.SetValue("")
	return m.prompt.input.Focus()
}

func (m *Model) closePrompt() {
	m.prompt.active = false
	m.prompt.input.Blur()
}

// handlePromptKey owns every key while the prompt is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closePrompt()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		value := m.prompt.input.Value()
		m.closePrompt()
		s, ok := keywordSearch(value)
		if !ok {
			return m, nil
		}
		return m, s.Activate(m.fetcher())
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type pathModel struct {
	title     string
	input     textinput.Model
	value     string
	cancelled bool
}

func newPathModel(title, initial string) pathModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Width = 60
	ti.SetValue(initial)
	ti.Focus()
	return pathModel{title: title, input: ti}
}

func (m pathModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pathModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.value = strings.TrimSpace(m.input.Value())
			m.cancelled = m.value == ""
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m pathModel) View() string {
	return titleStyle.Render(m.title) + "\n\n" +
		m.input.View() + "\n\n" +
		dimStyle.Render("enter to accept, esc to cancel") + "\n"
}

// PromptPath asks for a path, pre-filled with initial. An empty answer or
// esc returns ErrCancelled.
func (t Terminal) PromptPath(title, initial string) (string, error) {
	final, err := tea.NewProgram(newPathModel(title, initial), t.programOptions()...).Run()
	if err != nil {
		return "", fmt.Errorf("failed to run path dialog: %w", err)
	}
	m := final.(pathModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.value, nil
}

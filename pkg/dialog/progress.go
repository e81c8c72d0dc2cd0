package dialog

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type workDoneMsg struct{ err error }

type spinnerModel struct {
	spin  spinner.Model
	label string
	run   func() error
	err   error
	done  bool
}

func newSpinnerModel(label string, run func() error) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return spinnerModel{spin: s, label: label, run: run}
}

func (m spinnerModel) Init() tea.Cmd {
	run := m.run
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		return workDoneMsg{err: run()}
	})
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	// The work cannot be interrupted; keys are ignored until it finishes.
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spin.View() + " " + m.label + "\n"
}

// RunWithSpinner runs fn while a spinner and label are shown, and returns fn's error.
func (t Terminal) RunWithSpinner(label string, fn func() error) error {
	final, err := tea.NewProgram(newSpinnerModel(label, fn), t.programOptions()...).Run()
	if err != nil {
		return fmt.Errorf("failed to run progress dialog: %w", err)
	}
	return final.(spinnerModel).err
}

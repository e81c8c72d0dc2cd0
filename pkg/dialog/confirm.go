package dialog

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	title     string
	message   string
	selected  bool // true while "Yes" is highlighted
	confirmed bool
}

func newConfirmModel(title, message string) confirmModel {
	return confirmModel{title: title, message: message, selected: true}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.confirmed = true
		return m, tea.Quit
	case "n", "N", "q", "esc", "ctrl+c":
		m.confirmed = false
		return m, tea.Quit
	case "left", "right", "h", "l", "tab", "shift+tab":
		m.selected = !m.selected
	case "enter":
		m.confirmed = m.selected
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	yes, no := "  Yes  ", "  No  "
	if m.selected {
		yes = titleStyle.Render("[ Yes ]")
	} else {
		no = titleStyle.Render("[ No ]")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.message)
	b.WriteString("\n\n")
	b.WriteString(yes + "  " + no)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("y/n, ←/→ to choose, enter to confirm"))
	b.WriteString("\n")
	return b.String()
}

// Terminal runs dialogs on the given streams.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

func (t Terminal) programOptions() []tea.ProgramOption {
	var opts []tea.ProgramOption
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}
	if t.Out != nil {
		opts = append(opts, tea.WithOutput(t.Out))
	}
	return opts
}

// Confirm shows a yes/no dialog and reports the answer.
func (t Terminal) Confirm(title, message string) (bool, error) {
	final, err := tea.NewProgram(newConfirmModel(title, message), t.programOptions()...).Run()
	if err != nil {
		return false, fmt.Errorf("failed to run confirm dialog: %w", err)
	}
	return final.(confirmModel).confirmed, nil
}

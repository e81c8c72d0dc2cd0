// Package dialog holds the terminal dialogs around a combine run: choosing
// paths, previewing and confirming the file list, and reporting the result.
package dialog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"enclose/pkg/combine"
)

// DefaultPreviewLimit is how many file names the preview lists.
const DefaultPreviewLimit = 10

const (
	MsgNoDirectory = "No directory selected. Exiting."
	MsgNoOutput    = "No output file selected. Exiting."
	MsgNoFiles     = "No code files found in the selected directory."
)

// ErrCancelled is returned when the user dismisses a dialog.
var ErrCancelled = errors.New("cancelled by user")

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// PreviewMessage describes the files about to be combined and asks to continue.
// At most limit names are listed; limit <= 0 means DefaultPreviewLimit.
func PreviewMessage(rels []string, limit int) string {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d code files. Continue?", len(rels))
	if len(rels) <= limit {
		b.WriteString("\n\nFiles to be combined:\n")
		b.WriteString(strings.Join(rels, "\n"))
		return b.String()
	}

	fmt.Fprintf(&b, "\n\nShowing first %d files:\n", limit)
	b.WriteString(strings.Join(rels[:limit], "\n"))
	fmt.Fprintf(&b, "\n... and %d more files", len(rels)-limit)
	return b.String()
}

// SummaryMessage reports a finished run.
func SummaryMessage(res combine.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Successfully combined %d files!\n\n", res.Files)
	fmt.Fprintf(&b, "Output file: %s\n", res.Output)
	fmt.Fprintf(&b, "File size: %s", FormatMB(res.Bytes))
	if res.Unreadable > 0 {
		fmt.Fprintf(&b, "\nUnreadable files: %d", res.Unreadable)
	}
	return b.String()
}

// RenderSummary is SummaryMessage framed for the terminal.
func RenderSummary(res combine.Result) string {
	lines := strings.SplitN(SummaryMessage(res), "\n", 2)
	body := successStyle.Render(lines[0])
	if len(lines) > 1 {
		body += "\n" + lines[1]
	}
	return boxStyle.Render(body)
}

// RenderWarning styles a one-line warning.
func RenderWarning(msg string) string {
	return warnStyle.Render(msg)
}

// FormatMB renders a byte count in mebibytes with two decimals.
func FormatMB(n int64) string {
	return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
}

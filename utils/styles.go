package utils

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(11)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// PrintField writes "label value" using the CLI styles. An empty value is shown muted as "-".
func PrintField(w io.Writer, label, value string) error {
	rendered := valueStyle.Render(value)
	if value == "" {
		rendered = mutedStyle.Render("-")
	}
	_, err := fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label), rendered)
	return err
}

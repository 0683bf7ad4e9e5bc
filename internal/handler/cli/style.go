package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const separatorWidth = 80

// styles renders through a renderer bound to the output writer, so colors
// are dropped when the output is not a terminal.
type styles struct {
	banner    lipgloss.Style
	label     lipgloss.Style
	url       lipgloss.Style
	errorMsg  lipgloss.Style
	warning   lipgloss.Style
	separator lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		banner: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")),
		label: r.NewStyle().
			Bold(true),
		url: r.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true),
		errorMsg: r.NewStyle().
			Foreground(lipgloss.Color("9")),
		warning: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}),
		separator: r.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

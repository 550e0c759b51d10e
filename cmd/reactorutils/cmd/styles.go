package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
}

// newStyles binds the styles to out so colors are only used on terminals
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorPrimary),
		label: r.NewStyle().Foreground(colorMuted).Width(22),
		value: r.NewStyle(),
		ok:    r.NewStyle().Bold(true).Foreground(colorSuccess),
		err:   r.NewStyle().Bold(true).Foreground(colorError),
	}
}

func (s styles) row(out io.Writer, label string, value interface{}) {
	fmt.Fprintln(out, s.label.Render(label)+s.value.Render(fmt.Sprint(value)))
}

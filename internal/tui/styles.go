package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// teamStyle colours the team badge. The provider may send CSS colour names,
// which the terminal cannot render; only hex values are applied.
func teamStyle(colour string) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if strings.HasPrefix(colour, "#") {
		style = style.Foreground(lipgloss.Color(colour))
	}
	return style
}

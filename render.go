package clackers

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shade is displayed in place of a marked cell.
const Shade = "▚"

// BoardString renders cells as plain text: marked cells as Shade and
// clear cells as their index.
func BoardString(cells []Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		if c.Marked {
			parts[i] = Shade
		} else {
			parts[i] = strconv.Itoa(c.Index)
		}
	}
	return strings.Join(parts, " ")
}

var (
	markedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	clearStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	rollStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	boardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// RenderBoard renders cells for a terminal.
func RenderBoard(cells []Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		if c.Marked {
			parts[i] = markedStyle.Render(Shade)
		} else {
			parts[i] = clearStyle.Render(strconv.Itoa(c.Index))
		}
	}
	return boardStyle.Render(strings.Join(parts, " "))
}

// RenderRoll renders a roll for a terminal.
func RenderRoll(roll Roll) string {
	return rollStyle.Render(roll.String())
}

package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ksa/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every card on a screen so
// the boxes line up.
func ContentWidth(frameWidth int) int {
	// border (2) + padding (4)
	w := frameWidth - 6
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded border at content width cw.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1).
		Render(content)
}

// TitledCard is a Card with a bold heading line.
func TitledCard(title, content string, cw int) string {
	return Card(theme.Label.Render(title)+"\n"+content, cw)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

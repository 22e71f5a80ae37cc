package dialogs

import "github.com/charmbracelet/lipgloss"

const boxWidth = 60

// box is the frame shared by every dialog. The border background matches
// the overlay the model places dialogs on.
var box = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("252")).
	BorderBackground(lipgloss.Color("236")).
	Padding(1, 2).
	Width(boxWidth)

var hint = lipgloss.NewStyle().Faint(true)

func center(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}

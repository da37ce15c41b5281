package presenters

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/snyk/cli-extension-file-flows/internal/viewstate"
)

const notificationWidth = 60

var boxStyle = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.NoColor{}).
	PaddingLeft(1).
	PaddingRight(1).
	Width(notificationWidth)

// renderBold renders text in bold style.
func renderBold(str string) string {
	return lipgloss.NewStyle().Bold(true).Render(str)
}

// renderGreen renders text in green.
func renderGreen(str string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	return style.Render(str)
}

// renderRed renders text in red.
func renderRed(str string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	return style.Render(str)
}

// renderLabel renders the SUCCESS or ERROR badge of a notification.
func renderLabel(kind viewstate.NotificationKind) string {
	style := lipgloss.NewStyle().
		Bold(true).
		PaddingLeft(1).
		PaddingRight(1).
		Foreground(lipgloss.Color("15"))

	if kind == viewstate.NotificationSuccess {
		return style.Background(lipgloss.Color("2")).Render("SUCCESS")
	}
	return style.Background(lipgloss.Color("1")).Render("ERROR")
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/altin/recipe-tui/internal/ui"
)

func RenderStatusBar(status, hints string, theme ui.Theme, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.ColorMuted).Render("  " + status)

	help := lipgloss.NewStyle().Foreground(theme.ColorMuted).
		Render(hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(theme.ColorStatusBg).
		Width(width).
		MaxWidth(width).
		MaxHeight(1).
		Render(left + padding + help)
}

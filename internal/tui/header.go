package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/altin/recipe-tui/internal/ui"
)

func RenderHeader(host string, theme ui.Theme, width int) string {
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(" recipe-tui | Recipe Search")

	right := lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB")).
		Render(fmt.Sprintf("%s  theme: %s ", host, theme.Mode))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(theme.ColorHeaderBg).
		Width(width).
		MaxWidth(width).
		MaxHeight(1).
		Render(left + padding + right)
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the display mode. It only affects rendering.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	}
	return ModeLight, fmt.Errorf("unknown theme %q", s)
}

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// Theme is the palette and derived styles for one Mode.
type Theme struct {
	Mode Mode

	ColorPrimary   lipgloss.Color
	ColorText      lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorBorder    lipgloss.Color
	ColorFailure   lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorHighlight lipgloss.Color
	ColorHeaderBg  lipgloss.Color
	ColorStatusBg  lipgloss.Color

	StylePane        lipgloss.Style
	StylePaneFocused lipgloss.Style
	StyleTitle       lipgloss.Style
	StyleText        lipgloss.Style
	StyleMuted       lipgloss.Style
	StyleFailure     lipgloss.Style
	StyleWarning     lipgloss.Style
	StyleKey         lipgloss.Style
}

func NewTheme(m Mode) Theme {
	t := Theme{Mode: m}
	if m == ModeDark {
		t.ColorPrimary = lipgloss.Color("#A78BFA")
		t.ColorText = lipgloss.Color("#F9FAFB")
		t.ColorMuted = lipgloss.Color("#9CA3AF")
		t.ColorBorder = lipgloss.Color("#374151")
		t.ColorFailure = lipgloss.Color("#F87171")
		t.ColorWarning = lipgloss.Color("#F59E0B")
		t.ColorHighlight = lipgloss.Color("#1F2937")
		t.ColorHeaderBg = lipgloss.Color("#1F2937")
		t.ColorStatusBg = lipgloss.Color("#111827")
	} else {
		t.ColorPrimary = lipgloss.Color("#7C3AED")
		t.ColorText = lipgloss.Color("#111827")
		t.ColorMuted = lipgloss.Color("#6B7280")
		t.ColorBorder = lipgloss.Color("#D1D5DB")
		t.ColorFailure = lipgloss.Color("#DC2626")
		t.ColorWarning = lipgloss.Color("#D97706")
		t.ColorHighlight = lipgloss.Color("#EDE9FE")
		t.ColorHeaderBg = lipgloss.Color("#7C3AED")
		t.ColorStatusBg = lipgloss.Color("#F3F4F6")
	}

	t.StylePane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.ColorBorder)
	t.StylePaneFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.ColorPrimary)
	t.StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(t.ColorPrimary)
	t.StyleText = lipgloss.NewStyle().Foreground(t.ColorText)
	t.StyleMuted = lipgloss.NewStyle().Foreground(t.ColorMuted)
	t.StyleFailure = lipgloss.NewStyle().Foreground(t.ColorFailure)
	t.StyleWarning = lipgloss.NewStyle().Foreground(t.ColorWarning)
	t.StyleKey = lipgloss.NewStyle().Bold(true).Foreground(t.ColorPrimary)
	return t
}

package confirm

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altin/recipe-tui/internal/ui"
)

type ResultMsg struct {
	Confirmed bool
	Action    string
	Target    string
}

type Model struct {
	Title    string
	Message  string
	Action   string
	Target   string
	active   bool
	selected bool // true = confirm selected
}

func New(title, message, action, target string) Model {
	return Model{
		Title:   title,
		Message: message,
		Action:  action,
		Target:  target,
		active:  true,
	}
}

func (m Model) IsActive() bool { return m.active }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			return m.finish(true)
		case "n", "N", "esc":
			return m.finish(false)
		case "enter":
			return m.finish(m.selected)
		case "tab", "left", "right", "h", "l":
			m.selected = !m.selected
		}
	}
	return m, nil
}

func (m Model) finish(confirmed bool) (Model, tea.Cmd) {
	m.active = false
	res := ResultMsg{Confirmed: confirmed, Action: m.Action, Target: m.Target}
	return m, func() tea.Msg { return res }
}

func (m Model) View(theme ui.Theme) string {
	if !m.active {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorWarning).
		Padding(1, 2).
		Width(56)

	title := lipgloss.NewStyle().Bold(true).
		Foreground(theme.ColorWarning).
		Render(m.Title)

	yesStyle := lipgloss.NewStyle().Padding(0, 1)
	noStyle := lipgloss.NewStyle().Padding(0, 1)

	if m.selected {
		yesStyle = yesStyle.Bold(true).Background(theme.ColorPrimary).Foreground(lipgloss.Color("#F9FAFB"))
		noStyle = noStyle.Foreground(theme.ColorMuted)
	} else {
		yesStyle = yesStyle.Foreground(theme.ColorMuted)
		noStyle = noStyle.Bold(true).Background(theme.ColorFailure).Foreground(lipgloss.Color("#F9FAFB"))
	}

	content := fmt.Sprintf("%s\n\n%s\n\n%s  %s\n\ny/n to confirm, esc to cancel",
		title, m.Message,
		yesStyle.Render("Yes"), noStyle.Render("No"))

	return style.Render(content)
}

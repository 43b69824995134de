package categorypicker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altin/recipe-tui/internal/ui"
)

// AllLabel is the entry that clears the category filter.
const AllLabel = "All Categories"

// ResultMsg is emitted when the user applies or cancels the picker. An
// applied empty Category means "All Categories".
type ResultMsg struct {
	Applied  bool
	Category string
}

type Model struct {
	active     bool
	categories []string
	idx        int // -1 = all
	width      int
	height     int
}

// New creates an active picker with the cursor on current, or on
// "All Categories" when current is empty or unknown.
func New(categories []string, current string) Model {
	m := Model{
		active:     true,
		categories: categories,
		idx:        -1,
	}
	for i, c := range categories {
		if c == current {
			m.idx = i
			break
		}
	}
	return m
}

func (m Model) IsActive() bool { return m.active }

// SetSize stores terminal dimensions so the overlay can centre itself.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Current returns the highlighted category, "" for all.
func (m Model) Current() string {
	if m.idx < 0 || m.idx >= len(m.categories) {
		return ""
	}
	return m.categories[m.idx]
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down", "l", "right", "tab":
			m.idx = cycleForward(m.idx, len(m.categories))
		case "k", "up", "h", "left", "shift+tab":
			m.idx = cycleBackward(m.idx, len(m.categories))
		case "home", "g":
			m.idx = -1
		case "end", "G":
			m.idx = len(m.categories) - 1
		case "enter":
			m.active = false
			return m, emitResult(true, m.Current())
		case "esc", "q", "c":
			m.active = false
			return m, emitResult(false, "")
		}
	}
	return m, nil
}

func (m Model) View(theme ui.Theme) string {
	if !m.active {
		return ""
	}

	labels := append([]string{AllLabel}, m.categories...)
	selected := m.idx + 1

	// Show a window of rows around the cursor when the list is taller than
	// the terminal allows.
	maxRows := len(labels)
	if m.height > 0 {
		maxRows = max(3, m.height-10)
	}
	start := 0
	if len(labels) > maxRows {
		start = min(max(0, selected-maxRows/2), len(labels)-maxRows)
	}
	end := min(len(labels), start+maxRows)

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cursor := "  "
		style := theme.StyleText
		if i == selected {
			cursor = theme.StyleKey.Render("> ")
			style = theme.StyleTitle
		}
		label := labels[i]
		if i == 0 {
			label = lipgloss.NewStyle().Italic(true).Render(label)
		}
		rows = append(rows, cursor+style.Render(label))
	}

	title := theme.StyleTitle.MarginBottom(1).Render("Category")
	position := theme.StyleMuted.Render(fmt.Sprintf("%d/%d", selected+1, len(labels)))
	help := theme.StyleMuted.MarginTop(1).Render("j/k: move  enter: apply  esc: cancel")

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		strings.Join(rows, "\n"),
		position,
		help,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorPrimary).
		Padding(1, 2).
		Width(44).
		Render(body)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// cycleForward advances the index by one. -1 means "all", 0..max-1 are the
// actual entries, and going past the last entry wraps back to -1 (all).
func cycleForward(idx, count int) int {
	if count == 0 {
		return -1
	}
	idx++
	if idx >= count {
		idx = -1
	}
	return idx
}

// cycleBackward is the reverse of cycleForward.
func cycleBackward(idx, count int) int {
	if count == 0 {
		return -1
	}
	idx--
	if idx < -1 {
		idx = count - 1
	}
	return idx
}

func emitResult(applied bool, category string) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Applied: applied, Category: category}
	}
}

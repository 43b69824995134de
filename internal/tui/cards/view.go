package cards

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altin/recipe-tui/internal/model"
	"github.com/altin/recipe-tui/internal/ui"
)

const (
	// CardWidth and CardHeight are the outer size of a card, border included.
	CardWidth  = 34
	CardHeight = 8
	// Gap is the number of blank columns between cards.
	Gap = 1

	previewLines = 3
)

// SelectMsg is emitted when a card is chosen with enter or a click.
type SelectMsg struct {
	Recipe model.RecipeSummary
}

type Model struct {
	recipes []model.RecipeSummary
	cursor  int
	offset  int // first visible row
	width   int
	height  int
}

func New() Model {
	return Model{}
}

// SetRecipes replaces the grid contents and resets the cursor.
func (m *Model) SetRecipes(recipes []model.RecipeSummary) {
	m.recipes = recipes
	m.cursor = 0
	m.offset = 0
}

func (m Model) Len() int { return len(m.recipes) }

func (m Model) Cursor() int { return m.cursor }

func (m Model) Selected() *model.RecipeSummary {
	if m.cursor < 0 || m.cursor >= len(m.recipes) {
		return nil
	}
	return &m.recipes[m.cursor]
}

// Columns returns how many cards fit side by side; never less than one.
func (m Model) Columns() int {
	return Columns(m.width)
}

func Columns(width int) int {
	cols := (width + Gap) / (CardWidth + Gap)
	if cols < 1 {
		return 1
	}
	return cols
}

func (m Model) visibleRows() int {
	rows := m.height / CardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// CardAt maps a point relative to the grid origin to a card index, or -1
// when the point falls on a gap or an empty cell.
func (m Model) CardAt(x, y int) int {
	if x < 0 || y < 0 {
		return -1
	}
	stride := CardWidth + Gap
	col := x / stride
	if x%stride >= CardWidth || col >= m.Columns() {
		return -1
	}
	row := y/CardHeight + m.offset
	if y/CardHeight >= m.visibleRows() {
		return -1
	}
	idx := row*m.Columns() + col
	if idx >= len(m.recipes) {
		return -1
	}
	return idx
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollToCursor()

	case tea.KeyMsg:
		if len(m.recipes) == 0 {
			return m, nil
		}
		cols := m.Columns()
		switch {
		case key.Matches(msg, ui.Keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, ui.Keys.Right):
			if m.cursor < len(m.recipes)-1 {
				m.cursor++
			}
		case key.Matches(msg, ui.Keys.Up):
			if m.cursor-cols >= 0 {
				m.cursor -= cols
			}
		case key.Matches(msg, ui.Keys.Down):
			if m.cursor+cols < len(m.recipes) {
				m.cursor += cols
			} else if m.row(len(m.recipes)-1) > m.row(m.cursor) {
				m.cursor = len(m.recipes) - 1
			}
		case key.Matches(msg, ui.Keys.PageDown):
			m.cursor = min(len(m.recipes)-1, m.cursor+cols*m.visibleRows())
		case key.Matches(msg, ui.Keys.PageUp):
			m.cursor = max(0, m.cursor-cols*m.visibleRows())
		case key.Matches(msg, ui.Keys.Select):
			return m, m.selectCmd(m.cursor)
		}
		m.scrollToCursor()

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			if m.offset+m.visibleRows() <= m.row(len(m.recipes)-1) {
				m.offset++
			}
		case tea.MouseButtonWheelUp:
			if m.offset > 0 {
				m.offset--
			}
		case tea.MouseButtonLeft:
			// Coordinates are relative to the grid origin.
			if idx := m.CardAt(msg.X, msg.Y); idx >= 0 {
				m.cursor = idx
				return m, m.selectCmd(idx)
			}
		}
	}
	return m, nil
}

func (m Model) selectCmd(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.recipes) {
		return nil
	}
	r := m.recipes[idx]
	return func() tea.Msg { return SelectMsg{Recipe: r} }
}

func (m Model) row(idx int) int {
	return idx / m.Columns()
}

func (m *Model) scrollToCursor() {
	if len(m.recipes) == 0 {
		m.offset = 0
		return
	}
	r := m.row(m.cursor)
	if r < m.offset {
		m.offset = r
	}
	if r >= m.offset+m.visibleRows() {
		m.offset = r - m.visibleRows() + 1
	}
}

func (m Model) View(theme ui.Theme) string {
	if len(m.recipes) == 0 {
		return ""
	}
	cols := m.Columns()
	var rows []string
	for r := m.offset; r < m.offset+m.visibleRows(); r++ {
		start := r * cols
		if start >= len(m.recipes) {
			break
		}
		end := min(start+cols, len(m.recipes))
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", Gap))
			}
			cells = append(cells, RenderCard(m.recipes[i], i == m.cursor, theme))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// RenderCard draws one recipe card at exactly CardWidth x CardHeight.
func RenderCard(r model.RecipeSummary, focused bool, theme ui.Theme) string {
	// border(2) + padding(2)
	textW := CardWidth - 4

	style := theme.StylePane
	if focused {
		style = theme.StylePaneFocused.Background(theme.ColorHighlight)
	}
	style = style.Padding(0, 1).Width(CardWidth - 2).Height(CardHeight - 2)

	name := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorText).
		Render(clip(r.Name, textW))
	thumb := theme.StyleMuted.Render(clip(r.Thumbnail, textW))

	preview := lipgloss.NewStyle().Width(textW).Render(r.Preview())
	lines := strings.Split(preview, "\n")
	if len(lines) > previewLines {
		lines = lines[:previewLines]
	}
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}

	body := name + "\n" + thumb + "\n\n" + theme.StyleText.Render(strings.Join(lines, "\n"))
	return style.Render(body)
}

func clip(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(n-1).Render(s) + "…"
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{
		ui.Keys.Select,
		ui.Keys.Up,
		ui.Keys.Down,
	}
}

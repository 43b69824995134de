package searchbar

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altin/recipe-tui/internal/ui"
)

// Height is the rendered height of the bar, border included.
const Height = 3

const allCategories = "All Categories"

// SubmitMsg is emitted when enter is pressed in the input.
type SubmitMsg struct{}

type Model struct {
	input    textinput.Model
	category string
	width    int
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search for a recipe..."
	ti.CharLimit = 128
	ti.Prompt = "> "

	return Model{
		input: ti,
	}
}

// Focus activates typing unless a category is selected; the category
// filter disables the text query.
func (m *Model) Focus() tea.Cmd {
	if m.category != "" {
		return nil
	}
	return m.input.Focus()
}

func (m *Model) Blur() {
	m.input.Blur()
}

func (m Model) Focused() bool {
	return m.input.Focused()
}

func (m Model) Query() string {
	return m.input.Value()
}

func (m *Model) SetQuery(q string) {
	m.input.SetValue(q)
}

// SetCategory shows the selected category. A non-empty category clears and
// disables the text input.
func (m *Model) SetCategory(name string) {
	m.category = name
	if name != "" {
		m.input.SetValue("")
		m.input.Blur()
	}
	m.resize()
}

func (m Model) Category() string {
	return m.category
}

func (m *Model) SetWidth(w int) {
	m.width = w
	m.resize()
}

func (m Model) labels() (category, search string) {
	category = allCategories
	if m.category != "" {
		category = m.category
	}
	return "[c] " + category + " ", "[s] Search"
}

func (m *Model) resize() {
	cat, search := m.labels()
	// border(2) + padding(2) + gap(2) + cursor(1)
	used := 2 + 2 + 2 + 1 + lipgloss.Width(cat) + lipgloss.Width(search) + lipgloss.Width(m.input.Prompt)
	m.input.Width = max(1, m.width-used)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.input.Focused() {
		return m, nil
	}
	switch keyMsg.String() {
	case "enter":
		m.input.Blur()
		return m, func() tea.Msg { return SubmitMsg{} }
	case "esc":
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View(theme ui.Theme) string {
	cat, search := m.labels()
	catStyle := theme.StyleMuted
	if m.category != "" {
		catStyle = theme.StyleTitle
	}
	right := catStyle.Render(cat) + theme.StyleMuted.Render(search)

	input := m.input
	input.PromptStyle = theme.StyleTitle
	input.TextStyle = theme.StyleText
	input.PlaceholderStyle = theme.StyleMuted
	if m.category != "" {
		input.Placeholder = "Filtering by category (press c to change)"
	}

	inner := m.width - 2
	left := input.View()
	gap := max(1, inner-2-lipgloss.Width(left)-lipgloss.Width(right))
	line := left + lipgloss.NewStyle().Width(gap).Render("") + right

	style := theme.StylePane
	if m.input.Focused() {
		style = theme.StylePaneFocused
	}
	return style.Padding(0, 1).Width(max(1, inner)).Render(line)
}

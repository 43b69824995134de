package recipeview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altin/recipe-tui/internal/model"
	"github.com/altin/recipe-tui/internal/ui"
)

const (
	maxBoxWidth  = 84
	minBoxWidth  = 24
	minBoxHeight = 8
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Model is the recipe detail modal. It is sized against the area it is
// centred in; Rect reports where the box lands inside that area.
type Model struct {
	recipe   *model.RecipeDetail
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

func New() Model {
	return Model{}
}

func (m *Model) SetRecipe(r *model.RecipeDetail) {
	m.recipe = r
	if m.ready {
		m.viewport.SetContent(m.render())
		m.viewport.GotoTop()
	}
}

func (m Model) Recipe() *model.RecipeDetail {
	return m.recipe
}

// Rect returns the box position relative to the top-left of the area.
func (m Model) Rect() Rect {
	return boxRect(m.width, m.height)
}

func boxRect(width, height int) Rect {
	w := min(maxBoxWidth, width-4)
	if w < minBoxWidth {
		w = min(width, minBoxWidth)
	}
	h := height - 2
	if h < minBoxHeight {
		h = min(height, minBoxHeight)
	}
	return Rect{X: max(0, (width-w)/2), Y: max(0, (height-h)/2), W: max(0, w), H: max(0, h)}
}

// border(2) + padding(4) horizontally; border(2) + padding(2) + title(1) +
// hints(1) vertically.
func viewportSize(r Rect) (int, int) {
	return max(1, r.W-6), max(1, r.H-6)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vw, vh := viewportSize(m.Rect())
		if !m.ready {
			m.viewport = viewport.New(vw, vh)
			m.ready = true
		} else {
			m.viewport.Width = vw
			m.viewport.Height = vh
		}
		if m.recipe != nil {
			m.viewport.SetContent(m.render())
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ui.Keys.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, ui.Keys.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		case msg.String() == "g":
			m.viewport.GotoTop()
			return m, nil
		case msg.String() == "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.MouseMsg:
		// Only wheel events scroll; clicks are handled by the caller.
		if msg.Button != tea.MouseButtonWheelUp && msg.Button != tea.MouseButtonWheelDown {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View(theme ui.Theme) string {
	if m.recipe == nil {
		return ""
	}
	r := m.Rect()

	title := theme.StyleTitle.Render(clip(m.recipe.Name, r.W-6))
	pct := m.viewport.ScrollPercent() * 100
	hints := theme.StyleMuted.Render(fmt.Sprintf("j/k:scroll  o:open source  esc:close  %3.0f%%", pct))

	body := title + "\n" + m.viewport.View() + "\n" + clip(hints, r.W-6)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorPrimary).
		Padding(1, 2).
		Width(max(1, r.W-2)).
		Height(max(1, r.H-2)).
		Render(body)

	return lipgloss.NewStyle().MarginLeft(r.X).MarginTop(r.Y).Render(box)
}

func (m Model) render() string {
	if m.recipe == nil {
		return ""
	}
	d := m.recipe
	vw, _ := viewportSize(m.Rect())

	bold := lipgloss.NewStyle().Bold(true)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Width(10)
	wrap := lipgloss.NewStyle().Width(vw)

	row := func(l, v string) string {
		return label.Render(l) + v + "\n"
	}

	var b strings.Builder
	if d.Thumbnail != "" {
		b.WriteString(wrap.Render(d.Thumbnail) + "\n")
	}
	if d.Category != "" {
		b.WriteString(row("Category", d.Category))
	}
	if d.Area != "" {
		b.WriteString(row("Area", d.Area))
	}
	if tags := d.TagList(); len(tags) > 0 {
		b.WriteString(row("Tags", strings.Join(tags, ", ")))
	}
	if d.YouTube != "" {
		b.WriteString(row("Video", d.YouTube))
	}
	b.WriteString("\n")

	b.WriteString(bold.Render("Instructions") + "\n\n")
	b.WriteString(wrap.Render(d.InstructionsOrFallback()) + "\n\n")

	b.WriteString(bold.Render("Ingredients") + "\n\n")
	ingredients := d.Ingredients()
	if len(ingredients) == 0 {
		b.WriteString("  -\n")
	}
	for _, ing := range ingredients {
		b.WriteString(wrap.Render("  • "+ing.String()) + "\n")
	}

	if d.Source != "" {
		b.WriteString("\n" + wrap.Render("Source: "+d.Source) + "\n")
	}
	return b.String()
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().MaxWidth(n).Render(s)
}

package cards

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altin/recipe-tui/internal/model"
	"github.com/altin/recipe-tui/internal/ui"
)

func recipes(n int) []model.RecipeSummary {
	out := make([]model.RecipeSummary, n)
	for i := range out {
		out[i] = model.RecipeSummary{ID: fmt.Sprint(i + 1), Name: fmt.Sprintf("Recipe %d", i+1)}
	}
	return out
}

func sized(w, h int, rs []model.RecipeSummary) Model {
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	m.SetRecipes(rs)
	return m
}

func TestColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{10, 1},
		{CardWidth, 1},
		{2*CardWidth + Gap - 1, 1},
		{2*CardWidth + Gap, 2},
		{120, 3},
	}
	for _, tt := range tests {
		if got := Columns(tt.width); got != tt.want {
			t.Errorf("Columns(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestCardHasFixedSize(t *testing.T) {
	theme := ui.NewTheme(ui.ModeLight)
	long := model.RecipeSummary{
		Name:         strings.Repeat("Very Long Recipe Name ", 5),
		Thumbnail:    "https://www.themealdb.com/images/media/meals/" + strings.Repeat("x", 60) + ".jpg",
		Instructions: strings.Repeat("word ", 100),
	}
	for _, r := range []model.RecipeSummary{{Name: "Toast"}, long} {
		for _, focused := range []bool{false, true} {
			card := RenderCard(r, focused, theme)
			if w := lipgloss.Width(card); w != CardWidth {
				t.Errorf("card width = %d, want %d\n%s", w, CardWidth, card)
			}
			if h := lipgloss.Height(card); h != CardHeight {
				t.Errorf("card height = %d, want %d\n%s", h, CardHeight, card)
			}
		}
	}
}

func TestCardShowsPreviewFallback(t *testing.T) {
	card := RenderCard(model.RecipeSummary{Name: "Beef Wellington"}, false, ui.NewTheme(ui.ModeDark))
	if !strings.Contains(card, "Beef Wellington") {
		t.Errorf("card should show the recipe name:\n%s", card)
	}
	if !strings.Contains(card, model.PreviewFallback) {
		t.Errorf("card without instructions should show %q:\n%s", model.PreviewFallback, card)
	}
}

func TestArrowNavigation(t *testing.T) {
	// 120 wide -> 3 columns
	m := sized(120, 40, recipes(7))

	press := func(k string) {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}

	press("l")
	press("l")
	if m.Cursor() != 2 {
		t.Fatalf("expected cursor 2 after two rights, got %d", m.Cursor())
	}
	press("down")
	if m.Cursor() != 5 {
		t.Fatalf("expected cursor 5 after down, got %d", m.Cursor())
	}
	// Row 2 only has index 6; down from 5 lands on the last card.
	press("j")
	if m.Cursor() != 6 {
		t.Fatalf("expected cursor 6 on the short last row, got %d", m.Cursor())
	}
	press("j")
	if m.Cursor() != 6 {
		t.Fatalf("down on the last row should not move, got %d", m.Cursor())
	}
	press("up")
	press("h")
	if m.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", m.Cursor())
	}
}

func TestEnterSelects(t *testing.T) {
	m := sized(80, 20, recipes(3))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after enter")
	}
	sel, ok := cmd().(SelectMsg)
	if !ok {
		t.Fatalf("expected SelectMsg, got %T", cmd())
	}
	if sel.Recipe.ID != "2" {
		t.Errorf("selected %q, want 2", sel.Recipe.ID)
	}
}

func TestEnterOnEmptyGrid(t *testing.T) {
	m := sized(80, 20, nil)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter on an empty grid should do nothing")
	}
	if m.Selected() != nil {
		t.Error("empty grid has no selection")
	}
}

func TestCardAt(t *testing.T) {
	m := sized(120, 2*CardHeight, recipes(5))

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"first card corner", 0, 0, 0},
		{"first card inside", 10, 3, 0},
		{"gap between cards", CardWidth, 2, -1},
		{"second card", CardWidth + Gap, 0, 1},
		{"second row", 5, CardHeight, 3},
		{"empty cell", 2*(CardWidth+Gap) + 1, CardHeight + 1, -1},
		{"below visible rows", 0, 2 * CardHeight, -1},
		{"past last column", 3 * (CardWidth + Gap), 0, -1},
		{"negative", -1, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.CardAt(tt.x, tt.y); got != tt.want {
				t.Errorf("CardAt(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClickSelects(t *testing.T) {
	m := sized(120, 40, recipes(4))
	click := tea.MouseMsg{X: CardWidth + Gap + 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, cmd := m.Update(click)
	if cmd == nil {
		t.Fatal("click on a card should select it")
	}
	if sel := cmd().(SelectMsg); sel.Recipe.ID != "2" {
		t.Errorf("clicked %q, want 2", sel.Recipe.ID)
	}
	if m.Cursor() != 1 {
		t.Errorf("cursor should follow the click, got %d", m.Cursor())
	}

	release := click
	release.Action = tea.MouseActionRelease
	if _, cmd := m.Update(release); cmd != nil {
		t.Error("release should not select")
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	// One column, one visible row.
	m := sized(CardWidth, CardHeight, recipes(5))
	for i := 0; i < 3; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.offset != 3 {
		t.Fatalf("expected offset 3, got %d", m.offset)
	}
	if !strings.Contains(m.View(ui.NewTheme(ui.ModeLight)), "Recipe 4") {
		t.Error("the focused card should be rendered")
	}
	if got := m.CardAt(1, 1); got != 3 {
		t.Errorf("CardAt should account for scroll, got %d", got)
	}
}

func TestSetRecipesResetsCursor(t *testing.T) {
	m := sized(120, 40, recipes(6))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() == 0 {
		t.Fatal("cursor should have moved")
	}
	m.SetRecipes(recipes(2))
	if m.Cursor() != 0 {
		t.Errorf("expected cursor reset to 0, got %d", m.Cursor())
	}
}

package recipeview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altin/recipe-tui/internal/model"
	"github.com/altin/recipe-tui/internal/ui"
)

func arrabiata() *model.RecipeDetail {
	d := &model.RecipeDetail{
		ID:           "52771",
		Name:         "Spicy Arrabiata Penne",
		Thumbnail:    "https://www.themealdb.com/images/media/meals/ustsqw1468250014.jpg",
		Instructions: "Bring a large pot of water to a boil. Add kosher salt to the boiling water, then add the pasta.",
		Category:     "Vegetarian",
		Area:         "Italian",
		Tags:         "Pasta,Curry",
		Source:       "https://www.example.com/arrabiata",
	}
	d.Slots[0] = model.Slot{Ingredient: "penne rigate", Measure: "1 pound"}
	d.Slots[1] = model.Slot{Ingredient: "olive oil", Measure: "1/4 cup"}
	d.Slots[2] = model.Slot{Ingredient: "garlic", Measure: "3 cloves"}
	return d
}

func sized(w, h int) Model {
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return m
}

func TestBoxRect(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want Rect
	}{
		{"wide", 120, 40, Rect{X: 18, Y: 1, W: 84, H: 38}},
		{"narrow", 60, 20, Rect{X: 2, Y: 1, W: 56, H: 18}},
		{"tiny", 20, 6, Rect{X: 0, Y: 0, W: 20, H: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := boxRect(tt.w, tt.h); got != tt.want {
				t.Errorf("boxRect(%d, %d) = %+v, want %+v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 5, W: 20, H: 10}
	inside := [][2]int{{10, 5}, {29, 14}, {15, 8}}
	outside := [][2]int{{9, 5}, {30, 5}, {10, 15}, {0, 0}}
	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("%v should be inside %+v", p, r)
		}
	}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Errorf("%v should be outside %+v", p, r)
		}
	}
}

func TestViewMatchesRect(t *testing.T) {
	m := sized(100, 30)
	m.SetRecipe(arrabiata())
	view := m.View(ui.NewTheme(ui.ModeLight))
	r := m.Rect()

	if got := lipgloss.Height(view); got != r.Y+r.H {
		t.Errorf("rendered height %d, want %d", got, r.Y+r.H)
	}
	if got := lipgloss.Width(view); got != r.X+r.W {
		t.Errorf("rendered width %d, want %d", got, r.X+r.W)
	}
}

func TestRendersRecipe(t *testing.T) {
	m := sized(100, 60)
	m.SetRecipe(arrabiata())
	view := m.View(ui.NewTheme(ui.ModeDark))

	for _, want := range []string{
		"Spicy Arrabiata Penne",
		"Instructions",
		"Bring a large pot of water",
		"Ingredients",
		"penne rigate - 1 pound",
		"olive oil - 1/4 cup",
		"garlic - 3 cloves",
		"Source: https://www.example.com/arrabiata",
		"Italian",
		"Pasta, Curry",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("modal should contain %q\n%s", want, view)
		}
	}
}

func TestRendersFallbacks(t *testing.T) {
	m := sized(100, 40)
	m.SetRecipe(&model.RecipeDetail{ID: "1", Name: "Mystery"})
	view := m.View(ui.NewTheme(ui.ModeLight))

	if !strings.Contains(view, model.NoInstructions) {
		t.Errorf("expected %q\n%s", model.NoInstructions, view)
	}
	if strings.Contains(view, "Source:") {
		t.Errorf("no source line without a source\n%s", view)
	}
}

func TestEmptyWithoutRecipe(t *testing.T) {
	if v := sized(80, 24).View(ui.NewTheme(ui.ModeLight)); v != "" {
		t.Errorf("expected empty view, got %q", v)
	}
}

func TestScroll(t *testing.T) {
	m := sized(80, 14)
	d := arrabiata()
	d.Instructions = strings.Repeat("Stir. ", 200)
	m.SetRecipe(d)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.viewport.YOffset != 2 {
		t.Errorf("expected offset 2 after two j, got %d", m.viewport.YOffset)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if m.viewport.YOffset != 0 {
		t.Errorf("g should go to top, got %d", m.viewport.YOffset)
	}

	m.SetRecipe(arrabiata())
	if m.viewport.YOffset != 0 {
		t.Errorf("a new recipe should start at the top, got %d", m.viewport.YOffset)
	}
}

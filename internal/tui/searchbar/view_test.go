package searchbar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altin/recipe-tui/internal/ui"
)

// typeText feeds runes one at a time. Returned commands are cursor blink
// timers and are not run.
func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestTyping(t *testing.T) {
	m := New()
	m.SetWidth(80)
	m.Focus()

	m = typeText(m, "pie")
	if m.Query() != "pie" {
		t.Fatalf("expected query pie, got %q", m.Query())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Query() != "pi" {
		t.Errorf("expected query pi after backspace, got %q", m.Query())
	}
}

func TestKeysIgnoredWhenBlurred(t *testing.T) {
	m := New()
	m = typeText(m, "abc")
	if m.Query() != "" {
		t.Errorf("blurred input should ignore keys, got %q", m.Query())
	}
}

func TestEnterSubmitsAndBlurs(t *testing.T) {
	m := New()
	m.Focus()
	m = typeText(m, "soup")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Focused() {
		t.Error("enter should blur the input")
	}
	if cmd == nil {
		t.Fatal("expected a command after enter")
	}
	if _, ok := cmd().(SubmitMsg); !ok {
		t.Error("expected SubmitMsg")
	}
}

func TestEscBlursWithoutSubmitting(t *testing.T) {
	m := New()
	m.Focus()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if m.Focused() {
		t.Error("esc should blur the input")
	}
	if cmd != nil {
		t.Error("esc should not submit")
	}
}

func TestCategoryDisablesInput(t *testing.T) {
	m := New()
	m.SetWidth(80)
	m.Focus()
	m = typeText(m, "chicken")

	m.SetCategory("Seafood")
	if m.Query() != "" {
		t.Errorf("category should clear the query, got %q", m.Query())
	}
	if m.Focused() {
		t.Error("category should blur the input")
	}
	if cmd := m.Focus(); cmd != nil || m.Focused() {
		t.Error("input should not take focus while a category is set")
	}

	view := m.View(ui.NewTheme(ui.ModeLight))
	if !strings.Contains(view, "Seafood") {
		t.Errorf("view should name the category:\n%s", view)
	}

	m.SetCategory("")
	m.Focus()
	if !m.Focused() {
		t.Error("clearing the category should re-enable the input")
	}
}

func TestViewFitsWidth(t *testing.T) {
	for _, w := range []int{40, 80, 132} {
		m := New()
		m.SetWidth(w)
		m.Focus()
		m = typeText(m, strings.Repeat("long query ", 20))
		view := m.View(ui.NewTheme(ui.ModeDark))
		if got := lipgloss.Width(view); got != w {
			t.Errorf("width %d: rendered %d wide\n%s", w, got, view)
		}
		if got := lipgloss.Height(view); got != Height {
			t.Errorf("width %d: rendered %d lines, want %d\n%s", w, got, Height, view)
		}
	}
}

package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Focus    key.Binding
	Search   key.Binding
	Category key.Binding
	Theme    key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Close    key.Binding
	Open     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

var Keys = KeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Focus:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "type query")),
	Search:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "search")),
	Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
	Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/left", "left")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/right", "right")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Close:    key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close")),
	Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open source")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
}

// ShortHelp and FullHelp satisfy help.KeyMap for the grid context.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Search, k.Category, k.Select, k.Theme, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Search, k.Category},
		{k.Up, k.Down, k.Left, k.Right, k.Select},
		{k.Close, k.Open, k.PageUp, k.PageDown},
		{k.Theme, k.Help, k.Quit},
	}
}

// ModalKeys is the key map shown while the recipe modal is open.
type ModalKeys struct{ KeyMap }

func (k ModalKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Close}
}

func (k ModalKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

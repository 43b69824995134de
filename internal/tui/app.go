package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/altin/recipe-tui/internal/config"
	"github.com/altin/recipe-tui/internal/model"
	"github.com/altin/recipe-tui/internal/state"
	"github.com/altin/recipe-tui/internal/tui/cards"
	"github.com/altin/recipe-tui/internal/tui/categorypicker"
	"github.com/altin/recipe-tui/internal/tui/confirm"
	"github.com/altin/recipe-tui/internal/tui/recipeview"
	"github.com/altin/recipe-tui/internal/tui/searchbar"
	"github.com/altin/recipe-tui/internal/ui"
)

// Screen layout, top to bottom: header, search bar, body, status bar. The
// body starts with a one-line result summary and a blank line, then the
// card grid indented by gridLeft columns.
const (
	headerHeight    = 1
	statusBarHeight = 1
	bodyTop         = headerHeight + searchbar.Height
	gridTop         = bodyTop + 2
	gridLeft        = 1
)

const actionOpenSource = "open-source"

// RecipeSource is the recipe backend the app talks to.
type RecipeSource interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	SearchByName(ctx context.Context, query string) ([]model.RecipeSummary, error)
	FilterByCategory(ctx context.Context, category string) ([]model.RecipeSummary, error)
	LookupByID(ctx context.Context, id string) (*model.RecipeDetail, error)
}

// Browser opens a URL outside the terminal.
type Browser interface {
	Browse(url string) error
}

type App struct {
	cfg     config.Config
	client  RecipeSource
	browser Browser
	log     *logrus.Logger

	state state.State
	theme ui.Theme

	// Views
	searchBar     searchbar.Model
	grid          cards.Model
	modal         recipeview.Model
	picker        categorypicker.Model
	confirmDialog confirm.Model
	spinner       spinner.Model
	help          help.Model

	width    int
	height   int
	notice   string
	spinning bool
	showHelp bool
}

func NewApp(cfg config.Config, client RecipeSource, browser Browser, log *logrus.Logger) App {
	mode, err := ui.ParseMode(cfg.Theme)
	if err != nil {
		log.WithError(err).Warn("falling back to light theme")
	}
	detailMode, err := state.ParseDetailMode(cfg.DetailMode)
	if err != nil {
		log.WithError(err).Warn("falling back to fetch detail mode")
	}
	theme := ui.NewTheme(mode)

	return App{
		cfg:       cfg,
		client:    client,
		browser:   browser,
		log:       log,
		state:     state.New(detailMode),
		theme:     theme,
		searchBar: searchbar.New(),
		grid:      cards.New(),
		modal:     recipeview.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.StyleTitle)),
		help:      help.New(),
	}
}

func (a App) Init() tea.Cmd {
	return a.fetchCategories()
}

// --- Data fetching commands ---

func (a App) requestContext() (context.Context, context.CancelFunc) {
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(context.Background(), a.cfg.Timeout)
	}
	return context.WithCancel(context.Background())
}

func (a App) fetchCategories() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		cats, err := a.client.ListCategories(ctx)
		if err != nil {
			a.log.WithError(err).Warn("category list unavailable")
			return ui.CategoriesLoadedMsg{Err: err}
		}
		return ui.CategoriesLoadedMsg{Names: model.CategoryNames(cats)}
	}
}

func (a App) searchByName(query string, token uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		results, err := a.client.SearchByName(ctx, query)
		if err != nil {
			a.log.WithError(err).WithField("query", query).Error("search failed")
		}
		return ui.SearchDoneMsg{Token: token, Results: results, Err: err}
	}
}

func (a App) filterByCategory(category string, token uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		results, err := a.client.FilterByCategory(ctx, category)
		if err != nil {
			a.log.WithError(err).WithField("category", category).Error("category filter failed")
		}
		return ui.SearchDoneMsg{Token: token, Results: results, Err: err}
	}
}

func (a App) lookup(id string, token uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.requestContext()
		defer cancel()
		recipe, err := a.client.LookupByID(ctx, id)
		if err != nil {
			a.log.WithError(err).WithField("id", id).Error("recipe lookup failed")
		}
		return ui.DetailLoadedMsg{Token: token, Recipe: recipe, Err: err}
	}
}

func (a App) openInBrowser(url string) tea.Cmd {
	return func() tea.Msg {
		err := a.browser.Browse(url)
		if err != nil {
			a.log.WithError(err).WithField("url", url).Warn("browser launch failed")
		}
		return ui.BrowseResultMsg{URL: url, Err: err}
	}
}

// dispatch turns a state request into a command.
func (a App) dispatch(req state.Request) tea.Cmd {
	switch req.Kind {
	case state.RequestSearchByName:
		return a.searchByName(req.Arg, req.Token)
	case state.RequestFilterByCategory:
		return a.filterByCategory(req.Arg, req.Token)
	case state.RequestLookup:
		return a.lookup(req.Arg, req.Token)
	}
	return nil
}

// apply runs an event through the state machine, brings the views in line
// with the new state and returns the follow-up commands.
func (a *App) apply(e state.Event) tea.Cmd {
	var req state.Request
	a.state, req = state.Reduce(a.state, e)

	if a.searchBar.Category() != a.state.Search.Category {
		a.searchBar.SetCategory(a.state.Search.Category)
	}
	if a.modal.Recipe() != a.state.Detail.Recipe {
		a.modal.SetRecipe(a.state.Detail.Recipe)
	}

	var cmds []tea.Cmd
	if cmd := a.dispatch(req); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if a.state.Loading() && !a.spinning {
		a.spinning = true
		cmds = append(cmds, a.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// --- Update ---

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle confirm dialog result (arrives AFTER dialog deactivates itself)
	if result, ok := msg.(confirm.ResultMsg); ok {
		if result.Confirmed && result.Action == actionOpenSource {
			a.notice = "Opening " + result.Target + "..."
			cmds = append(cmds, a.openInBrowser(result.Target))
		}
		return &a, tea.Batch(cmds...)
	}

	// Handle category picker result
	if result, ok := msg.(categorypicker.ResultMsg); ok {
		if result.Applied && result.Category != a.state.Search.Category {
			cmds = append(cmds, a.apply(state.CategorySelected{Name: result.Category}))
			a.grid.SetRecipes(a.state.Search.Results)
		}
		return &a, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()
		return &a, nil

	case spinner.TickMsg:
		if !a.state.Loading() {
			a.spinning = false
			return &a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return &a, cmd

	case ui.CategoriesLoadedMsg:
		return &a, a.apply(state.CategoriesLoaded{Names: msg.Names, Err: msg.Err})

	case ui.SearchDoneMsg:
		if !a.state.CurrentSearch(msg.Token) {
			a.log.WithField("token", msg.Token).Debug("dropping stale search result")
			return &a, nil
		}
		cmd := a.apply(state.SearchCompleted{Token: msg.Token, Results: msg.Results, Err: msg.Err})
		a.grid.SetRecipes(a.state.Search.Results)
		return &a, cmd

	case ui.DetailLoadedMsg:
		if !a.state.CurrentLookup(msg.Token) {
			a.log.WithField("token", msg.Token).Debug("dropping stale recipe lookup")
			return &a, nil
		}
		return &a, a.apply(state.DetailCompleted{Token: msg.Token, Recipe: msg.Recipe, Err: msg.Err})

	case ui.BrowseResultMsg:
		if msg.Err != nil {
			a.notice = "Could not open browser: " + msg.Err.Error()
		} else {
			a.notice = "Opened " + msg.URL
		}
		return &a, nil

	case searchbar.SubmitMsg:
		return &a, a.submit()

	case cards.SelectMsg:
		a.notice = ""
		return &a, a.apply(state.DetailRequested{Summary: msg.Recipe})

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return &a, nil
}

func (a *App) submit() tea.Cmd {
	a.notice = ""
	cmd := a.apply(state.SearchTriggered{})
	if !a.state.Search.Loading {
		a.grid.SetRecipes(a.state.Search.Results)
	}
	return cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return &a, tea.Quit
	}

	// Confirmation dialog takes every key while showing
	if a.confirmDialog.IsActive() {
		var cmd tea.Cmd
		a.confirmDialog, cmd = a.confirmDialog.Update(msg)
		return &a, cmd
	}

	if a.picker.IsActive() {
		var cmd tea.Cmd
		a.picker, cmd = a.picker.Update(msg)
		return &a, cmd
	}

	// Help overlay dismisses on any key
	if a.showHelp {
		a.showHelp = false
		return &a, nil
	}

	// Typing goes to the search input
	if a.searchBar.Focused() {
		var cmd tea.Cmd
		a.searchBar, cmd = a.searchBar.Update(msg)
		cmds := []tea.Cmd{cmd}
		if q := a.searchBar.Query(); q != a.state.Search.Query {
			cmds = append(cmds, a.apply(state.QueryChanged{Text: q}))
		}
		return &a, tea.Batch(cmds...)
	}

	switch {
	case key.Matches(msg, ui.Keys.Quit):
		return &a, tea.Quit
	case key.Matches(msg, ui.Keys.Help):
		a.showHelp = true
		return &a, nil
	case key.Matches(msg, ui.Keys.Theme):
		a.setMode(a.theme.Mode.Toggle())
		return &a, nil
	}

	if a.state.Detail.IsOpen() {
		switch {
		case key.Matches(msg, ui.Keys.Close):
			return &a, a.apply(state.DetailDismissed{})
		case key.Matches(msg, ui.Keys.Open):
			a.askOpenSource()
			return &a, nil
		}
		var cmd tea.Cmd
		a.modal, cmd = a.modal.Update(msg)
		return &a, cmd
	}

	switch {
	case key.Matches(msg, ui.Keys.Focus):
		if a.state.Search.Category != "" {
			a.notice = "Choose All Categories (c) to search by name"
			return &a, nil
		}
		a.notice = ""
		return &a, a.searchBar.Focus()
	case key.Matches(msg, ui.Keys.Search):
		return &a, a.submit()
	case key.Matches(msg, ui.Keys.Category):
		a.picker = categorypicker.New(a.state.Search.Categories, a.state.Search.Category)
		a.picker.SetSize(a.width, a.bodyHeight())
		return &a, nil
	case key.Matches(msg, ui.Keys.Close):
		a.notice = ""
		return &a, nil
	}

	var cmd tea.Cmd
	a.grid, cmd = a.grid.Update(msg)
	return &a, cmd
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Dialogs swallow the mouse
	if a.confirmDialog.IsActive() || a.picker.IsActive() || a.showHelp {
		return &a, nil
	}

	if a.state.Detail.IsOpen() {
		if a.modalRect().Contains(msg.X, msg.Y) {
			var cmd tea.Cmd
			a.modal, cmd = a.modal.Update(msg)
			return &a, cmd
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return &a, a.apply(state.DetailDismissed{})
		}
		return &a, nil
	}

	if msg.Action != tea.MouseActionPress {
		return &a, nil
	}

	if msg.Button == tea.MouseButtonLeft && msg.Y >= headerHeight && msg.Y < bodyTop {
		if a.state.Search.Category == "" {
			return &a, a.searchBar.Focus()
		}
		return &a, nil
	}

	if msg.Y >= gridTop && msg.Y < a.height-statusBarHeight {
		if msg.Button == tea.MouseButtonLeft {
			a.searchBar.Blur()
		}
		local := msg
		local.X -= gridLeft
		local.Y -= gridTop
		var cmd tea.Cmd
		a.grid, cmd = a.grid.Update(local)
		return &a, cmd
	}
	return &a, nil
}

func (a *App) askOpenSource() {
	r := a.state.Detail.Recipe
	if r == nil || r.Source == "" {
		a.notice = "This recipe has no source link"
		return
	}
	a.confirmDialog = confirm.New("Open source link?", r.Source, actionOpenSource, r.Source)
}

func (a *App) setMode(m ui.Mode) {
	a.theme = ui.NewTheme(m)
	a.spinner.Style = a.theme.StyleTitle
}

// modalRect is the modal box in screen coordinates.
func (a App) modalRect() recipeview.Rect {
	r := a.modal.Rect()
	r.Y += bodyTop
	return r
}

func (a App) bodyHeight() int {
	h := a.height - bodyTop - statusBarHeight
	if h < 1 {
		h = 1
	}
	return h
}

func (a *App) propagateSize() {
	a.searchBar.SetWidth(a.width)
	gridH := a.bodyHeight() - (gridTop - bodyTop)
	if gridH < 1 {
		gridH = 1
	}
	a.grid, _ = a.grid.Update(tea.WindowSizeMsg{Width: a.width - 2*gridLeft, Height: gridH})
	a.modal, _ = a.modal.Update(tea.WindowSizeMsg{Width: a.width, Height: a.bodyHeight()})
	a.picker.SetSize(a.width, a.bodyHeight())
	a.help.Width = a.width / 2
}

// --- View ---

func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	header := RenderHeader(a.cfg.Host(), a.theme, a.width)
	bar := a.searchBar.View(a.theme)

	var body string
	switch {
	case a.showHelp:
		body = a.renderHelp()
	case a.confirmDialog.IsActive():
		body = lipgloss.Place(a.width, a.bodyHeight(), lipgloss.Center, lipgloss.Center,
			a.confirmDialog.View(a.theme))
	case a.picker.IsActive():
		body = a.picker.View(a.theme)
	case a.state.Detail.IsOpen():
		body = a.modal.View(a.theme)
	default:
		grid := lipgloss.NewStyle().MarginLeft(gridLeft).Render(a.grid.View(a.theme))
		body = a.resultLine() + "\n\n" + grid
	}

	// Hard clamp: the body always fills exactly its share of the screen.
	body = lipgloss.NewStyle().
		Height(a.bodyHeight()).
		MaxHeight(a.bodyHeight()).
		Render(body)

	statusBar := RenderStatusBar(a.statusText(), a.hints(), a.theme, a.width)
	return header + "\n" + bar + "\n" + body + "\n" + statusBar
}

// resultLine summarises the search state above the grid.
func (a App) resultLine() string {
	s := a.state.Search
	var line string
	switch {
	case a.state.Loading():
		line = a.spinner.View() + " " + a.theme.StyleText.Render("Loading...")
	case s.Status() == state.StatusError:
		line = a.theme.StyleFailure.Render(s.Err)
	case s.Status() == state.StatusIdle:
		line = a.theme.StyleMuted.Render("No recipes found yet.")
	case len(s.Results) == 0:
		line = a.theme.StyleMuted.Render("No recipes found.")
	default:
		text := fmt.Sprintf("%d recipes", len(s.Results))
		if len(s.Results) == 1 {
			text = "1 recipe"
		}
		if s.Category != "" {
			text += " in " + s.Category
		}
		line = a.theme.StyleTitle.Render(text)
	}
	if a.state.Detail.Err != "" {
		line += "  " + a.theme.StyleFailure.Render(a.state.Detail.Err)
	}
	return " " + line
}

func (a App) statusText() string {
	if a.notice != "" {
		return a.notice
	}
	if a.state.Search.Category != "" {
		return "Category: " + a.state.Search.Category
	}
	return "TheMealDB"
}

func (a App) hints() string {
	switch {
	case a.showHelp:
		return "any key: close"
	case a.confirmDialog.IsActive():
		return "y/n: answer  esc: cancel"
	case a.picker.IsActive():
		return "j/k: move  enter: apply  esc: cancel"
	case a.searchBar.Focused():
		return "enter: search  esc: done"
	case a.state.Detail.IsOpen():
		return a.help.View(ui.ModalKeys{KeyMap: ui.Keys})
	}
	return a.help.View(ui.Keys)
}

func (a App) renderHelp() string {
	bold := lipgloss.NewStyle().Bold(true)
	keyStyle := a.theme.StyleKey.Width(14)
	desc := a.theme.StyleText

	row := func(k, d string) string {
		return "  " + keyStyle.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + bold.Render("  Search") + "\n\n")
	b.WriteString(row("/", "Type a recipe name"))
	b.WriteString(row("enter / s", "Search"))
	b.WriteString(row("c", "Pick a category (overrides the name)"))

	b.WriteString("\n" + bold.Render("  Results") + "\n\n")
	b.WriteString(row("h j k l", "Move between cards"))
	b.WriteString(row("enter / click", "Show recipe details"))
	b.WriteString(row("PgUp/PgDn", "Page up / page down"))

	b.WriteString("\n" + bold.Render("  Recipe") + "\n\n")
	b.WriteString(row("j / k", "Scroll"))
	b.WriteString(row("o", "Open the source link in a browser"))
	b.WriteString(row("esc / x", "Close (or click outside)"))

	b.WriteString("\n" + bold.Render("  General") + "\n\n")
	b.WriteString(row("t", "Toggle light / dark theme"))
	b.WriteString(row("?", "Help"))
	b.WriteString(row("q", "Quit"))

	b.WriteString("\n" + a.theme.StyleMuted.Render("  Press any key to close") + "\n")

	style := a.theme.StylePaneFocused.Width(max(1, a.width-2)).Height(max(1, a.bodyHeight()-2))
	return style.Render(b.String())
}

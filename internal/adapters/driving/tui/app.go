package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/messages"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/styles"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/views/detail"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/views/search"
	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// App is the root bubbletea model. It owns the search and detail
// views and routes messages between them.
type App struct {
	// ports bundles the driving-side services the views call into.
	ports *Ports

	// ctx carries cancellation into the views and their session.
	ctx context.Context

	// styles is the shared style set.
	styles *styles.Styles

	// searchView is the live search view component.
	searchView *search.View

	// detailView is the recipe detail view component.
	detailView *detail.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err is the most recent error surfaced by a view.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready flips once the first WindowSizeMsg arrives.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp wires the views up over the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	searchView := search.NewView(s, nil, search.SessionFactory(ports.NewSession))
	detailView := detail.NewView(s, ports.Recipes, ports.Favorites)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		searchView:  searchView,
		detailView:  detailView,
		currentView: messages.ViewSearch, // Start on search
	}, nil
}

// WithContext sets the context for the app and its views. Call this
// before the program runs; the search session binds to it at Init.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.detailView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("ladle - Recipe Search"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.detailView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.RecipeSelected:
		a.currentView = messages.ViewDetail
		return a, a.detailView.SetRecipe(msg.Recipe)

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.SnapshotReceived, messages.SessionClosed:
		// The session's update stream always lands on the search view,
		// whichever view the user is looking at.
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.PinStatusLoaded, messages.PinToggled, messages.RecipeLoaded:
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewDetail:
			a.detailView, cmd = a.detailView.Update(msg)
		case messages.ViewHelp:
			// Help view doesn't handle error messages
		}
		return a, cmd
	}

	// Everything else goes to the search view; its input cursor and
	// session opener are the only other message sources.
	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// handleKeyMsg routes keyboard input to the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Global quit with ctrl+c
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// q quits and ? opens help, unless the user is typing a query
	if !a.typing() {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "?":
			if a.currentView != messages.ViewHelp {
				a.currentView = messages.ViewHelp
				return a, nil
			}
		}
	}

	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		// Any of esc/q/? returns to search
		if msg.Type == tea.KeyEsc || msg.String() == "?" {
			a.currentView = messages.ViewSearch
		}
		return a, nil
	}

	return a, nil
}

// typing reports whether keystrokes are currently feeding the query
// input.
func (a *App) typing() bool {
	return a.currentView == messages.ViewSearch && a.searchView.InputFocused()
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.searchView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Global:
  ctrl+c      Quit
  ?           Toggle this help

Search:
  (type)      Search as you type
  enter, ↓    Jump to the results
  esc         Clear the query

Results:
  j/k, ↑/↓    Navigate results
  enter       Open the selected recipe
  n, /        New search
  r           Refresh
  q           Quit

Recipe:
  j/k, ↑/↓    Scroll
  f           Pin / unpin
  r           Reload from the catalog
  esc         Back to results

[esc] back to search`
}

// Run starts the TUI application and closes the search session when
// the program exits.
func (a *App) Run() error {
	defer func() {
		_ = a.Close()
	}()

	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Close releases the app's resources. Safe to call more than once.
func (a *App) Close() error {
	return a.searchView.CloseSession()
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Recipes returns the recipes currently listed by the search view.
func (a *App) Recipes() []domain.Recipe {
	return a.searchView.Recipes()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.searchView.SelectedIndex()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error a view surfaced.
func (a *App) Err() error {
	return a.err
}

// Ready reports whether terminal dimensions have been received.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions without waiting for a
// WindowSizeMsg.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
}

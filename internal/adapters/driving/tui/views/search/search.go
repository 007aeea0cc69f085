// Package search provides the live search view for the TUI.
package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/components/input"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/components/list"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/components/status"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/keymap"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/messages"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/styles"
	"github.com/ladle-labs/ladle-cli/internal/core/domain"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driving"
)

// SessionFactory opens a search session bound to the given context.
type SessionFactory func(ctx context.Context) (driving.SearchSession, error)

// sessionStarted delivers the session opened by Init's command.
type sessionStarted struct {
	session driving.SearchSession
}

// View represents the live search view with input, results list, and
// status bar. Typing feeds the session as-is; the session decides when
// a changed query actually hits the catalog, and every state change
// comes back through the Updates channel as a snapshot.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	newSession SessionFactory
	session    driving.SearchSession
	ctx        context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = input mode (typing), false = results mode (navigating)
	snapshot   domain.SearchSnapshot
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, newSession SessionFactory) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s),
		list:       list.NewResultList(s),
		statusbar:  status.NewBar(s, km),
		newSession: newSession,
		session:    nil,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		ready:      false,
		focusInput: true, // Start in input mode
	}
}

// WithContext sets the context for the view. The context bounds every
// catalog call the session makes, so it must be set before Init runs.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and opens the search session.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.startSession())
}

// startSession opens the search session off the update loop. The
// session dispatches the empty query as soon as it exists, so results
// appear without any typing.
func (v *View) startSession() tea.Cmd {
	factory := v.newSession
	ctx := v.ctx
	return func() tea.Msg {
		if factory == nil {
			return messages.ErrorOccurred{Err: ErrNoSession}
		}
		session, err := factory(ctx)
		if err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return sessionStarted{session: session}
	}
}

// listenForUpdates waits for the next snapshot from the session. The
// command re-arms itself from Update after every received snapshot.
func (v *View) listenForUpdates() tea.Cmd {
	session := v.session
	if session == nil {
		return nil
	}
	return func() tea.Msg {
		snapshot, ok := <-session.Updates()
		if !ok {
			return messages.SessionClosed{}
		}
		return messages.SnapshotReceived{Snapshot: snapshot}
	}
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case sessionStarted:
		v.session = msg.session
		v.applySnapshot(msg.session.Snapshot())
		return v, v.listenForUpdates()

	case messages.SnapshotReceived:
		v.applySnapshot(msg.Snapshot)
		return v, v.listenForUpdates()

	case messages.SessionClosed:
		v.session = nil
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Anything else belongs to the components.
	var inputCmd, listCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	v.list, listCmd = v.list.Update(msg)
	return v, tea.Batch(inputCmd, listCmd)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.focusInput {
		return v.handleInputModeKey(msg)
	}
	return v.handleResultsModeKey(msg)
}

// handleInputModeKey processes keys while the query input has focus.
// Every edit is pushed to the session verbatim; the session ignores
// values that did not change.
func (v *View) handleInputModeKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter", "down":
		if !v.list.IsEmpty() {
			v.focusResults()
		}
		return v, nil
	case "esc":
		if v.input.Value() != "" {
			v.input.SetValue("")
			v.pushQuery()
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.pushQuery()
	return v, cmd
}

// handleResultsModeKey processes keys while the results list has focus.
func (v *View) handleResultsModeKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return v.openSelected()
	case "esc":
		v.focusSearchInput()
	case "up", "k":
		v.list.MoveUp()
	case "down", "j":
		v.list.MoveDown()
	case "n", "/":
		// New search: back to an empty, focused input.
		v.focusSearchInput()
		v.input.SetValue("")
		v.pushQuery()
	case "r":
		if v.session != nil {
			v.session.Refresh()
		}
	}

	return v, nil
}

// openSelected emits the selected recipe for the detail view.
func (v *View) openSelected() (*View, tea.Cmd) {
	selected := v.list.SelectedRecipe()
	if selected == nil {
		return v, nil
	}

	recipe := *selected
	if v.session != nil {
		// The list can lag the session between snapshots; a stale ID
		// here is not an error worth surfacing.
		_ = v.session.Select(recipe.ID)
	}

	return v, func() tea.Msg {
		return messages.RecipeSelected{Recipe: recipe}
	}
}

// pushQuery hands the input's current value to the session.
func (v *View) pushQuery() {
	if v.session != nil {
		v.session.SetQuery(v.input.Value())
	}
}

// applySnapshot folds a session snapshot into the view. Results are
// only re-set on the list when the generation moved, so selection and
// scroll survive the per-keystroke snapshots that do not change them.
func (v *View) applySnapshot(snapshot domain.SearchSnapshot) {
	if snapshot.Generation != v.snapshot.Generation {
		v.list.SetRecipes(snapshot.Results)
	}
	v.snapshot = snapshot

	v.statusbar.SetState(status.StateFromStatus(snapshot.Status))

	switch snapshot.Status {
	case domain.StatusLoading:
		v.err = nil
	case domain.StatusError:
		v.err = snapshot.LastError
		if snapshot.LastError != nil {
			v.statusbar.SetMessage(snapshot.LastError.Error())
		}
	case domain.StatusIdle:
		v.err = nil
		v.statusbar.SetMessage("")
		v.statusbar.SetResultCount(len(snapshot.Results))
	}
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("Ladle"), "")
	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View())
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	// Everything around the list is fixed-height chrome.
	v.list.SetDimensions(width, height-10)
	v.statusbar.SetWidth(width)
}

// Width returns the view width.
func (v *View) Width() int {
	return v.width
}

// Height returns the view height.
func (v *View) Height() int {
	return v.height
}

// Ready reports whether dimensions have been received.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the query as typed so far.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query and pushes it to the session.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
	v.pushQuery()
}

// Recipes returns the recipes currently shown in the list.
func (v *View) Recipes() []domain.Recipe {
	return v.list.Recipes()
}

// SelectedIndex returns the index of the selected recipe.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedRecipe returns the currently selected recipe.
func (v *View) SelectedRecipe() *domain.Recipe {
	return v.list.SelectedRecipe()
}

// Snapshot returns the last session snapshot the view applied.
func (v *View) Snapshot() domain.SearchSnapshot {
	return v.snapshot
}

// Err returns the error currently shown, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError removes the error display and resets the status bar.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset returns the view to an empty query in input mode. The session
// stays open and re-dispatches the empty query immediately.
func (v *View) Reset() {
	v.focusSearchInput()
	v.input.SetValue("")
	v.list.SetRecipes(nil)
	v.err = nil
	v.snapshot = domain.SearchSnapshot{}
	v.statusbar.Clear()
	if v.session != nil {
		v.session.SetQuery("")
		v.session.Refresh()
	}
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// CloseSession closes the underlying search session, if one was
// opened. Safe to call more than once.
func (v *View) CloseSession() error {
	if v.session == nil {
		return nil
	}
	return v.session.Close()
}

func (v *View) focusResults() {
	v.focusInput = false
	v.input.Blur()
}

func (v *View) focusSearchInput() {
	v.focusInput = true
	v.input.Focus()
}

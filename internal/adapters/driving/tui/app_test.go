package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/messages"
	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// Helper function to create test recipes.
func testRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:           "52772",
			Name:         "Teriyaki Chicken Casserole",
			Category:     "Chicken",
			Cuisine:      "Japanese",
			Instructions: "Preheat oven to 350F.\nCombine ingredients and bake.",
			Ingredients:  []string{"3/4 cup soy sauce", "2 chicken breasts"},
		},
		{
			ID:       "52804",
			Name:     "Poutine",
			Category: "Miscellaneous",
			Cuisine:  "Canadian",
		},
	}
}

func idleSnapshot(gen uint64, recipes []domain.Recipe) domain.SearchSnapshot {
	return domain.SearchSnapshot{
		Status:     domain.StatusIdle,
		Results:    recipes,
		Generation: gen,
	}
}

func testPorts() *Ports {
	return &Ports{
		NewSession: mockFactory(newMockSession()),
		Recipes:    &MockRecipeService{},
		Favorites:  &MockFavoritesService{},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(testPorts())
	require.NoError(t, err)
	return app
}

// appInResultsMode returns an app with results loaded and the results
// list focused.
func appInResultsMode(t *testing.T) *App {
	t.Helper()
	app := newTestApp(t)
	app.SetDimensions(80, 24)
	app.Update(messages.SnapshotReceived{Snapshot: idleSnapshot(1, testRecipes())})
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, app.searchView.InputFocused())
	return app
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t)

	require.NotNil(t, app)
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.False(t, app.Ready())
	assert.Nil(t, app.Err())
}

func TestNewApp_MissingSessionFactory(t *testing.T) {
	app, err := NewApp(&Ports{Recipes: &MockRecipeService{}})

	assert.Nil(t, app)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSessionFactory)
	assert.Contains(t, err.Error(), "creating app")
}

func TestNewApp_MissingRecipeService(t *testing.T) {
	app, err := NewApp(&Ports{NewSession: mockFactory(newMockSession())})

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingRecipeService)
}

func TestNewApp_NilFavorites(t *testing.T) {
	ports := testPorts()
	ports.Favorites = nil

	app, err := NewApp(ports)

	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t)
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t)

	cmd := app.Init()

	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.True(t, app.searchView.Ready())
	assert.True(t, app.detailView.Ready())
}

func TestApp_Update_CtrlC_Quits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Update_Q_QuitsFromResults(t *testing.T) {
	app := appInResultsMode(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Update_Q_TypesIntoQuery(t *testing.T) {
	app := newTestApp(t)
	require.True(t, app.typing())

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.Equal(t, "q", app.Query())
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_Update_Question_OpensHelp(t *testing.T) {
	app := appInResultsMode(t)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})

	assert.Equal(t, messages.ViewHelp, app.CurrentView())
}

func TestApp_Update_Question_TogglesHelpClosed(t *testing.T) {
	app := appInResultsMode(t)
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.Equal(t, messages.ViewHelp, app.CurrentView())

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_Update_Esc_ClosesHelp(t *testing.T) {
	app := appInResultsMode(t)
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.Equal(t, messages.ViewHelp, app.CurrentView())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_Update_RecipeSelected_ShowsDetail(t *testing.T) {
	app := newTestApp(t)
	recipe := testRecipes()[0]

	_, cmd := app.Update(messages.RecipeSelected{Recipe: recipe})

	assert.Equal(t, messages.ViewDetail, app.CurrentView())
	require.NotNil(t, app.detailView.Recipe())
	assert.Equal(t, "52772", app.detailView.Recipe().ID)
	// Pin status lookup kicks off with the favorites service wired.
	assert.NotNil(t, cmd)
}

func TestApp_Update_ViewChanged(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.RecipeSelected{Recipe: testRecipes()[0]})
	require.Equal(t, messages.ViewDetail, app.CurrentView())

	app.Update(messages.ViewChanged{View: messages.ViewSearch})

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_Update_EnterOnResult_OpensDetail(t *testing.T) {
	app := appInResultsMode(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	app.Update(cmd())

	assert.Equal(t, messages.ViewDetail, app.CurrentView())
	require.NotNil(t, app.detailView.Recipe())
	assert.Equal(t, "Teriyaki Chicken Casserole", app.detailView.Recipe().Name)
}

func TestApp_Update_EscInDetail_ReturnsToSearch(t *testing.T) {
	app := appInResultsMode(t)
	app.Update(messages.RecipeSelected{Recipe: testRecipes()[0]})
	require.Equal(t, messages.ViewDetail, app.CurrentView())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	app.Update(cmd())

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	// The earlier results are still there.
	assert.Len(t, app.Recipes(), 2)
}

func TestApp_Update_SnapshotReceived_RoutesToSearchView(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.RecipeSelected{Recipe: testRecipes()[0]})
	require.Equal(t, messages.ViewDetail, app.CurrentView())

	app.Update(messages.SnapshotReceived{Snapshot: idleSnapshot(1, testRecipes())})

	// The search view keeps folding snapshots while detail is open.
	assert.Len(t, app.Recipes(), 2)
	assert.Equal(t, messages.ViewDetail, app.CurrentView())
}

func TestApp_Update_PinStatusLoaded_RoutesToDetailView(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.RecipeSelected{Recipe: testRecipes()[0]})

	app.Update(messages.PinStatusLoaded{RecipeID: "52772", Pinned: true})

	assert.True(t, app.detailView.Pinned())
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)

	err := errors.New("something went wrong")
	app.Update(messages.ErrorOccurred{Err: err})

	assert.Equal(t, err, app.Err())
	assert.Equal(t, err, app.searchView.Err())
}

func TestApp_View_NotReady(t *testing.T) {
	app := newTestApp(t)

	output := app.View()

	assert.Contains(t, output, "Initialising")
}

func TestApp_View_Search(t *testing.T) {
	app := newTestApp(t)
	app.SetDimensions(80, 24)

	output := app.View()

	assert.Contains(t, output, "Ladle")
	assert.Contains(t, output, "Search")
}

func TestApp_View_Detail(t *testing.T) {
	app := newTestApp(t)
	app.SetDimensions(80, 24)
	app.Update(messages.RecipeSelected{Recipe: testRecipes()[0]})

	output := app.View()

	assert.Contains(t, output, "Teriyaki Chicken Casserole")
	assert.Contains(t, output, "Ingredients:")
}

func TestApp_View_Help(t *testing.T) {
	app := appInResultsMode(t)
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})

	output := app.View()

	assert.Contains(t, output, "Help")
	assert.Contains(t, output, "Pin / unpin")
}

func TestApp_Close_ClosesSession(t *testing.T) {
	mock := newMockSession()
	ports := testPorts()
	ports.NewSession = mockFactory(mock)
	app, err := NewApp(ports)
	require.NoError(t, err)

	runInitCmds(app, app.Init())

	require.NoError(t, app.Close())
	assert.True(t, mock.closed)
}

func TestApp_Close_WithoutSession(t *testing.T) {
	app := newTestApp(t)

	assert.NoError(t, app.Close())
}

// runInitCmds feeds each init message through Update. Follow-up
// commands are deliberately not run; the session listener would block
// on the test's idle channel.
func runInitCmds(app *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			runInitCmds(app, c)
		}
		return
	}
	if msg != nil {
		app.Update(msg)
	}
}

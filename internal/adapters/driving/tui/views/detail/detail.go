// Package detail provides the recipe detail view for the TUI.
package detail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/messages"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/styles"
	"github.com/ladle-labs/ladle-cli/internal/core/domain"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driving"
)

// View is the recipe detail view. It renders one recipe's ingredients
// and steps as a scrollable body, with pinning handled in place.
type View struct {
	styles    *styles.Styles
	recipes   driving.RecipeService
	favorites driving.FavoritesService
	ctx       context.Context

	recipe       *domain.Recipe
	pinned       bool
	pinKnown     bool
	content      string
	lines        []string
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
}

// NewView creates a new recipe detail view. The favorites service may
// be nil, in which case pinning is disabled.
func NewView(s *styles.Styles, recipes driving.RecipeService, favorites driving.FavoritesService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:    s,
		recipes:   recipes,
		favorites: favorites,
		ctx:       context.Background(),
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetRecipe sets the recipe to display and kicks off the pin status
// lookup. Scroll position and errors reset with the new recipe.
func (v *View) SetRecipe(recipe domain.Recipe) tea.Cmd {
	r := recipe
	v.recipe = &r
	v.pinned = false
	v.pinKnown = false
	v.scrollOffset = 0
	v.err = nil
	v.content = v.buildContent()
	v.wrapContent()
	return v.loadPinStatus()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// loadPinStatus returns a command that checks whether the recipe is
// pinned.
func (v *View) loadPinStatus() tea.Cmd {
	if v.recipe == nil || v.favorites == nil {
		return nil
	}

	recipeID := v.recipe.ID
	ctx := v.ctx
	favorites := v.favorites
	return func() tea.Msg {
		pinned, err := favorites.IsPinned(ctx, recipeID)
		return messages.PinStatusLoaded{RecipeID: recipeID, Pinned: pinned, Err: err}
	}
}

// togglePin returns a command that pins or unpins the current recipe.
func (v *View) togglePin() tea.Cmd {
	if v.recipe == nil || v.favorites == nil {
		return nil
	}

	recipe := *v.recipe
	pin := !v.pinned
	ctx := v.ctx
	favorites := v.favorites
	return func() tea.Msg {
		var err error
		if pin {
			err = favorites.Pin(ctx, recipe)
		} else {
			err = favorites.Unpin(ctx, recipe.ID)
		}
		return messages.PinToggled{RecipeID: recipe.ID, Pinned: pin, Err: err}
	}
}

// reloadRecipe returns a command that refetches the recipe from the
// catalog.
func (v *View) reloadRecipe() tea.Cmd {
	if v.recipe == nil || v.recipes == nil {
		return nil
	}

	recipeID := v.recipe.ID
	ctx := v.ctx
	recipes := v.recipes
	return func() tea.Msg {
		recipe, err := recipes.Lookup(ctx, recipeID)
		return messages.RecipeLoaded{Recipe: recipe, Err: err}
	}
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.PinStatusLoaded:
		if v.recipe == nil || msg.RecipeID != v.recipe.ID {
			return v, nil
		}
		if msg.Err != nil {
			// Unknown pin state just hides the marker.
			v.pinKnown = false
			return v, nil
		}
		v.pinned = msg.Pinned
		v.pinKnown = true
		return v, nil

	case messages.PinToggled:
		return v.handlePinToggled(msg), nil

	case messages.RecipeLoaded:
		return v.handleRecipeLoaded(msg), nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handlePinToggled folds a pin/unpin outcome into the view. The store
// can disagree with the view's last known state; its answer wins.
func (v *View) handlePinToggled(msg messages.PinToggled) *View {
	if v.recipe == nil || msg.RecipeID != v.recipe.ID {
		return v
	}

	switch {
	case msg.Err == nil:
		v.pinned = msg.Pinned
		v.pinKnown = true
		v.err = nil
	case errors.Is(msg.Err, domain.ErrAlreadyExists):
		v.pinned = true
		v.pinKnown = true
	case errors.Is(msg.Err, domain.ErrNotFound):
		v.pinned = false
		v.pinKnown = true
	default:
		v.err = msg.Err
	}
	return v
}

// handleRecipeLoaded replaces the displayed recipe with a fresh
// catalog copy.
func (v *View) handleRecipeLoaded(msg messages.RecipeLoaded) *View {
	if msg.Err != nil {
		v.err = msg.Err
		return v
	}
	if msg.Recipe == nil || v.recipe == nil || msg.Recipe.ID != v.recipe.ID {
		return v
	}

	recipe := *msg.Recipe
	v.recipe = &recipe
	v.err = nil
	v.content = v.buildContent()
	v.wrapContent()
	if v.scrollOffset > v.maxScrollOffset() {
		v.scrollOffset = v.maxScrollOffset()
	}
	return v
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		maxOffset := v.maxScrollOffset()
		if v.scrollOffset < maxOffset {
			v.scrollOffset++
		}
	case "pgup", "ctrl+u":
		v.scrollOffset -= v.visibleLines()
		if v.scrollOffset < 0 {
			v.scrollOffset = 0
		}
	case "pgdown", "ctrl+d":
		maxOffset := v.maxScrollOffset()
		v.scrollOffset += v.visibleLines()
		if v.scrollOffset > maxOffset {
			v.scrollOffset = maxOffset
		}
	case "home", "g":
		v.scrollOffset = 0
	case "end", "G":
		v.scrollOffset = v.maxScrollOffset()
	case "f":
		return v, v.togglePin()
	case "r":
		return v, v.reloadRecipe()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSearch}
		}
	}

	return v, nil
}

// buildContent renders the recipe body as plain text. Wrapping to the
// view width happens separately so resizes do not rebuild the body.
func (v *View) buildContent() string {
	if v.recipe == nil {
		return ""
	}

	recipe := v.recipe
	var b strings.Builder

	if meta := metaLine(recipe); meta != "" {
		b.WriteString(meta)
		b.WriteString("\n")
	}
	if len(recipe.Tags) > 0 {
		b.WriteString("Tags: " + strings.Join(recipe.Tags, ", "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(recipe.Ingredients) > 0 {
		b.WriteString("Ingredients:\n")
		for _, ingredient := range recipe.Ingredients {
			b.WriteString("  - " + ingredient + "\n")
		}
		b.WriteString("\n")
	}

	steps := v.stepsFor(*recipe)
	if len(steps) > 0 {
		b.WriteString("Steps:\n")
		for i, step := range steps {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
		b.WriteString("\n")
	}

	if recipe.Source != "" {
		b.WriteString("Source: " + recipe.Source + "\n")
	}
	if recipe.Image != "" {
		b.WriteString("Image: " + recipe.Image + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// stepsFor splits the instruction block into steps, falling back to
// the raw block when no recipe service is wired.
func (v *View) stepsFor(recipe domain.Recipe) []string {
	if v.recipes != nil {
		return v.recipes.Steps(recipe)
	}
	trimmed := strings.TrimSpace(recipe.Instructions)
	if trimmed == "" {
		return nil
	}
	return []string{trimmed}
}

// metaLine joins the recipe's category and cuisine.
func metaLine(recipe *domain.Recipe) string {
	parts := make([]string, 0, 2)
	if recipe.Category != "" {
		parts = append(parts, recipe.Category)
	}
	if recipe.Cuisine != "" {
		parts = append(parts, recipe.Cuisine)
	}
	return strings.Join(parts, " · ")
}

// wrapContent wraps the content to fit the view width.
func (v *View) wrapContent() {
	if v.content == "" {
		v.lines = nil
		return
	}

	// Calculate available width (accounting for padding)
	contentWidth := v.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	// Split into lines and wrap long lines
	rawLines := strings.Split(v.content, "\n")
	v.lines = make([]string, 0, len(rawLines))

	for _, line := range rawLines {
		if len(line) <= contentWidth {
			v.lines = append(v.lines, line)
		} else {
			// Wrap long lines
			for len(line) > contentWidth {
				v.lines = append(v.lines, line[:contentWidth])
				line = line[contentWidth:]
			}
			if line != "" {
				v.lines = append(v.lines, line)
			}
		}
	}
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 6
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	maxOffset := len(v.lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View renders the detail view.
func (v *View) View() string {
	var b strings.Builder

	// Title with pin marker
	title := "Recipe"
	if v.recipe != nil {
		if v.recipe.Name != "" {
			title = v.recipe.Name
		} else {
			title = v.recipe.ID
		}
	}
	b.WriteString(v.styles.Title.Render(title))
	if v.pinKnown && v.pinned {
		b.WriteString(" " + v.styles.Warning.Render("★ Pinned"))
	}
	b.WriteString("\n")

	// Separator
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n\n")

	// Error state
	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	// Empty content
	if len(v.lines) == 0 {
		b.WriteString(v.styles.Muted.Render("(No recipe)"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	// Content
	visibleLines := v.visibleLines()
	for i := v.scrollOffset; i < len(v.lines) && i < v.scrollOffset+visibleLines; i++ {
		b.WriteString(v.styles.Normal.Render(v.lines[i]))
		b.WriteString("\n")
	}

	// Scroll position indicator
	if len(v.lines) > visibleLines {
		b.WriteString("\n")
		percentage := 0
		if v.maxScrollOffset() > 0 {
			percentage = v.scrollOffset * 100 / v.maxScrollOffset()
		}
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
			percentage,
			v.scrollOffset+1,
			minInt(v.scrollOffset+visibleLines, len(v.lines)),
			len(v.lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [f] pin/unpin  [r] reload  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.wrapContent()
	if v.scrollOffset > v.maxScrollOffset() {
		v.scrollOffset = v.maxScrollOffset()
	}
}

// Ready returns whether the view has received dimensions.
func (v *View) Ready() bool {
	return v.ready
}

// Recipe returns the current recipe.
func (v *View) Recipe() *domain.Recipe {
	return v.recipe
}

// Pinned reports whether the current recipe is known to be pinned.
func (v *View) Pinned() bool {
	return v.pinKnown && v.pinned
}

// ScrollOffset returns the current scroll position.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

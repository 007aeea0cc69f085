// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/styles"
	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// ResultList displays recipe results in a navigable list.
type ResultList struct {
	recipes  []domain.Recipe
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		recipes:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.recipes) == 0 {
		return r.styles.Muted.Render("No recipes")
	}

	lines := make([]string, 0, len(r.recipes)*2+2)

	// Header
	header := r.styles.Subtitle.Render(fmt.Sprintf("Recipes (%d)", len(r.recipes)))
	lines = append(lines, header, "")

	// Each entry takes two lines (name + meta)
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.recipes) {
		end = len(r.recipes)
	}

	for i := start; i < end; i++ {
		line := r.renderRecipe(i, &r.recipes[i])
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderRecipe formats a single recipe entry.
func (r *ResultList) renderRecipe(index int, recipe *domain.Recipe) string {
	// Indicator for selected item
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	name := recipe.Name
	if name == "" {
		name = "(Unnamed)"
	}

	maxNameLen := r.width - 6
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	var nameLine string
	if index == r.selected {
		nameLine = r.styles.Selected.Render(indicator + name)
	} else {
		nameLine = r.styles.Normal.Render(indicator + name)
	}

	// Meta line: category and cuisine, then tags
	meta := make([]string, 0, 3)
	if recipe.Category != "" {
		meta = append(meta, recipe.Category)
	}
	if recipe.Cuisine != "" {
		meta = append(meta, recipe.Cuisine)
	}
	if len(recipe.Tags) > 0 {
		meta = append(meta, strings.Join(recipe.Tags, "/"))
	}

	metaText := strings.Join(meta, " · ")
	if metaText == "" {
		metaText = "-"
	}
	maxMetaLen := r.width - 6
	if maxMetaLen < 10 {
		maxMetaLen = 10
	}
	if len(metaText) > maxMetaLen {
		metaText = metaText[:maxMetaLen-3] + "..."
	}

	metaLine := r.styles.Muted.Render("    " + metaText)

	return nameLine + "\n" + metaLine
}

// SetRecipes updates the result list and resets the selection.
func (r *ResultList) SetRecipes(recipes []domain.Recipe) {
	r.recipes = recipes
	r.selected = 0
}

// Recipes returns the current recipes.
func (r *ResultList) Recipes() []domain.Recipe {
	return r.recipes
}

// Selected returns the index of the selected recipe.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.recipes) {
		r.selected = index
	}
}

// SelectedRecipe returns the currently selected recipe, or nil if none.
func (r *ResultList) SelectedRecipe() *domain.Recipe {
	if len(r.recipes) == 0 || r.selected < 0 || r.selected >= len(r.recipes) {
		return nil
	}
	return &r.recipes[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.recipes)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of recipes.
func (r *ResultList) Count() int {
	return len(r.recipes)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.recipes) == 0
}

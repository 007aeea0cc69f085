// Package input provides the query box for the TUI search view.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/styles"
)

// queryLimit caps the query length. Catalog searches are recipe names;
// nothing useful is longer than this.
const queryLimit = 64

// SearchInput is the live query box. Every edit is visible through
// Value; the session layer decides when a changed value actually
// triggers a fetch, so the component never debounces or filters input
// itself.
type SearchInput struct {
	model  textinput.Model
	styles *styles.Styles
	width  int
}

// NewSearchInput creates a new search input component.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	m := textinput.New()
	m.Prompt = "Search: "
	m.PromptStyle = s.Title
	m.Placeholder = "Type to search recipes..."
	m.CharLimit = queryLimit
	m.Focus()

	in := &SearchInput{
		model:  m,
		styles: s,
	}
	in.SetWidth(50)
	return in
}

// Init starts the cursor blink.
func (in *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards messages to the underlying text input.
func (in *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	in.model, cmd = in.model.Update(msg)
	return in, cmd
}

// View renders the query box inside its bordered field.
func (in *SearchInput) View() string {
	return in.styles.InputField.Render(in.model.View())
}

// Value returns the current query text.
func (in *SearchInput) Value() string {
	return in.model.Value()
}

// SetValue replaces the query text.
func (in *SearchInput) SetValue(value string) {
	in.model.SetValue(value)
}

// Focus gives the query box the cursor.
func (in *SearchInput) Focus() tea.Cmd {
	return in.model.Focus()
}

// Blur takes the cursor away.
func (in *SearchInput) Blur() {
	in.model.Blur()
}

// Focused reports whether the query box holds the cursor.
func (in *SearchInput) Focused() bool {
	return in.model.Focused()
}

// SetWidth sizes the inner input to the given total width, leaving
// room for the prompt and the field border.
func (in *SearchInput) SetWidth(width int) {
	in.width = width

	inner := width - len(in.model.Prompt) - 4
	if inner < 20 {
		inner = 20
	}
	in.model.Width = inner
}

// Width returns the total width the component was last sized to.
func (in *SearchInput) Width() int {
	return in.width
}

// Reset clears the query text.
func (in *SearchInput) Reset() {
	in.model.Reset()
}

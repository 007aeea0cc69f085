// Package status provides the TUI status bar.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/keymap"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/tui/styles"
	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateError     State = "error"
	StateResults   State = "results"
	StateDetail    State = "detail"
)

// StateFromStatus maps a search session status onto a display state.
func StateFromStatus(status domain.SearchStatus) State {
	switch status {
	case domain.StatusLoading:
		return StateSearching
	case domain.StatusError:
		return StateError
	case domain.StatusIdle:
		return StateResults
	default:
		return StateReady
	}
}

// Bar is a passive status line: state and message on the left, key
// hints on the right. The owning view drives it through the Set
// methods and renders it with View.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	message     string
	resultCount int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: StateReady, width: 80}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderHints()

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", gap) + right,
	)
}

// renderLeft picks the state text and its style.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateSearching:
		return s.styles.Muted.Render("Searching...")
	case StateError:
		text := "Error"
		if s.message != "" {
			text = "Error: " + s.message
		}
		return s.styles.Error.Render(text)
	case StateDetail:
		if s.message != "" {
			return s.styles.Normal.Render(s.message)
		}
		return s.styles.Muted.Render("Recipe")
	case StateReady, StateResults:
		if s.message != "" {
			return s.styles.Normal.Render(s.message)
		}
		if s.resultCount > 0 {
			return s.styles.Normal.Render(fmt.Sprintf("%d recipes", s.resultCount))
		}
	}
	return s.styles.Muted.Render("Ready")
}

// renderHints renders the key hints for the current state.
func (s *Bar) renderHints() string {
	bindings := s.keymap.ShortHelp()
	switch {
	case s.state == StateResults && s.resultCount > 0:
		bindings = s.keymap.ResultsHelp()
	case s.state == StateDetail:
		bindings = s.keymap.DetailHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the display state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the display state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage overrides the state text on the left.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the message override.
func (s *Bar) Message() string {
	return s.message
}

// SetResultCount records how many results the list shows.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// ResultCount returns the recorded result count.
func (s *Bar) ResultCount() int {
	return s.resultCount
}

// SetWidth sets the render width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the render width.
func (s *Bar) Width() int {
	return s.width
}

// Clear returns the bar to its initial ready state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.resultCount = 0
}

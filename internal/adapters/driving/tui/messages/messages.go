// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// SnapshotReceived carries the latest search session snapshot.
// One arrives for every observable state change in the session.
type SnapshotReceived struct {
	Snapshot domain.SearchSnapshot
}

// SessionClosed signals that the search session's update stream ended.
type SessionClosed struct{}

// RecipeSelected is sent when a search result is chosen for the
// detail view.
type RecipeSelected struct {
	Recipe domain.Recipe
}

// RecipeLoaded carries a recipe fetched for the detail view.
type RecipeLoaded struct {
	Recipe *domain.Recipe
	Err    error
}

// PinStatusLoaded reports whether the open recipe is pinned.
type PinStatusLoaded struct {
	RecipeID string
	Pinned   bool
	Err      error
}

// PinToggled signals a pin or unpin completed.
type PinToggled struct {
	RecipeID string
	Pinned   bool
	Err      error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the live search input and results view.
	ViewSearch ViewType = iota
	// ViewDetail shows a single recipe's ingredients and steps.
	ViewDetail
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewDetail:
		return "detail"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

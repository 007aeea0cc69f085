package driving

import (
	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// SearchSession runs the interactive search loop: it debounces query
// edits, dispatches catalog requests, and folds completions into one
// observable snapshot. Late completions from superseded requests are
// discarded, so the snapshot never regresses to an older query's
// results.
//
// All methods are safe for concurrent use.
type SearchSession interface {
	// SetQuery records a new query string, verbatim. Setting the
	// current value again is a no-op. A changed value re-arms the
	// debounce timer; when the timer fires, whatever value is current
	// at that moment is dispatched.
	SetQuery(query string)

	// Refresh dispatches the current query immediately, bypassing the
	// debounce window. Any pending timer is cancelled first.
	Refresh()

	// Select marks the result with the given recipe ID as the current
	// selection. Returns domain.ErrNotFound when the ID is not among
	// the current results, and domain.ErrSessionClosed after Close.
	Select(recipeID string) error

	// Selected returns the currently selected recipe. The boolean is
	// false when nothing is selected. Selection is cleared whenever
	// new results are applied.
	Selected() (domain.Recipe, bool)

	// Snapshot returns a copy of the current session state.
	Snapshot() domain.SearchSnapshot

	// Updates returns a channel carrying a fresh snapshot after every
	// state change. The channel has capacity one and keeps only the
	// latest snapshot; a slow consumer never blocks the session.
	Updates() <-chan domain.SearchSnapshot

	// Close cancels any pending debounce timer and marks the session
	// closed. Later SetQuery and Refresh calls are ignored, and
	// completions from requests still in flight are discarded.
	Close() error
}

package domain

// SearchStatus describes where a search session is in its lifecycle.
type SearchStatus string

const (
	// StatusIdle means the last dispatched search completed successfully
	// and Results reflect the query shown in the snapshot.
	StatusIdle SearchStatus = "idle"

	// StatusLoading means a search has been dispatched and its outcome
	// has not been applied yet.
	StatusLoading SearchStatus = "loading"

	// StatusError means the last dispatched search failed. Results keep
	// their previous value so the UI does not flash empty.
	StatusError SearchStatus = "error"
)

// SearchSnapshot is an immutable view of a search session's state.
// Sessions hand out copies, so holders can read fields freely without
// synchronisation.
type SearchSnapshot struct {
	// Query is the most recent text the user submitted, verbatim.
	Query string

	// Status is the session's current lifecycle phase.
	Status SearchStatus

	// Results are the recipes from the latest applied completion.
	// Nil until a search has succeeded; preserved across failures.
	Results []Recipe

	// LastError is the failure from the latest applied completion,
	// or nil after a success. Inspect it with the mealdb.Is* helpers.
	LastError error

	// Generation identifies the dispatch whose outcome is currently
	// reflected. It only ever increases, so observers can tell a fresh
	// snapshot from a stale one.
	Generation uint64
}

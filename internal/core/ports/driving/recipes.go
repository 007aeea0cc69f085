package driving

import (
	"context"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// RecipeService provides one-shot catalog operations for
// non-interactive callers (CLI commands, MCP tools). Unlike a
// SearchSession, calls here are synchronous and never debounced.
type RecipeService interface {
	// SearchByName queries the catalog once and returns all matches.
	SearchByName(ctx context.Context, query string) ([]domain.Recipe, error)

	// Lookup fetches a single recipe by its catalog identifier.
	// Returns domain.ErrNotFound when the catalog has no such recipe.
	Lookup(ctx context.Context, id string) (*domain.Recipe, error)

	// Random fetches one recipe chosen by the catalog.
	Random(ctx context.Context) (*domain.Recipe, error)

	// Steps splits a recipe's instruction block into clean,
	// presentation-ready steps.
	Steps(recipe domain.Recipe) []string
}

package driven

import (
	"context"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// RecipeCatalog is the gateway to the upstream recipe catalog.
// Implementations translate catalog wire records into domain recipes
// and report failures through typed, inspectable errors.
type RecipeCatalog interface {
	// SearchByName returns every recipe whose name matches query.
	// The query is sent verbatim; the catalog decides how to match it.
	// Zero matches is a successful search with an empty slice, never
	// an error.
	SearchByName(ctx context.Context, query string) ([]domain.Recipe, error)

	// LookupByID fetches one recipe by its catalog identifier.
	// Returns domain.ErrNotFound when the catalog has no such recipe.
	LookupByID(ctx context.Context, id string) (*domain.Recipe, error)

	// Random fetches one recipe chosen by the catalog.
	Random(ctx context.Context) (*domain.Recipe, error)
}

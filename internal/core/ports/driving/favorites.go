package driving

import (
	"context"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// FavoritesService manages the user's locally pinned recipes.
type FavoritesService interface {
	// Pin stores recipe as a favorite. Returns domain.ErrAlreadyExists
	// when it is already pinned.
	Pin(ctx context.Context, recipe domain.Recipe) error

	// Unpin removes the favorite with the given recipe ID.
	// Returns domain.ErrNotFound when the recipe is not pinned.
	Unpin(ctx context.Context, recipeID string) error

	// List returns all favorites, most recently pinned first.
	List(ctx context.Context) ([]domain.Favorite, error)

	// IsPinned reports whether the given recipe ID is pinned.
	IsPinned(ctx context.Context, recipeID string) (bool, error)
}

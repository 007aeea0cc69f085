package driven

import (
	"context"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// FavoriteStore persists the user's pinned recipes.
type FavoriteStore interface {
	// Add stores a favorite. Returns domain.ErrAlreadyExists when the
	// recipe is already pinned.
	Add(ctx context.Context, fav domain.Favorite) error

	// Remove deletes the favorite with the given recipe ID.
	// Returns domain.ErrNotFound when the recipe is not pinned.
	Remove(ctx context.Context, recipeID string) error

	// Get fetches one favorite by recipe ID.
	// Returns domain.ErrNotFound when the recipe is not pinned.
	Get(ctx context.Context, recipeID string) (*domain.Favorite, error)

	// List returns all favorites, most recently pinned first.
	List(ctx context.Context) ([]domain.Favorite, error)

	// Close releases the underlying storage.
	Close() error
}

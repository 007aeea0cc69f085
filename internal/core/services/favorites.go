package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driven"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driving"
	"github.com/ladle-labs/ladle-cli/internal/logger"
)

// Ensure FavoritesService implements the interface.
var _ driving.FavoritesService = (*FavoritesService)(nil)

// FavoritesService manages the user's pinned recipes on top of a
// FavoriteStore.
type FavoritesService struct {
	store driven.FavoriteStore

	// now is swappable for tests.
	now func() time.Time
}

// NewFavoritesService creates a new favorites service.
func NewFavoritesService(store driven.FavoriteStore) *FavoritesService {
	return &FavoritesService{
		store: store,
		now:   time.Now,
	}
}

// Pin stores recipe as a favorite with the current timestamp.
func (s *FavoritesService) Pin(ctx context.Context, recipe domain.Recipe) error {
	if recipe.ID == "" || recipe.Name == "" {
		return fmt.Errorf("pin: recipe needs id and name: %w", domain.ErrInvalidInput)
	}

	fav := domain.Favorite{
		RecipeID: recipe.ID,
		Name:     recipe.Name,
		Category: recipe.Category,
		Cuisine:  recipe.Cuisine,
		PinnedAt: s.now().UTC(),
	}
	if err := s.store.Add(ctx, fav); err != nil {
		return fmt.Errorf("pin %s: %w", recipe.ID, err)
	}

	logger.Info("Pinned %s (%s)", recipe.ID, recipe.Name)
	return nil
}

// Unpin removes the favorite with the given recipe ID.
func (s *FavoritesService) Unpin(ctx context.Context, recipeID string) error {
	if recipeID == "" {
		return fmt.Errorf("unpin: empty id: %w", domain.ErrInvalidInput)
	}
	if err := s.store.Remove(ctx, recipeID); err != nil {
		return fmt.Errorf("unpin %s: %w", recipeID, err)
	}

	logger.Info("Unpinned %s", recipeID)
	return nil
}

// List returns all favorites, most recently pinned first.
func (s *FavoritesService) List(ctx context.Context) ([]domain.Favorite, error) {
	favs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favs, nil
}

// IsPinned reports whether the given recipe ID is pinned.
func (s *FavoritesService) IsPinned(ctx context.Context, recipeID string) (bool, error) {
	_, err := s.store.Get(ctx, recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("favorite %s: %w", recipeID, err)
	}
	return true, nil
}

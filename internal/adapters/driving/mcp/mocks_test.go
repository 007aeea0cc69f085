package mcp

import (
	"context"
	"strings"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// mockRecipeService is a mock implementation of driving.RecipeService.
type mockRecipeService struct {
	recipes []domain.Recipe
	recipe  *domain.Recipe
	err     error
}

func (m *mockRecipeService) SearchByName(_ context.Context, _ string) ([]domain.Recipe, error) {
	return m.recipes, m.err
}

func (m *mockRecipeService) Lookup(_ context.Context, _ string) (*domain.Recipe, error) {
	return m.recipe, m.err
}

func (m *mockRecipeService) Random(_ context.Context) (*domain.Recipe, error) {
	return m.recipe, m.err
}

func (m *mockRecipeService) Steps(recipe domain.Recipe) []string {
	var steps []string
	for _, line := range strings.Split(recipe.Instructions, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			steps = append(steps, line)
		}
	}
	return steps
}

// mockFavoritesService is a mock implementation of driving.FavoritesService.
type mockFavoritesService struct {
	favorites []domain.Favorite
	pinned    bool
	err       error
}

func (m *mockFavoritesService) Pin(_ context.Context, _ domain.Recipe) error {
	return m.err
}

func (m *mockFavoritesService) Unpin(_ context.Context, _ string) error {
	return m.err
}

func (m *mockFavoritesService) List(_ context.Context) ([]domain.Favorite, error) {
	return m.favorites, m.err
}

func (m *mockFavoritesService) IsPinned(_ context.Context, _ string) (bool, error) {
	return m.pinned, m.err
}

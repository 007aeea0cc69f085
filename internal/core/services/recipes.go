package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driven"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driving"
	"github.com/ladle-labs/ladle-cli/internal/logger"
	"github.com/ladle-labs/ladle-cli/internal/normalisers/steps"
)

// Ensure RecipeService implements the interface.
var _ driving.RecipeService = (*RecipeService)(nil)

// RecipeService provides one-shot catalog operations for callers that
// do not need a debounced session, such as CLI commands and MCP tools.
type RecipeService struct {
	catalog driven.RecipeCatalog
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(catalog driven.RecipeCatalog) *RecipeService {
	return &RecipeService{catalog: catalog}
}

// SearchByName queries the catalog once and returns all matches.
func (s *RecipeService) SearchByName(ctx context.Context, query string) ([]domain.Recipe, error) {
	logger.Section("Catalog Search")
	logger.Debug("Query: %q", query)

	recipes, err := s.catalog.SearchByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	logger.Info("Catalog returned %d recipes", len(recipes))
	return recipes, nil
}

// Lookup fetches a single recipe by its catalog identifier.
func (s *RecipeService) Lookup(ctx context.Context, id string) (*domain.Recipe, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("lookup: empty id: %w", domain.ErrInvalidInput)
	}

	logger.Debug("Lookup recipe %s", id)
	recipe, err := s.catalog.LookupByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	return recipe, nil
}

// Random fetches one recipe chosen by the catalog.
func (s *RecipeService) Random(ctx context.Context) (*domain.Recipe, error) {
	logger.Debug("Fetching random recipe")
	recipe, err := s.catalog.Random(ctx)
	if err != nil {
		return nil, fmt.Errorf("random: %w", err)
	}

	logger.Info("Catalog chose %s (%s)", recipe.ID, recipe.Name)
	return recipe, nil
}

// Steps splits a recipe's instruction block into presentable steps.
func (s *RecipeService) Steps(recipe domain.Recipe) []string {
	return steps.Segment(recipe.Instructions)
}

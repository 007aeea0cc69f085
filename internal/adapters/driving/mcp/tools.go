package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_recipes tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the recipe name or name fragment to search for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_recipes tool.
type SearchOutput struct {
	Results []RecipeOutput `json:"results"`
	Count   int            `json:"count"`
}

// LookupInput is the input schema for the get_recipe tool.
type LookupInput struct {
	ID string `json:"id" jsonschema:"the catalog identifier of the recipe"`
}

// RecipeOutput represents a single recipe with its instructions already
// segmented into steps.
type RecipeOutput struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Cuisine     string   `json:"cuisine,omitempty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Tags        []string `json:"tags,omitempty"`
	Image       string   `json:"image,omitempty"`
	Source      string   `json:"source,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_recipes",
		Description: "Search the recipe catalog by name",
	}, s.handleSearchRecipes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_recipe",
		Description: "Fetch a single recipe by its catalog identifier",
	}, s.handleGetRecipe)
}

// handleSearchRecipes handles the search_recipes tool invocation.
func (s *Server) handleSearchRecipes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	recipes, err := s.ports.Recipes.SearchByName(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	if len(recipes) > limit {
		recipes = recipes[:limit]
	}

	output := SearchOutput{
		Results: make([]RecipeOutput, len(recipes)),
		Count:   len(recipes),
	}

	for i := range recipes {
		output.Results[i] = s.recipeOutput(recipes[i])
	}

	return nil, output, nil
}

// handleGetRecipe handles the get_recipe tool invocation.
func (s *Server) handleGetRecipe(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, RecipeOutput, error) {
	recipe, err := s.ports.Recipes.Lookup(ctx, input.ID)
	if err != nil {
		return nil, RecipeOutput{}, err
	}

	return nil, s.recipeOutput(*recipe), nil
}

// recipeOutput converts a domain recipe into its tool output form.
func (s *Server) recipeOutput(recipe domain.Recipe) RecipeOutput {
	return RecipeOutput{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Category:    recipe.Category,
		Cuisine:     recipe.Cuisine,
		Ingredients: recipe.Ingredients,
		Steps:       s.ports.Recipes.Steps(recipe),
		Tags:        recipe.Tags,
		Image:       recipe.Image,
		Source:      recipe.Source,
	}
}

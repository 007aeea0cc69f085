package mcp

import (
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Recipes provides one-shot catalog operations.
	Recipes driving.RecipeService

	// Favorites manages pinned recipes. Optional; when nil the
	// favorites resource serves an empty list.
	Favorites driving.FavoritesService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Recipes == nil {
		return ErrMissingRecipeService
	}
	return nil
}

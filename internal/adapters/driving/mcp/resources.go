package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for ladle resources.
	uriScheme = "ladle://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the pinned favorites.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "favorites",
		Name:        "favorites",
		Description: "Recipes the user has pinned, most recent first",
		MIMEType:    "application/json",
	}, s.handleFavoritesResource)

	// Template for individual recipes.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "recipes/{recipeId}",
		Name:        "recipe",
		Description: "A single catalog recipe with segmented steps",
		MIMEType:    "application/json",
	}, s.handleRecipeResource)
}

// handleFavoritesResource returns the user's pinned recipes.
func (s *Server) handleFavoritesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Favorites == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	favorites, err := s.ports.Favorites.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}

	// Build simplified favorite list.
	type favoriteInfo struct {
		RecipeID string    `json:"recipe_id"`
		Name     string    `json:"name"`
		Category string    `json:"category,omitempty"`
		Cuisine  string    `json:"cuisine,omitempty"`
		PinnedAt time.Time `json:"pinned_at"`
	}

	infos := make([]favoriteInfo, len(favorites))
	for i, fav := range favorites {
		infos[i] = favoriteInfo{
			RecipeID: fav.RecipeID,
			Name:     fav.Name,
			Category: fav.Category,
			Cuisine:  fav.Cuisine,
			PinnedAt: fav.PinnedAt,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling favorites: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRecipeResource returns a single recipe by its catalog identifier.
func (s *Server) handleRecipeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract recipeId from URI: ladle://recipes/{recipeId}
	recipeID := extractRecipeID(req.Params.URI)
	if recipeID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	recipe, err := s.ports.Recipes.Lookup(ctx, recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("looking up recipe: %w", err)
	}

	data, err := json.MarshalIndent(s.recipeOutput(*recipe), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling recipe: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRecipeID extracts the recipe ID from a URI like ladle://recipes/{recipeId}.
func extractRecipeID(uri string) string {
	const prefix = uriScheme + "recipes/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}

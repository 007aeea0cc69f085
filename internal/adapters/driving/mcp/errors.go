// Package mcp provides an MCP (Model Context Protocol) server adapter for ladle.
// It enables AI assistants like Claude to search the recipe catalog and read
// the user's pinned favorites.
package mcp

import "errors"

// ErrMissingRecipeService is returned when the recipe service is not provided.
var ErrMissingRecipeService = errors.New("mcp: recipe service is required")

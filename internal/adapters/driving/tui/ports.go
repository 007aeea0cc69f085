// Package tui provides an interactive terminal user interface for ladle.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"

	"github.com/ladle-labs/ladle-cli/internal/core/ports/driving"
)

// SessionFactory opens the search session the TUI drives. The context
// bounds every catalog call the session makes.
type SessionFactory func(ctx context.Context) (driving.SearchSession, error)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// NewSession opens the live search session behind the search view.
	NewSession SessionFactory

	// Recipes provides one-shot catalog operations for the detail view.
	Recipes driving.RecipeService

	// Favorites manages pinned recipes. Optional; when nil the TUI
	// runs with pinning disabled.
	Favorites driving.FavoritesService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	newSession SessionFactory,
	recipes driving.RecipeService,
	favorites driving.FavoritesService,
) *Ports {
	return &Ports{
		NewSession: newSession,
		Recipes:    recipes,
		Favorites:  favorites,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.NewSession == nil {
		return ErrMissingSessionFactory
	}
	if p.Recipes == nil {
		return ErrMissingRecipeService
	}
	return nil
}

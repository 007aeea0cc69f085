package tui

import "errors"

// ErrMissingSessionFactory is returned when no search session factory is provided.
var ErrMissingSessionFactory = errors.New("tui: search session factory is required")

// ErrMissingRecipeService is returned when the recipe service is not provided.
var ErrMissingRecipeService = errors.New("tui: recipe service is required")

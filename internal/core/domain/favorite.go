package domain

import "time"

// Favorite is a recipe the user pinned for quick access. It stores a
// denormalised copy of the display fields so the list renders without
// another catalog round trip.
type Favorite struct {
	// RecipeID is the catalog identifier of the pinned recipe.
	RecipeID string

	// Name is the recipe title at the time it was pinned.
	Name string

	// Category is the dish category at the time it was pinned.
	Category string

	// Cuisine is the regional cuisine at the time it was pinned.
	Cuisine string

	// PinnedAt is when the user added the favorite.
	PinnedAt time.Time
}

package domain

// Recipe is the canonical representation of a catalog recipe after
// normalisation. Wire-level quirks (positional ingredient slots, empty
// strings standing in for absent values) never reach this type.
type Recipe struct {
	// ID is the catalog's stable identifier for the recipe.
	ID string

	// Name is the human-readable recipe title.
	Name string

	// Category is the catalog's dish category (e.g., "Dessert").
	// Empty when the catalog did not supply one.
	Category string

	// Cuisine is the regional cuisine (e.g., "Italian").
	// Empty when the catalog did not supply one.
	Cuisine string

	// Instructions is the full preparation text as a single block.
	// Use steps.Segment to split it into presentable steps.
	Instructions string

	// Ingredients holds display-ready lines in catalog order.
	// Each entry is either "<measure> <name>" or just "<name>" when
	// the catalog gave no usable measure.
	Ingredients []string

	// Image is the URL of the recipe's thumbnail, if any.
	Image string

	// Source is the URL of the original recipe page, if any.
	Source string

	// Tags are the catalog's free-form labels. Nil when none were set.
	Tags []string
}

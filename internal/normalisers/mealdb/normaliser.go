package mealdb

import (
	"strings"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// noMeasure is the literal the catalog stores when an ingredient has
// no meaningful measure.
const noMeasure = "0"

// Normalise converts a wire record into a domain recipe. It is pure
// and total: malformed or missing optional fields degrade to absent
// values rather than failing. Scalar fields map across verbatim.
func Normalise(rec Record) domain.Recipe {
	return domain.Recipe{
		ID:           rec.ID,
		Name:         rec.Name,
		Category:     rec.Category,
		Cuisine:      rec.Area,
		Instructions: rec.Instructions,
		Ingredients:  ingredientLines(rec.Slots),
		Image:        rec.Thumbnail,
		Source:       rec.Source,
		Tags:         splitTags(rec.Tags),
	}
}

// ingredientLines flattens the positional slots into display lines,
// walking positions in ascending order. Slots whose ingredient trims
// to nothing are dropped entirely. A measure is prepended with a
// single space only when it survives trimming and is not the "0"
// sentinel.
func ingredientLines(slots [SlotCount]Slot) []string {
	var lines []string
	for _, slot := range slots {
		name := strings.TrimSpace(slot.Ingredient)
		if name == "" {
			continue
		}
		measure := strings.TrimSpace(slot.Measure)
		if measure == "" || measure == noMeasure {
			lines = append(lines, name)
			continue
		}
		lines = append(lines, measure+" "+name)
	}
	return lines
}

// splitTags explodes the comma-delimited wire tag string into trimmed,
// non-empty pieces. Order and duplicates pass through untouched.
// Returns nil when the field carried nothing usable.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, piece := range strings.Split(raw, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			tags = append(tags, piece)
		}
	}
	return tags
}

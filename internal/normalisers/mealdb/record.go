// Package mealdb normalises TheMealDB's wire records into domain
// recipes. The wire format is flat and sparsely populated: every field
// may be null, empty, or whitespace, and ingredients arrive as twenty
// positional field pairs (strIngredient1..20 / strMeasure1..20).
package mealdb

import (
	"encoding/json"
	"fmt"
)

// SlotCount is the number of positional ingredient/measure field pairs
// a catalog record carries on the wire.
const SlotCount = 20

// Slot is one positional ingredient/measure pair, exactly as received.
// Values are untrimmed; Normalise decides what is usable.
type Slot struct {
	// Ingredient is the raw ingredient name for this position.
	Ingredient string

	// Measure is the raw measure paired with the ingredient.
	Measure string
}

// Record mirrors one catalog meal object from the wire. Named fields
// cover the scalar columns; Slots captures the positional pairs in
// ascending wire order.
type Record struct {
	// ID is the catalog identifier ("idMeal").
	ID string

	// Name is the display name ("strMeal").
	Name string

	// Category is the dish category ("strCategory").
	Category string

	// Area is the regional cuisine ("strArea").
	Area string

	// Instructions is the free-text preparation block ("strInstructions").
	Instructions string

	// Thumbnail is the image URL ("strMealThumb").
	Thumbnail string

	// Source is the original recipe URL ("strSource").
	Source string

	// Tags is the raw comma-delimited tag string ("strTags").
	Tags string

	// Slots holds the twenty positional ingredient/measure pairs.
	Slots [SlotCount]Slot
}

// UnmarshalJSON decodes one wire object, tolerating null, absent and
// empty values in every field. The positional pairs are collected by
// key lookup rather than forty struct fields, so position order is
// explicit.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// null and absent fields both read back as the empty string.
	str := func(key string) string {
		s, _ := raw[key].(string)
		return s
	}

	r.ID = str("idMeal")
	r.Name = str("strMeal")
	r.Category = str("strCategory")
	r.Area = str("strArea")
	r.Instructions = str("strInstructions")
	r.Thumbnail = str("strMealThumb")
	r.Source = str("strSource")
	r.Tags = str("strTags")
	for i := range r.Slots {
		r.Slots[i] = Slot{
			Ingredient: str(fmt.Sprintf("strIngredient%d", i+1)),
			Measure:    str(fmt.Sprintf("strMeasure%d", i+1)),
		}
	}
	return nil
}

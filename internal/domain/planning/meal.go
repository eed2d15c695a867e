// Package planning contains the weekly menu domain: meals, day buckets and
// the plan aggregate. Every operation takes a value and returns a new value;
// callers always hold an immutable snapshot and no partial mutation is ever
// observable.
package planning

import (
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/menuforge/v1/internal/domain/catalog"
	"github.com/menuforge/v1/internal/domain/nutrition"
)

// MealMode discriminates the two ways a meal's content can be defined.
type MealMode string

const (
	// ModeIngredients composes the meal from gram-scaled food entries.
	ModeIngredients MealMode = "ingredients"
	// ModeRecipe composes the meal from a published recipe at a portion count.
	ModeRecipe MealMode = "recipe"
)

// IngredientEntry is one gram-scaled food line of an ingredient meal. The
// per-100 g macros are snapshotted from the catalog when the entry is added
// so the contribution can be recomputed without another lookup.
type IngredientEntry struct {
	FoodID uuid.UUID
	Grams  float64
	Per100 nutrition.Macros
}

// Contribution derives the entry's macro contribution from its quantity.
func (e IngredientEntry) Contribution() nutrition.Macros {
	return e.Per100.ForGrams(e.Grams)
}

// RecipeSelection pins a published recipe at a portion count, with the
// per-portion macros snapshotted at selection time.
type RecipeSelection struct {
	RecipeID   uuid.UUID
	Portions   float64
	PerPortion nutrition.Macros
}

// Totals derives the selection's macro totals from the portion count.
func (s RecipeSelection) Totals() nutrition.Macros {
	return s.PerPortion.Scale(s.Portions)
}

// mealSource is the closed set of meal content variants. Exactly one variant
// is held by a meal at any time; the two modes can never be populated at
// once.
type mealSource interface {
	mode() MealMode
	totals() nutrition.Macros
}

type ingredientSource struct {
	entries []IngredientEntry
}

func (s ingredientSource) mode() MealMode { return ModeIngredients }

func (s ingredientSource) totals() nutrition.Macros {
	var total nutrition.Macros
	for _, e := range s.entries {
		total = total.Add(e.Contribution())
	}
	return total
}

type recipeSource struct {
	selection RecipeSelection
}

func (s recipeSource) mode() MealMode { return ModeRecipe }

func (s recipeSource) totals() nutrition.Macros { return s.selection.Totals() }

// Meal is one entry of a day bucket. Totals are never stored; they are
// recomputed from the mode-specific source on every read so they cannot
// drift from the source data.
type Meal struct {
	id        uuid.UUID
	day       Weekday
	mealType  catalog.MealType
	timeOfDay string // "HH:MM", empty when unset
	note      string
	active    bool
	source    mealSource
}

// NewMeal creates an empty meal for the given day: ingredient mode with no
// entries, zero totals, active and visible to the client.
func NewMeal(day Weekday) Meal {
	return Meal{
		id:     uuid.New(),
		day:    day,
		active: true,
		source: ingredientSource{},
	}
}

// ID returns the meal's identity.
func (m Meal) ID() uuid.UUID { return m.id }

// Day returns the day bucket the meal belongs to.
func (m Meal) Day() Weekday { return m.day }

// MealType returns the breakfast/lunch/dinner/snack label.
func (m Meal) MealType() catalog.MealType { return m.mealType }

// TimeOfDay returns the optional time-of-day label.
func (m Meal) TimeOfDay() string { return m.timeOfDay }

// Note returns the optional free-text note.
func (m Meal) Note() string { return m.note }

// Active reports whether the meal is visible to the client and counted in
// day totals.
func (m Meal) Active() bool { return m.active }

// Mode returns the meal's content mode.
func (m Meal) Mode() MealMode { return m.source.mode() }

// Totals recomputes the meal's macro totals from its source data.
func (m Meal) Totals() nutrition.Macros { return m.source.totals() }

// Recipe returns the recipe selection when the meal is in recipe mode.
func (m Meal) Recipe() (RecipeSelection, bool) {
	rs, ok := m.source.(recipeSource)
	if !ok {
		return RecipeSelection{}, false
	}
	return rs.selection, true
}

// Entries returns a copy of the ingredient list. Empty in recipe mode.
func (m Meal) Entries() []IngredientEntry {
	is, ok := m.source.(ingredientSource)
	if !ok {
		return nil
	}
	return slices.Clone(is.entries)
}

// SwitchMode toggles between ingredient and recipe mode. Leaving a mode
// discards its data and resets totals to zero; switching to the mode the
// meal is already in is a no-op, making the transition idempotent.
func (m Meal) SwitchMode(toRecipe bool) Meal {
	if toRecipe {
		if m.Mode() == ModeRecipe {
			return m
		}
		m.source = recipeSource{}
		return m
	}
	if m.Mode() == ModeIngredients {
		return m
	}
	m.source = ingredientSource{}
	return m
}

// WithRecipe puts the meal in recipe mode pinned to the given recipe. The
// portion count carries over from an existing selection and defaults to 1.
func (m Meal) WithRecipe(recipeID uuid.UUID, perPortion nutrition.Macros) Meal {
	portions := 1.0
	if rs, ok := m.source.(recipeSource); ok && rs.selection.Portions >= 0.5 {
		portions = rs.selection.Portions
	}
	m.source = recipeSource{selection: RecipeSelection{
		RecipeID:   recipeID,
		Portions:   portions,
		PerPortion: perPortion,
	}}
	return m
}

// WithPortions sets the portion count of a recipe meal. Portions must be at
// least 0.5 and fall on a 0.5 step.
func (m Meal) WithPortions(portions float64) (Meal, error) {
	rs, ok := m.source.(recipeSource)
	if !ok {
		return m, ErrWrongMode
	}
	if err := validatePortions(portions); err != nil {
		return m, err
	}
	rs.selection.Portions = portions
	m.source = rs
	return m, nil
}

// AddEntry appends an ingredient line to an ingredient meal.
func (m Meal) AddEntry(entry IngredientEntry) (Meal, error) {
	is, ok := m.source.(ingredientSource)
	if !ok {
		return m, ErrWrongMode
	}
	if entry.Grams <= 0 {
		return m, ErrGramsNotPositive
	}
	entries := slices.Clone(is.entries)
	m.source = ingredientSource{entries: append(entries, entry)}
	return m, nil
}

// UpdateEntryGrams changes the quantity of one ingredient line.
func (m Meal) UpdateEntryGrams(index int, grams float64) (Meal, error) {
	is, ok := m.source.(ingredientSource)
	if !ok {
		return m, ErrWrongMode
	}
	if index < 0 || index >= len(is.entries) {
		return m, ErrEntryIndex
	}
	if grams <= 0 {
		return m, ErrGramsNotPositive
	}
	entries := slices.Clone(is.entries)
	entries[index].Grams = grams
	m.source = ingredientSource{entries: entries}
	return m, nil
}

// RemoveEntry drops one ingredient line.
func (m Meal) RemoveEntry(index int) (Meal, error) {
	is, ok := m.source.(ingredientSource)
	if !ok {
		return m, ErrWrongMode
	}
	if index < 0 || index >= len(is.entries) {
		return m, ErrEntryIndex
	}
	entries := slices.Delete(slices.Clone(is.entries), index, index+1)
	m.source = ingredientSource{entries: entries}
	return m, nil
}

// WithActive sets the visibility flag. Inactive meals are hidden from the
// client and excluded from day totals.
func (m Meal) WithActive(active bool) Meal {
	m.active = active
	return m
}

// WithTimeOfDay sets the optional time-of-day label.
func (m Meal) WithTimeOfDay(timeOfDay string) Meal {
	m.timeOfDay = timeOfDay
	return m
}

// WithNote sets the optional free-text note.
func (m Meal) WithNote(note string) Meal {
	m.note = note
	return m
}

// WithMealType sets the breakfast/lunch/dinner/snack label.
func (m Meal) WithMealType(t catalog.MealType) Meal {
	m.mealType = t
	return m
}

// cloneFor produces a deep copy of the meal assigned to the given day under
// a freshly generated identity. Used by CopyDay so edits to either copy
// never reach the other.
func (m Meal) cloneFor(day Weekday) Meal {
	m.id = uuid.New()
	m.day = day
	if is, ok := m.source.(ingredientSource); ok {
		m.source = ingredientSource{entries: slices.Clone(is.entries)}
	}
	return m
}

// withDay reassigns the meal to another day bucket, keeping its identity.
func (m Meal) withDay(day Weekday) Meal {
	m.day = day
	return m
}

func validatePortions(portions float64) error {
	if portions < 0.5 {
		return ErrPortionTooSmall
	}
	steps := portions * 2
	if math.Abs(steps-math.Round(steps)) > 1e-9 {
		return ErrPortionStep
	}
	return nil
}

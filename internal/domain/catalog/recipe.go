package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/menuforge/v1/internal/domain/nutrition"
)

// RecipeStatus is the lifecycle state of a recipe.
type RecipeStatus string

const (
	RecipeStatusDraft     RecipeStatus = "draft"
	RecipeStatusPublished RecipeStatus = "published"
)

// MealType labels the slot a recipe or meal is intended for.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// RecipeIngredient is one line of a recipe's ingredient breakdown, with the
// macro contribution the catalog derived from the quantity.
type RecipeIngredient struct {
	FoodID uuid.UUID
	Grams  float64
	Macros nutrition.Macros
}

// Recipe is a reference recipe record. Only published recipes may be
// selected when composing a meal.
type Recipe struct {
	ID          uuid.UUID
	Name        string
	MealType    MealType
	Status      RecipeStatus
	PrepTime    time.Duration
	Portions    int // canonical portion count the totals were computed for
	Total       nutrition.Macros
	PerPortion  nutrition.Macros
	Ingredients []RecipeIngredient
	Tags        []string
}

// IsPublished reports whether the recipe may be selected for a meal.
func (r Recipe) IsPublished() bool {
	return r.Status == RecipeStatusPublished
}

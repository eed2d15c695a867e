// Package catalog defines the read-only reference records the planning
// engine consumes: foods, recipes, dietary restrictions and substitution
// rules. The records are owned by the external data service; the engine only
// reads them and references them by identity.
package catalog

import (
	"github.com/google/uuid"

	"github.com/menuforge/v1/internal/domain/nutrition"
)

// FoodCategory classifies a food for restriction matching. Categories come
// from the external catalog; the constants below cover the common set used
// in fixtures and tests.
type FoodCategory string

const (
	CategoryMeat      FoodCategory = "meat"
	CategoryFish      FoodCategory = "fish"
	CategoryDairy     FoodCategory = "dairy"
	CategoryEgg       FoodCategory = "egg"
	CategoryLegume    FoodCategory = "legume"
	CategoryGrain     FoodCategory = "grain"
	CategoryVegetable FoodCategory = "vegetable"
	CategoryFruit     FoodCategory = "fruit"
)

// FoodOrigin records how a food entered the catalog.
type FoodOrigin string

const (
	// FoodOriginManual marks a food entered by hand.
	FoodOriginManual FoodOrigin = "manual"
	// FoodOriginImported marks a food imported from an external nutrition
	// database.
	FoodOriginImported FoodOrigin = "imported"
)

// Food is a reference food record with macro values per 100 g. Immutable
// once fetched.
type Food struct {
	ID       uuid.UUID
	Name     string
	Category FoodCategory
	Origin   FoodOrigin
	Per100   nutrition.Macros
	Fiber    float64 // grams per 100 g, zero when unknown
	Tags     []string
}

// MacrosFor returns the macro contribution of the given quantity of this
// food in grams.
func (f Food) MacrosFor(grams float64) nutrition.Macros {
	return f.Per100.ForGrams(grams)
}

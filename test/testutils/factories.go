// Package testutils provides test data factories for consistent test data
// generation
package testutils

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/menuforge/v1/internal/domain/catalog"
	"github.com/menuforge/v1/internal/domain/nutrition"
)

// CatalogFactory provides methods to create catalog test records
type CatalogFactory struct {
	faker *gofakeit.Faker
}

// NewCatalogFactory creates a new catalog factory with seeded faker
func NewCatalogFactory(seed int64) *CatalogFactory {
	return &CatalogFactory{faker: gofakeit.New(seed)}
}

// Food creates a random imported food record in the given category.
func (f *CatalogFactory) Food(category catalog.FoodCategory) catalog.Food {
	return catalog.Food{
		ID:       uuid.New(),
		Name:     f.faker.Lunch(),
		Category: category,
		Origin:   catalog.FoodOriginImported,
		Per100: nutrition.Macros{
			Calories: f.faker.Float64Range(20, 600),
			Protein:  f.faker.Float64Range(0, 40),
			Carbs:    f.faker.Float64Range(0, 80),
			Fat:      f.faker.Float64Range(0, 50),
		},
		Fiber: f.faker.Float64Range(0, 12),
	}
}

// FoodWithMacros creates a named manual food with exact per-100 g values.
func (f *CatalogFactory) FoodWithMacros(name string, category catalog.FoodCategory, per100 nutrition.Macros) catalog.Food {
	return catalog.Food{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Origin:   catalog.FoodOriginManual,
		Per100:   per100,
	}
}

// PublishedRecipe creates a published recipe with exact per-portion values.
func (f *CatalogFactory) PublishedRecipe(name string, portions int, perPortion nutrition.Macros) catalog.Recipe {
	return catalog.Recipe{
		ID:         uuid.New(),
		Name:       name,
		MealType:   catalog.MealTypeLunch,
		Status:     catalog.RecipeStatusPublished,
		Portions:   portions,
		PerPortion: perPortion,
		Total:      perPortion.Scale(float64(portions)),
	}
}

// DraftRecipe creates a recipe still in draft state.
func (f *CatalogFactory) DraftRecipe(name string) catalog.Recipe {
	r := f.PublishedRecipe(name, 2, nutrition.Macros{
		Calories: f.faker.Float64Range(100, 900),
		Protein:  f.faker.Float64Range(5, 60),
		Carbs:    f.faker.Float64Range(5, 120),
		Fat:      f.faker.Float64Range(2, 60),
	})
	r.Status = catalog.RecipeStatusDraft
	return r
}

// Restriction creates an active restriction with the given code.
func (f *CatalogFactory) Restriction(code string, excluded ...catalog.FoodCategory) catalog.Restriction {
	return catalog.Restriction{
		ID:       uuid.New(),
		Name:     f.faker.Word(),
		Code:     code,
		Excluded: excluded,
		Active:   true,
	}
}

// Rule creates an active substitution rule.
func (f *CatalogFactory) Rule(origin, substitute uuid.UUID, factor float64, scope catalog.RuleScope) catalog.SubstitutionRule {
	return catalog.SubstitutionRule{
		ID:               uuid.New(),
		OriginFoodID:     origin,
		SubstituteFoodID: substitute,
		Factor:           factor,
		Scope:            scope,
		Active:           true,
	}
}

// Package planner provides the application layer for weekly menu
// composition. It implements the use cases defined in the inbound ports on
// top of the injected read-only catalogs.
package planner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/menuforge/v1/internal/domain/catalog"
	"github.com/menuforge/v1/internal/domain/planning"
	"github.com/menuforge/v1/internal/ports/inbound"
	"github.com/menuforge/v1/internal/ports/outbound"
	apperrors "github.com/menuforge/v1/pkg/errors"
)

// MealComposer implements the meal composition use cases. All operations
// are pure: the same inputs produce the same output, and nothing besides
// the supplied catalogs is consulted.
type MealComposer struct {
	foods   outbound.FoodCatalog
	recipes outbound.RecipeCatalog
	logger  *zap.Logger
}

// NewMealComposer creates a new meal composer
func NewMealComposer(
	foods outbound.FoodCatalog,
	recipes outbound.RecipeCatalog,
	logger *zap.Logger,
) inbound.MealComposer {
	return &MealComposer{
		foods:   foods,
		recipes: recipes,
		logger:  logger.Named("meal-composer"),
	}
}

// CreateEmptyMeal produces a meal in ingredient mode with no entries and
// zero totals.
func (c *MealComposer) CreateEmptyMeal(day planning.Weekday) planning.Meal {
	meal := planning.NewMeal(day)
	c.logger.Debug("Meal created",
		zap.String("meal_id", meal.ID().String()),
		zap.String("day", day.String()),
	)
	return meal
}

// SwitchMode toggles the meal between ingredient and recipe mode. The data
// of the mode being left is discarded.
func (c *MealComposer) SwitchMode(meal planning.Meal, toRecipe bool) planning.Meal {
	return meal.SwitchMode(toRecipe)
}

// SelectRecipe pins the meal to a published recipe. The portion count
// carries over from an existing selection and defaults to 1.
func (c *MealComposer) SelectRecipe(ctx context.Context, meal planning.Meal, recipeID uuid.UUID) (planning.Meal, error) {
	rec, err := c.recipes.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, catalog.ErrRecipeNotFound) {
			return meal, apperrors.NewNotFoundError("recipe").
				WithCause(err).
				WithMetadata("recipe_id", recipeID.String())
		}
		return meal, apperrors.Wrap(err, "look up recipe")
	}

	if !rec.IsPublished() {
		return meal, apperrors.NewInvalidStateError("only published recipes can be selected").
			WithCause(catalog.ErrRecipeNotPublished).
			WithMetadata("recipe_id", recipeID.String()).
			WithMetadata("status", string(rec.Status))
	}

	updated := meal.WithRecipe(rec.ID, rec.PerPortion)

	c.logger.Info("Recipe selected",
		zap.String("meal_id", meal.ID().String()),
		zap.String("recipe_id", rec.ID.String()),
		zap.String("recipe", rec.Name),
	)

	return updated, nil
}

// SetPortions changes the portion count of a recipe meal and recomputes
// totals proportionally.
func (c *MealComposer) SetPortions(meal planning.Meal, portions float64) (planning.Meal, error) {
	updated, err := meal.WithPortions(portions)
	if err != nil {
		return meal, mapDomainErr(err)
	}
	return updated, nil
}

// AddIngredient appends a gram-scaled food line to an ingredient meal, with
// the macro contribution derived from the food's per-100 g values.
func (c *MealComposer) AddIngredient(ctx context.Context, meal planning.Meal, foodID uuid.UUID, grams float64) (planning.Meal, error) {
	if grams <= 0 {
		return meal, mapDomainErr(planning.ErrGramsNotPositive)
	}

	food, err := c.foods.FindByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, catalog.ErrFoodNotFound) {
			return meal, apperrors.NewNotFoundError("food").
				WithCause(err).
				WithMetadata("food_id", foodID.String())
		}
		return meal, apperrors.Wrap(err, "look up food")
	}

	updated, err := meal.AddEntry(planning.IngredientEntry{
		FoodID: food.ID,
		Grams:  grams,
		Per100: food.Per100,
	})
	if err != nil {
		return meal, mapDomainErr(err)
	}

	c.logger.Info("Ingredient added",
		zap.String("meal_id", meal.ID().String()),
		zap.String("food", food.Name),
		zap.Float64("grams", grams),
	)

	return updated, nil
}

// UpdateIngredientQuantity changes the quantity of one ingredient line and
// recomputes that entry's contribution and the meal totals.
func (c *MealComposer) UpdateIngredientQuantity(meal planning.Meal, index int, grams float64) (planning.Meal, error) {
	updated, err := meal.UpdateEntryGrams(index, grams)
	if err != nil {
		return meal, mapDomainErr(err)
	}
	return updated, nil
}

// RemoveIngredient drops one ingredient line and recomputes totals.
func (c *MealComposer) RemoveIngredient(meal planning.Meal, index int) (planning.Meal, error) {
	updated, err := meal.RemoveEntry(index)
	if err != nil {
		return meal, mapDomainErr(err)
	}
	return updated, nil
}

// SetActive flips the meal's visibility flag. Totals are unaffected.
func (c *MealComposer) SetActive(meal planning.Meal, active bool) planning.Meal {
	return meal.WithActive(active)
}

// SetTimeOfDay sets the optional time-of-day label.
func (c *MealComposer) SetTimeOfDay(meal planning.Meal, timeOfDay string) planning.Meal {
	return meal.WithTimeOfDay(timeOfDay)
}

// SetNote sets the optional free-text note.
func (c *MealComposer) SetNote(meal planning.Meal, note string) planning.Meal {
	return meal.WithNote(note)
}

// SetMealType sets the breakfast/lunch/dinner/snack label.
func (c *MealComposer) SetMealType(meal planning.Meal, mealType catalog.MealType) planning.Meal {
	return meal.WithMealType(mealType)
}

// mapDomainErr translates planning domain sentinels into coded application
// errors.
func mapDomainErr(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, planning.ErrWrongMode):
		return apperrors.NewInvalidStateError(err.Error()).WithCause(err)
	case errors.Is(err, planning.ErrEntryIndex):
		return apperrors.NewOutOfRangeError(err.Error()).WithCause(err)
	case errors.Is(err, planning.ErrMealNotFound):
		return apperrors.NewNotFoundError("meal").WithCause(err)
	case errors.Is(err, planning.ErrGramsNotPositive),
		errors.Is(err, planning.ErrPortionTooSmall),
		errors.Is(err, planning.ErrPortionStep),
		errors.Is(err, planning.ErrSameDayCopy),
		errors.Is(err, planning.ErrInvalidWeekday):
		return apperrors.NewValidationError(err.Error()).WithCause(err)
	default:
		return apperrors.Wrap(err, "planning operation failed")
	}
}

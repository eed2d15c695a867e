// Package inbound defines the interfaces for inbound ports (primary/driving
// adapters): the in-process call surface the surrounding dashboard uses to
// compose weekly menus. Every operation is synchronous and pure; a failed
// operation returns the error next to the original, unchanged value.
package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/menuforge/v1/internal/domain/catalog"
	"github.com/menuforge/v1/internal/domain/nutrition"
	"github.com/menuforge/v1/internal/domain/planning"
)

// MealComposer builds and edits one meal at a time. Operations never mutate
// the given meal; they return a new meal value with recomputed totals, or
// the original value alongside the error.
type MealComposer interface {
	CreateEmptyMeal(day planning.Weekday) planning.Meal
	SwitchMode(meal planning.Meal, toRecipe bool) planning.Meal
	SelectRecipe(ctx context.Context, meal planning.Meal, recipeID uuid.UUID) (planning.Meal, error)
	SetPortions(meal planning.Meal, portions float64) (planning.Meal, error)
	AddIngredient(ctx context.Context, meal planning.Meal, foodID uuid.UUID, grams float64) (planning.Meal, error)
	UpdateIngredientQuantity(meal planning.Meal, index int, grams float64) (planning.Meal, error)
	RemoveIngredient(meal planning.Meal, index int) (planning.Meal, error)
	SetActive(meal planning.Meal, active bool) planning.Meal
	SetTimeOfDay(meal planning.Meal, timeOfDay string) planning.Meal
	SetNote(meal planning.Meal, note string) planning.Meal
	SetMealType(meal planning.Meal, mealType catalog.MealType) planning.Meal
}

// CreatePlanCommand contains the data for starting a planning session.
type CreatePlanCommand struct {
	Name         string             `validate:"required,min=1,max=200"`
	Objective    planning.Objective `validate:"required,oneof=maintenance deficit surplus"`
	Restrictions []string
	ClientID     *uuid.UUID
}

// WeekReport is the weekly aggregate view of a plan.
type WeekReport struct {
	Days             [planning.DaysPerWeek]nutrition.Macros
	Week             nutrition.Macros
	IncludesInactive bool
}

// PlanService owns the weekly plan lifecycle: creation, meal slotting, day
// copies and the read-side aggregates. Plan snapshots are passed in and new
// snapshots are returned; the service holds no plan state of its own.
type PlanService interface {
	CreatePlan(ctx context.Context, cmd CreatePlanCommand) (planning.WeeklyPlan, error)
	SetRestrictions(ctx context.Context, plan planning.WeeklyPlan, codes []string) (planning.WeeklyPlan, error)

	AddMeal(plan planning.WeeklyPlan, meal planning.Meal) (planning.WeeklyPlan, error)
	ReplaceMeal(plan planning.WeeklyPlan, meal planning.Meal) (planning.WeeklyPlan, error)
	RemoveMeal(plan planning.WeeklyPlan, mealID uuid.UUID) (planning.WeeklyPlan, error)
	MoveMeal(plan planning.WeeklyPlan, mealID uuid.UUID, to planning.Weekday) (planning.WeeklyPlan, error)
	CopyDay(plan planning.WeeklyPlan, from, to planning.Weekday) (planning.WeeklyPlan, error)

	DayTotals(plan planning.WeeklyPlan, day planning.Weekday) nutrition.Macros
	WeekTotals(plan planning.WeeklyPlan) [planning.DaysPerWeek]nutrition.Macros
	WeekReport(plan planning.WeeklyPlan) WeekReport

	// CheckConsistency verifies every food and recipe identity the plan
	// references still resolves against the supplied catalogs.
	CheckConsistency(ctx context.Context, plan planning.WeeklyPlan) error
}

// ResolutionScope states which rule partition a resolution was selected
// from.
type ResolutionScope string

const (
	// ResolutionScopeRestriction means diet-safety rules matched one of the
	// plan's active restriction codes.
	ResolutionScopeRestriction ResolutionScope = "restriction"
	// ResolutionScopeVariety means only restriction-independent variety
	// rules matched.
	ResolutionScopeVariety ResolutionScope = "variety"
	// ResolutionScopeNone means no substitution is available. This is a
	// normal outcome, not a lookup failure.
	ResolutionScopeNone ResolutionScope = "none"
)

// Resolution is the outcome of resolving one food against the active
// restriction set. When more than one restriction-scoped rule matches, all
// of them are returned and the tie-break is left to the caller: choosing
// between diet-safety substitutions is a clinical decision the engine must
// never make silently.
type Resolution struct {
	FoodID uuid.UUID
	Scope  ResolutionScope
	Rules  []catalog.SubstitutionRule
}

// Available reports whether any rule matched.
func (r Resolution) Available() bool {
	return r.Scope != ResolutionScopeNone
}

// Proposal pairs one ingredient line of a meal with its resolution.
type Proposal struct {
	EntryIndex int
	FoodID     uuid.UUID
	Grams      float64
	Resolution Resolution
}

// SubstitutionResolver finds the substitution rules that should replace a
// food under a set of active restrictions, and computes replacement
// quantities. It proposes replacements; it never applies them to a plan.
type SubstitutionResolver interface {
	Resolve(ctx context.Context, activeRestrictions []string, foodID uuid.UUID) (Resolution, error)
	Apply(rule catalog.SubstitutionRule, originalGrams float64) (uuid.UUID, float64, error)
	ProposeForMeal(ctx context.Context, activeRestrictions []string, meal planning.Meal) ([]Proposal, error)
}

package planner

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/menuforge/v1/internal/domain/catalog"
	"github.com/menuforge/v1/internal/domain/nutrition"
	"github.com/menuforge/v1/internal/domain/planning"
	"github.com/menuforge/v1/internal/ports/inbound"
	"github.com/menuforge/v1/internal/ports/outbound"
	apperrors "github.com/menuforge/v1/pkg/errors"
)

// Options tunes plan-level behavior.
type Options struct {
	// IncludeInactiveInWeekReport counts inactive meals in the weekly
	// aggregate. The single-day view always excludes them.
	IncludeInactiveInWeekReport bool
}

// PlanService implements the weekly plan lifecycle use cases. It holds no
// plan state: snapshots are passed in and new snapshots are returned, so a
// single editing session owns the only live reference at any time.
type PlanService struct {
	foods    outbound.FoodCatalog
	recipes  outbound.RecipeCatalog
	registry outbound.RestrictionRegistry
	validate *validator.Validate
	opts     Options
	logger   *zap.Logger
}

// NewPlanService creates a new plan service
func NewPlanService(
	foods outbound.FoodCatalog,
	recipes outbound.RecipeCatalog,
	registry outbound.RestrictionRegistry,
	opts Options,
	logger *zap.Logger,
) inbound.PlanService {
	return &PlanService{
		foods:    foods,
		recipes:  recipes,
		registry: registry,
		validate: validator.New(),
		opts:     opts,
		logger:   logger.Named("plan-service"),
	}
}

// CreatePlan starts a planning session with an empty seven-bucket plan.
func (s *PlanService) CreatePlan(ctx context.Context, cmd inbound.CreatePlanCommand) (planning.WeeklyPlan, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return planning.WeeklyPlan{}, apperrors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.checkRestrictionCodes(ctx, cmd.Restrictions); err != nil {
		return planning.WeeklyPlan{}, err
	}

	plan := planning.NewWeeklyPlan(cmd.Name, cmd.Objective).WithRestrictions(cmd.Restrictions)
	if cmd.ClientID != nil {
		plan = plan.WithClient(*cmd.ClientID)
	}

	s.logger.Info("Plan created",
		zap.String("plan_id", plan.ID().String()),
		zap.String("name", plan.Name()),
		zap.String("objective", string(plan.Objective())),
		zap.Strings("restrictions", plan.ActiveRestrictions()),
	)

	return plan, nil
}

// SetRestrictions replaces the plan's active restriction set after checking
// every code against the registry.
func (s *PlanService) SetRestrictions(ctx context.Context, plan planning.WeeklyPlan, codes []string) (planning.WeeklyPlan, error) {
	if err := s.checkRestrictionCodes(ctx, codes); err != nil {
		return plan, err
	}
	return plan.WithRestrictions(codes), nil
}

// AddMeal slots a composed meal into its day bucket.
func (s *PlanService) AddMeal(plan planning.WeeklyPlan, meal planning.Meal) (planning.WeeklyPlan, error) {
	updated, err := plan.AddMeal(meal)
	if err != nil {
		return plan, mapDomainErr(err)
	}
	s.logger.Debug("Meal added to plan",
		zap.String("plan_id", plan.ID().String()),
		zap.String("meal_id", meal.ID().String()),
		zap.String("day", meal.Day().String()),
	)
	return updated, nil
}

// ReplaceMeal writes an edited meal back into the plan's arena.
func (s *PlanService) ReplaceMeal(plan planning.WeeklyPlan, meal planning.Meal) (planning.WeeklyPlan, error) {
	updated, err := plan.ReplaceMeal(meal)
	if err != nil {
		return plan, mapDomainErr(err)
	}
	return updated, nil
}

// RemoveMeal drops a meal from its day bucket and from the arena.
func (s *PlanService) RemoveMeal(plan planning.WeeklyPlan, mealID uuid.UUID) (planning.WeeklyPlan, error) {
	updated, err := plan.RemoveMeal(mealID)
	if err != nil {
		return plan, mapDomainErr(err)
	}
	return updated, nil
}

// MoveMeal reslots a meal into another day bucket.
func (s *PlanService) MoveMeal(plan planning.WeeklyPlan, mealID uuid.UUID, to planning.Weekday) (planning.WeeklyPlan, error) {
	updated, err := plan.MoveMeal(mealID, to)
	if err != nil {
		return plan, mapDomainErr(err)
	}
	return updated, nil
}

// CopyDay replaces the target day's meals with deep copies of the source
// day's meals under fresh identities.
func (s *PlanService) CopyDay(plan planning.WeeklyPlan, from, to planning.Weekday) (planning.WeeklyPlan, error) {
	updated, err := plan.CopyDay(from, to)
	if err != nil {
		return plan, mapDomainErr(err)
	}

	s.logger.Info("Day copied",
		zap.String("plan_id", plan.ID().String()),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.Int("meals", len(updated.DayMealIDs(to))),
	)

	return updated, nil
}

// DayTotals returns the active-meal totals of one day bucket.
func (s *PlanService) DayTotals(plan planning.WeeklyPlan, day planning.Weekday) nutrition.Macros {
	return plan.DayTotals(day)
}

// WeekTotals returns per-day active-meal totals, Monday first.
func (s *PlanService) WeekTotals(plan planning.WeeklyPlan) [planning.DaysPerWeek]nutrition.Macros {
	return plan.WeekTotals()
}

// WeekReport builds the weekly aggregate. Whether inactive meals count is
// governed by configuration; the day view rule (active only) is the
// default.
func (s *PlanService) WeekReport(plan planning.WeeklyPlan) inbound.WeekReport {
	report := inbound.WeekReport{IncludesInactive: s.opts.IncludeInactiveInWeekReport}
	for day := planning.Monday; day <= planning.Sunday; day++ {
		meals := plan.MealsForDay(day)
		if report.IncludesInactive {
			report.Days[day] = planning.SumTotals(meals)
		} else {
			report.Days[day] = planning.SumActive(meals)
		}
		report.Week = report.Week.Add(report.Days[day])
	}
	return report
}

// CheckConsistency verifies every food and recipe identity the plan
// references resolves against the supplied catalogs.
func (s *PlanService) CheckConsistency(ctx context.Context, plan planning.WeeklyPlan) error {
	for _, meal := range plan.Meals() {
		switch meal.Mode() {
		case planning.ModeRecipe:
			sel, _ := meal.Recipe()
			if _, err := s.recipes.FindByID(ctx, sel.RecipeID); err != nil {
				if errors.Is(err, catalog.ErrRecipeNotFound) {
					return apperrors.NewNotFoundError("recipe").
						WithCause(err).
						WithMetadata("meal_id", meal.ID().String()).
						WithMetadata("recipe_id", sel.RecipeID.String())
				}
				return apperrors.Wrap(err, "look up recipe")
			}
		case planning.ModeIngredients:
			for _, entry := range meal.Entries() {
				if _, err := s.foods.FindByID(ctx, entry.FoodID); err != nil {
					if errors.Is(err, catalog.ErrFoodNotFound) {
						return apperrors.NewNotFoundError("food").
							WithCause(err).
							WithMetadata("meal_id", meal.ID().String()).
							WithMetadata("food_id", entry.FoodID.String())
					}
					return apperrors.Wrap(err, "look up food")
				}
			}
		}
	}
	return nil
}

// checkRestrictionCodes rejects codes that do not name an active
// restriction in the registry.
func (s *PlanService) checkRestrictionCodes(ctx context.Context, codes []string) error {
	if len(codes) == 0 {
		return nil
	}

	restrictions, err := s.registry.List(ctx)
	if err != nil {
		return apperrors.Wrap(err, "list restrictions")
	}

	known := make(map[string]struct{}, len(restrictions))
	for _, r := range restrictions {
		if r.Active {
			known[r.Code] = struct{}{}
		}
	}

	for _, code := range codes {
		if _, ok := known[code]; !ok {
			return apperrors.NewValidationError("unknown restriction code").
				WithMetadata("code", code)
		}
	}

	return nil
}

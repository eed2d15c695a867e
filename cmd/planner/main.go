// Package main runs a sample weekly menu composition session against
// in-memory catalogs. It wires the engine the way the surrounding dashboard
// would: catalogs fetched up front, services injected, one editing session
// owning the plan snapshot.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/menuforge/v1/internal/application/planner"
	"github.com/menuforge/v1/internal/application/substitution"
	"github.com/menuforge/v1/internal/domain/catalog"
	"github.com/menuforge/v1/internal/domain/nutrition"
	"github.com/menuforge/v1/internal/domain/planning"
	"github.com/menuforge/v1/internal/infrastructure/config"
	"github.com/menuforge/v1/internal/infrastructure/persistence/memory"
	"github.com/menuforge/v1/internal/ports/inbound"
	"github.com/menuforge/v1/internal/ports/outbound"
	"github.com/menuforge/v1/pkg/logger"
)

func main() {
	app := fx.New(
		fx.NopLogger, // Use our own logger instead of Fx's
		fx.Provide(
			newConfig,
			newLogger,
			newFixtures,
			func(f *fixtures) outbound.FoodCatalog { return f.foods },
			func(f *fixtures) outbound.RecipeCatalog { return f.recipes },
			func(f *fixtures) outbound.RestrictionRegistry { return f.restrictions },
			func(f *fixtures) outbound.SubstitutionRuleSet { return f.rules },
			func(cfg *config.Config) planner.Options {
				return planner.Options{IncludeInactiveInWeekReport: cfg.Planner.IncludeInactiveInWeekReport}
			},
			planner.NewMealComposer,
			planner.NewPlanService,
			substitution.NewResolver,
		),
		fx.Invoke(runSession),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start planner: %v", err)
	}
	if err := app.Stop(ctx); err != nil {
		log.Fatalf("Failed to stop planner: %v", err)
	}
}

func newID() uuid.UUID {
	return uuid.New()
}

func newConfig() (*config.Config, error) {
	return config.Load("")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.IsDevelopment(),
	})
}

// fixtures is the demo stand-in for the external data service.
type fixtures struct {
	foods        *memory.FoodCatalog
	recipes      *memory.RecipeCatalog
	restrictions *memory.RestrictionRegistry
	rules        *memory.SubstitutionRuleSet

	chicken catalog.Food
	lentils catalog.Food
	rice    catalog.Food
	caesar  catalog.Recipe
}

func newFixtures() *fixtures {
	f := &fixtures{}

	f.chicken = catalog.Food{
		ID:       newID(),
		Name:     "Chicken breast",
		Category: catalog.CategoryMeat,
		Origin:   catalog.FoodOriginImported,
		Per100:   nutrition.Macros{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	}
	f.lentils = catalog.Food{
		ID:       newID(),
		Name:     "Cooked lentils",
		Category: catalog.CategoryLegume,
		Origin:   catalog.FoodOriginImported,
		Per100:   nutrition.Macros{Calories: 116, Protein: 9, Carbs: 20, Fat: 0.4},
	}
	f.rice = catalog.Food{
		ID:       newID(),
		Name:     "Cooked rice",
		Category: catalog.CategoryGrain,
		Origin:   catalog.FoodOriginManual,
		Per100:   nutrition.Macros{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3},
	}
	f.caesar = catalog.Recipe{
		ID:         newID(),
		Name:       "Caesar salad",
		MealType:   catalog.MealTypeLunch,
		Status:     catalog.RecipeStatusPublished,
		Portions:   4,
		PerPortion: nutrition.Macros{Calories: 350, Protein: 15, Carbs: 12, Fat: 26},
		Total:      nutrition.Macros{Calories: 1400, Protein: 60, Carbs: 48, Fat: 104},
	}

	vegan := catalog.Restriction{
		ID:       newID(),
		Name:     "Vegan",
		Code:     "vegan",
		Excluded: []catalog.FoodCategory{catalog.CategoryMeat, catalog.CategoryFish, catalog.CategoryDairy, catalog.CategoryEgg},
		Active:   true,
	}

	chickenToLentils := catalog.SubstitutionRule{
		ID:               newID(),
		OriginFoodID:     f.chicken.ID,
		SubstituteFoodID: f.lentils.ID,
		Factor:           1.5,
		Scope:            catalog.RuleScope("vegan"),
		Active:           true,
	}

	f.foods = memory.NewFoodCatalog(f.chicken, f.lentils, f.rice)
	f.recipes = memory.NewRecipeCatalog(f.caesar)
	f.restrictions = memory.NewRestrictionRegistry(vegan)
	f.rules = memory.NewSubstitutionRuleSet(chickenToLentils)

	return f
}

func runSession(
	zlog *zap.Logger,
	f *fixtures,
	composer inbound.MealComposer,
	plans inbound.PlanService,
	resolver inbound.SubstitutionResolver,
) error {
	ctx := context.Background()

	plan, err := plans.CreatePlan(ctx, inbound.CreatePlanCommand{
		Name:         "Cut week 1",
		Objective:    planning.ObjectiveDeficit,
		Restrictions: []string{"vegan"},
	})
	if err != nil {
		return err
	}

	lunch := composer.CreateEmptyMeal(planning.Monday)
	lunch = composer.SetMealType(lunch, catalog.MealTypeLunch)
	lunch, err = composer.AddIngredient(ctx, lunch, f.chicken.ID, 150)
	if err != nil {
		return err
	}
	lunch, err = composer.AddIngredient(ctx, lunch, f.rice.ID, 200)
	if err != nil {
		return err
	}
	plan, err = plans.AddMeal(plan, lunch)
	if err != nil {
		return err
	}

	dinner := composer.CreateEmptyMeal(planning.Monday)
	dinner = composer.SwitchMode(dinner, true)
	dinner, err = composer.SelectRecipe(ctx, dinner, f.caesar.ID)
	if err != nil {
		return err
	}
	dinner, err = composer.SetPortions(dinner, 2)
	if err != nil {
		return err
	}
	plan, err = plans.AddMeal(plan, composer.SetMealType(dinner, catalog.MealTypeDinner))
	if err != nil {
		return err
	}

	plan, err = plans.CopyDay(plan, planning.Monday, planning.Wednesday)
	if err != nil {
		return err
	}

	monday := plans.DayTotals(plan, planning.Monday)
	zlog.Info("Monday totals",
		zap.Float64("kcal", monday.Calories),
		zap.Float64("protein_g", monday.Protein),
		zap.Float64("carbs_g", monday.Carbs),
		zap.Float64("fat_g", monday.Fat),
	)

	report := plans.WeekReport(plan)
	zlog.Info("Week report",
		zap.Float64("kcal", report.Week.Calories),
		zap.Bool("includes_inactive", report.IncludesInactive),
	)

	resolution, err := resolver.Resolve(ctx, plan.ActiveRestrictions(), f.chicken.ID)
	if err != nil {
		return err
	}
	if resolution.Available() {
		substitute, grams, err := resolver.Apply(resolution.Rules[0], 150)
		if err != nil {
			return err
		}
		zlog.Info("Substitution proposed",
			zap.String("origin", f.chicken.Name),
			zap.String("scope", string(resolution.Scope)),
			zap.String("substitute_id", substitute.String()),
			zap.Float64("grams", grams),
		)
	}

	return plans.CheckConsistency(ctx, plan)
}

package planning

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/menuforge/v1/internal/domain/nutrition"
)

// WeeklyPlanTestSuite provides a test suite for the WeeklyPlan aggregate
type WeeklyPlanTestSuite struct {
	suite.Suite
}

func (suite *WeeklyPlanTestSuite) mealWithCalories(day Weekday, calories float64) Meal {
	meal, err := NewMeal(day).AddEntry(IngredientEntry{
		FoodID: uuid.New(),
		Grams:  100,
		Per100: nutrition.Macros{Calories: calories},
	})
	require.NoError(suite.T(), err)
	return meal
}

func (suite *WeeklyPlanTestSuite) addMeal(plan WeeklyPlan, meal Meal) WeeklyPlan {
	updated, err := plan.AddMeal(meal)
	require.NoError(suite.T(), err)
	return updated
}

// TestPlanCreation tests the empty-plan invariants
func (suite *WeeklyPlanTestSuite) TestPlanCreation() {
	suite.Run("NewWeeklyPlan_ShouldStartEmpty", func() {
		// Act
		plan := NewWeeklyPlan("Cut week 1", ObjectiveDeficit)

		// Assert
		assert.NotEqual(suite.T(), uuid.Nil, plan.ID())
		assert.Equal(suite.T(), "Cut week 1", plan.Name())
		assert.Equal(suite.T(), ObjectiveDeficit, plan.Objective())
		assert.Zero(suite.T(), plan.MealCount())
		assert.Nil(suite.T(), plan.ClientID())
		for day := Monday; day <= Sunday; day++ {
			assert.Empty(suite.T(), plan.DayMealIDs(day))
			assert.True(suite.T(), plan.DayTotals(day).IsZero())
		}
	})

	suite.Run("WithRestrictions_ShouldDedupeAndSort", func() {
		plan := NewWeeklyPlan("Plan", ObjectiveMaintenance).
			WithRestrictions([]string{"vegan", "gluten-free", "vegan"})

		assert.Equal(suite.T(), []string{"gluten-free", "vegan"}, plan.ActiveRestrictions())
	})

	suite.Run("WithClient_ShouldReturnIndependentPointer", func() {
		clientID := uuid.New()
		plan := NewWeeklyPlan("Plan", ObjectiveMaintenance).WithClient(clientID)

		got := plan.ClientID()
		require.NotNil(suite.T(), got)
		assert.Equal(suite.T(), clientID, *got)

		*got = uuid.New()
		assert.Equal(suite.T(), clientID, *plan.ClientID())
	})
}

// TestMealSlotting tests add, replace, remove and move
func (suite *WeeklyPlanTestSuite) TestMealSlotting() {
	suite.Run("AddMeal_ShouldAppendToDayBucket", func() {
		// Arrange
		plan := NewWeeklyPlan("Plan", ObjectiveMaintenance)
		first := suite.mealWithCalories(Monday, 300)
		second := suite.mealWithCalories(Monday, 500)

		// Act
		plan = suite.addMeal(plan, first)
		plan = suite.addMeal(plan, second)

		// Assert
		assert.Equal(suite.T(), 2, plan.MealCount())
		assert.Equal(suite.T(), []uuid.UUID{first.ID(), second.ID()}, plan.DayMealIDs(Monday))
	})

	suite.Run("AddMeal_OwnedMeal_ShouldReplaceNotDuplicate", func() {
		// Arrange
		meal := suite.mealWithCalories(Monday, 300)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), meal)
		edited := meal.WithNote("edited")

		// Act
		plan = suite.addMeal(plan, edited)

		// Assert
		assert.Equal(suite.T(), 1, plan.MealCount())
		stored, ok := plan.Meal(meal.ID())
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), "edited", stored.Note())
	})

	suite.Run("AddMeal_InvalidDay_ShouldReturnInvalidWeekday", func() {
		// Arrange
		plan := NewWeeklyPlan("Plan", ObjectiveMaintenance)
		stray := NewMeal(Weekday(9))

		// Act
		updated, err := plan.AddMeal(stray)

		// Assert
		assert.ErrorIs(suite.T(), err, ErrInvalidWeekday)
		assert.Zero(suite.T(), updated.MealCount())
	})

	suite.Run("ReplaceMeal_UnknownMeal_ShouldReturnOriginal", func() {
		plan := NewWeeklyPlan("Plan", ObjectiveMaintenance)

		updated, err := plan.ReplaceMeal(suite.mealWithCalories(Monday, 300))

		assert.ErrorIs(suite.T(), err, ErrMealNotFound)
		assert.Zero(suite.T(), updated.MealCount())
	})

	suite.Run("ReplaceMeal_InvalidDay_ShouldReturnInvalidWeekday", func() {
		// Arrange
		meal := suite.mealWithCalories(Monday, 300)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), meal)

		// Act
		updated, err := plan.ReplaceMeal(meal.withDay(Weekday(-1)))

		// Assert
		assert.ErrorIs(suite.T(), err, ErrInvalidWeekday)
		assert.Equal(suite.T(), []uuid.UUID{meal.ID()}, updated.DayMealIDs(Monday))
	})

	suite.Run("RemoveMeal_ShouldDropBucketEntryAndArenaEntry", func() {
		// Arrange
		meal := suite.mealWithCalories(Tuesday, 400)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), meal)

		// Act
		plan, err := plan.RemoveMeal(meal.ID())

		// Assert
		require.NoError(suite.T(), err)
		assert.Zero(suite.T(), plan.MealCount())
		assert.Empty(suite.T(), plan.DayMealIDs(Tuesday))
		_, ok := plan.Meal(meal.ID())
		assert.False(suite.T(), ok)
	})

	suite.Run("RemoveMeal_UnknownMeal_ShouldReturnOriginal", func() {
		plan := NewWeeklyPlan("Plan", ObjectiveMaintenance)

		_, err := plan.RemoveMeal(uuid.New())

		assert.ErrorIs(suite.T(), err, ErrMealNotFound)
	})

	suite.Run("MoveMeal_ShouldKeepIdentityAcrossBuckets", func() {
		// Arrange
		meal := suite.mealWithCalories(Monday, 400)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), meal)

		// Act
		plan, err := plan.MoveMeal(meal.ID(), Thursday)

		// Assert
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), plan.DayMealIDs(Monday))
		assert.Equal(suite.T(), []uuid.UUID{meal.ID()}, plan.DayMealIDs(Thursday))
		moved, ok := plan.Meal(meal.ID())
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), Thursday, moved.Day())
	})

	suite.Run("MoveMeal_SameDay_ShouldBeNoOp", func() {
		meal := suite.mealWithCalories(Monday, 400)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), meal)

		updated, err := plan.MoveMeal(meal.ID(), Monday)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), plan.DayMealIDs(Monday), updated.DayMealIDs(Monday))
	})

	suite.Run("MoveMeal_InvalidDay_ShouldReturnInvalidWeekday", func() {
		// Arrange
		meal := suite.mealWithCalories(Monday, 400)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), meal)

		// Act
		updated, err := plan.MoveMeal(meal.ID(), Weekday(7))

		// Assert
		assert.ErrorIs(suite.T(), err, ErrInvalidWeekday)
		assert.Equal(suite.T(), []uuid.UUID{meal.ID()}, updated.DayMealIDs(Monday))
	})
}

// TestCopyDay tests the day copy semantics
func (suite *WeeklyPlanTestSuite) TestCopyDay() {
	suite.Run("CopyDay_ShouldAssignFreshIdentities", func() {
		// Arrange
		breakfast := suite.mealWithCalories(Monday, 300)
		lunch := suite.mealWithCalories(Monday, 700)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), breakfast)
		plan = suite.addMeal(plan, lunch)

		// Act
		plan, err := plan.CopyDay(Monday, Wednesday)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 4, plan.MealCount())
		require.Len(suite.T(), plan.DayMealIDs(Wednesday), 2)
		for _, id := range plan.DayMealIDs(Wednesday) {
			assert.NotContains(suite.T(), plan.DayMealIDs(Monday), id)
			copied, ok := plan.Meal(id)
			require.True(suite.T(), ok)
			assert.Equal(suite.T(), Wednesday, copied.Day())
		}
		assert.Equal(suite.T(), plan.DayTotals(Monday), plan.DayTotals(Wednesday))
	})

	suite.Run("CopyDay_ThenEditCopy_ShouldNotAffectSource", func() {
		// Arrange
		meal := suite.mealWithCalories(Monday, 300)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), meal)
		plan, err := plan.CopyDay(Monday, Wednesday)
		require.NoError(suite.T(), err)

		// Act
		copyID := plan.DayMealIDs(Wednesday)[0]
		copied, ok := plan.Meal(copyID)
		require.True(suite.T(), ok)
		edited, err := copied.UpdateEntryGrams(0, 300)
		require.NoError(suite.T(), err)
		plan, err = plan.ReplaceMeal(edited)
		require.NoError(suite.T(), err)

		// Assert
		assert.InDelta(suite.T(), 300, plan.DayTotals(Monday).Calories, 1e-9)
		assert.InDelta(suite.T(), 900, plan.DayTotals(Wednesday).Calories, 1e-9)
	})

	suite.Run("CopyDay_ShouldReplaceTargetDayMeals", func() {
		// Arrange
		source := suite.mealWithCalories(Monday, 300)
		doomed := suite.mealWithCalories(Friday, 999)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), source)
		plan = suite.addMeal(plan, doomed)

		// Act
		plan, err := plan.CopyDay(Monday, Friday)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 2, plan.MealCount())
		_, ok := plan.Meal(doomed.ID())
		assert.False(suite.T(), ok)
		assert.InDelta(suite.T(), 300, plan.DayTotals(Friday).Calories, 1e-9)
	})

	suite.Run("CopyDay_SameDay_ShouldReturnOriginal", func() {
		meal := suite.mealWithCalories(Monday, 300)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), meal)

		updated, err := plan.CopyDay(Monday, Monday)

		assert.ErrorIs(suite.T(), err, ErrSameDayCopy)
		assert.Equal(suite.T(), 1, updated.MealCount())
	})

	suite.Run("CopyDay_InvalidDay_ShouldReturnInvalidWeekday", func() {
		// Arrange
		meal := suite.mealWithCalories(Monday, 300)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), meal)

		// Act
		fromBad, fromErr := plan.CopyDay(Weekday(9), Monday)
		toBad, toErr := plan.CopyDay(Monday, Weekday(-1))

		// Assert
		assert.ErrorIs(suite.T(), fromErr, ErrInvalidWeekday)
		assert.ErrorIs(suite.T(), toErr, ErrInvalidWeekday)
		assert.Equal(suite.T(), 1, fromBad.MealCount())
		assert.Equal(suite.T(), 1, toBad.MealCount())
	})

	suite.Run("CopyDay_EmptySource_ShouldEmptyTarget", func() {
		doomed := suite.mealWithCalories(Friday, 500)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), doomed)

		plan, err := plan.CopyDay(Monday, Friday)

		require.NoError(suite.T(), err)
		assert.Zero(suite.T(), plan.MealCount())
		assert.Empty(suite.T(), plan.DayMealIDs(Friday))
	})
}

// TestCopyOnWrite tests that snapshots held by the caller never change
func (suite *WeeklyPlanTestSuite) TestCopyOnWrite() {
	suite.Run("MutatingOps_ShouldLeaveReceiverUntouched", func() {
		// Arrange
		meal := suite.mealWithCalories(Monday, 300)
		original := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), meal)

		// Act
		_, err := original.CopyDay(Monday, Tuesday)
		require.NoError(suite.T(), err)
		_, err = original.RemoveMeal(meal.ID())
		require.NoError(suite.T(), err)
		_, err = original.AddMeal(suite.mealWithCalories(Sunday, 100))
		require.NoError(suite.T(), err)
		_ = original.WithRestrictions([]string{"vegan"})

		// Assert
		assert.Equal(suite.T(), 1, original.MealCount())
		assert.Empty(suite.T(), original.DayMealIDs(Tuesday))
		assert.Empty(suite.T(), original.DayMealIDs(Sunday))
		assert.Empty(suite.T(), original.ActiveRestrictions())
	})
}

// TestAggregation tests day and week totals
func (suite *WeeklyPlanTestSuite) TestAggregation() {
	suite.Run("DayTotals_ShouldExcludeInactiveMeals", func() {
		// Arrange
		active := suite.mealWithCalories(Monday, 600)
		inactive := suite.mealWithCalories(Monday, 400).WithActive(false)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), active)
		plan = suite.addMeal(plan, inactive)

		// Act
		totals := plan.DayTotals(Monday)

		// Assert
		assert.InDelta(suite.T(), 600, totals.Calories, 1e-9)
	})

	suite.Run("DayTotals_ReactivatedMeal_ShouldCountAgain", func() {
		// Arrange
		meal := suite.mealWithCalories(Monday, 400).WithActive(false)
		plan := suite.addMeal(NewWeeklyPlan("Plan", ObjectiveMaintenance), meal)
		require.True(suite.T(), plan.DayTotals(Monday).IsZero())

		// Act
		plan = suite.addMeal(plan, meal.WithActive(true))

		// Assert
		assert.InDelta(suite.T(), 400, plan.DayTotals(Monday).Calories, 1e-9)
	})

	suite.Run("WeekTotals_ShouldAggregatePerDayWithoutCarryOver", func() {
		// Arrange
		plan := NewWeeklyPlan("Plan", ObjectiveMaintenance)
		plan = suite.addMeal(plan, suite.mealWithCalories(Monday, 500))
		plan = suite.addMeal(plan, suite.mealWithCalories(Wednesday, 700))
		plan = suite.addMeal(plan, suite.mealWithCalories(Sunday, 200))

		// Act
		week := plan.WeekTotals()

		// Assert
		assert.InDelta(suite.T(), 500, week[Monday].Calories, 1e-9)
		assert.True(suite.T(), week[Tuesday].IsZero())
		assert.InDelta(suite.T(), 700, week[Wednesday].Calories, 1e-9)
		assert.InDelta(suite.T(), 200, week[Sunday].Calories, 1e-9)
	})

	suite.Run("SumTotals_ShouldIncludeInactiveMeals", func() {
		meals := []Meal{
			suite.mealWithCalories(Monday, 600),
			suite.mealWithCalories(Monday, 400).WithActive(false),
		}

		assert.InDelta(suite.T(), 1000, SumTotals(meals).Calories, 1e-9)
		assert.InDelta(suite.T(), 600, SumActive(meals).Calories, 1e-9)
	})
}

// BenchmarkCopyDay benchmarks copying a fully loaded day
func BenchmarkCopyDay(b *testing.B) {
	plan := NewWeeklyPlan("Benchmark", ObjectiveMaintenance)
	for i := 0; i < 6; i++ {
		meal, err := NewMeal(Monday).AddEntry(IngredientEntry{
			FoodID: uuid.New(),
			Grams:  150,
			Per100: nutrition.Macros{Calories: 165, Protein: 31},
		})
		if err != nil {
			b.Fatal(err)
		}
		plan, err = plan.AddMeal(meal)
		if err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := plan.CopyDay(Monday, Tuesday); err != nil {
			b.Fatal(err)
		}
	}
}

// TestWeeklyPlanTestSuite runs the weekly plan test suite
func TestWeeklyPlanTestSuite(t *testing.T) {
	suite.Run(t, new(WeeklyPlanTestSuite))
}

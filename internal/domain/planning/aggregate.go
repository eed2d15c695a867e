package planning

import "github.com/menuforge/v1/internal/domain/nutrition"

// SumActive sums the macro totals of the active meals only. Inactive meals
// are hidden from the client and from the nutritional target calculation,
// so they are always excluded from the sum regardless of their own totals.
func SumActive(meals []Meal) nutrition.Macros {
	var total nutrition.Macros
	for _, m := range meals {
		if !m.Active() {
			continue
		}
		total = total.Add(m.Totals())
	}
	return total
}

// SumTotals sums the macro totals of every given meal, active or not.
func SumTotals(meals []Meal) nutrition.Macros {
	var total nutrition.Macros
	for _, m := range meals {
		total = total.Add(m.Totals())
	}
	return total
}

// DayTotals returns the active-meal totals of one day bucket.
func (p WeeklyPlan) DayTotals(day Weekday) nutrition.Macros {
	return SumActive(p.MealsForDay(day))
}

// WeekTotals applies DayTotals to each day bucket, Monday first. There is
// no cross-day carry-over.
func (p WeeklyPlan) WeekTotals() [DaysPerWeek]nutrition.Macros {
	var totals [DaysPerWeek]nutrition.Macros
	for day := Monday; day <= Sunday; day++ {
		totals[day] = p.DayTotals(day)
	}
	return totals
}

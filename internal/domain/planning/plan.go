package planning

import (
	"slices"
	"sort"

	"github.com/google/uuid"
)

// Objective tags the nutritional goal a plan is built for.
type Objective string

const (
	ObjectiveMaintenance Objective = "maintenance"
	ObjectiveDeficit     Objective = "deficit"
	ObjectiveSurplus     Objective = "surplus"
)

// WeeklyPlan owns seven ordered day buckets of meals. Meals are stored in a
// flat arena keyed by identity; the buckets hold ordered identity lists, so
// copying a day or removing a meal is an index operation rather than a deep
// structural clone. The plan exclusively owns its meals: no meal belongs to
// two plans or two days at once.
//
// All mutating methods are copy-on-write and return a new plan; the receiver
// is never modified.
type WeeklyPlan struct {
	id           uuid.UUID
	name         string
	objective    Objective
	restrictions []string // sorted active restriction codes
	days         [DaysPerWeek][]uuid.UUID
	meals        map[uuid.UUID]Meal
	clientID     *uuid.UUID
}

// NewWeeklyPlan creates an empty plan: all seven day buckets empty, no
// restrictions, no client assignment.
func NewWeeklyPlan(name string, objective Objective) WeeklyPlan {
	return WeeklyPlan{
		id:        uuid.New(),
		name:      name,
		objective: objective,
		meals:     map[uuid.UUID]Meal{},
	}
}

// ID returns the plan's identity.
func (p WeeklyPlan) ID() uuid.UUID { return p.id }

// Name returns the plan's display name.
func (p WeeklyPlan) Name() string { return p.name }

// Objective returns the plan's objective tag.
func (p WeeklyPlan) Objective() Objective { return p.objective }

// ActiveRestrictions returns the sorted active restriction codes.
func (p WeeklyPlan) ActiveRestrictions() []string {
	return slices.Clone(p.restrictions)
}

// ClientID returns the assigned client, if any.
func (p WeeklyPlan) ClientID() *uuid.UUID {
	if p.clientID == nil {
		return nil
	}
	id := *p.clientID
	return &id
}

// Meal looks a meal up by identity in the plan's arena.
func (p WeeklyPlan) Meal(id uuid.UUID) (Meal, bool) {
	m, ok := p.meals[id]
	return m, ok
}

// MealCount returns the number of meals the plan owns.
func (p WeeklyPlan) MealCount() int { return len(p.meals) }

// DayMealIDs returns the ordered meal identities of one day bucket.
func (p WeeklyPlan) DayMealIDs(day Weekday) []uuid.UUID {
	if !day.Valid() {
		return nil
	}
	return slices.Clone(p.days[day])
}

// MealsForDay resolves one day bucket into its ordered meals.
func (p WeeklyPlan) MealsForDay(day Weekday) []Meal {
	if !day.Valid() {
		return nil
	}
	meals := make([]Meal, 0, len(p.days[day]))
	for _, id := range p.days[day] {
		meals = append(meals, p.meals[id])
	}
	return meals
}

// Meals returns every meal the plan owns, ordered by day and bucket
// position.
func (p WeeklyPlan) Meals() []Meal {
	meals := make([]Meal, 0, len(p.meals))
	for day := Monday; day <= Sunday; day++ {
		for _, id := range p.days[day] {
			meals = append(meals, p.meals[id])
		}
	}
	return meals
}

// WithName returns the plan renamed.
func (p WeeklyPlan) WithName(name string) WeeklyPlan {
	p = p.clone()
	p.name = name
	return p
}

// WithObjective returns the plan with a new objective tag.
func (p WeeklyPlan) WithObjective(objective Objective) WeeklyPlan {
	p = p.clone()
	p.objective = objective
	return p
}

// WithClient returns the plan assigned to a client.
func (p WeeklyPlan) WithClient(clientID uuid.UUID) WeeklyPlan {
	p = p.clone()
	p.clientID = &clientID
	return p
}

// WithRestrictions returns the plan with the active restriction set
// replaced. Codes are deduplicated and kept sorted.
func (p WeeklyPlan) WithRestrictions(codes []string) WeeklyPlan {
	p = p.clone()
	seen := map[string]struct{}{}
	deduped := make([]string, 0, len(codes))
	for _, c := range codes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		deduped = append(deduped, c)
	}
	sort.Strings(deduped)
	p.restrictions = deduped
	return p
}

// AddMeal appends the meal to its day bucket and stores it in the arena. A
// meal the plan already owns is replaced in place instead of re-appended.
func (p WeeklyPlan) AddMeal(m Meal) (WeeklyPlan, error) {
	if !m.Day().Valid() {
		return p, ErrInvalidWeekday
	}
	if _, owned := p.meals[m.ID()]; owned {
		return p.ReplaceMeal(m)
	}
	p = p.clone()
	p.meals[m.ID()] = m
	p.days[m.Day()] = append(p.days[m.Day()], m.ID())
	return p, nil
}

// ReplaceMeal writes an edited meal back into the arena. The meal must
// already be owned by the plan; a day change moves the identity between
// buckets, appended at the end of the target day.
func (p WeeklyPlan) ReplaceMeal(m Meal) (WeeklyPlan, error) {
	if !m.Day().Valid() {
		return p, ErrInvalidWeekday
	}
	existing, ok := p.meals[m.ID()]
	if !ok {
		return p, ErrMealNotFound
	}
	p = p.clone()
	if existing.Day() != m.Day() {
		p.days[existing.Day()] = removeID(p.days[existing.Day()], m.ID())
		p.days[m.Day()] = append(p.days[m.Day()], m.ID())
	}
	p.meals[m.ID()] = m
	return p, nil
}

// RemoveMeal drops the meal's identity from its day bucket and discards its
// arena entry. There is no deleted state for a meal.
func (p WeeklyPlan) RemoveMeal(id uuid.UUID) (WeeklyPlan, error) {
	m, ok := p.meals[id]
	if !ok {
		return p, ErrMealNotFound
	}
	p = p.clone()
	p.days[m.Day()] = removeID(p.days[m.Day()], id)
	delete(p.meals, id)
	return p, nil
}

// MoveMeal reslots a meal into another day bucket, keeping its identity and
// appending it at the end of the target day.
func (p WeeklyPlan) MoveMeal(id uuid.UUID, to Weekday) (WeeklyPlan, error) {
	if !to.Valid() {
		return p, ErrInvalidWeekday
	}
	m, ok := p.meals[id]
	if !ok {
		return p, ErrMealNotFound
	}
	if m.Day() == to {
		return p, nil
	}
	return p.ReplaceMeal(m.withDay(to))
}

// CopyDay replaces the target day's meal list with deep copies of the
// source day's meals. Every copy gets a freshly generated identity, so
// subsequent edits to either day never affect the other.
func (p WeeklyPlan) CopyDay(from, to Weekday) (WeeklyPlan, error) {
	if !from.Valid() || !to.Valid() {
		return p, ErrInvalidWeekday
	}
	if from == to {
		return p, ErrSameDayCopy
	}
	p = p.clone()
	for _, id := range p.days[to] {
		delete(p.meals, id)
	}
	copied := make([]uuid.UUID, 0, len(p.days[from]))
	for _, id := range p.days[from] {
		clone := p.meals[id].cloneFor(to)
		p.meals[clone.ID()] = clone
		copied = append(copied, clone.ID())
	}
	p.days[to] = copied
	return p, nil
}

// clone copies the arena map and every day bucket so the returned plan can
// be mutated without touching the receiver snapshot.
func (p WeeklyPlan) clone() WeeklyPlan {
	meals := make(map[uuid.UUID]Meal, len(p.meals))
	for id, m := range p.meals {
		meals[id] = m
	}
	p.meals = meals
	for day := range p.days {
		p.days[day] = slices.Clone(p.days[day])
	}
	p.restrictions = slices.Clone(p.restrictions)
	return p
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0:0]
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}

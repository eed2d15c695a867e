// Package memory provides in-memory catalog adapters backed by maps. They
// stand in for the external data service in tests and in the demo binary;
// the engine only ever reads from them.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/menuforge/v1/internal/domain/catalog"
	"github.com/menuforge/v1/internal/ports/outbound"
)

// FoodCatalog implements outbound.FoodCatalog over a map.
type FoodCatalog struct {
	mu    sync.RWMutex
	foods map[uuid.UUID]catalog.Food
}

// NewFoodCatalog creates a food catalog preloaded with the given records.
func NewFoodCatalog(foods ...catalog.Food) *FoodCatalog {
	c := &FoodCatalog{foods: make(map[uuid.UUID]catalog.Food, len(foods))}
	for _, f := range foods {
		c.foods[f.ID] = f
	}
	return c
}

// Put stores or replaces a food record.
func (c *FoodCatalog) Put(f catalog.Food) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.foods[f.ID] = f
}

// FindByID resolves a food reference.
func (c *FoodCatalog) FindByID(ctx context.Context, id uuid.UUID) (catalog.Food, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, ok := c.foods[id]
	if !ok {
		return catalog.Food{}, catalog.ErrFoodNotFound
	}
	return f, nil
}

// RecipeCatalog implements outbound.RecipeCatalog over a map.
type RecipeCatalog struct {
	mu      sync.RWMutex
	recipes map[uuid.UUID]catalog.Recipe
}

// NewRecipeCatalog creates a recipe catalog preloaded with the given
// records.
func NewRecipeCatalog(recipes ...catalog.Recipe) *RecipeCatalog {
	c := &RecipeCatalog{recipes: make(map[uuid.UUID]catalog.Recipe, len(recipes))}
	for _, r := range recipes {
		c.recipes[r.ID] = r
	}
	return c
}

// Put stores or replaces a recipe record.
func (c *RecipeCatalog) Put(r catalog.Recipe) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recipes[r.ID] = r
}

// FindByID resolves a recipe reference.
func (c *RecipeCatalog) FindByID(ctx context.Context, id uuid.UUID) (catalog.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.recipes[id]
	if !ok {
		return catalog.Recipe{}, catalog.ErrRecipeNotFound
	}
	return r, nil
}

// RestrictionRegistry implements outbound.RestrictionRegistry over a slice.
type RestrictionRegistry struct {
	mu           sync.RWMutex
	restrictions []catalog.Restriction
}

// NewRestrictionRegistry creates a registry preloaded with the given
// restrictions.
func NewRestrictionRegistry(restrictions ...catalog.Restriction) *RestrictionRegistry {
	return &RestrictionRegistry{restrictions: slices.Clone(restrictions)}
}

// List returns all registered restrictions.
func (r *RestrictionRegistry) List(ctx context.Context) ([]catalog.Restriction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.restrictions), nil
}

// SubstitutionRuleSet implements outbound.SubstitutionRuleSet with rules
// indexed by origin food.
type SubstitutionRuleSet struct {
	mu       sync.RWMutex
	byOrigin map[uuid.UUID][]catalog.SubstitutionRule
}

// NewSubstitutionRuleSet creates a rule set preloaded with the given rules.
func NewSubstitutionRuleSet(rules ...catalog.SubstitutionRule) *SubstitutionRuleSet {
	s := &SubstitutionRuleSet{byOrigin: map[uuid.UUID][]catalog.SubstitutionRule{}}
	for _, rule := range rules {
		s.byOrigin[rule.OriginFoodID] = append(s.byOrigin[rule.OriginFoodID], rule)
	}
	return s
}

// FindByOrigin returns the rules whose origin is the given food. An empty
// result is a normal outcome.
func (s *SubstitutionRuleSet) FindByOrigin(ctx context.Context, foodID uuid.UUID) ([]catalog.SubstitutionRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.byOrigin[foodID]), nil
}

var (
	_ outbound.FoodCatalog         = (*FoodCatalog)(nil)
	_ outbound.RecipeCatalog       = (*RecipeCatalog)(nil)
	_ outbound.RestrictionRegistry = (*RestrictionRegistry)(nil)
	_ outbound.SubstitutionRuleSet = (*SubstitutionRuleSet)(nil)
)

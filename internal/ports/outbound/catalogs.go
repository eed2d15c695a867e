// Package outbound defines the interfaces for outbound ports (secondary/
// driven adapters): the read-only data catalogs the engine consumes. The
// catalogs are owned by the external data service; fetching them happens
// before the engine is invoked, and implementations only serve
// already-available data.
package outbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/menuforge/v1/internal/domain/catalog"
)

// FoodCatalog resolves food references. FindByID returns
// catalog.ErrFoodNotFound when the identity does not resolve.
type FoodCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (catalog.Food, error)
}

// RecipeCatalog resolves recipe references, exposing the lifecycle state.
// FindByID returns catalog.ErrRecipeNotFound when the identity does not
// resolve.
type RecipeCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (catalog.Recipe, error)
}

// RestrictionRegistry lists the named dietary restrictions.
type RestrictionRegistry interface {
	List(ctx context.Context) ([]catalog.Restriction, error)
}

// SubstitutionRuleSet serves the directed replacement rules for a given
// origin food. An empty result is a normal outcome, not an error.
type SubstitutionRuleSet interface {
	FindByOrigin(ctx context.Context, foodID uuid.UUID) ([]catalog.SubstitutionRule, error)
}

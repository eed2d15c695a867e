// Package substitution provides the application layer for
// restriction-driven food replacement. The resolver proposes substitutions
// against the current plan; applying one is always the caller's decision.
package substitution

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/menuforge/v1/internal/domain/catalog"
	"github.com/menuforge/v1/internal/domain/planning"
	"github.com/menuforge/v1/internal/ports/inbound"
	"github.com/menuforge/v1/internal/ports/outbound"
	apperrors "github.com/menuforge/v1/pkg/errors"
)

// Resolver implements the substitution use cases on top of the injected
// rule set.
type Resolver struct {
	rules  outbound.SubstitutionRuleSet
	logger *zap.Logger
}

// NewResolver creates a new substitution resolver
func NewResolver(rules outbound.SubstitutionRuleSet, logger *zap.Logger) inbound.SubstitutionResolver {
	return &Resolver{
		rules:  rules,
		logger: logger.Named("substitution-resolver"),
	}
}

// Resolve finds the substitution rules that should replace the given food
// under the active restriction set. Restriction-scoped matches always
// outrank variety matches: diet-safety rules take priority over variety
// rotation. When several restriction-scoped rules match, all of them are
// returned and the tie-break is the caller's. An empty resolution is a
// normal outcome, not a lookup failure.
func (r *Resolver) Resolve(ctx context.Context, activeRestrictions []string, foodID uuid.UUID) (inbound.Resolution, error) {
	rules, err := r.rules.FindByOrigin(ctx, foodID)
	if err != nil {
		return inbound.Resolution{}, apperrors.Wrap(err, "find substitution rules")
	}

	active := make(map[string]struct{}, len(activeRestrictions))
	for _, code := range activeRestrictions {
		active[code] = struct{}{}
	}

	var restricted, variety []catalog.SubstitutionRule
	for _, rule := range rules {
		if !rule.Active || rule.OriginFoodID != foodID {
			continue
		}
		if rule.Scope.IsVariety() {
			variety = append(variety, rule)
			continue
		}
		if _, ok := active[string(rule.Scope)]; ok {
			restricted = append(restricted, rule)
		}
	}

	resolution := inbound.Resolution{FoodID: foodID, Scope: inbound.ResolutionScopeNone}
	switch {
	case len(restricted) > 0:
		resolution.Scope = inbound.ResolutionScopeRestriction
		resolution.Rules = restricted
	case len(variety) > 0:
		resolution.Scope = inbound.ResolutionScopeVariety
		resolution.Rules = variety
	}

	r.logger.Debug("Substitution resolved",
		zap.String("food_id", foodID.String()),
		zap.String("scope", string(resolution.Scope)),
		zap.Int("rules", len(resolution.Rules)),
	)

	return resolution, nil
}

// Apply computes the replacement for an original quantity under a rule the
// caller selected: the substitute food at originalGrams times the rule's
// conversion factor.
func (r *Resolver) Apply(rule catalog.SubstitutionRule, originalGrams float64) (uuid.UUID, float64, error) {
	if err := rule.Validate(); err != nil {
		return uuid.Nil, 0, apperrors.NewValidationError(err.Error()).WithCause(err)
	}
	if originalGrams <= 0 {
		return uuid.Nil, 0, apperrors.NewValidationError(planning.ErrGramsNotPositive.Error()).
			WithCause(planning.ErrGramsNotPositive)
	}
	return rule.SubstituteFoodID, originalGrams * rule.Factor, nil
}

// ProposeForMeal sweeps an ingredient meal and returns a resolution for
// every entry that has one. The meal itself is never modified.
func (r *Resolver) ProposeForMeal(ctx context.Context, activeRestrictions []string, meal planning.Meal) ([]inbound.Proposal, error) {
	if meal.Mode() != planning.ModeIngredients {
		return nil, apperrors.NewInvalidStateError(planning.ErrWrongMode.Error()).
			WithCause(planning.ErrWrongMode).
			WithMetadata("meal_id", meal.ID().String())
	}

	var proposals []inbound.Proposal
	for i, entry := range meal.Entries() {
		resolution, err := r.Resolve(ctx, activeRestrictions, entry.FoodID)
		if err != nil {
			return nil, err
		}
		if !resolution.Available() {
			continue
		}
		proposals = append(proposals, inbound.Proposal{
			EntryIndex: i,
			FoodID:     entry.FoodID,
			Grams:      entry.Grams,
			Resolution: resolution,
		})
	}

	return proposals, nil
}

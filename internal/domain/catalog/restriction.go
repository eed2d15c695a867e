package catalog

import "github.com/google/uuid"

// Restriction is a named dietary constraint that excludes food categories
// and activates scoped substitution rules.
type Restriction struct {
	ID          uuid.UUID
	Name        string
	Code        string
	Description string
	Color       string
	Icon        string
	Excluded    []FoodCategory
	Active      bool
}

// Excludes reports whether the restriction rules out the given category.
func (r Restriction) Excludes(category FoodCategory) bool {
	for _, c := range r.Excluded {
		if c == category {
			return true
		}
	}
	return false
}

// RuleScope scopes a substitution rule to a restriction code, or to
// ScopeVariety meaning the rule applies regardless of active restrictions.
type RuleScope string

// ScopeVariety is the restriction-independent sentinel scope used for
// variety rotation rules.
const ScopeVariety RuleScope = "variety"

// IsVariety reports whether the scope is the restriction-independent
// variety sentinel.
func (s RuleScope) IsVariety() bool {
	return s == ScopeVariety
}

// SubstitutionRule is a directed food-to-food replacement. The factor
// multiplies the original quantity in grams to obtain the substitute
// quantity.
type SubstitutionRule struct {
	ID               uuid.UUID
	OriginFoodID     uuid.UUID
	SubstituteFoodID uuid.UUID
	Factor           float64
	Scope            RuleScope
	Active           bool
}

// Validate checks the rule's structural constraints.
func (r SubstitutionRule) Validate() error {
	if r.Factor <= 0 {
		return ErrFactorNotPositive
	}
	return nil
}

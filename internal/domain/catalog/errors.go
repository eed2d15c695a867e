package catalog

import "errors"

// Domain errors for catalog lookups and reference checks

var (
	ErrFoodNotFound       = errors.New("food not found in catalog")
	ErrRecipeNotFound     = errors.New("recipe not found in catalog")
	ErrRecipeNotPublished = errors.New("only published recipes can be selected")
	ErrFactorNotPositive  = errors.New("substitution factor must be greater than 0")
)

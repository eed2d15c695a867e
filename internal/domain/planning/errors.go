package planning

import "errors"

// Domain errors for meal composition and plan lifecycle

var (
	// Validation errors
	ErrGramsNotPositive = errors.New("ingredient quantity must be greater than 0 grams")
	ErrPortionTooSmall  = errors.New("portions must be at least 0.5")
	ErrPortionStep      = errors.New("portions must be a multiple of 0.5")
	ErrSameDayCopy      = errors.New("source and target day must differ")
	ErrInvalidWeekday   = errors.New("invalid weekday")

	// State errors
	ErrWrongMode = errors.New("operation does not apply to the meal's current mode")

	// Structural errors
	ErrEntryIndex   = errors.New("ingredient index out of range")
	ErrMealNotFound = errors.New("meal does not belong to this plan")
)

package domain

import "errors"

var (
	// ErrEmptyIngredients is returned when the user's input normalizes to an
	// empty ingredient list.
	ErrEmptyIngredients = errors.New("no ingredients provided")
)

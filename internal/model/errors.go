package model

import "errors"

// Catalog construction errors.
var (
	// ErrEmptyCategoryName is returned when a category has a blank name.
	ErrEmptyCategoryName = errors.New("invalid category: name must not be empty")

	// ErrDuplicateCategory is returned when two categories share a name.
	ErrDuplicateCategory = errors.New("invalid catalog: duplicate category name")
)

package domain

import "errors"

var (
	// ErrCatalogNotFound indicates the question catalog could not be loaded.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrUnknownCategory is returned when a submitted category is not one of the three.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrEmptyCompletion indicates the generation service returned no content.
	ErrEmptyCompletion = errors.New("empty completion")
	// ErrIncompleteRoast indicates the generated response was missing a required field.
	ErrIncompleteRoast = errors.New("incomplete roast response")
)

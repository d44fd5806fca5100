package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrAssetNotFound signals a missing asset in every probed collection.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrValidation signals missing or malformed client input.
	ErrValidation = errors.New("validation failed")
)

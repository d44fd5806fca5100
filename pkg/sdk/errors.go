package catalog

import "github.com/kailas-cloud/catalogd/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound      = domain.ErrNotFound
	ErrAssetNotFound = domain.ErrAssetNotFound
	ErrValidation    = domain.ErrValidation
)

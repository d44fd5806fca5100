package catalog

import (
	"context"

	domasset "github.com/kailas-cloud/catalogd/internal/domain/asset"
)

// Repository defines the storage contract for assets.
type Repository interface {
	Create(ctx context.Context, a *domasset.Asset) error
	Get(ctx context.Context, kind domasset.Kind, id string) (domasset.Asset, error)
	GetAny(ctx context.Context, id string) (domasset.Asset, error)
	ListKind(ctx context.Context, kind domasset.Kind) ([]domasset.Asset, error)
	Save(ctx context.Context, a *domasset.Asset) error
	IncrementShared(ctx context.Context, kind domasset.Kind, id string) (int, error)
}

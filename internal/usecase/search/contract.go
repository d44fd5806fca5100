package search

import (
	"context"

	domasset "github.com/kailas-cloud/catalogd/internal/domain/asset"
	domsearch "github.com/kailas-cloud/catalogd/internal/domain/search"
)

// AssetLister supplies the assets a search scans.
type AssetLister interface {
	ListKind(ctx context.Context, kind domasset.Kind) ([]domasset.Asset, error)
}

// Log records executed queries and replays the most recent ones.
type Log interface {
	Record(ctx context.Context, rec domsearch.QueryRecord) error
	Recent(ctx context.Context, n int) ([]domsearch.QueryRecord, error)
}

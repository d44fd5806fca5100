// Package catalog implements the asset aggregator: multi-kind listings,
// engagement rankings, and per-variant creation.
package catalog

import (
	"context"
	"fmt"
	"time"

	domasset "github.com/kailas-cloud/catalogd/internal/domain/asset"
)

// Service aggregates the four asset collections behind one API.
type Service struct {
	repo     Repository
	perRank  int
	maxTotal int
	now      func() time.Time
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{
		repo:     repo,
		perRank:  4,
		maxTotal: 8,
		now:      time.Now,
	}
}

// WithFeaturedLimits configures the featured ranking sizes.
func (s *Service) WithFeaturedLimits(perRank, maxTotal int) *Service {
	if perRank > 0 {
		s.perRank = perRank
	}
	if maxTotal > 0 {
		s.maxTotal = maxTotal
	}
	return s
}

// WithClock overrides the time source (test-only).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ListAll returns summaries of every asset, kinds concatenated in probe
// order, each kind in store order.
func (s *Service) ListAll(ctx context.Context) ([]domasset.Summary, error) {
	assets, err := s.listAllAssets(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domasset.Summary, len(assets))
	for i := range assets {
		out[i] = assets[i].Summary()
	}
	return out, nil
}

// ListKind returns summaries of one asset kind in store order.
func (s *Service) ListKind(ctx context.Context, kind domasset.Kind) ([]domasset.Summary, error) {
	assets, err := s.repo.ListKind(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}

	out := make([]domasset.Summary, len(assets))
	for i := range assets {
		out[i] = assets[i].Summary()
	}
	return out, nil
}

// Featured returns the combined favorited/shared ranking over all assets.
func (s *Service) Featured(ctx context.Context) ([]domasset.Summary, error) {
	assets, err := s.listAllAssets(ctx)
	if err != nil {
		return nil, err
	}
	return domasset.Featured(assets, s.perRank, s.maxTotal), nil
}

// FindByID probes the kinds in fixed order and returns the first match.
func (s *Service) FindByID(ctx context.Context, id string) (domasset.Asset, error) {
	a, err := s.repo.GetAny(ctx, id)
	if err != nil {
		return domasset.Asset{}, fmt.Errorf("find asset %s: %w", id, err)
	}
	return a, nil
}

// Create validates a draft for the given kind and persists it.
// Counters and the favorited flag are reset and LastUpdated is stamped here.
func (s *Service) Create(ctx context.Context, kind domasset.Kind, draft domasset.Asset) (domasset.Asset, error) {
	a, err := domasset.New(kind, draft, s.now())
	if err != nil {
		return domasset.Asset{}, err
	}

	if err := s.repo.Create(ctx, &a); err != nil {
		return domasset.Asset{}, fmt.Errorf("create %s: %w", kind, err)
	}
	return a, nil
}

// IncrementShared bumps the share counter of the asset with the given id.
// The increment itself is atomic in the store.
func (s *Service) IncrementShared(ctx context.Context, id string) (domasset.Asset, error) {
	a, err := s.repo.GetAny(ctx, id)
	if err != nil {
		return domasset.Asset{}, fmt.Errorf("find asset %s: %w", id, err)
	}

	n, err := s.repo.IncrementShared(ctx, a.Kind, a.ID)
	if err != nil {
		return domasset.Asset{}, fmt.Errorf("increment shared %s: %w", id, err)
	}
	a.SharedCount = n
	return a, nil
}

// SetFavorited sets the favorited flag. The counter moves only when the
// stored flag actually changes, so repeated calls are idempotent and the
// counter never goes negative.
func (s *Service) SetFavorited(ctx context.Context, id string, favorited bool) (domasset.Asset, error) {
	a, err := s.repo.GetAny(ctx, id)
	if err != nil {
		return domasset.Asset{}, fmt.Errorf("find asset %s: %w", id, err)
	}

	if a.Favorited == favorited {
		return a, nil
	}

	a.Favorited = favorited
	if favorited {
		a.FavoritedCount++
	} else if a.FavoritedCount > 0 {
		a.FavoritedCount--
	}

	if err := s.repo.Save(ctx, &a); err != nil {
		return domasset.Asset{}, fmt.Errorf("save asset %s: %w", id, err)
	}
	return a, nil
}

// SetAccess changes the access state of an asset within one named kind.
// Unknown kind or access values fail validation before any lookup.
func (s *Service) SetAccess(ctx context.Context, id, kindTag, accessTag string) (domasset.Summary, error) {
	kind, err := domasset.ParseKind(kindTag)
	if err != nil {
		return domasset.Summary{}, err
	}
	access, err := domasset.ParseAccess(accessTag)
	if err != nil {
		return domasset.Summary{}, err
	}

	a, err := s.repo.Get(ctx, kind, id)
	if err != nil {
		return domasset.Summary{}, fmt.Errorf("get %s/%s: %w", kind, id, err)
	}

	a.Access = access
	if err := s.repo.Save(ctx, &a); err != nil {
		return domasset.Summary{}, fmt.Errorf("save asset %s: %w", id, err)
	}
	return a.Summary(), nil
}

// listAllAssets concatenates every kind's assets in probe order.
func (s *Service) listAllAssets(ctx context.Context) ([]domasset.Asset, error) {
	var out []domasset.Asset
	for _, kind := range domasset.Kinds() {
		assets, err := s.repo.ListKind(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", kind, err)
		}
		out = append(out, assets...)
	}
	return out, nil
}

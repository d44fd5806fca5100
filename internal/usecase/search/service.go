// Package search implements catalog-wide asset search with a query log.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	domasset "github.com/kailas-cloud/catalogd/internal/domain/asset"
	domsearch "github.com/kailas-cloud/catalogd/internal/domain/search"
)

// Result is the outcome of one search: the matching assets plus the
// queries that led here, newest first, including the one just executed.
type Result struct {
	Items  []domasset.Summary `json:"item"`
	Recent []string           `json:"search"`
}

// Service matches queries against all asset kinds and logs every query.
type Service struct {
	assets  AssetLister
	log     Log
	recentN int
	queries prometheus.Counter
	now     func() time.Time
}

// New creates a search service. recentN is how many recent queries a
// search response echoes back.
func New(assets AssetLister, log Log, recentN int) *Service {
	if recentN <= 0 {
		recentN = 5
	}
	return &Service{
		assets:  assets,
		log:     log,
		recentN: recentN,
		now:     time.Now,
	}
}

// WithQueryCounter attaches a counter incremented per executed search.
func (s *Service) WithQueryCounter(c prometheus.Counter) *Service {
	s.queries = c
	return s
}

// WithClock overrides the time source (test-only).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Search scans every kind in probe order for case-insensitive substring
// matches on title or description. The query is logged whether or not
// anything matched.
func (s *Service) Search(ctx context.Context, query, user string) (Result, error) {
	rec, err := domsearch.NewQueryRecord(query, user, s.now())
	if err != nil {
		return Result{}, err
	}

	var items []domasset.Summary
	for _, kind := range domasset.Kinds() {
		assets, err := s.assets.ListKind(ctx, kind)
		if err != nil {
			return Result{}, fmt.Errorf("list %s: %w", kind, err)
		}
		for i := range assets {
			if assets[i].Matches(query) {
				items = append(items, assets[i].Summary())
			}
		}
	}

	if err := s.log.Record(ctx, rec); err != nil {
		return Result{}, fmt.Errorf("record query: %w", err)
	}
	if s.queries != nil {
		s.queries.Inc()
	}

	recent, err := s.RecentQueries(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{Items: items, Recent: recent}, nil
}

// RecentQueries returns the last logged query strings, newest first.
func (s *Service) RecentQueries(ctx context.Context) ([]string, error) {
	recs, err := s.log.Recent(ctx, s.recentN)
	if err != nil {
		return nil, fmt.Errorf("recent queries: %w", err)
	}
	out := make([]string, len(recs))
	for i := range recs {
		out[i] = recs[i].Query
	}
	return out, nil
}

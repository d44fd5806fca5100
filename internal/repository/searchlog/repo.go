// Package searchlog persists the capped, newest-first search-query log.
package searchlog

import (
	"context"
	"encoding/json"
	"fmt"

	domsearch "github.com/kailas-cloud/catalogd/internal/domain/search"
)

// store is the consumer interface for the search log (ISP).
type store interface {
	LPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LTrim(ctx context.Context, key string, start, stop int64) error
}

// Repo keeps query records in a Redis list, newest first. Every write trims
// the list to the configured depth so the log cannot grow without bound.
type Repo struct {
	store store
	key   string
	depth int
}

// New creates a search-log repository retaining at most depth entries.
func New(s store, keyPrefix string, depth int) *Repo {
	return &Repo{store: s, key: keyPrefix + "searches", depth: depth}
}

// Record appends a query record to the head of the log.
func (r *Repo) Record(ctx context.Context, rec domsearch.QueryRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal query record: %w", err)
	}
	if err := r.store.LPush(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("lpush search log: %w", err)
	}
	if err := r.store.LTrim(ctx, r.key, 0, int64(r.depth)-1); err != nil {
		return fmt.Errorf("ltrim search log: %w", err)
	}
	return nil
}

// Recent returns up to n most recent records, newest first.
// Entries that fail to decode are skipped.
func (r *Repo) Recent(ctx context.Context, n int) ([]domsearch.QueryRecord, error) {
	if n <= 0 {
		return nil, nil
	}
	raw, err := r.store.LRange(ctx, r.key, 0, int64(n)-1)
	if err != nil {
		return nil, fmt.Errorf("lrange search log: %w", err)
	}

	out := make([]domsearch.QueryRecord, 0, len(raw))
	for _, entry := range raw {
		var rec domsearch.QueryRecord
		if err := json.Unmarshal([]byte(entry), &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

package asset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kailas-cloud/catalogd/internal/db"
	"github.com/kailas-cloud/catalogd/internal/domain"
	domasset "github.com/kailas-cloud/catalogd/internal/domain/asset"
)

// store is the consumer interface for assets (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONNumIncrBy(ctx context.Context, key, path string, delta float64) (float64, error)
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	RPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// Repo stores assets as JSON documents, one key space per kind, with a
// per-kind insertion-ordered id journal for listings.
type Repo struct {
	store  store
	prefix string
	newID  func() string
}

// New creates an asset repository. keyPrefix namespaces all keys.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix, newID: uuid.NewString}
}

// WithIDFunc overrides id generation (test-only).
func (r *Repo) WithIDFunc(f func() string) *Repo {
	r.newID = f
	return r
}

// Create assigns an id and persists a new asset document.
// For KPIs the metricID reverse-lookup key enforces uniqueness.
func (r *Repo) Create(ctx context.Context, a *domasset.Asset) error {
	a.ID = r.newID()

	if a.Kind == domasset.KindKPI {
		ok, err := r.store.SetNX(ctx, r.metricKey(a.MetricID), []byte(a.ID))
		if err != nil {
			return fmt.Errorf("reserve metricID %s: %w", a.MetricID, err)
		}
		if !ok {
			return fmt.Errorf("metricID %q is already in use: %w", a.MetricID, domain.ErrValidation)
		}
	}

	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal asset: %w", err)
	}
	if err := r.store.JSONSet(ctx, r.assetKey(a.Kind, a.ID), "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", a.ID, err)
	}
	if err := r.store.RPush(ctx, r.journalKey(a.Kind), a.ID); err != nil {
		return fmt.Errorf("journal %s: %w", a.ID, err)
	}
	return nil
}

// Get returns an asset by kind and id.
func (r *Repo) Get(ctx context.Context, kind domasset.Kind, id string) (domasset.Asset, error) {
	raw, err := r.store.JSONGet(ctx, r.assetKey(kind, id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domasset.Asset{}, domain.ErrAssetNotFound
		}
		return domasset.Asset{}, fmt.Errorf("json.get %s/%s: %w", kind, id, err)
	}
	return decodeAsset(raw)
}

// GetAny probes the kinds in fixed order and returns the first match.
func (r *Repo) GetAny(ctx context.Context, id string) (domasset.Asset, error) {
	for _, kind := range domasset.Kinds() {
		a, err := r.Get(ctx, kind, id)
		if err == nil {
			return a, nil
		}
		if !errors.Is(err, domain.ErrAssetNotFound) {
			return domasset.Asset{}, err
		}
	}
	return domasset.Asset{}, domain.ErrAssetNotFound
}

// ListKind returns all assets of one kind in journal (insertion) order.
// Journal entries whose document has vanished are skipped.
func (r *Repo) ListKind(ctx context.Context, kind domasset.Kind) ([]domasset.Asset, error) {
	ids, err := r.store.LRange(ctx, r.journalKey(kind), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("journal %s: %w", kind, err)
	}

	out := make([]domasset.Asset, 0, len(ids))
	for _, id := range ids {
		a, err := r.Get(ctx, kind, id)
		if err != nil {
			if errors.Is(err, domain.ErrAssetNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Save overwrites an existing asset document.
func (r *Repo) Save(ctx context.Context, a *domasset.Asset) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal asset: %w", err)
	}
	if err := r.store.JSONSet(ctx, r.assetKey(a.Kind, a.ID), "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", a.ID, err)
	}
	return nil
}

// IncrementShared atomically bumps sharedCount and returns the new value.
func (r *Repo) IncrementShared(ctx context.Context, kind domasset.Kind, id string) (int, error) {
	n, err := r.store.JSONNumIncrBy(ctx, r.assetKey(kind, id), "$.sharedCount", 1)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return 0, domain.ErrAssetNotFound
		}
		return 0, fmt.Errorf("numincrby %s/%s: %w", kind, id, err)
	}
	return int(n), nil
}

func (r *Repo) assetKey(kind domasset.Kind, id string) string {
	return fmt.Sprintf("%sasset:%s:%s", r.prefix, strings.ToLower(string(kind)), id)
}

func (r *Repo) journalKey(kind domasset.Kind) string {
	return fmt.Sprintf("%sasset:%s:ids", r.prefix, strings.ToLower(string(kind)))
}

func (r *Repo) metricKey(metricID string) string {
	return fmt.Sprintf("%skpi:metric:%s", r.prefix, metricID)
}

// decodeAsset handles both the JSONPath array form ("[{...}]") and the plain
// object form of JSON.GET replies.
func decodeAsset(raw []byte) (domasset.Asset, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var many []domasset.Asset
		if err := json.Unmarshal(raw, &many); err != nil {
			return domasset.Asset{}, fmt.Errorf("unmarshal asset: %w", err)
		}
		if len(many) == 0 {
			return domasset.Asset{}, domain.ErrAssetNotFound
		}
		return many[0], nil
	}

	var a domasset.Asset
	if err := json.Unmarshal(raw, &a); err != nil {
		return domasset.Asset{}, fmt.Errorf("unmarshal asset: %w", err)
	}
	return a, nil
}

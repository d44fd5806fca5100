package asset

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/catalogd/internal/db"
	"github.com/kailas-cloud/catalogd/internal/domain"
	domasset "github.com/kailas-cloud/catalogd/internal/domain/asset"
)

func storedKPI() domasset.Asset {
	return domasset.Asset{
		ID:          "kpi-1",
		Title:       "Churn",
		Kind:        domasset.KindKPI,
		Description: "Monthly churn",
		LastUpdated: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		MetricID:    "churn",
		Calculation: "lost / total",
		Access:      domasset.AccessGranted,
	}
}

// --- Create ---

func TestCreate_AssignsIDAndJournals(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	var setKey string
	ms.jsonSetFn = func(_ context.Context, key, path string, data []byte) error {
		setKey = key
		if path != "$" {
			t.Errorf("unexpected path: %s", path)
		}
		var a domasset.Asset
		if err := json.Unmarshal(data, &a); err != nil {
			t.Fatalf("stored payload not an asset: %v", err)
		}
		if a.ID != "fixed-id" {
			t.Errorf("expected assigned id in payload, got %q", a.ID)
		}
		return nil
	}
	var journalKey, journaled string
	ms.rpushFn = func(_ context.Context, key string, values ...string) error {
		journalKey = key
		journaled = values[0]
		return nil
	}

	a := domasset.Asset{Title: "t", Kind: domasset.KindLayout, Description: "d", About: "a", Access: domasset.AccessGranted}
	if err := repo.Create(ctx, &a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != "fixed-id" {
		t.Errorf("expected id assigned on the asset, got %q", a.ID)
	}
	if setKey != "catalog:asset:layout:fixed-id" {
		t.Errorf("unexpected asset key: %s", setKey)
	}
	if journalKey != "catalog:asset:layout:ids" || journaled != "fixed-id" {
		t.Errorf("unexpected journal write: %s %s", journalKey, journaled)
	}
}

func TestCreate_KPIReservesMetricID(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	var reserved string
	ms.setNXFn = func(_ context.Context, key string, _ []byte) (bool, error) {
		reserved = key
		return true, nil
	}

	a := storedKPI()
	a.ID = ""
	if err := repo.Create(ctx, &a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reserved != "catalog:kpi:metric:churn" {
		t.Errorf("unexpected metric key: %s", reserved)
	}
}

func TestCreate_DuplicateMetricID(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.setNXFn = func(_ context.Context, _ string, _ []byte) (bool, error) {
		return false, nil
	}
	ms.jsonSetFn = func(_ context.Context, _, _ string, _ []byte) error {
		t.Fatal("asset must not be written when metricID is taken")
		return nil
	}

	a := storedKPI()
	a.ID = ""
	err := repo.Create(ctx, &a)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// --- Get / GetAny ---

func TestGet_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	stored, _ := json.Marshal([]domasset.Asset{storedKPI()})
	ms.jsonGetFn = func(_ context.Context, key string, _ ...string) ([]byte, error) {
		if key != "catalog:asset:kpi:kpi-1" {
			t.Errorf("unexpected key: %s", key)
		}
		return stored, nil
	}

	a, err := repo.Get(ctx, domasset.KindKPI, "kpi-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != "kpi-1" || a.MetricID != "churn" {
		t.Errorf("unexpected asset: %+v", a)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.jsonGetFn = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return nil, db.ErrKeyNotFound
	}

	_, err := repo.Get(ctx, domasset.KindKPI, "missing")
	if !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
}

func TestGetAny_ProbesKindsInOrder(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	var probed []string
	stored, _ := json.Marshal([]domasset.Asset{{ID: "viz-1", Kind: domasset.KindVisualization}})
	ms.jsonGetFn = func(_ context.Context, key string, _ ...string) ([]byte, error) {
		probed = append(probed, key)
		if key == "catalog:asset:visualization:viz-1" {
			return stored, nil
		}
		return nil, db.ErrKeyNotFound
	}

	a, err := repo.GetAny(ctx, "viz-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != "viz-1" {
		t.Errorf("unexpected asset: %+v", a)
	}

	want := []string{
		"catalog:asset:kpi:viz-1",
		"catalog:asset:layout:viz-1",
		"catalog:asset:visualization:viz-1",
	}
	if len(probed) != len(want) {
		t.Fatalf("expected %d probes, got %d: %v", len(want), len(probed), probed)
	}
	for i := range want {
		if probed[i] != want[i] {
			t.Errorf("probe %d: expected %s, got %s", i, want[i], probed[i])
		}
	}
}

func TestGetAny_NotFoundAnywhere(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.jsonGetFn = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return nil, db.ErrKeyNotFound
	}

	_, err := repo.GetAny(ctx, "ghost")
	if !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
}

// --- ListKind ---

func TestListKind_JournalOrder(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.lrangeFn = func(_ context.Context, key string, start, stop int64) ([]string, error) {
		if key != "catalog:asset:storyboard:ids" {
			t.Errorf("unexpected journal key: %s", key)
		}
		if start != 0 || stop != -1 {
			t.Errorf("unexpected range: %d..%d", start, stop)
		}
		return []string{"s1", "s2"}, nil
	}
	ms.jsonGetFn = func(_ context.Context, key string, _ ...string) ([]byte, error) {
		id := key[len("catalog:asset:storyboard:"):]
		raw, _ := json.Marshal([]domasset.Asset{{ID: id, Kind: domasset.KindStoryboard}})
		return raw, nil
	}

	got, err := repo.ListKind(ctx, domasset.KindStoryboard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "s1" || got[1].ID != "s2" {
		t.Errorf("unexpected listing: %+v", got)
	}
}

func TestListKind_SkipsVanishedDocs(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.lrangeFn = func(_ context.Context, _ string, _, _ int64) ([]string, error) {
		return []string{"gone", "s2"}, nil
	}
	ms.jsonGetFn = func(_ context.Context, key string, _ ...string) ([]byte, error) {
		if key == "catalog:asset:storyboard:gone" {
			return nil, db.ErrKeyNotFound
		}
		raw, _ := json.Marshal([]domasset.Asset{{ID: "s2"}})
		return raw, nil
	}

	got, err := repo.ListKind(ctx, domasset.KindStoryboard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "s2" {
		t.Errorf("unexpected listing: %+v", got)
	}
}

// --- IncrementShared ---

func TestIncrementShared(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.numIncrFn = func(_ context.Context, key, path string, delta float64) (float64, error) {
		if key != "catalog:asset:kpi:kpi-1" {
			t.Errorf("unexpected key: %s", key)
		}
		if path != "$.sharedCount" {
			t.Errorf("unexpected path: %s", path)
		}
		if delta != 1 {
			t.Errorf("unexpected delta: %v", delta)
		}
		return 4, nil
	}

	n, err := repo.IncrementShared(ctx, domasset.KindKPI, "kpi-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4, got %d", n)
	}
}

func TestIncrementShared_NotFound(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.numIncrFn = func(_ context.Context, _, _ string, _ float64) (float64, error) {
		return 0, db.ErrKeyNotFound
	}

	_, err := repo.IncrementShared(ctx, domasset.KindKPI, "ghost")
	if !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
}

// --- decodeAsset ---

func TestDecodeAsset_ObjectForm(t *testing.T) {
	raw, _ := json.Marshal(storedKPI())
	a, err := decodeAsset(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != "kpi-1" {
		t.Errorf("unexpected asset: %+v", a)
	}
}

func TestDecodeAsset_EmptyArray(t *testing.T) {
	_, err := decodeAsset([]byte("[]"))
	if !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound, got %v", err)
	}
}

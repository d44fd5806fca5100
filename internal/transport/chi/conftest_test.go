package chi

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	domasset "github.com/kailas-cloud/catalogd/internal/domain/asset"
	domreq "github.com/kailas-cloud/catalogd/internal/domain/request"
	domsearch "github.com/kailas-cloud/catalogd/internal/domain/search"
	cataloguc "github.com/kailas-cloud/catalogd/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/catalogd/internal/usecase/health"
	requestuc "github.com/kailas-cloud/catalogd/internal/usecase/request"
	searchuc "github.com/kailas-cloud/catalogd/internal/usecase/search"
)

// mockAssetRepo implements catalog.Repository with overridable functions.
type mockAssetRepo struct {
	createFunc          func(ctx context.Context, a *domasset.Asset) error
	getFunc             func(ctx context.Context, kind domasset.Kind, id string) (domasset.Asset, error)
	getAnyFunc          func(ctx context.Context, id string) (domasset.Asset, error)
	listKindFunc        func(ctx context.Context, kind domasset.Kind) ([]domasset.Asset, error)
	saveFunc            func(ctx context.Context, a *domasset.Asset) error
	incrementSharedFunc func(ctx context.Context, kind domasset.Kind, id string) (int, error)
}

func (m *mockAssetRepo) Create(ctx context.Context, a *domasset.Asset) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepo) Get(ctx context.Context, kind domasset.Kind, id string) (domasset.Asset, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, kind, id)
	}
	return domasset.Asset{}, nil
}

func (m *mockAssetRepo) GetAny(ctx context.Context, id string) (domasset.Asset, error) {
	if m.getAnyFunc != nil {
		return m.getAnyFunc(ctx, id)
	}
	return domasset.Asset{}, nil
}

func (m *mockAssetRepo) ListKind(ctx context.Context, kind domasset.Kind) ([]domasset.Asset, error) {
	if m.listKindFunc != nil {
		return m.listKindFunc(ctx, kind)
	}
	return nil, nil
}

func (m *mockAssetRepo) Save(ctx context.Context, a *domasset.Asset) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepo) IncrementShared(ctx context.Context, kind domasset.Kind, id string) (int, error) {
	if m.incrementSharedFunc != nil {
		return m.incrementSharedFunc(ctx, kind, id)
	}
	return 0, nil
}

// mockSearchLog implements search.Log.
type mockSearchLog struct {
	recordFunc func(ctx context.Context, rec domsearch.QueryRecord) error
	recentFunc func(ctx context.Context, n int) ([]domsearch.QueryRecord, error)
}

func (m *mockSearchLog) Record(ctx context.Context, rec domsearch.QueryRecord) error {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, rec)
	}
	return nil
}

func (m *mockSearchLog) Recent(ctx context.Context, n int) ([]domsearch.QueryRecord, error) {
	if m.recentFunc != nil {
		return m.recentFunc(ctx, n)
	}
	return nil, nil
}

// mockRequestRepo implements request.Repository.
type mockRequestRepo struct {
	createFunc func(ctx context.Context, req *domreq.Request) error
	listFunc   func(ctx context.Context) ([]domreq.Request, error)
}

func (m *mockRequestRepo) Create(ctx context.Context, req *domreq.Request) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepo) List(ctx context.Context) ([]domreq.Request, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

// mockPinger implements health.DBPinger.
type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// testServer builds a full router backed by the given mocks.
func testServer(assets *mockAssetRepo, log *mockSearchLog, reqs *mockRequestRepo, ping *mockPinger) http.Handler {
	if assets == nil {
		assets = &mockAssetRepo{}
	}
	if log == nil {
		log = &mockSearchLog{}
	}
	if reqs == nil {
		reqs = &mockRequestRepo{}
	}
	if ping == nil {
		ping = &mockPinger{}
	}

	catalogSvc := cataloguc.New(assets)
	searchSvc := searchuc.New(catalogAdapter{assets}, log, 5)
	requestSvc := requestuc.New(reqs)
	healthSvc := healthuc.New(ping)

	return NewServer(catalogSvc, searchSvc, requestSvc, healthSvc, zap.NewNop()).Routes()
}

// catalogAdapter narrows the asset repo to the search lister contract.
type catalogAdapter struct {
	repo *mockAssetRepo
}

func (c catalogAdapter) ListKind(ctx context.Context, kind domasset.Kind) ([]domasset.Asset, error) {
	return c.repo.ListKind(ctx, kind)
}

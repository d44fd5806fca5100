package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/catalogd/internal/db"
	dbRedis "github.com/kailas-cloud/catalogd/internal/db/redis"
	domasset "github.com/kailas-cloud/catalogd/internal/domain/asset"
	domreq "github.com/kailas-cloud/catalogd/internal/domain/request"
	assetrepo "github.com/kailas-cloud/catalogd/internal/repository/asset"
	requestrepo "github.com/kailas-cloud/catalogd/internal/repository/request"
	searchlogrepo "github.com/kailas-cloud/catalogd/internal/repository/searchlog"
	cataloguc "github.com/kailas-cloud/catalogd/internal/usecase/catalog"
	requestuc "github.com/kailas-cloud/catalogd/internal/usecase/request"
	searchuc "github.com/kailas-cloud/catalogd/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute the services.
type catalogUseCase interface {
	ListAll(ctx context.Context) ([]domasset.Summary, error)
	ListKind(ctx context.Context, kind domasset.Kind) ([]domasset.Summary, error)
	Featured(ctx context.Context) ([]domasset.Summary, error)
	FindByID(ctx context.Context, id string) (domasset.Asset, error)
	Create(ctx context.Context, kind domasset.Kind, draft domasset.Asset) (domasset.Asset, error)
	IncrementShared(ctx context.Context, id string) (domasset.Asset, error)
	SetFavorited(ctx context.Context, id string, favorited bool) (domasset.Asset, error)
	SetAccess(ctx context.Context, id, kindTag, accessTag string) (domasset.Summary, error)
}

type searchUseCase interface {
	Search(ctx context.Context, query, user string) (searchuc.Result, error)
	RecentQueries(ctx context.Context) ([]string, error)
}

type requestUseCase interface {
	Create(ctx context.Context, title, category, description, purpose, requestedByID string) (domreq.Request, error)
	List(ctx context.Context) ([]domreq.Request, error)
}

// Client is the catalogd SDK entry point.
type Client struct {
	store      db.Store
	catalogSvc catalogUseCase
	searchSvc  searchUseCase
	requestSvc requestUseCase
}

// New creates a catalog Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix:      "catalog:",
		recentQueries:  5,
		searchLogDepth: 1000,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("catalog: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("catalog: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	assetRepo := assetrepo.New(store, cfg.keyPrefix)
	requestRepo := requestrepo.New(store, cfg.keyPrefix)
	searchLog := searchlogrepo.New(store, cfg.keyPrefix, cfg.searchLogDepth)

	catalogSvc := cataloguc.New(assetRepo).WithFeaturedLimits(cfg.perRank, cfg.maxFeatured)

	return &Client{
		store:      store,
		catalogSvc: catalogSvc,
		searchSvc:  searchuc.New(assetRepo, searchLog, cfg.recentQueries),
		requestSvc: requestuc.New(requestRepo),
	}
}

// Close releases the database connection.
func (c *Client) Close() {
	c.store.Close()
}

// Ping checks database availability.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("catalog: ping: %w", err)
	}
	return nil
}

// Assets lists every asset summary, kinds in fixed order.
func (c *Client) Assets(ctx context.Context) ([]Summary, error) {
	return c.catalogSvc.ListAll(ctx)
}

// AssetsByKind lists the summaries of one asset kind.
func (c *Client) AssetsByKind(ctx context.Context, kind Kind) ([]Summary, error) {
	return c.catalogSvc.ListKind(ctx, kind)
}

// Featured returns the combined favorited/shared ranking.
func (c *Client) Featured(ctx context.Context) ([]Summary, error) {
	return c.catalogSvc.Featured(ctx)
}

// Asset fetches a full asset by id, probing the kinds in fixed order.
func (c *Client) Asset(ctx context.Context, id string) (Asset, error) {
	return c.catalogSvc.FindByID(ctx, id)
}

// CreateAsset validates and stores a new asset of the given kind.
func (c *Client) CreateAsset(ctx context.Context, kind Kind, draft Asset) (Asset, error) {
	return c.catalogSvc.Create(ctx, kind, draft)
}

// Share atomically increments the share counter and returns the asset.
func (c *Client) Share(ctx context.Context, id string) (Asset, error) {
	return c.catalogSvc.IncrementShared(ctx, id)
}

// Favorite sets the favorited flag; repeated calls are idempotent.
func (c *Client) Favorite(ctx context.Context, id string, favorited bool) (Asset, error) {
	return c.catalogSvc.SetFavorited(ctx, id, favorited)
}

// SetAccess changes the access state of an asset within one named kind.
func (c *Client) SetAccess(ctx context.Context, id string, kind Kind, access Access) (Summary, error) {
	return c.catalogSvc.SetAccess(ctx, id, string(kind), string(access))
}

// Search matches a query against all assets and logs it.
func (c *Client) Search(ctx context.Context, query, user string) (SearchResult, error) {
	return c.searchSvc.Search(ctx, query, user)
}

// RecentQueries returns the last logged query strings, newest first.
func (c *Client) RecentQueries(ctx context.Context) ([]string, error) {
	return c.searchSvc.RecentQueries(ctx)
}

// CreateRequest submits an asset request.
func (c *Client) CreateRequest(ctx context.Context, title, category, description, purpose, requestedByID string) (Request, error) {
	return c.requestSvc.Create(ctx, title, category, description, purpose, requestedByID)
}

// Requests lists all submitted asset requests in submission order.
func (c *Client) Requests(ctx context.Context) ([]Request, error) {
	return c.requestSvc.List(ctx)
}

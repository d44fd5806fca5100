package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kailas-cloud/catalogd/internal/db"
	domreq "github.com/kailas-cloud/catalogd/internal/domain/request"
)

// store is the consumer interface for requests (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	RPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// Repo stores asset requests as append-only JSON documents.
type Repo struct {
	store  store
	prefix string
	newID  func() string
}

// New creates a request repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix, newID: uuid.NewString}
}

// WithIDFunc overrides id generation (test-only).
func (r *Repo) WithIDFunc(f func() string) *Repo {
	r.newID = f
	return r
}

// Create assigns an id and persists a new request record.
func (r *Repo) Create(ctx context.Context, req *domreq.Request) error {
	req.ID = r.newID()

	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	if err := r.store.JSONSet(ctx, r.key(req.ID), "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", req.ID, err)
	}
	if err := r.store.RPush(ctx, r.journalKey(), req.ID); err != nil {
		return fmt.Errorf("journal %s: %w", req.ID, err)
	}
	return nil
}

// List returns all requests in journal (insertion) order.
func (r *Repo) List(ctx context.Context) ([]domreq.Request, error) {
	ids, err := r.store.LRange(ctx, r.journalKey(), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}

	out := make([]domreq.Request, 0, len(ids))
	for _, id := range ids {
		raw, err := r.store.JSONGet(ctx, r.key(id), "$")
		if err != nil {
			if errors.Is(err, db.ErrKeyNotFound) {
				continue
			}
			return nil, fmt.Errorf("json.get %s: %w", id, err)
		}
		req, err := decodeRequest(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

func (r *Repo) key(id string) string {
	return fmt.Sprintf("%srequest:%s", r.prefix, id)
}

func (r *Repo) journalKey() string {
	return r.prefix + "request:ids"
}

func decodeRequest(raw []byte) (domreq.Request, error) {
	var many []domreq.Request
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
		return many[0], nil
	}

	var req domreq.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return domreq.Request{}, fmt.Errorf("unmarshal request: %w", err)
	}
	return req, nil
}

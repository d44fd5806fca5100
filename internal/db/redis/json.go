package redis

import (
	"context"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/catalogd/internal/db"
)

// JSONSet stores a JSON document at the given key and path.
func (s *Store) JSONSet(ctx context.Context, key, path string, data []byte) error {
	cmd := s.b().Arbitrary("JSON.SET").Keys(key).Args(path, string(data)).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpJSONSet, Err: err}
	}
	return nil
}

// JSONGet retrieves a JSON document by key and optional paths.
func (s *Store) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	args := make([]string, len(paths))
	copy(args, paths)

	cmd := s.b().Arbitrary("JSON.GET").Keys(key).Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: db.OpJSONGet, Err: err}
	}
	if raw == "" {
		return nil, db.ErrKeyNotFound
	}
	return []byte(raw), nil
}

// JSONNumIncrBy atomically increments a numeric value inside a JSON document
// and returns the new value. The path must address exactly one number.
func (s *Store) JSONNumIncrBy(ctx context.Context, key, path string, delta float64) (float64, error) {
	arg := strconv.FormatFloat(delta, 'f', -1, 64)
	cmd := s.b().Arbitrary("JSON.NUMINCRBY").Keys(key).Args(path, arg).Build()
	raw, err := s.do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return 0, db.ErrKeyNotFound
		}
		return 0, &db.Error{Op: db.OpJSONNumIncrBy, Err: err}
	}
	return parseNumIncrResult(raw)
}

// parseNumIncrResult handles both scalar ("3") and JSONPath array ("[3]")
// reply formats of JSON.NUMINCRBY.
func parseNumIncrResult(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &db.Error{Op: db.OpJSONNumIncrBy, Err: err}
	}
	return n, nil
}

// SetNX stores a value only when the key does not exist yet.
// Returns false without error when the key is already present.
func (s *Store) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	cmd := s.b().Set().Key(key).Value(string(value)).Nx().Build()
	err := s.do(ctx, cmd).Error()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, &db.Error{Op: db.OpSetNX, Err: err}
	}
	return true, nil
}

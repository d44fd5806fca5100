package asset

import (
	"context"
	"testing"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetFn func(ctx context.Context, key, path string, data []byte) error
	jsonGetFn func(ctx context.Context, key string, paths ...string) ([]byte, error)
	numIncrFn func(ctx context.Context, key, path string, delta float64) (float64, error)
	setNXFn   func(ctx context.Context, key string, value []byte) (bool, error)
	rpushFn   func(ctx context.Context, key string, values ...string) error
	lrangeFn  func(ctx context.Context, key string, start, stop int64) ([]string, error)
}

func (m *mockStore) JSONSet(ctx context.Context, key, path string, data []byte) error {
	if m.jsonSetFn != nil {
		return m.jsonSetFn(ctx, key, path, data)
	}
	return nil
}

func (m *mockStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key, paths...)
	}
	return []byte("[]"), nil
}

func (m *mockStore) JSONNumIncrBy(ctx context.Context, key, path string, delta float64) (float64, error) {
	if m.numIncrFn != nil {
		return m.numIncrFn(ctx, key, path, delta)
	}
	return 0, nil
}

func (m *mockStore) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	if m.setNXFn != nil {
		return m.setNXFn(ctx, key, value)
	}
	return true, nil
}

func (m *mockStore) RPush(ctx context.Context, key string, values ...string) error {
	if m.rpushFn != nil {
		return m.rpushFn(ctx, key, values...)
	}
	return nil
}

func (m *mockStore) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	if m.lrangeFn != nil {
		return m.lrangeFn(ctx, key, start, stop)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, "catalog:").WithIDFunc(func() string { return "fixed-id" })
	return repo, ms
}

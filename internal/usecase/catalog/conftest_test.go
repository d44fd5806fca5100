package catalog

import (
	"context"

	domasset "github.com/kailas-cloud/catalogd/internal/domain/asset"
)

// mockRepo implements Repository with overridable functions.
type mockRepo struct {
	createFunc          func(ctx context.Context, a *domasset.Asset) error
	getFunc             func(ctx context.Context, kind domasset.Kind, id string) (domasset.Asset, error)
	getAnyFunc          func(ctx context.Context, id string) (domasset.Asset, error)
	listKindFunc        func(ctx context.Context, kind domasset.Kind) ([]domasset.Asset, error)
	saveFunc            func(ctx context.Context, a *domasset.Asset) error
	incrementSharedFunc func(ctx context.Context, kind domasset.Kind, id string) (int, error)
}

func (m *mockRepo) Create(ctx context.Context, a *domasset.Asset) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, a)
	}
	return nil
}

func (m *mockRepo) Get(ctx context.Context, kind domasset.Kind, id string) (domasset.Asset, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, kind, id)
	}
	return domasset.Asset{}, nil
}

func (m *mockRepo) GetAny(ctx context.Context, id string) (domasset.Asset, error) {
	if m.getAnyFunc != nil {
		return m.getAnyFunc(ctx, id)
	}
	return domasset.Asset{}, nil
}

func (m *mockRepo) ListKind(ctx context.Context, kind domasset.Kind) ([]domasset.Asset, error) {
	if m.listKindFunc != nil {
		return m.listKindFunc(ctx, kind)
	}
	return nil, nil
}

func (m *mockRepo) Save(ctx context.Context, a *domasset.Asset) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, a)
	}
	return nil
}

func (m *mockRepo) IncrementShared(ctx context.Context, kind domasset.Kind, id string) (int, error) {
	if m.incrementSharedFunc != nil {
		return m.incrementSharedFunc(ctx, kind, id)
	}
	return 0, nil
}

package dispatch

import (
	"context"
	"time"

	"searchpage-api/core/domain"
)

// mockSearchProvider is a mock implementation of the SearchProvider interface
type mockSearchProvider struct {
	searchFunc func(ctx context.Context, query, location string, numResults int) (*domain.SearchPayload, error)
	calls      int
}

func (m *mockSearchProvider) Search(ctx context.Context, query, location string, numResults int) (*domain.SearchPayload, error) {
	m.calls++
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, location, numResults)
	}
	return &domain.SearchPayload{}, nil
}

// mockRecencyStore is a mock implementation of the RecencyStore interface
type mockRecencyStore struct {
	appendFunc func(ctx context.Context, query string, ts time.Time) error
	appended   chan string
}

func (m *mockRecencyStore) Append(ctx context.Context, query string, ts time.Time) error {
	if m.appended != nil {
		defer func() { m.appended <- query }()
	}
	if m.appendFunc != nil {
		return m.appendFunc(ctx, query, ts)
	}
	return nil
}

func (m *mockRecencyStore) List(ctx context.Context, limit int) ([]domain.RecencyEntry, error) {
	return nil, nil
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc func(ctx context.Context, key string) ([]byte, error)
	setFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return nil
}

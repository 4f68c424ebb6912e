package geo

import (
	"context"
	"time"

	"searchpage-api/core/domain"
)

// mockGeocoder is a mock implementation of the Geocoder interface
type mockGeocoder struct {
	geocodeFunc func(ctx context.Context, address string, bounds *domain.BoundingBox) ([]domain.GeoCandidate, error)
	reverseFunc func(ctx context.Context, point domain.GeoPoint) (string, error)
	calls       int
}

func (m *mockGeocoder) Geocode(ctx context.Context, address string, bounds *domain.BoundingBox) ([]domain.GeoCandidate, error) {
	m.calls++
	if m.geocodeFunc != nil {
		return m.geocodeFunc(ctx, address, bounds)
	}
	return nil, nil
}

func (m *mockGeocoder) ReverseGeocode(ctx context.Context, point domain.GeoPoint) (string, error) {
	if m.reverseFunc != nil {
		return m.reverseFunc(ctx, point)
	}
	return "", nil
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.gets++
	return m.store[key], nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.sets++
	m.store[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.store, key)
	return nil
}

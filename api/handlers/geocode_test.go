package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"searchpage-api/api/dto/responses"
	"searchpage-api/core/domain"
)

// mockGeocodeService is a mock implementation of the geo service
type mockGeocodeService struct {
	locateFunc     func(ctx context.Context, address string, bounds *domain.BoundingBox) *domain.GeoPoint
	cityCenterFunc func(ctx context.Context, city string) (*domain.GeoPoint, *domain.BoundingBox)
	reverseFunc    func(ctx context.Context, point domain.GeoPoint) string
}

func (m *mockGeocodeService) Locate(ctx context.Context, address string, bounds *domain.BoundingBox) *domain.GeoPoint {
	if m.locateFunc != nil {
		return m.locateFunc(ctx, address, bounds)
	}
	return nil
}

func (m *mockGeocodeService) CityCenter(ctx context.Context, city string) (*domain.GeoPoint, *domain.BoundingBox) {
	if m.cityCenterFunc != nil {
		return m.cityCenterFunc(ctx, city)
	}
	return nil, nil
}

func (m *mockGeocodeService) ReverseCity(ctx context.Context, point domain.GeoPoint) string {
	if m.reverseFunc != nil {
		return m.reverseFunc(ctx, point)
	}
	return ""
}

func TestGeocodeHandler_ResolvedAddress(t *testing.T) {
	service := &mockGeocodeService{
		locateFunc: func(ctx context.Context, address string, bounds *domain.BoundingBox) *domain.GeoPoint {
			return &domain.GeoPoint{Latitude: 30.26, Longitude: -97.74}
		},
	}

	handler := NewGeocodeHandler(service)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/geocode", map[string]interface{}{
		"address": "401 Congress Ave",
	})

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var body responses.GeocodeResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !body.Found || body.Point == nil {
		t.Fatal("Expected a resolved point")
	}
	if body.Point.Latitude != 30.26 {
		t.Errorf("Expected latitude 30.26, got %v", body.Point.Latitude)
	}
}

func TestGeocodeHandler_UnresolvedAddressReportsNotFound(t *testing.T) {
	handler := NewGeocodeHandler(&mockGeocodeService{})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/geocode", map[string]interface{}{
		"address": "nowhere in particular",
	})

	if resp.Code != 200 {
		t.Fatalf("Expected status 200 for an unresolved address, got %d", resp.Code)
	}

	var body responses.GeocodeResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Found || body.Point != nil {
		t.Error("Expected found=false and no point")
	}
}

func TestGeocodeHandler_CityBuildsBounds(t *testing.T) {
	austin := domain.GeoPoint{Latitude: 30.2672, Longitude: -97.7431}
	box := domain.BoundingBox{North: 30.30, South: 30.23, East: -97.71, West: -97.78}

	var gotBounds *domain.BoundingBox
	service := &mockGeocodeService{
		cityCenterFunc: func(ctx context.Context, city string) (*domain.GeoPoint, *domain.BoundingBox) {
			if city != "Austin, TX" {
				t.Errorf("Expected city 'Austin, TX', got %q", city)
			}
			return &austin, &box
		},
		locateFunc: func(ctx context.Context, address string, bounds *domain.BoundingBox) *domain.GeoPoint {
			gotBounds = bounds
			return &austin
		},
	}

	handler := NewGeocodeHandler(service)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/geocode", map[string]interface{}{
		"address": "401 Congress Ave",
		"city":    "Austin, TX",
	})

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}
	if gotBounds == nil {
		t.Fatal("Expected city bounds to be passed to Locate")
	}
	if *gotBounds != box {
		t.Errorf("Expected bounds %+v, got %+v", box, *gotBounds)
	}
}

func TestGeocodeHandler_LocateCity(t *testing.T) {
	service := &mockGeocodeService{
		reverseFunc: func(ctx context.Context, point domain.GeoPoint) string {
			return "Austin, TX"
		},
	}

	handler := NewGeocodeHandler(service)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/locate?lat=30.2672&lng=-97.7431")
	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var body responses.LocateResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.City != "Austin, TX" {
		t.Errorf("Expected city 'Austin, TX', got %q", body.City)
	}
}

// ABOUTME: Geocoding handlers for the Huma API
// ABOUTME: Resolves business addresses to map coordinates with city-bounds rejection

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"searchpage-api/api/dto/requests"
	"searchpage-api/api/dto/responses"
	"searchpage-api/core/domain"
)

// GeocodeService interface defines the methods needed from the geo service
type GeocodeService interface {
	Locate(ctx context.Context, address string, bounds *domain.BoundingBox) *domain.GeoPoint
	CityCenter(ctx context.Context, city string) (*domain.GeoPoint, *domain.BoundingBox)
	ReverseCity(ctx context.Context, point domain.GeoPoint) string
}

// GeocodeHandler handles geocoding HTTP requests
type GeocodeHandler struct {
	service GeocodeService
}

// NewGeocodeHandler creates a new geocode handler
func NewGeocodeHandler(service GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{service: service}
}

// RegisterRoutes registers the geocoding routes
func (h *GeocodeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "geocodeAddress",
		Method:      http.MethodPost,
		Path:        "/geocode",
		Summary:     "Resolve coordinates for a business address",
		Description: "Prefers pin-accurate matches inside the city's bounding box. A failed resolve reports found=false rather than an error so the entry still renders without a marker",
		Tags:        []string{"Geocoding"},
	}, h.GeocodeAddress)

	huma.Register(api, huma.Operation{
		OperationID: "locateCity",
		Method:      http.MethodGet,
		Path:        "/locate",
		Summary:     "Name the locality at a coordinate",
		Tags:        []string{"Geocoding"},
	}, h.LocateCity)
}

// GeocodeAddressInput defines the input for the GeocodeAddress operation
type GeocodeAddressInput struct {
	Body requests.GeocodeRequest `json:"body"`
}

// GeocodeAddressOutput defines the output for the GeocodeAddress operation
type GeocodeAddressOutput struct {
	Body responses.GeocodeResponse
}

// GeocodeAddress handles the POST /geocode endpoint. Calls for different
// addresses are independent: a failure here never blocks other entries.
func (h *GeocodeHandler) GeocodeAddress(ctx context.Context, input *GeocodeAddressInput) (*GeocodeAddressOutput, error) {
	var bounds *domain.BoundingBox
	if input.Body.City != "" {
		if _, box := h.service.CityCenter(ctx, input.Body.City); box != nil {
			bounds = box
		}
	}

	point := h.service.Locate(ctx, input.Body.Address, bounds)

	out := &GeocodeAddressOutput{}
	if point != nil {
		out.Body.Found = true
		out.Body.Point = &responses.PointResponse{
			Latitude:  point.Latitude,
			Longitude: point.Longitude,
		}
	}

	return out, nil
}

// LocateCityInput defines the input for the LocateCity operation
type LocateCityInput struct {
	Latitude  float64 `query:"lat" required:"true" doc:"Latitude"`
	Longitude float64 `query:"lng" required:"true" doc:"Longitude"`
}

// LocateCityOutput defines the output for the LocateCity operation
type LocateCityOutput struct {
	Body responses.LocateResponse
}

// LocateCity handles the GET /locate endpoint
func (h *GeocodeHandler) LocateCity(ctx context.Context, input *LocateCityInput) (*LocateCityOutput, error) {
	city := h.service.ReverseCity(ctx, domain.GeoPoint{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	})

	return &LocateCityOutput{Body: responses.LocateResponse{City: city}}, nil
}

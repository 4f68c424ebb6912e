// ABOUTME: Provider interfaces for the third-party collaborators behind the results page
// ABOUTME: Search results, generative text, and geocoding are all opaque dependencies

package interfaces

import (
	"context"

	"searchpage-api/core/domain"
)

// SearchProvider performs one outbound call to the search-results
// collaborator. Non-2xx responses surface as *errors.ExternalAPIError;
// transport failures and malformed bodies surface as wrapped errors.
type SearchProvider interface {
	Search(ctx context.Context, query string, location string, numResults int) (*domain.SearchPayload, error)
}

// AnswerProvider requests one text completion for a query. It must be
// callable repeatedly for the same query and must honor context
// cancellation, since the poller imposes an overall timeout.
type AnswerProvider interface {
	Generate(ctx context.Context, query string) (*domain.Completion, error)
}

// Geocoder resolves addresses to candidate coordinates and coordinates back
// to a locality name.
type Geocoder interface {
	// Geocode returns zero or more candidate matches for an address,
	// each tagged with the provider's precision type.
	Geocode(ctx context.Context, address string, bounds *domain.BoundingBox) ([]domain.GeoCandidate, error)

	// ReverseGeocode resolves a coordinate to a human-readable locality
	// string (city/region level).
	ReverseGeocode(ctx context.Context, point domain.GeoPoint) (string, error)
}

// CorrelationResolver maps an opaque search correlation token back to the
// query text it was issued for. Unknown tokens resolve to the token itself,
// which preserves compatibility with clients that pass the query text as
// the token.
type CorrelationResolver interface {
	Lookup(id string) string
}

// ABOUTME: Request DTOs for search-related API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

// SearchRequest represents the request body for submitting a query
type SearchRequest struct {
	// Query is the search text
	Query string `json:"query" required:"true" minLength:"1" maxLength:"400" doc:"Search query text"`

	// Location is an optional free-text location hint
	Location string `json:"location,omitempty" doc:"Optional location hint, e.g. a city name"`

	// NumResults is the requested organic result count
	NumResults int `json:"num_results,omitempty" minimum:"1" maximum:"20" default:"10" doc:"Number of organic results"`
}

// ApplyDefaults sets default values for optional fields
func (r *SearchRequest) ApplyDefaults() {
	if r.NumResults == 0 {
		r.NumResults = 10
	}
}

// AnswerRequest represents the request body for resolving a generated answer
type AnswerRequest struct {
	// SearchID is the correlation identifier from a prior search response.
	// Clients that predate correlation identifiers may pass the query text.
	SearchID string `json:"search_id" required:"true" minLength:"1" doc:"Correlation identifier from a search response"`
}

// GeocodeRequest represents the request body for locating a business address
type GeocodeRequest struct {
	// Address is the business address to resolve
	Address string `json:"address" required:"true" minLength:"1" doc:"Business address to resolve"`

	// City is an optional city name used to build a rejection bounding box
	City string `json:"city,omitempty" doc:"City name used to reject out-of-area matches"`
}

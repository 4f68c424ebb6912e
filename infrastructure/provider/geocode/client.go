// ABOUTME: Geocoding provider client speaking the Google Geocoding JSON protocol
// ABOUTME: Forward lookups carry a bounds hint; reverse lookups resolve locality names

package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"searchpage-api/core/domain"
	coreerrors "searchpage-api/core/errors"
	"searchpage-api/core/interfaces"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

	// reverseResultTypes restricts reverse lookups to locality-level names.
	reverseResultTypes = "locality|administrative_area_level_1|country"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Config holds geocoding provider configuration
type Config struct {
	APIKey  string
	BaseURL string
}

// Client implements the Geocoder interface against a Google-style geocoding
// endpoint.
type Client struct {
	http    interfaces.HTTPClient
	logger  interfaces.Logger
	apiKey  string
	baseURL string
}

// NewClient creates a new geocoding provider client
func NewClient(deps interfaces.Dependencies, cfg Config) (*Client, error) {
	if deps.HTTPClient == nil {
		return nil, errors.New("HTTP client is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("geocoding provider API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		http:    deps.HTTPClient,
		logger:  deps.Logger,
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
	}, nil
}

// geocodeResult is one entry of the provider's results array
type geocodeResult struct {
	Types            []string `json:"types"`
	FormattedAddress string   `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// geocodeResponse is the provider's response envelope
type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
	Results      []geocodeResult `json:"results"`
}

// Geocode resolves an address to candidate coordinates. A non-nil bounds is
// passed as a biasing hint; the provider may still return matches outside
// it, so callers filter on their side as well.
func (c *Client) Geocode(ctx context.Context, address string, bounds *domain.BoundingBox) ([]domain.GeoCandidate, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)
	if bounds != nil {
		params.Set("bounds", fmt.Sprintf("%f,%f|%f,%f", bounds.South, bounds.West, bounds.North, bounds.East))
	}

	body, err := c.call(ctx, params)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.GeoCandidate, 0, len(body.Results))
	for _, result := range body.Results {
		precision := ""
		if len(result.Types) > 0 {
			precision = result.Types[0]
		}
		candidates = append(candidates, domain.GeoCandidate{
			Point: domain.GeoPoint{
				Latitude:  result.Geometry.Location.Lat,
				Longitude: result.Geometry.Location.Lng,
			},
			Precision: precision,
			Address:   result.FormattedAddress,
		})
	}

	return candidates, nil
}

// ReverseGeocode resolves a coordinate to a locality-level name.
func (c *Client) ReverseGeocode(ctx context.Context, point domain.GeoPoint) (string, error) {
	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", point.Latitude, point.Longitude))
	params.Set("result_type", reverseResultTypes)
	params.Set("key", c.apiKey)

	body, err := c.call(ctx, params)
	if err != nil {
		return "", err
	}

	if len(body.Results) == 0 {
		return "", nil
	}

	return body.Results[0].FormattedAddress, nil
}

// call performs one provider request and decodes the shared envelope.
func (c *Client) call(ctx context.Context, params url.Values) (*geocodeResponse, error) {
	requestURL := c.baseURL + "?" + params.Encode()

	resp, err := c.http.Get(ctx, requestURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "geocoding provider request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body())
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("geocoding provider returned status %d", resp.StatusCode()),
			API:        "geocode",
		}
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body()).Decode(&body); err != nil {
		return nil, coreerrors.WrapError(err, "failed to decode geocoding provider response")
	}

	switch body.Status {
	case statusOK, statusZeroResults:
		return &body, nil
	default:
		message := body.Status
		if body.ErrorMessage != "" {
			message = fmt.Sprintf("%s: %s", body.Status, body.ErrorMessage)
		}
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    message,
			API:        "geocode",
		}
	}
}

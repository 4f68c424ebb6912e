package geocode

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"

	"searchpage-api/core/domain"
	coreerrors "searchpage-api/core/errors"
	"searchpage-api/core/interfaces"
)

// mockResponse implements the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (r *mockResponse) StatusCode() int      { return r.statusCode }
func (r *mockResponse) Body() io.ReadCloser  { return io.NopCloser(bytes.NewBufferString(r.body)) }
func (r *mockResponse) Header(string) string { return "" }

// mockHTTPClient implements the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	lastURL string
}

func (m *mockHTTPClient) Get(ctx context.Context, requestURL string) (interfaces.Response, error) {
	m.lastURL = requestURL
	if m.getFunc != nil {
		return m.getFunc(ctx, requestURL)
	}
	return &mockResponse{statusCode: 200, body: `{"status": "ZERO_RESULTS", "results": []}`}, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, requestURL string, body io.Reader) (interfaces.Response, error) {
	return nil, errors.New("not implemented")
}

func newTestClient(t *testing.T, http *mockHTTPClient) *Client {
	t.Helper()
	client, err := NewClient(interfaces.Dependencies{HTTPClient: http}, Config{APIKey: "test-key"})
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func TestGeocode_ParsesCandidatesWithPrecision(t *testing.T) {
	body := `{
		"status": "OK",
		"results": [
			{
				"types": ["street_address"],
				"formatted_address": "401 Congress Ave, Austin, TX 78701, USA",
				"geometry": {"location": {"lat": 30.2655, "lng": -97.7425}}
			},
			{
				"types": ["route"],
				"formatted_address": "Congress Ave, Austin, TX, USA",
				"geometry": {"location": {"lat": 30.27, "lng": -97.74}}
			}
		]
	}`

	http := &mockHTTPClient{
		getFunc: func(ctx context.Context, requestURL string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	client := newTestClient(t, http)

	candidates, err := client.Geocode(context.Background(), "401 Congress Ave", nil)
	if err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}

	if len(candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Precision != "street_address" {
		t.Errorf("Expected street_address precision, got %q", candidates[0].Precision)
	}
	if candidates[0].Point.Latitude != 30.2655 {
		t.Errorf("Unexpected latitude %v", candidates[0].Point.Latitude)
	}
	if candidates[1].Precision != "route" {
		t.Errorf("Expected route precision, got %q", candidates[1].Precision)
	}
}

func TestGeocode_BoundsHintInRequest(t *testing.T) {
	http := &mockHTTPClient{}
	client := newTestClient(t, http)

	bounds := &domain.BoundingBox{North: 30.30, South: 30.23, East: -97.71, West: -97.78}
	if _, err := client.Geocode(context.Background(), "401 Congress Ave", bounds); err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}

	parsed, err := url.Parse(http.lastURL)
	if err != nil {
		t.Fatal(err)
	}
	boundsParam := parsed.Query().Get("bounds")
	if boundsParam == "" {
		t.Fatal("Expected a bounds parameter")
	}
	if !strings.Contains(boundsParam, "|") {
		t.Errorf("Expected southwest|northeast format, got %q", boundsParam)
	}
}

func TestGeocode_ZeroResultsIsNotAnError(t *testing.T) {
	client := newTestClient(t, &mockHTTPClient{})

	candidates, err := client.Geocode(context.Background(), "nowhere", nil)
	if err != nil {
		t.Fatalf("Expected no error for zero results, got %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("Expected no candidates, got %d", len(candidates))
	}
}

func TestGeocode_ErrorStatusSurfaces(t *testing.T) {
	http := &mockHTTPClient{
		getFunc: func(ctx context.Context, requestURL string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `{"status": "REQUEST_DENIED", "error_message": "bad key", "results": []}`}, nil
		},
	}
	client := newTestClient(t, http)

	_, err := client.Geocode(context.Background(), "401 Congress Ave", nil)
	if err == nil {
		t.Fatal("Expected an error for a denied request")
	}
	if !coreerrors.IsExternalAPI(err) {
		t.Errorf("Expected an external API error, got %v", err)
	}
	if !strings.Contains(err.Error(), "REQUEST_DENIED") {
		t.Errorf("Expected the provider status in the message, got %v", err)
	}
}

func TestReverseGeocode_ResolvesLocality(t *testing.T) {
	body := `{
		"status": "OK",
		"results": [
			{"types": ["locality"], "formatted_address": "Austin, TX, USA", "geometry": {"location": {"lat": 30.2672, "lng": -97.7431}}}
		]
	}`

	http := &mockHTTPClient{
		getFunc: func(ctx context.Context, requestURL string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	client := newTestClient(t, http)

	name, err := client.ReverseGeocode(context.Background(), domain.GeoPoint{Latitude: 30.2672, Longitude: -97.7431})
	if err != nil {
		t.Fatalf("ReverseGeocode failed: %v", err)
	}
	if name != "Austin, TX, USA" {
		t.Errorf("Expected locality name, got %q", name)
	}

	parsed, _ := url.Parse(http.lastURL)
	if got := parsed.Query().Get("result_type"); got != reverseResultTypes {
		t.Errorf("Expected locality result_type filter, got %q", got)
	}
}

func TestReverseGeocode_NoMatchReturnsEmpty(t *testing.T) {
	client := newTestClient(t, &mockHTTPClient{})

	name, err := client.ReverseGeocode(context.Background(), domain.GeoPoint{})
	if err != nil {
		t.Fatalf("ReverseGeocode failed: %v", err)
	}
	if name != "" {
		t.Errorf("Expected empty name, got %q", name)
	}
}

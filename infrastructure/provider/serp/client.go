// ABOUTME: Search-results provider client speaking the SerpAPI-style JSON protocol
// ABOUTME: One GET per query; sections come back raw for the presenter to normalize

package serp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"searchpage-api/core/domain"
	coreerrors "searchpage-api/core/errors"
	"searchpage-api/core/interfaces"
	htmlutil "searchpage-api/pkg/utils/html"
)

const (
	defaultBaseURL = "https://serpapi.com/search.json"

	// Fixed provider parameters. The page always searches US-English Google
	// results regardless of the client's locale.
	engine       = "google"
	countryCode  = "us"
	languageCode = "en"
)

// Config holds search provider configuration
type Config struct {
	APIKey  string
	BaseURL string
}

// Client implements the SearchProvider interface against a SerpAPI-style
// endpoint.
type Client struct {
	http    interfaces.HTTPClient
	logger  interfaces.Logger
	apiKey  string
	baseURL string
}

// NewClient creates a new search provider client
func NewClient(deps interfaces.Dependencies, cfg Config) (*Client, error) {
	if deps.HTTPClient == nil {
		return nil, errors.New("HTTP client is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("search provider API key is required")
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

// Search performs one provider call and returns the raw payload sections.
func (c *Client) Search(ctx context.Context, query, location string, numResults int) (*domain.SearchPayload, error) {
	requestURL := c.buildURL(query, location, numResults)

	resp, err := c.http.Get(ctx, requestURL)
	if err != nil {
		return nil, coreerrors.WrapError(err, "search provider request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body())
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("search provider returned status %d", resp.StatusCode()),
			API:        "search",
		}
	}

	var body struct {
		OrganicResults   []domain.RawOrganic       `json:"organic_results"`
		KnowledgeGraph   *domain.RawKnowledgeGraph `json:"knowledge_graph"`
		LocalResults     json.RawMessage           `json:"local_results"`
		RelatedQuestions []domain.RawQuestion      `json:"related_questions"`
		RelatedSearches  []domain.RawRelatedSearch `json:"related_searches"`
		Error            string                    `json:"error"`
	}

	if err := json.NewDecoder(resp.Body()).Decode(&body); err != nil {
		return nil, coreerrors.WrapError(err, "failed to decode search provider response")
	}

	if body.Error != "" {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    body.Error,
			API:        "search",
		}
	}

	// Some providers leave markup in snippet text
	for i := range body.OrganicResults {
		body.OrganicResults[i].Snippet = htmlutil.StripHTML(body.OrganicResults[i].Snippet)
	}

	if c.logger != nil {
		c.logger.Debug("Search provider response", map[string]interface{}{
			"query":             query,
			"organic_count":     len(body.OrganicResults),
			"has_knowledge":     body.KnowledgeGraph != nil,
			"has_local_results": len(body.LocalResults) > 0,
		})
	}

	return &domain.SearchPayload{
		Organic:          body.OrganicResults,
		KnowledgeGraph:   body.KnowledgeGraph,
		LocalResults:     body.LocalResults,
		RelatedQuestions: body.RelatedQuestions,
		RelatedSearches:  body.RelatedSearches,
	}, nil
}

// buildURL assembles the provider request URL
func (c *Client) buildURL(query, location string, numResults int) string {
	params := url.Values{}
	params.Set("engine", engine)
	params.Set("q", query)
	params.Set("gl", countryCode)
	params.Set("hl", languageCode)
	params.Set("num", strconv.Itoa(numResults))
	params.Set("api_key", c.apiKey)
	if location != "" {
		params.Set("location", location)
	}

	return c.baseURL + "?" + params.Encode()
}

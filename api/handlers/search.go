// ABOUTME: Search handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for dispatching queries and rendering results

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"searchpage-api/api/dto/mappers"
	"searchpage-api/api/dto/requests"
	"searchpage-api/api/dto/responses"
	"searchpage-api/core/domain"
	"searchpage-api/core/history"
)

// DispatchService interface defines the methods needed from the dispatch service
type DispatchService interface {
	Dispatch(ctx context.Context, queryText, location string) (*domain.ResultBundle, error)
}

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	dispatch DispatchService
	session  *history.Session
}

// NewSearchHandler creates a new search handler. session may be nil, in
// which case dispatched bundles are not recorded in the session history.
func NewSearchHandler(dispatch DispatchService, session *history.Session) *SearchHandler {
	return &SearchHandler{
		dispatch: dispatch,
		session:  session,
	}
}

// RegisterRoutes registers all search-related routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "submitSearch",
		Method:      http.MethodPost,
		Path:        "/search",
		Summary:     "Submit a search query",
		Description: "Dispatches the query to the results provider and returns the faceted results page payload with a pending answer slot",
		Tags:        []string{"Search"},
	}, h.SubmitSearch)

	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Submit a search query via query string",
		Description: "Same as the POST form, accepting the query as the q parameter",
		Tags:        []string{"Search"},
	}, h.Search)
}

// SubmitSearchInput defines the input for the SubmitSearch operation
type SubmitSearchInput struct {
	Body requests.SearchRequest `json:"body"`
}

// SearchOutput defines the output for both search operations
type SearchOutput struct {
	Body responses.SearchResponse
}

// SubmitSearch handles the POST /search endpoint
func (h *SearchHandler) SubmitSearch(ctx context.Context, input *SubmitSearchInput) (*SearchOutput, error) {
	input.Body.ApplyDefaults()
	return h.run(ctx, input.Body.Query, input.Body.Location)
}

// SearchInput defines the query-string input for the GET form
type SearchInput struct {
	Query    string `query:"q" required:"true" minLength:"1" doc:"Search query text"`
	Location string `query:"location" doc:"Optional location hint"`
}

// Search handles the GET /search endpoint
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	return h.run(ctx, input.Query, input.Location)
}

func (h *SearchHandler) run(ctx context.Context, query, location string) (*SearchOutput, error) {
	bundle, err := h.dispatch.Dispatch(ctx, query, location)
	if err != nil {
		return nil, toHumaError(err)
	}

	if h.session != nil {
		h.session.Append(*bundle)
	}

	return &SearchOutput{Body: *mappers.ToSearchResponse(bundle)}, nil
}

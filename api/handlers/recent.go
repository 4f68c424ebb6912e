// ABOUTME: Recent-searches handler for the Huma API
// ABOUTME: Reads the recency store, degrading to an empty list on failure

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"searchpage-api/api/dto/mappers"
	"searchpage-api/api/dto/responses"
	"searchpage-api/core/domain"
	"searchpage-api/core/interfaces"
)

// RecentHandler handles recent-search HTTP requests
type RecentHandler struct {
	store  interfaces.RecencyStore
	logger interfaces.Logger
}

// NewRecentHandler creates a new recent-searches handler
func NewRecentHandler(store interfaces.RecencyStore, logger interfaces.Logger) *RecentHandler {
	return &RecentHandler{
		store:  store,
		logger: logger,
	}
}

// RegisterRoutes registers the recent-searches routes
func (h *RecentHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listRecentSearches",
		Method:      http.MethodGet,
		Path:        "/recent-searches",
		Summary:     "List recent searches",
		Description: "Returns recent queries newest-first. Store failures degrade to an empty list, never an error",
		Tags:        []string{"Search"},
	}, h.ListRecentSearches)
}

// ListRecentSearchesInput defines the input for the ListRecentSearches operation
type ListRecentSearchesInput struct {
	Limit int `query:"limit" minimum:"1" maximum:"50" doc:"Maximum number of entries to return"`
}

// ListRecentSearchesOutput defines the output for the ListRecentSearches operation
type ListRecentSearchesOutput struct {
	Body responses.RecentSearchesResponse
}

// ListRecentSearches handles the GET /recent-searches endpoint
func (h *RecentHandler) ListRecentSearches(ctx context.Context, input *ListRecentSearchesInput) (*ListRecentSearchesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = domain.DefaultRecencyLimit
	}

	var entries []domain.RecencyEntry
	if h.store != nil {
		var err error
		entries, err = h.store.List(ctx, limit)
		if err != nil {
			if h.logger != nil {
				h.logger.Warn("Failed to list recent searches", map[string]interface{}{
					"error": err.Error(),
				})
			}
			entries = nil
		}
	}

	return &ListRecentSearchesOutput{Body: *mappers.ToRecentSearchesResponse(entries)}, nil
}

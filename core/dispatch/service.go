// ABOUTME: Query dispatcher handles one-shot search submission to the results provider
// ABOUTME: Provides business logic for dispatching queries independent of the HTTP layer

package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"searchpage-api/core/domain"
	coreerrors "searchpage-api/core/errors"
	"searchpage-api/core/interfaces"
)

const (
	// defaultResultCount is the fixed result-count parameter sent with every
	// provider call.
	defaultResultCount = 10

	// payloadCacheTTL bounds how long an identical query is served from
	// cache instead of re-hitting the provider.
	payloadCacheTTL = 15 * time.Minute

	// recencyWriteTimeout bounds the fire-and-forget recency write so a
	// hung store cannot leak goroutines.
	recencyWriteTimeout = 5 * time.Second

	// maxQueryLength caps accepted query text.
	maxQueryLength = 400
)

// Service dispatches queries to the search-results provider.
type Service struct {
	deps         interfaces.Dependencies
	provider     interfaces.SearchProvider
	recency      interfaces.RecencyStore
	correlations *correlationRegistry
	resultCount  int
}

// NewService creates a new dispatch service. recency may be nil, in which
// case no recent-query records are written.
func NewService(deps interfaces.Dependencies, provider interfaces.SearchProvider, recency interfaces.RecencyStore) *Service {
	return &Service{
		deps:         deps,
		provider:     provider,
		recency:      recency,
		correlations: newCorrelationRegistry(),
		resultCount:  defaultResultCount,
	}
}

// validateQuery validates submitted query text. The caller is expected to
// guard against blank input; this is the backstop.
func (s *Service) validateQuery(query string) error {
	if query == "" {
		return &coreerrors.ValidationError{Field: "query", Message: "query cannot be empty"}
	}

	if len(query) > maxQueryLength {
		return &coreerrors.ValidationError{Field: "query", Message: fmt.Sprintf("query cannot exceed %d characters", maxQueryLength)}
	}

	return nil
}

// Dispatch issues exactly one outbound request to the search-results
// provider and returns the normalized bundle with a pending answer slot.
// The recency write is decoupled from the dispatch outcome: it happens
// whether or not the provider call succeeds, and its own failure is only
// logged.
func (s *Service) Dispatch(ctx context.Context, queryText, location string) (*domain.ResultBundle, error) {
	trimmed := strings.TrimSpace(queryText)
	if err := s.validateQuery(trimmed); err != nil {
		return nil, err
	}

	query := domain.Query{
		Text:        trimmed,
		Location:    strings.TrimSpace(location),
		SubmittedAt: time.Now(),
	}

	s.recordQuery(query)

	payload, err := s.fetchPayload(ctx, query)
	if err != nil {
		return nil, err
	}

	bundle := &domain.ResultBundle{
		SearchID: s.correlations.Register(query.Text),
		Query:    query,
		Payload:  *payload,
		Answer:   domain.PendingAnswer(),
	}

	return bundle, nil
}

// Lookup resolves a correlation identifier back to the query text it was
// issued for. Unknown identifiers resolve to themselves, preserving the
// legacy behavior where the token literally was the query text.
func (s *Service) Lookup(id string) string {
	return s.correlations.Lookup(id)
}

// fetchPayload returns the provider payload for a query, served from cache
// when an identical query was dispatched recently.
func (s *Service) fetchPayload(ctx context.Context, query domain.Query) (*domain.SearchPayload, error) {
	cacheKey := fmt.Sprintf("search:%s|%s", query.Text, query.Location)

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var payload domain.SearchPayload
			if err := json.Unmarshal(data, &payload); err == nil {
				return &payload, nil
			}
		}
	}

	payload, err := s.provider.Search(ctx, query.Text, query.Location, s.resultCount)
	if err != nil {
		return nil, err
	}

	if s.deps.Cache != nil {
		if data, err := json.Marshal(payload); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, payloadCacheTTL)
		}
	}

	return payload, nil
}

// recordQuery writes a recency entry without blocking or affecting the
// dispatch. The write runs on its own context so cancelling the request
// cannot abort it.
func (s *Service) recordQuery(query domain.Query) {
	if s.recency == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recencyWriteTimeout)
		defer cancel()

		if err := s.recency.Append(ctx, query.Text, query.SubmittedAt); err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Warn("Failed to record recent query", map[string]interface{}{
					"query": query.Text,
					"error": err.Error(),
				})
			}
		}
	}()
}

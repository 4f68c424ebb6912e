// ABOUTME: Flag-aware dispatch entry point for runtime rollout control
// ABOUTME: Lets payload caching and recency recording be toggled per request

package dispatch

import (
	"context"
	"strings"
	"time"

	"searchpage-api/core/domain"
	"searchpage-api/pkg/featureflags"
)

// DispatchWithFlags dispatches a query honoring feature flags carried on
// the context. CacheEnabled gates the payload cache; RecencyEnabled gates
// the recent-query write. Flags absent from the context count as disabled.
func (s *Service) DispatchWithFlags(ctx context.Context, queryText, location string) (*domain.ResultBundle, error) {
	trimmed := strings.TrimSpace(queryText)
	if err := s.validateQuery(trimmed); err != nil {
		return nil, err
	}

	query := domain.Query{
		Text:        trimmed,
		Location:    strings.TrimSpace(location),
		SubmittedAt: time.Now(),
	}

	if featureflags.IsEnabled(ctx, featureflags.RecencyEnabled) {
		s.recordQuery(query)
	} else if s.deps.Logger != nil {
		s.deps.Logger.Debug("Recency recording disabled by feature flag", map[string]interface{}{
			"query": query.Text,
		})
	}

	var (
		payload *domain.SearchPayload
		err     error
	)
	if featureflags.IsEnabled(ctx, featureflags.CacheEnabled) {
		payload, err = s.fetchPayload(ctx, query)
	} else {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Payload cache disabled by feature flag", map[string]interface{}{
				"query": query.Text,
			})
		}
		payload, err = s.provider.Search(ctx, query.Text, query.Location, s.resultCount)
	}
	if err != nil {
		return nil, err
	}

	return &domain.ResultBundle{
		SearchID: s.correlations.Register(query.Text),
		Query:    query,
		Payload:  *payload,
		Answer:   domain.PendingAnswer(),
	}, nil
}

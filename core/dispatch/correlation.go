// ABOUTME: Correlation registry mapping opaque search tokens to query text
// ABOUTME: Bounded in-process map; unknown tokens resolve to themselves

package dispatch

import (
	"sync"

	"github.com/google/uuid"
)

// maxCorrelations bounds the registry; the oldest entries are evicted first.
const maxCorrelations = 512

// correlationRegistry issues opaque correlation identifiers for dispatched
// queries and resolves them back to query text for answer polling. Two
// submissions of the same text get distinct identifiers.
type correlationRegistry struct {
	mu      sync.Mutex
	queries map[string]string
	order   []string
}

func newCorrelationRegistry() *correlationRegistry {
	return &correlationRegistry{
		queries: make(map[string]string),
	}
}

// Register issues a fresh identifier for the query text.
func (r *correlationRegistry) Register(query string) string {
	id := uuid.New().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.queries[id] = query
	r.order = append(r.order, id)

	for len(r.order) > maxCorrelations {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.queries, oldest)
	}

	return id
}

// Lookup resolves an identifier to its query text. An unknown identifier
// resolves to itself: callers that still pass raw query text as the token
// keep working.
func (r *correlationRegistry) Lookup(id string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if query, ok := r.queries[id]; ok {
		return query
	}
	return id
}

// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"
	"time"

	"searchpage-api/core/domain"
)

// RecencyStore persists past queries. Both operations are best-effort from
// the caller's perspective: Append failures are logged and discarded, and
// List failures degrade to an empty list. Neither may surface to the UI.
type RecencyStore interface {
	// Append records one submitted query.
	Append(ctx context.Context, query string, ts time.Time) error

	// List returns up to limit entries ordered newest-first.
	List(ctx context.Context, limit int) ([]domain.RecencyEntry, error)
}

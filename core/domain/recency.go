// ABOUTME: Recency entry domain model for the recent-queries store
// ABOUTME: Append-only records, read back newest-first with a small bound

package domain

import "time"

// RecencyEntry records one past query submission. Entries are created on
// successful dispatch and never mutated.
type RecencyEntry struct {
	// Query is the submitted query text.
	Query string

	// Timestamp is when the query was submitted.
	Timestamp time.Time
}

// DefaultRecencyLimit is the number of recent queries surfaced by default.
const DefaultRecencyLimit = 6

// ABOUTME: Query domain model for submitted searches
// ABOUTME: A query is immutable once submitted; identity is (text, submission time)

package domain

import "time"

// Query represents a single submitted search.
type Query struct {
	// Text is the search text. Never empty after trimming.
	Text string

	// Location is an optional free-text location hint (e.g. "Austin, Texas").
	Location string

	// SubmittedAt is when the query was submitted.
	SubmittedAt time.Time
}

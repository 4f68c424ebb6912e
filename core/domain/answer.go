// ABOUTME: Generated-answer domain model with tri-state resolution status
// ABOUTME: Produced asynchronously after a result bundle; never blocks initial render

package domain

// AnswerStatus is the resolution state of a generated answer.
type AnswerStatus string

const (
	// AnswerPending means resolution has not completed yet.
	AnswerPending AnswerStatus = "pending"

	// AnswerReady means Text holds a complete generated answer.
	AnswerReady AnswerStatus = "ready"

	// AnswerFailed means resolution gave up; Text holds a safe fallback.
	AnswerFailed AnswerStatus = "failed"
)

// GeneratedAnswer is the asynchronously produced answer slot of a bundle.
type GeneratedAnswer struct {
	// Text is empty while pending, the answer when ready, and a fixed
	// user-safe fallback when failed.
	Text string

	// Status is the tri-state resolution status.
	Status AnswerStatus
}

// PendingAnswer returns the initial answer slot for a fresh bundle.
func PendingAnswer() GeneratedAnswer {
	return GeneratedAnswer{Status: AnswerPending}
}

// Completion is one generative-text provider response.
type Completion struct {
	// Text is the completion text, possibly empty.
	Text string

	// Complete reports whether the provider finished the completion rather
	// than truncating or still working on it.
	Complete bool
}

// ABOUTME: Related-question normalization for the "people also ask" section
// ABOUTME: Questions without a non-trivial answer are dropped; order is preserved

package present

import (
	"fmt"
	"strings"

	"searchpage-api/core/domain"
)

// noAnswerPlaceholder is the provider's filler text for unanswered questions.
const noAnswerPlaceholder = "No answer available"

// ToFaqEntries filters out questions lacking a usable answer and maps the
// remainder 1:1 in provider order.
func ToFaqEntries(questions []domain.RawQuestion) []domain.FaqEntry {
	entries := make([]domain.FaqEntry, 0, len(questions))

	for _, question := range questions {
		answer := strings.TrimSpace(question.Snippet)
		if answer == "" || answer == noAnswerPlaceholder {
			continue
		}

		entries = append(entries, domain.FaqEntry{
			ID:       fmt.Sprintf("question-%d", len(entries)),
			Question: question.Question,
			Answer:   answer,
		})
	}

	return entries
}

// ABOUTME: Link entry normalization for organic results
// ABOUTME: Pure 1:1 mapping that preserves provider order

package present

import (
	"strings"

	"searchpage-api/core/domain"
)

// noDescription is the fixed fallback for results missing a snippet.
const noDescription = "No description available"

// ToLinkEntries maps raw organic results to link entry view models. Order
// is preserved from the provider. Leftover provider fields are bucketed as
// metadata; tags come from a small fixed set of source fields with empties
// filtered out.
func ToLinkEntries(organic []domain.RawOrganic) []domain.LinkEntry {
	entries := make([]domain.LinkEntry, 0, len(organic))

	for _, result := range organic {
		entry := domain.LinkEntry{
			Title:       result.Title,
			URL:         result.Link,
			Description: result.Snippet,
			Position:    result.Position,
		}

		if strings.TrimSpace(entry.Description) == "" {
			entry.Description = noDescription
		}

		if result.DisplayedLink != "" {
			entry.Breadcrumbs = []string{result.DisplayedLink}
		}

		for _, tag := range []string{result.Source, result.Date} {
			if tag != "" {
				entry.Tags = append(entry.Tags, tag)
			}
		}

		if len(result.Extra) > 0 {
			entry.Metadata = make(map[string]interface{}, len(result.Extra))
			for key, value := range result.Extra {
				entry.Metadata[key] = value
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

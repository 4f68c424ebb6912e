// ABOUTME: Fact panel normalization from raw knowledge-graph payloads
// ABOUTME: Pure functions; empty or placeholder-only panels are suppressed, not rendered

package present

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"searchpage-api/core/domain"
)

const (
	// placeholderTitle is the provider's stand-in title for an empty panel.
	placeholderTitle = "Knowledge Graph"

	// placeholderDescription is the provider's stand-in description.
	placeholderDescription = "No description available."

	// minMeaningfulAttributes is the count above which attributes alone
	// qualify a panel for rendering.
	minMeaningfulAttributes = 2
)

// deniedAttributeKeys are internal or duplicate keys never surfaced as
// fact rows. They are either rendered through dedicated sections or are
// provider bookkeeping.
var deniedAttributeKeys = map[string]struct{}{
	"entity_type":                          {},
	"knowledge_graph_search_link":          {},
	"serpapi_knowledge_graph_search_link":  {},
	"header_images":                        {},
	"source":                               {},
	"people_also_search_for":               {},
	"see_results_about":                    {},
	"list":                                 {},
	"type":                                 {},
	"kgmid":                                {},
	"nickname":                             {},
	"nickname_links":                       {},
	"neighborhoods_links":                  {},
	"mayor_links":                          {},
	"area1":                                {},
	"web_results":                          {},
	"web_results_link":                     {},
}

// attributePriority orders a handful of important attributes ahead of the
// alphabetical remainder.
var attributePriority = []string{
	"population",
	"mayor",
	"area",
	"designed_by",
	"developer",
	"first_appeared",
}

// ToFactPanel normalizes a raw knowledge-graph payload into a fact panel
// view model. Returns nil when the payload has nothing worth rendering: no
// usable title, no usable description, and no qualifying secondary content.
func ToFactPanel(kg *domain.RawKnowledgeGraph) *domain.FactPanel {
	if kg == nil {
		return nil
	}

	attributes := normalizeAttributes(mergedAttributes(kg))

	if !hasContent(kg, attributes) {
		return nil
	}

	panel := &domain.FactPanel{
		Title:               kg.Title,
		Type:                kg.Type,
		Description:         kg.Description,
		Images:              kg.HeaderImages,
		Source:              kg.Source,
		Attributes:          attributes,
		PeopleAlsoSearchFor: kg.PeopleAlsoSearchFor,
		SeeResultsAbout:     kg.SeeResultsAbout,
	}

	if panel.Title == "" {
		panel.Title = placeholderTitle
	}
	if panel.Description == "" {
		panel.Description = placeholderDescription
	}

	return panel
}

// hasContent decides whether the panel is worth rendering at all.
func hasContent(kg *domain.RawKnowledgeGraph, attributes []domain.FactAttribute) bool {
	if usableText(kg.Title, placeholderTitle) {
		return true
	}
	if usableText(kg.Description, placeholderDescription) {
		return true
	}

	// Placeholder title and description: only qualifying secondary content
	// saves the panel.
	return len(kg.HeaderImages) > 0 ||
		len(kg.PeopleAlsoSearchFor) > 0 ||
		len(kg.SeeResultsAbout) > 0 ||
		len(kg.List) > 0 ||
		len(attributes) > minMeaningfulAttributes
}

func usableText(value, placeholder string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed != "" && trimmed != placeholder && trimmed != strings.TrimSuffix(placeholder, ".")
}

// mergedAttributes merges the leftover top-level fields with the nested
// attributes map. Attributes take precedence on key collision.
func mergedAttributes(kg *domain.RawKnowledgeGraph) map[string]interface{} {
	merged := make(map[string]interface{}, len(kg.Extra)+len(kg.Attributes))
	for key, value := range kg.Extra {
		merged[key] = value
	}
	for key, value := range kg.Attributes {
		merged[key] = value
	}
	return merged
}

// normalizeAttributes filters the deny list and empty values, orders the
// remainder by the priority list then alphabetically, and flattens each
// value to display text.
func normalizeAttributes(merged map[string]interface{}) []domain.FactAttribute {
	keys := make([]string, 0, len(merged))
	for key, value := range merged {
		if _, denied := deniedAttributeKeys[key]; denied {
			continue
		}
		if isEmptyValue(value) {
			continue
		}
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		pi, pj := priorityIndex(keys[i]), priorityIndex(keys[j])
		if pi != pj {
			return pi < pj
		}
		return keys[i] < keys[j]
	})

	attributes := make([]domain.FactAttribute, 0, len(keys))
	for _, key := range keys {
		attributes = append(attributes, domain.FactAttribute{
			Key:   key,
			Label: formatAttributeKey(key),
			Value: formatAttributeValue(merged[key]),
		})
	}

	return attributes
}

func priorityIndex(key string) int {
	for i, p := range attributePriority {
		if p == key {
			return i
		}
	}
	return len(attributePriority)
}

func isEmptyValue(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []interface{}:
		return len(v) == 0
	case map[string]interface{}:
		return len(v) == 0
	default:
		return false
	}
}

// formatAttributeKey turns a provider key like "first_appeared" into
// display text like "First Appeared".
func formatAttributeKey(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// formatAttributeValue flattens an arbitrary attribute value to display
// text. Link-shaped objects collapse to their text; arrays join with
// separators; anything else falls back to a JSON rendering.
func formatAttributeValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			text := formatArrayItem(item)
			if text != "" {
				parts = append(parts, text)
			}
		}
		if len(parts) == 0 {
			return "-"
		}
		return strings.Join(parts, ", ")
	case map[string]interface{}:
		if len(v) == 0 {
			return "-"
		}
		if text := linkText(v); text != "" {
			return text
		}
		data, err := json.Marshal(v)
		if err != nil {
			return "-"
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatArrayItem(item interface{}) string {
	switch v := item.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case map[string]interface{}:
		return linkText(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// linkText extracts the display text of a link-shaped object, skipping the
// provider's "See more" filler entries.
func linkText(obj map[string]interface{}) string {
	for _, key := range []string{"text", "name", "title"} {
		if text, ok := obj[key].(string); ok && text != "" {
			if text == "See more" {
				return ""
			}
			return text
		}
	}
	return ""
}

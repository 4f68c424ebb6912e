// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between normalization logic and the API layer

package mappers

import (
	"time"

	"searchpage-api/api/dto/responses"
	"searchpage-api/core/domain"
	"searchpage-api/core/history"
	"searchpage-api/core/present"
)

// ToSearchResponse converts a dispatched result bundle into the faceted
// response shape, running the payload through the presenter functions.
func ToSearchResponse(bundle *domain.ResultBundle) *responses.SearchResponse {
	if bundle == nil {
		return nil
	}

	response := &responses.SearchResponse{
		SearchID:        bundle.SearchID,
		Query:           bundle.Query.Text,
		Location:        bundle.Query.Location,
		Links:           ToLinkEntryResponses(present.ToLinkEntries(bundle.Payload.Organic)),
		FactPanel:       ToFactPanelResponse(present.ToFactPanel(bundle.Payload.KnowledgeGraph)),
		LocalEntries:    ToLocalEntryResponses(present.ToLocalEntries(bundle.Payload.LocalResults)),
		FaqEntries:      ToFaqEntryResponses(present.ToFaqEntries(bundle.Payload.RelatedQuestions)),
		RelatedSearches: relatedSearchQueries(bundle.Payload.RelatedSearches),
		Answer:          ToAnswerResponse(bundle.Answer),
	}

	return response
}

// ToLinkEntryResponses converts normalized link entries to DTOs
func ToLinkEntryResponses(entries []domain.LinkEntry) []responses.LinkEntryResponse {
	out := make([]responses.LinkEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, responses.LinkEntryResponse{
			Title:       entry.Title,
			URL:         entry.URL,
			Description: entry.Description,
			Breadcrumbs: entry.Breadcrumbs,
			Position:    entry.Position,
			Tags:        entry.Tags,
			Metadata:    entry.Metadata,
		})
	}
	return out
}

// ToFactPanelResponse converts a fact panel to its DTO. Nil stays nil, which
// serializes as an omitted field.
func ToFactPanelResponse(panel *domain.FactPanel) *responses.FactPanelResponse {
	if panel == nil {
		return nil
	}

	response := &responses.FactPanelResponse{
		Title:               panel.Title,
		Type:                panel.Type,
		Description:         panel.Description,
		Images:              toImageResponses(panel.Images),
		PeopleAlsoSearchFor: toEntityResponses(panel.PeopleAlsoSearchFor),
		SeeResultsAbout:     toEntityResponses(panel.SeeResultsAbout),
	}

	if panel.Source != nil {
		response.Source = &responses.SourceResponse{
			Name: panel.Source.Name,
			Link: panel.Source.Link,
		}
	}

	for _, attr := range panel.Attributes {
		response.Attributes = append(response.Attributes, responses.FactAttributeResponse{
			Key:   attr.Key,
			Label: attr.Label,
			Value: attr.Value,
		})
	}

	return response
}

func toImageResponses(images []domain.RawImage) []responses.ImageResponse {
	if images == nil {
		return nil
	}

	out := make([]responses.ImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, responses.ImageResponse{
			Image:  img.Image,
			Source: img.Source,
		})
	}
	return out
}

func toEntityResponses(entities []domain.RawEntity) []responses.EntityResponse {
	if entities == nil {
		return nil
	}

	out := make([]responses.EntityResponse, 0, len(entities))
	for _, entity := range entities {
		out = append(out, responses.EntityResponse{
			Name:       entity.Name,
			Link:       entity.Link,
			Image:      entity.Image,
			Extensions: entity.Extensions,
		})
	}
	return out
}

// ToLocalEntryResponses converts local entries to DTOs. A nil input (no
// local section in the payload) stays nil; an empty slice stays empty.
func ToLocalEntryResponses(entries []domain.LocalEntry) []responses.LocalEntryResponse {
	if entries == nil {
		return nil
	}

	out := make([]responses.LocalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp := responses.LocalEntryResponse{
			ID:       entry.ID,
			Name:     entry.Name,
			Address:  entry.Address,
			Rating:   entry.Rating,
			Reviews:  entry.Reviews,
			Category: entry.Category,
			Features: entry.Features,
			Image:    entry.Image,
		}
		if entry.Point != nil {
			resp.Point = &responses.PointResponse{
				Latitude:  entry.Point.Latitude,
				Longitude: entry.Point.Longitude,
			}
		}
		out = append(out, resp)
	}
	return out
}

// ToFaqEntryResponses converts FAQ entries to DTOs
func ToFaqEntryResponses(entries []domain.FaqEntry) []responses.FaqEntryResponse {
	out := make([]responses.FaqEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, responses.FaqEntryResponse{
			ID:       entry.ID,
			Question: entry.Question,
			Answer:   entry.Answer,
		})
	}
	return out
}

// ToAnswerResponse converts a generated answer to its DTO
func ToAnswerResponse(answer domain.GeneratedAnswer) responses.AnswerResponse {
	return responses.AnswerResponse{
		Status: string(answer.Status),
		Text:   answer.Text,
	}
}

// ToRecentSearchesResponse converts recency entries to the list DTO
func ToRecentSearchesResponse(entries []domain.RecencyEntry) *responses.RecentSearchesResponse {
	response := &responses.RecentSearchesResponse{
		Searches: make([]responses.RecentSearchResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		response.Searches = append(response.Searches, responses.RecentSearchResponse{
			Query:     entry.Query,
			Timestamp: entry.Timestamp.Format(time.RFC3339),
		})
	}

	return response
}

// ToSessionResponse converts session history entries to the list DTO
func ToSessionResponse(entries []history.Entry) *responses.SessionResponse {
	response := &responses.SessionResponse{
		Entries: make([]responses.SessionEntryResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		response.Entries = append(response.Entries, responses.SessionEntryResponse{
			SearchID: entry.Bundle.SearchID,
			Query:    entry.Bundle.Query.Text,
			Expanded: entry.Expanded,
			Answer:   ToAnswerResponse(entry.Answer),
		})
	}

	return response
}

func relatedSearchQueries(searches []domain.RawRelatedSearch) []string {
	if len(searches) == 0 {
		return nil
	}

	queries := make([]string, 0, len(searches))
	for _, s := range searches {
		if s.Query != "" {
			queries = append(queries, s.Query)
		}
	}
	return queries
}

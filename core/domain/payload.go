// ABOUTME: Raw payload types for search provider responses
// ABOUTME: Preserves provider field shapes so the presenter can normalize them without network access

package domain

import "encoding/json"

// SearchPayload holds the sections of a search provider response before
// normalization. Optional sections are nil when the provider omitted them.
type SearchPayload struct {
	// Organic contains the standard web results in provider order.
	Organic []RawOrganic

	// KnowledgeGraph is the fact-panel source object, if present.
	KnowledgeGraph *RawKnowledgeGraph

	// LocalResults is the untouched local-business section. Providers return
	// either a bare array of places or an object wrapping one; the presenter
	// performs the tagged parse exactly once.
	LocalResults json.RawMessage

	// RelatedQuestions are "people also ask" entries, if present.
	RelatedQuestions []RawQuestion

	// RelatedSearches are suggested follow-up queries, if present.
	RelatedSearches []RawRelatedSearch
}

// RawOrganic is a single organic result as the provider returned it. Known
// fields are promoted; everything else lands in Extra so it can be surfaced
// as entry metadata.
type RawOrganic struct {
	Title         string
	Link          string
	Snippet       string
	DisplayedLink string
	Position      int
	Source        string
	Date          string
	Thumbnail     string
	Extra         map[string]interface{}
}

// organicKnownKeys are the fields promoted out of the raw object.
var organicKnownKeys = map[string]struct{}{
	"title":          {},
	"link":           {},
	"snippet":        {},
	"displayed_link": {},
	"position":       {},
	"source":         {},
	"date":           {},
	"thumbnail":      {},
}

// UnmarshalJSON promotes the known fields and buckets the rest into Extra.
func (o *RawOrganic) UnmarshalJSON(data []byte) error {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if v, ok := fields["title"].(string); ok {
		o.Title = v
	}
	if v, ok := fields["link"].(string); ok {
		o.Link = v
	}
	if v, ok := fields["snippet"].(string); ok {
		o.Snippet = v
	}
	if v, ok := fields["displayed_link"].(string); ok {
		o.DisplayedLink = v
	}
	if v, ok := fields["position"].(float64); ok {
		o.Position = int(v)
	}
	if v, ok := fields["source"].(string); ok {
		o.Source = v
	}
	if v, ok := fields["date"].(string); ok {
		o.Date = v
	}
	if v, ok := fields["thumbnail"].(string); ok {
		o.Thumbnail = v
	}

	for key := range fields {
		if _, known := organicKnownKeys[key]; known {
			continue
		}
		if o.Extra == nil {
			o.Extra = make(map[string]interface{})
		}
		o.Extra[key] = fields[key]
	}

	return nil
}

// MarshalJSON re-emits the provider's flat shape so payloads survive a
// cache round trip.
func (o RawOrganic) MarshalJSON() ([]byte, error) {
	fields := make(map[string]interface{}, len(o.Extra)+8)
	for key, value := range o.Extra {
		fields[key] = value
	}
	if o.Title != "" {
		fields["title"] = o.Title
	}
	if o.Link != "" {
		fields["link"] = o.Link
	}
	if o.Snippet != "" {
		fields["snippet"] = o.Snippet
	}
	if o.DisplayedLink != "" {
		fields["displayed_link"] = o.DisplayedLink
	}
	if o.Position != 0 {
		fields["position"] = o.Position
	}
	if o.Source != "" {
		fields["source"] = o.Source
	}
	if o.Date != "" {
		fields["date"] = o.Date
	}
	if o.Thumbnail != "" {
		fields["thumbnail"] = o.Thumbnail
	}
	return json.Marshal(fields)
}

// RawKnowledgeGraph is the provider's fact-panel object. Known structural
// fields are promoted; the remaining top-level fields are kept in Extra so
// they can be merged with the nested attributes map.
type RawKnowledgeGraph struct {
	Title               string
	Type                string
	Description         string
	HeaderImages        []RawImage
	Source              *RawSource
	PeopleAlsoSearchFor []RawEntity
	SeeResultsAbout     []RawEntity
	List                map[string][]string
	Attributes          map[string]interface{}
	Extra               map[string]interface{}
}

var knowledgeGraphKnownKeys = map[string]struct{}{
	"title":                  {},
	"type":                   {},
	"description":            {},
	"header_images":          {},
	"source":                 {},
	"people_also_search_for": {},
	"see_results_about":      {},
	"list":                   {},
	"attributes":             {},
}

// UnmarshalJSON promotes the structural fields and keeps the leftover
// top-level fields in Extra.
func (kg *RawKnowledgeGraph) UnmarshalJSON(data []byte) error {
	type alias struct {
		Title               string                 `json:"title"`
		Type                string                 `json:"type"`
		Description         string                 `json:"description"`
		HeaderImages        []RawImage             `json:"header_images"`
		Source              *RawSource             `json:"source"`
		PeopleAlsoSearchFor []RawEntity            `json:"people_also_search_for"`
		SeeResultsAbout     []RawEntity            `json:"see_results_about"`
		List                map[string][]string    `json:"list"`
		Attributes          map[string]interface{} `json:"attributes"`
	}

	var known alias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	kg.Title = known.Title
	kg.Type = known.Type
	kg.Description = known.Description
	kg.HeaderImages = known.HeaderImages
	kg.Source = known.Source
	kg.PeopleAlsoSearchFor = known.PeopleAlsoSearchFor
	kg.SeeResultsAbout = known.SeeResultsAbout
	kg.List = known.List
	kg.Attributes = known.Attributes

	for key := range fields {
		if _, skip := knowledgeGraphKnownKeys[key]; skip {
			continue
		}
		if kg.Extra == nil {
			kg.Extra = make(map[string]interface{})
		}
		kg.Extra[key] = fields[key]
	}

	return nil
}

// MarshalJSON re-emits the provider's flat shape, restoring leftover
// top-level fields alongside the structural ones.
func (kg RawKnowledgeGraph) MarshalJSON() ([]byte, error) {
	fields := make(map[string]interface{}, len(kg.Extra)+9)
	for key, value := range kg.Extra {
		fields[key] = value
	}
	if kg.Title != "" {
		fields["title"] = kg.Title
	}
	if kg.Type != "" {
		fields["type"] = kg.Type
	}
	if kg.Description != "" {
		fields["description"] = kg.Description
	}
	if len(kg.HeaderImages) > 0 {
		fields["header_images"] = kg.HeaderImages
	}
	if kg.Source != nil {
		fields["source"] = kg.Source
	}
	if len(kg.PeopleAlsoSearchFor) > 0 {
		fields["people_also_search_for"] = kg.PeopleAlsoSearchFor
	}
	if len(kg.SeeResultsAbout) > 0 {
		fields["see_results_about"] = kg.SeeResultsAbout
	}
	if len(kg.List) > 0 {
		fields["list"] = kg.List
	}
	if len(kg.Attributes) > 0 {
		fields["attributes"] = kg.Attributes
	}
	return json.Marshal(fields)
}

// RawImage is an image reference inside a fact-panel section.
type RawImage struct {
	Image  string `json:"image"`
	Source string `json:"source"`
}

// RawSource attributes a description to its origin.
type RawSource struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// RawEntity is a linked entity ("people also search for" and similar rows).
type RawEntity struct {
	Name       string   `json:"name"`
	Link       string   `json:"link"`
	Image      string   `json:"image"`
	Extensions []string `json:"extensions,omitempty"`
}

// RawQuestion is a "people also ask" entry.
type RawQuestion struct {
	Question string `json:"question"`
	Snippet  string `json:"snippet"`
	Title    string `json:"title,omitempty"`
	Link     string `json:"link,omitempty"`
}

// RawRelatedSearch is a suggested follow-up query.
type RawRelatedSearch struct {
	Query string `json:"query"`
	Link  string `json:"link,omitempty"`
}

// RawPlace is a local-business entry as the provider returned it.
type RawPlace struct {
	Position  int          `json:"position,omitempty"`
	Title     string       `json:"title"`
	PlaceID   string       `json:"place_id,omitempty"`
	Address   string       `json:"address"`
	Rating    float64      `json:"rating,omitempty"`
	Reviews   int          `json:"reviews,omitempty"`
	Type      string       `json:"type,omitempty"`
	Features  []string     `json:"features,omitempty"`
	Thumbnail string       `json:"thumbnail,omitempty"`
	Image     string       `json:"image,omitempty"`
	Photo     string       `json:"photo,omitempty"`
	Icon      string       `json:"icon,omitempty"`
	GPS       *RawGPSPoint `json:"gps_coordinates,omitempty"`
}

// RawGPSPoint is a provider-supplied coordinate pair.
type RawGPSPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

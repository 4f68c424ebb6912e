// ABOUTME: Response DTOs for the faceted search results page
// ABOUTME: Normalized link, fact-panel, local, and FAQ shapes plus the answer slot

package responses

// SearchResponse is the full faceted payload for one dispatched query
type SearchResponse struct {
	// SearchID correlates this response with a later answer lookup
	SearchID string `json:"search_id" doc:"Correlation identifier for answer polling"`

	// Query echoes the submitted query text after trimming
	Query string `json:"query"`

	// Location echoes the submitted location hint, if any
	Location string `json:"location,omitempty"`

	// Links are the organic results in provider order
	Links []LinkEntryResponse `json:"links"`

	// FactPanel is null when the payload had nothing worth rendering
	FactPanel *FactPanelResponse `json:"fact_panel,omitempty"`

	// LocalEntries is null when the payload carried no local results section
	LocalEntries []LocalEntryResponse `json:"local_entries,omitempty"`

	// FaqEntries are related questions that carry a non-trivial answer
	FaqEntries []FaqEntryResponse `json:"faq_entries"`

	// RelatedSearches are follow-up query suggestions in provider order
	RelatedSearches []string `json:"related_searches,omitempty"`

	// Answer is the generated-answer slot, pending at dispatch time
	Answer AnswerResponse `json:"answer"`
}

// LinkEntryResponse is one normalized organic result
type LinkEntryResponse struct {
	Title       string                 `json:"title"`
	URL         string                 `json:"url"`
	Description string                 `json:"description"`
	Breadcrumbs []string               `json:"breadcrumbs,omitempty"`
	Position    int                    `json:"position"`
	Tags        []string               `json:"tags,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// FactPanelResponse is the normalized knowledge-panel shape
type FactPanelResponse struct {
	Title               string                  `json:"title"`
	Type                string                  `json:"type,omitempty"`
	Description         string                  `json:"description"`
	Images              []ImageResponse         `json:"images,omitempty"`
	Source              *SourceResponse         `json:"source,omitempty"`
	Attributes          []FactAttributeResponse `json:"attributes,omitempty"`
	PeopleAlsoSearchFor []EntityResponse        `json:"people_also_search_for,omitempty"`
	SeeResultsAbout     []EntityResponse        `json:"see_results_about,omitempty"`
}

// ImageResponse is one fact-panel header image
type ImageResponse struct {
	Image  string `json:"image"`
	Source string `json:"source,omitempty"`
}

// SourceResponse attributes the fact panel to its origin
type SourceResponse struct {
	Name string `json:"name"`
	Link string `json:"link,omitempty"`
}

// FactAttributeResponse is one ordered key/value row
type FactAttributeResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// EntityResponse is one related-entity chip
type EntityResponse struct {
	Name       string   `json:"name"`
	Link       string   `json:"link,omitempty"`
	Image      string   `json:"image,omitempty"`
	Extensions []string `json:"extensions,omitempty"`
}

// LocalEntryResponse is one normalized local-business listing
type LocalEntryResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Address  string         `json:"address"`
	Rating   float64        `json:"rating,omitempty"`
	Reviews  int            `json:"reviews,omitempty"`
	Category string         `json:"category"`
	Features []string       `json:"features,omitempty"`
	Image    string         `json:"image"`
	Point    *PointResponse `json:"point,omitempty"`
}

// PointResponse is a lat/lng pair for map markers
type PointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FaqEntryResponse is one related question/answer pair
type FaqEntryResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AnswerResponse is the generated-answer slot
type AnswerResponse struct {
	// Status is one of pending, ready, failed
	Status string `json:"status" enum:"pending,ready,failed"`

	// Text is empty while pending; failed answers carry a safe fallback
	Text string `json:"text,omitempty"`
}

// RecentSearchesResponse lists recent queries newest-first
type RecentSearchesResponse struct {
	Searches []RecentSearchResponse `json:"searches"`
}

// RecentSearchResponse is one recent-query record
type RecentSearchResponse struct {
	Query     string `json:"query"`
	Timestamp string `json:"timestamp"` // RFC3339 format
}

// GeocodeResponse is the resolved coordinate for a business address
type GeocodeResponse struct {
	// Found is false when no candidate survived the precision and bounds
	// checks; the entry renders without a map marker
	Found bool           `json:"found"`
	Point *PointResponse `json:"point,omitempty"`
}

// LocateResponse names the locality at a coordinate
type LocateResponse struct {
	City string `json:"city"`
}

// SessionResponse is the session history, oldest entry first
type SessionResponse struct {
	Entries []SessionEntryResponse `json:"entries"`
}

// SessionEntryResponse is one history entry with its display state
type SessionEntryResponse struct {
	SearchID string         `json:"search_id"`
	Query    string         `json:"query"`
	Expanded bool           `json:"expanded"`
	Answer   AnswerResponse `json:"answer"`
}

// ABOUTME: Result bundle and normalized view-model types for the results page
// ABOUTME: A bundle is write-once except for attaching the generated answer

package domain

// ResultBundle is the normalized response for one dispatched query. All
// fields except Answer are write-once; Answer is attached in place when the
// poller resolves.
type ResultBundle struct {
	// SearchID is the opaque correlation identifier linking this bundle to
	// its later-arriving generated answer.
	SearchID string

	// Query is the submitted query this bundle answers.
	Query Query

	// Payload holds the provider's raw result sections.
	Payload SearchPayload

	// Answer is the generated-answer slot. Starts pending.
	Answer GeneratedAnswer
}

// LinkEntry is a normalized organic result ready for rendering.
type LinkEntry struct {
	Title       string
	URL         string
	Description string
	Breadcrumbs []string
	Position    int
	Tags        []string
	Metadata    map[string]interface{}
}

// FactPanel is the normalized knowledge-panel view model. A nil panel means
// the payload had nothing worth rendering.
type FactPanel struct {
	Title               string
	Type                string
	Description         string
	Images              []RawImage
	Source              *RawSource
	Attributes          []FactAttribute
	PeopleAlsoSearchFor []RawEntity
	SeeResultsAbout     []RawEntity
}

// FactAttribute is one ordered key/value row of a fact panel.
type FactAttribute struct {
	// Key is the provider's attribute key (e.g. "first_appeared").
	Key string

	// Label is the key formatted for display (e.g. "First Appeared").
	Label string

	// Value is the attribute value flattened to display text.
	Value string
}

// LocalEntry is a normalized local-business listing. Point is nil when no
// usable coordinates were resolved; such entries render without a map marker
// but are never dropped.
type LocalEntry struct {
	ID       string
	Name     string
	Address  string
	Rating   float64
	Reviews  int
	Category string
	Features []string
	Image    string
	Point    *GeoPoint
}

// FaqEntry is a normalized related question/answer pair.
type FaqEntry struct {
	ID       string
	Question string
	Answer   string
}

// ABOUTME: Local-business entry normalization with image fallback resolution
// ABOUTME: Tolerates both known provider shapes via a single tagged parse at the boundary

package present

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"searchpage-api/core/domain"
)

const (
	// defaultCategory labels entries the provider left untyped.
	defaultCategory = "Business"

	// placeholderImage is the generic image used when every fallback fails.
	placeholderImage = "https://via.placeholder.com/64?text=No+Image"

	// maxImageURLLength marks suspiciously long image URLs as unusable.
	maxImageURLLength = 400
)

// brandImages supplies known logos for businesses whose provider entry has
// no usable image at all.
var brandImages = map[string]string{
	"Starbucks":          "https://upload.wikimedia.org/wikipedia/en/thumb/d/d3/Starbucks_Corporation_Logo_2011.svg/1200px-Starbucks_Corporation_Logo_2011.svg.png",
	"Houndstooth Coffee": "https://images.squarespace-cdn.com/content/v1/5b69adef7106992a45ce2bfb/1604615229582-YI4V6T80V33DHPZPPVHH/houndstoothlogo.png",
	"Lucky Lab Coffee":   "https://luckylabcoffee.com/wp-content/uploads/2020/03/luckydog.png",
}

// imageURLPattern accepts URLs ending in a common image extension,
// optionally followed by a query string.
var imageURLPattern = regexp.MustCompile(`(?i)\.(jpeg|jpg|gif|png|svg|webp)($|\?)`)

// ToLocalEntries normalizes the provider's local-results section. The
// section arrives either as a bare array of places or as an object wrapping
// one under "places"; both shapes map identically. Returns nil — not an
// empty list — when no usable array is found, so "no local results" stays
// distinguishable from "zero results".
func ToLocalEntries(raw json.RawMessage) []domain.LocalEntry {
	places, ok := parseLocalPlaces(raw)
	if !ok {
		return nil
	}

	entries := make([]domain.LocalEntry, 0, len(places))
	for i, place := range places {
		entry := domain.LocalEntry{
			ID:       fmt.Sprintf("place-%d", i),
			Name:     place.Title,
			Address:  place.Address,
			Rating:   place.Rating,
			Reviews:  place.Reviews,
			Category: place.Type,
			Features: place.Features,
			Image:    resolveImage(place),
		}

		if entry.Category == "" {
			entry.Category = defaultCategory
		}

		if place.GPS != nil {
			entry.Point = &domain.GeoPoint{
				Latitude:  place.GPS.Latitude,
				Longitude: place.GPS.Longitude,
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

// parseLocalPlaces performs the tagged-variant parse once, producing the
// canonical place list. ok is false when neither known shape yields places.
func parseLocalPlaces(raw json.RawMessage) ([]domain.RawPlace, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, false
	}

	var bare []domain.RawPlace
	if err := json.Unmarshal(raw, &bare); err == nil {
		if len(bare) == 0 {
			return nil, false
		}
		return bare, true
	}

	var wrapped struct {
		Places []domain.RawPlace `json:"places"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Places) > 0 {
		return wrapped.Places, true
	}

	return nil, false
}

// resolveImage walks the image fallback chain: primary thumbnail, alternate
// image fields, the brand lookup table, and finally a generic placeholder.
// The result is always a non-empty https URL.
func resolveImage(place domain.RawPlace) string {
	for _, candidate := range []string{place.Thumbnail, place.Image, place.Photo, place.Icon} {
		if candidate == "" {
			continue
		}
		normalized := normalizeImageURL(candidate)
		if usableImageURL(normalized) {
			return normalized
		}
	}

	if url, ok := brandImages[place.Title]; ok {
		return url
	}

	return placeholderImage
}

// normalizeImageURL forces https on http:// and protocol-relative URLs.
func normalizeImageURL(url string) string {
	if strings.HasPrefix(url, "http://") {
		return "https://" + strings.TrimPrefix(url, "http://")
	}
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	return url
}

// usableImageURL rejects URLs that are suspiciously long or lack an image
// extension; those fall through to the lookup-table fallback.
func usableImageURL(url string) bool {
	if len(url) > maxImageURLLength {
		return false
	}
	return imageURLPattern.MatchString(url)
}

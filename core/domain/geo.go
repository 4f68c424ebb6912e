// ABOUTME: Geographic domain models for the local-map support
// ABOUTME: Points, bounding boxes, and geocoder candidates with precision tags

package domain

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// BoundingBox is a lat/lng rectangle, typically a small box around a city
// center used to reject obviously wrong geocodes.
type BoundingBox struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Contains reports whether the point falls inside the box.
func (b BoundingBox) Contains(p GeoPoint) bool {
	return p.Latitude <= b.North && p.Latitude >= b.South &&
		p.Longitude <= b.East && p.Longitude >= b.West
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() GeoPoint {
	return GeoPoint{
		Latitude:  (b.North + b.South) / 2,
		Longitude: (b.East + b.West) / 2,
	}
}

// GeoCandidate is one geocoder match for an address.
type GeoCandidate struct {
	// Point is the resolved coordinate.
	Point GeoPoint

	// Precision is the provider's match-type tag, e.g. "street_address",
	// "point_of_interest", "route", "locality".
	Precision string

	// Address is the provider's formatted address for the match.
	Address string
}

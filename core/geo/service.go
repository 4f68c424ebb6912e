// ABOUTME: Geocoding helper for the local-business map
// ABOUTME: Prefers the most specific match still inside the expected city region

package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"searchpage-api/core/domain"
	"searchpage-api/core/interfaces"
)

const (
	// cityBoxHalfSpanDeg is roughly 2.5 miles expressed in degrees of
	// latitude. Longitude spans shrink toward the poles, but at city scale
	// the same span keeps the box comfortably tight.
	cityBoxHalfSpanDeg = 0.036

	// geocodeCacheTTL bounds how long a resolved address is reused. Business
	// addresses repeat heavily across searches and do not move.
	geocodeCacheTTL = 24 * time.Hour
)

// specificPrecisions are match types treated as pin-accurate. Anything else
// (route, locality, postal_code, ...) is a coarse match used only when no
// specific candidate survives.
var specificPrecisions = map[string]bool{
	"street_address":    true,
	"point_of_interest": true,
	"premise":           true,
}

// Service resolves business addresses to map coordinates.
type Service struct {
	deps     interfaces.Dependencies
	geocoder interfaces.Geocoder
}

// NewService creates a new geocoding helper service.
func NewService(deps interfaces.Dependencies, geocoder interfaces.Geocoder) *Service {
	return &Service{
		deps:     deps,
		geocoder: geocoder,
	}
}

// Locate resolves an address to approximate coordinates. It prefers the most
// specific candidate that falls inside bounds (when bounds is non-nil) and
// returns nil, never an error, when nothing usable resolves: callers render
// such entries without a map marker but keep them in the list.
func (s *Service) Locate(ctx context.Context, address string, bounds *domain.BoundingBox) *domain.GeoPoint {
	if s.geocoder == nil || address == "" {
		return nil
	}

	cacheKey := geocodeCacheKey(address, bounds)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var point domain.GeoPoint
			if err := json.Unmarshal(data, &point); err == nil {
				return &point
			}
		}
	}

	candidates, err := s.geocoder.Geocode(ctx, address, bounds)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Geocoding failed for address", map[string]interface{}{
				"address": address,
				"error":   err.Error(),
			})
		}
		return nil
	}

	if best := pickCandidate(candidates, bounds); best != nil {
		point := best.Point
		if s.deps.Cache != nil {
			if data, err := json.Marshal(point); err == nil {
				_ = s.deps.Cache.Set(ctx, cacheKey, data, geocodeCacheTTL)
			}
		}
		return &point
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("No usable geocode candidate", map[string]interface{}{
			"address":    address,
			"candidates": len(candidates),
		})
	}

	return nil
}

// CityCenter resolves a city name to its center point and a tight bounding
// box around it. The box is what Locate later uses to reject same-named
// streets in the wrong state. Returns nils when the city cannot be resolved.
func (s *Service) CityCenter(ctx context.Context, city string) (*domain.GeoPoint, *domain.BoundingBox) {
	if s.geocoder == nil || city == "" {
		return nil, nil
	}

	candidates, err := s.geocoder.Geocode(ctx, city, nil)
	if err != nil || len(candidates) == 0 {
		if err != nil && s.deps.Logger != nil {
			s.deps.Logger.Warn("Geocoding failed for city", map[string]interface{}{
				"city":  city,
				"error": err.Error(),
			})
		}
		return nil, nil
	}

	center := candidates[0].Point
	box := CityBounds(center)
	return &center, &box
}

// ReverseCity resolves a coordinate to a locality name, e.g. for labeling
// the map. Returns "" on any failure.
func (s *Service) ReverseCity(ctx context.Context, point domain.GeoPoint) string {
	if s.geocoder == nil {
		return ""
	}

	name, err := s.geocoder.ReverseGeocode(ctx, point)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Reverse geocoding failed", map[string]interface{}{
				"latitude":  point.Latitude,
				"longitude": point.Longitude,
				"error":     err.Error(),
			})
		}
		return ""
	}

	return name
}

// CityBounds returns a ~2.5-mile box centered on the point.
func CityBounds(center domain.GeoPoint) domain.BoundingBox {
	return domain.BoundingBox{
		North: center.Latitude + cityBoxHalfSpanDeg,
		South: center.Latitude - cityBoxHalfSpanDeg,
		East:  center.Longitude + cityBoxHalfSpanDeg,
		West:  center.Longitude - cityBoxHalfSpanDeg,
	}
}

// geocodeCacheKey keys resolved points by address and, when present, the
// bounds they were filtered against. The same address under different city
// boxes must not share an entry.
func geocodeCacheKey(address string, bounds *domain.BoundingBox) string {
	if bounds == nil {
		return "geocode:" + address
	}
	return fmt.Sprintf("geocode:%s|%.4f,%.4f,%.4f,%.4f", address, bounds.South, bounds.West, bounds.North, bounds.East)
}

// pickCandidate applies the precision preference: the first specific match
// inside bounds, otherwise the first coarse match inside bounds. Candidates
// outside a non-nil bounds never qualify.
func pickCandidate(candidates []domain.GeoCandidate, bounds *domain.BoundingBox) *domain.GeoCandidate {
	var coarse *domain.GeoCandidate

	for i := range candidates {
		c := &candidates[i]
		if bounds != nil && !bounds.Contains(c.Point) {
			continue
		}
		if specificPrecisions[c.Precision] {
			return c
		}
		if coarse == nil {
			coarse = c
		}
	}

	return coarse
}

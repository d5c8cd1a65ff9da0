// Package geo evaluates circular geofence boundaries. Pure functions only;
// malformed coordinates are the caller's validation problem.
package geo

import "math"

const earthRadiusM = 6371000.0

// DistanceMeters returns the great-circle distance between two coordinates
// using the Haversine formula.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// WithinRadius reports whether (lat, lng) falls inside a circular boundary.
// The boundary is inclusive: a point exactly on the radius is inside.
func WithinRadius(lat, lng, centerLat, centerLng, radiusM float64) bool {
	return DistanceMeters(lat, lng, centerLat, centerLng) <= radiusM
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

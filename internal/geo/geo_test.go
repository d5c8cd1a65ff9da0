package geo

import (
	"math"
	"testing"
)

func TestDistanceMeters_ZeroForSamePoint(t *testing.T) {
	t.Parallel()

	if d := DistanceMeters(55.75, 37.61, 55.75, 37.61); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	t.Parallel()

	// Moscow Kremlin -> Saint Petersburg, roughly 634 km.
	d := DistanceMeters(55.7520, 37.6175, 59.9343, 30.3351)
	if math.Abs(d-634000) > 5000 {
		t.Fatalf("expected ~634000m, got %v", d)
	}
}

func TestDistanceMeters_SmallOffset(t *testing.T) {
	t.Parallel()

	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	d := DistanceMeters(0, 0, 1, 0)
	if math.Abs(d-111194) > 100 {
		t.Fatalf("expected ~111194m, got %v", d)
	}
}

func TestWithinRadius_Boundary(t *testing.T) {
	t.Parallel()

	centerLat, centerLng := 40.0, -74.0

	cases := []struct {
		name    string
		lat     float64
		lng     float64
		radiusM float64
		want    bool
	}{
		{"center_inside", 40.0, -74.0, 50, true},
		{"just_inside", 40.0004, -74.0, 50, true},
		{"outside", 40.001, -74.0, 50, false},
		{"large_radius", 40.01, -74.01, 5000, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := WithinRadius(tc.lat, tc.lng, centerLat, centerLng, tc.radiusM)
			if got != tc.want {
				d := DistanceMeters(tc.lat, tc.lng, centerLat, centerLng)
				t.Fatalf("WithinRadius=%v want=%v (distance=%vm radius=%vm)", got, tc.want, d, tc.radiusM)
			}
		})
	}
}

func TestWithinRadius_ExactRadiusIsInside(t *testing.T) {
	t.Parallel()

	d := DistanceMeters(40.0, -74.0, 40.0004, -74.0)
	if !WithinRadius(40.0004, -74.0, 40.0, -74.0, d) {
		t.Fatalf("point exactly on the boundary must be inside")
	}
}

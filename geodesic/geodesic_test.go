package geodesic

import (
	"math"
	"testing"
)

func TestInverseEquator(t *testing.T) {
	// Along the equator the geodesic is the equatorial circle, so one
	// degree of longitude is exactly a*pi/180 meters.
	want := SemiMajorAxis * math.Pi / 180
	s, az := Inverse(0, 0, 0, 1)
	if math.Abs(s-want) > 1e-6 {
		t.Fatalf("got equatorial arc %.9f, want %.9f", s, want)
	}
	if math.Abs(az-math.Pi/2) > 1e-12 {
		t.Fatalf("got azimuth %.12f, want pi/2", az)
	}
}

func TestInverseMeridianQuadrant(t *testing.T) {
	// WGS84 meridian quadrant, equator to pole.
	want := 10001965.7293
	s, _ := Inverse(0, 0, 90, 0)
	if math.Abs(s-want) > 1e-3 {
		t.Fatalf("got meridian quadrant %.4f, want %.4f", s, want)
	}
}

func TestInverseCoincident(t *testing.T) {
	s, az := Inverse(45.3, 15.1, 45.3, 15.1)
	if s != 0 || az != 0 {
		t.Fatalf("got s=%g az=%g for coincident points, want zeros", s, az)
	}
}

func TestDirectInverseRoundTrip(t *testing.T) {
	pairs := [][4]float64{
		{53, 24, 45.3, 15.1},
		{8.5, 21.5, -34.8, 19.9},
		{47, 94, 66, -175.2},
		{52, -97.5, 40, -100},
		{-14, -60.5, -1.2, -90.9},
		{-19.5, 131.5, -42.9, 147.3},
		{-90, 0, -75, 123},
	}
	for _, p := range pairs {
		s, az := Inverse(p[0], p[1], p[2], p[3])
		lat, lon := Direct(p[0], p[1], az, s)
		if math.Abs(lat-p[2]) > 1e-9 || math.Abs(lon-p[3]) > 1e-9 {
			t.Fatalf("round trip from (%g, %g): got (%.12f, %.12f), want (%g, %g)",
				p[0], p[1], lat, lon, p[2], p[3])
		}
	}
}

func TestDirectWrapsLongitude(t *testing.T) {
	// A geodesic from central Asia across the dateline must come back with
	// a longitude inside [-180, 180], not 184.8.
	s, az := Inverse(47, 94, 66, -175.2)
	lat, lon := Direct(47, 94, az, s)
	if lon < -180 || lon > 180 {
		t.Fatalf("got longitude %.12f outside [-180, 180]", lon)
	}
	if math.Abs(lat-66) > 1e-9 || math.Abs(lon-(-175.2)) > 1e-9 {
		t.Fatalf("got (%.12f, %.12f), want (66, -175.2)", lat, lon)
	}
}

func TestInverseSymmetry(t *testing.T) {
	s1, _ := Inverse(53, 24, -14, -60.5)
	s2, _ := Inverse(-14, -60.5, 53, 24)
	if math.Abs(s1-s2) > 1e-6 {
		t.Fatalf("distance not symmetric: %.9f vs %.9f", s1, s2)
	}
}

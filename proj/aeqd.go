// Package proj implements the per-zone azimuthal equidistant projection used
// by the Equi7 continental grids. Each zone carries its own projection
// center and false origin so that projected coordinates stay positive across
// the zone's extent.
package proj

import (
	"math"

	"github.com/tuw-geo/equi7go/geodesic"
)

// AEQD is an azimuthal equidistant projection on the WGS84 ellipsoid.
// A point projects to its geodesic distance and azimuth from the center:
// x = fe + s*sin(az), y = fn + s*cos(az).
type AEQD struct {
	LatOrigin     float64 // latitude of center, degrees
	LonOrigin     float64 // longitude of center, degrees
	FalseEasting  float64 // meters
	FalseNorthing float64 // meters
}

// Forward projects geographic coordinates in degrees to projected meters.
func (p AEQD) Forward(lon, lat float64) (x, y float64) {
	s, az := geodesic.Inverse(p.LatOrigin, p.LonOrigin, lat, lon)
	return p.FalseEasting + s*math.Sin(az), p.FalseNorthing + s*math.Cos(az)
}

// Inverse unprojects meters back to geographic degrees.
func (p AEQD) Inverse(x, y float64) (lon, lat float64) {
	dx, dy := x-p.FalseEasting, y-p.FalseNorthing
	s := math.Hypot(dx, dy)
	if s == 0 {
		return p.LonOrigin, p.LatOrigin
	}
	az := math.Atan2(dx, dy)
	lat, lon = geodesic.Direct(p.LatOrigin, p.LonOrigin, az, s)
	return lon, lat
}

// ForwardAll projects equal-length batches, preserving order. The caller
// guarantees len(lons) == len(lats).
func (p AEQD) ForwardAll(lons, lats []float64) (xs, ys []float64) {
	xs = make([]float64, len(lons))
	ys = make([]float64, len(lons))
	for i := range lons {
		xs[i], ys[i] = p.Forward(lons[i], lats[i])
	}
	return xs, ys
}

// InverseAll unprojects equal-length batches, preserving order. The caller
// guarantees len(xs) == len(ys).
func (p AEQD) InverseAll(xs, ys []float64) (lons, lats []float64) {
	lons = make([]float64, len(xs))
	lats = make([]float64, len(xs))
	for i := range xs {
		lons[i], lats[i] = p.Inverse(xs[i], ys[i])
	}
	return lons, lats
}

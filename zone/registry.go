package zone

import (
	"embed"
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/tuw-geo/equi7go/common"
)

//go:embed data/zones.geojson data/land.geojson
var dataFS embed.FS

// densifyStep is the maximum vertex spacing, in degrees, used when
// projecting geographic outlines. Densifying before projection keeps the
// projected outline faithful where the projection curves straight edges.
const densifyStep = 1.0

// Registry holds all zone definitions. It is built once and is safe for
// concurrent read-only use.
type Registry struct {
	zones map[ID]*Zone
}

// NewRegistry loads the bundled zone coverage and land geometry and
// precomputes the projected land outlines. All I/O happens here; the
// returned registry never loads lazily.
func NewRegistry() (*Registry, error) {
	coverage, err := loadMultiPolygons("data/zones.geojson")
	if err != nil {
		return nil, err
	}
	land, err := loadMultiPolygons("data/land.geojson")
	if err != nil {
		return nil, err
	}

	r := &Registry{zones: make(map[ID]*Zone, len(Order))}
	for _, id := range Order {
		cov, ok := coverage[id]
		if !ok {
			return nil, fmt.Errorf("zone %s: no coverage geometry bundled", id)
		}
		lnd, ok := land[id]
		if !ok {
			return nil, fmt.Errorf("zone %s: no land geometry bundled", id)
		}
		z := &Zone{
			ID:       id,
			Proj:     projections[id],
			Coverage: cov,
			Land:     lnd,
		}
		for _, poly := range lnd {
			ring := common.DensifyRing(common.OpenRing(poly[0]), densifyStep)
			projected := make(orb.Ring, len(ring))
			for i, p := range ring {
				x, y := z.Proj.Forward(p[0], p[1])
				projected[i] = orb.Point{x, y}
			}
			z.LandXY = append(z.LandXY, projected)
		}
		r.zones[id] = z
	}
	return r, nil
}

func loadMultiPolygons(name string) (map[ID]orb.MultiPolygon, error) {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	out := make(map[ID]orb.MultiPolygon, len(fc.Features))
	for _, f := range fc.Features {
		id := ID(fmt.Sprint(f.Properties["id"]))
		mp, ok := f.Geometry.(orb.MultiPolygon)
		if !ok {
			return nil, fmt.Errorf("%s: zone %s: geometry is %T, want MultiPolygon", name, id, f.Geometry)
		}
		out[id] = mp
	}
	return out, nil
}

// Zone returns the definition for id.
func (r *Registry) Zone(id ID) (*Zone, error) {
	z, ok := r.zones[id]
	if !ok {
		return nil, fmt.Errorf("unknown zone %q", id)
	}
	return z, nil
}

// All returns the zones in priority order.
func (r *Registry) All() []*Zone {
	out := make([]*Zone, 0, len(Order))
	for _, id := range Order {
		out = append(out, r.zones[id])
	}
	return out
}

// Locate returns the zone owning the given geographic point. Assignment is
// total: a point outside every coverage polygon (open ocean) falls back to
// the zone with the nearest projection center.
func (r *Registry) Locate(lon, lat float64) *Zone {
	pt := orb.Point{lon, lat}
	for _, id := range Order {
		z := r.zones[id]
		if planar.MultiPolygonContains(z.Coverage, pt) {
			return z
		}
	}

	ll := s2.LatLngFromDegrees(lat, lon)
	var best *Zone
	var bestDist s1.ChordAngle
	for _, id := range Order {
		z := r.zones[id]
		center := s2.LatLngFromDegrees(z.Proj.LatOrigin, z.Proj.LonOrigin)
		d := s2.ChordAngleBetweenPoints(s2.PointFromLatLng(ll), s2.PointFromLatLng(center))
		if best == nil || d < bestDist {
			best, bestDist = z, d
		}
	}
	return best
}

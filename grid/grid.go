// Package grid implements the Equi7 tiling on top of the zone projections:
// tile naming and addressing, coordinate conversion through per-zone
// subgrids, and the tile search engine.
package grid

import (
	"github.com/tuw-geo/equi7go/zone"
)

// Grid is the top-level facade: seven subgrids sharing one sampling.
// Construction validates the sampling and loads the zone registry;
// afterwards the grid is immutable and safe for concurrent use.
type Grid struct {
	EU, AF, AS, NA, SA, OC, AN *SubGrid

	sampling int
	tileType TileType
	registry *zone.Registry
	subgrids map[zone.ID]*SubGrid
}

// New builds a grid at the given sampling in meters per pixel.
func New(sampling int) (*Grid, error) {
	tt, err := TileTypeForSampling(sampling)
	if err != nil {
		return nil, err
	}
	registry, err := zone.NewRegistry()
	if err != nil {
		return nil, err
	}
	g := &Grid{
		sampling: sampling,
		tileType: tt,
		registry: registry,
		subgrids: make(map[zone.ID]*SubGrid, len(zone.Order)),
	}
	for _, z := range registry.All() {
		sg, err := newSubGrid(z, sampling)
		if err != nil {
			return nil, err
		}
		g.subgrids[z.ID] = sg
	}
	g.EU = g.subgrids[zone.EU]
	g.AF = g.subgrids[zone.AF]
	g.AS = g.subgrids[zone.AS]
	g.NA = g.subgrids[zone.NA]
	g.SA = g.subgrids[zone.SA]
	g.OC = g.subgrids[zone.OC]
	g.AN = g.subgrids[zone.AN]
	return g, nil
}

// Sampling returns the grid's sampling in meters per pixel.
func (g *Grid) Sampling() int { return g.sampling }

// Type returns the tile type implied by the grid's sampling.
func (g *Grid) Type() TileType { return g.tileType }

// SubGrid returns the subgrid for a zone.
func (g *Grid) SubGrid(id zone.ID) (*SubGrid, error) {
	sg, ok := g.subgrids[id]
	if !ok {
		return nil, paramError("unknown zone %q", string(id))
	}
	return sg, nil
}

// LonLatToXY assigns a geographic point to its zone and projects it there.
// Assignment follows the zone priority order, with an ocean fallback to the
// nearest projection center, so every valid point resolves.
func (g *Grid) LonLatToXY(lon, lat float64) (zone.ID, float64, float64, error) {
	if err := checkLonLat(lon, lat); err != nil {
		return "", 0, 0, err
	}
	z := g.registry.Locate(lon, lat)
	x, y := z.Proj.Forward(lon, lat)
	return z.ID, x, y, nil
}

// LonLatToXYZone projects a geographic point into one named zone,
// bypassing zone assignment.
func (g *Grid) LonLatToXYZone(id zone.ID, lon, lat float64) (float64, float64, error) {
	if err := checkLonLat(lon, lat); err != nil {
		return 0, 0, err
	}
	sg, err := g.SubGrid(id)
	if err != nil {
		return 0, 0, err
	}
	x, y := sg.LonLatToXY(lon, lat)
	return x, y, nil
}

// LonLatToXYAll assigns and projects coordinate slices pairwise. The slices
// must have equal length.
func (g *Grid) LonLatToXYAll(lons, lats []float64) ([]zone.ID, []float64, []float64, error) {
	if len(lons) != len(lats) {
		return nil, nil, nil, paramError("got %d longitudes and %d latitudes", len(lons), len(lats))
	}
	ids := make([]zone.ID, len(lons))
	xs := make([]float64, len(lons))
	ys := make([]float64, len(lons))
	for i := range lons {
		id, x, y, err := g.LonLatToXY(lons[i], lats[i])
		if err != nil {
			return nil, nil, nil, err
		}
		ids[i], xs[i], ys[i] = id, x, y
	}
	return ids, xs, ys, nil
}

// XYToLonLat unprojects a point from a named zone's plane.
func (g *Grid) XYToLonLat(id zone.ID, x, y float64) (lon, lat float64, err error) {
	sg, err := g.SubGrid(id)
	if err != nil {
		return 0, 0, err
	}
	lon, lat = sg.XYToLonLat(x, y)
	return lon, lat, nil
}

// TileFromLonLat assigns a geographic point to its zone and returns the
// tile containing it.
func (g *Grid) TileFromLonLat(lon, lat float64) (Tile, error) {
	if err := checkLonLat(lon, lat); err != nil {
		return Tile{}, err
	}
	z := g.registry.Locate(lon, lat)
	return g.subgrids[z.ID].TileFromLonLat(lon, lat)
}

func checkLonLat(lon, lat float64) error {
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return paramError("(%g, %g) is not a geographic coordinate", lon, lat)
	}
	return nil
}

package grid

import (
	"github.com/tuw-geo/equi7go/zone"
)

// SubGrid is one zone of the grid at the grid's sampling: the zone's
// projection paired with its tile system. Stateless after construction.
type SubGrid struct {
	Zone    *zone.Zone
	Tilesys *TileSystem
}

func newSubGrid(z *zone.Zone, sampling int) (*SubGrid, error) {
	ts, err := NewTileSystem(z, sampling)
	if err != nil {
		return nil, err
	}
	return &SubGrid{Zone: z, Tilesys: ts}, nil
}

// Sampling returns the subgrid's sampling in meters per pixel.
func (sg *SubGrid) Sampling() int { return sg.Tilesys.Sampling() }

// LonLatToXY projects a geographic point into the subgrid's plane. The
// point is not checked against the zone's coverage; any point on the
// ellipsoid projects.
func (sg *SubGrid) LonLatToXY(lon, lat float64) (x, y float64) {
	return sg.Zone.Proj.Forward(lon, lat)
}

// XYToLonLat is the inverse of LonLatToXY.
func (sg *SubGrid) XYToLonLat(x, y float64) (lon, lat float64) {
	return sg.Zone.Proj.Inverse(x, y)
}

// LonLatToXYAll projects coordinate slices pairwise. The slices must have
// equal length.
func (sg *SubGrid) LonLatToXYAll(lons, lats []float64) (xs, ys []float64, err error) {
	if len(lons) != len(lats) {
		return nil, nil, paramError("got %d longitudes and %d latitudes", len(lons), len(lats))
	}
	xs = make([]float64, len(lons))
	ys = make([]float64, len(lons))
	for i := range lons {
		xs[i], ys[i] = sg.Zone.Proj.Forward(lons[i], lats[i])
	}
	return xs, ys, nil
}

// XYToLonLatAll unprojects coordinate slices pairwise. The slices must have
// equal length.
func (sg *SubGrid) XYToLonLatAll(xs, ys []float64) (lons, lats []float64, err error) {
	if len(xs) != len(ys) {
		return nil, nil, paramError("got %d x and %d y coordinates", len(xs), len(ys))
	}
	lons = make([]float64, len(xs))
	lats = make([]float64, len(xs))
	for i := range xs {
		lons[i], lats[i] = sg.Zone.Proj.Inverse(xs[i], ys[i])
	}
	return lons, lats, nil
}

// TileFromLonLat returns the tile containing a geographic point.
func (sg *SubGrid) TileFromLonLat(lon, lat float64) (Tile, error) {
	x, y := sg.LonLatToXY(lon, lat)
	return sg.Tilesys.CreateTile(x, y)
}

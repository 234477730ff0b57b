package grid

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/tuw-geo/equi7go/zone"
)

// Tile is one grid-aligned square region of a zone at a given sampling.
// It is a pure value; tiles are computed on demand and never stored.
// Origins are in projected meters and aligned to the tile edge length.
type Tile struct {
	Zone     zone.ID
	Sampling int // meters per pixel
	Type     TileType
	OriginX  int // meters, multiple of Type.Edge()
	OriginY  int // meters, multiple of Type.Edge()
}

// Edge returns the tile edge length in meters.
func (t Tile) Edge() int { return t.Type.Edge() }

// Size returns the tile edge length in pixels.
func (t Tile) Size() int { return t.Edge() / t.Sampling }

// Extent returns the tile's bounding box in projected meters.
func (t Tile) Extent() orb.Bound {
	e := float64(t.Edge())
	return orb.Bound{
		Min: orb.Point{float64(t.OriginX), float64(t.OriginY)},
		Max: orb.Point{float64(t.OriginX) + e, float64(t.OriginY) + e},
	}
}

// ShortName encodes the tile without zone and sampling, e.g. "E042N006T6".
// The E and N fields are the origin in 100 km units.
func (t Tile) ShortName() string {
	return fmt.Sprintf("E%03dN%03d%s", t.OriginX/100000, t.OriginY/100000, t.Type)
}

// Name encodes the tile in long form, e.g. "EU500M_E042N006T6".
func (t Tile) Name() string {
	return fmt.Sprintf("%s%03dM_%s", t.Zone, t.Sampling, t.ShortName())
}

// IJToXY maps pixel indices to projected coordinates. Columns count up from
// the tile's west edge, rows count down from its north edge; the returned
// point is the pixel's northwest corner, so (0, 0) is the tile's top-left
// corner.
func (t Tile) IJToXY(col, row int) (x, y float64) {
	x = float64(t.OriginX) + float64(col*t.Sampling)
	y = float64(t.OriginY+t.Edge()) - float64(row*t.Sampling)
	return x, y
}

// XYToIJ maps projected coordinates to the pixel indices containing them,
// flooring toward the pixel's northwest corner. Coordinates outside the
// tile yield out-of-range indices; range checking is the caller's business.
func (t Tile) XYToIJ(x, y float64) (col, row int) {
	col = int(math.Floor((x - float64(t.OriginX)) / float64(t.Sampling)))
	row = int(math.Floor((float64(t.OriginY+t.Edge()) - y) / float64(t.Sampling)))
	return col, row
}

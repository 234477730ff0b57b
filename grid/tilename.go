package grid

import (
	"regexp"
	"strconv"

	"github.com/tuw-geo/equi7go/zone"
)

// Tilenames come in two spellings. The long form carries everything needed
// to reconstruct the tile: zone, sampling, origin in 100 km units and tile
// type, e.g. "EU500M_E042N006T6". The short form drops zone and sampling,
// e.g. "E042N006T6", and can only be decoded by a tile system that supplies
// them.
var (
	longNameRe  = regexp.MustCompile(`^([A-Z]{2})(\d{3})M_E(\d{3})N(\d{3})(T[136])$`)
	shortNameRe = regexp.MustCompile(`^E(\d{3})N(\d{3})(T[136])$`)
)

// DecodeTilename parses a long-form tilename into a Tile. It rejects
// unknown zones, samplings inconsistent with the embedded tile type, and
// origins not aligned to the tile edge.
func DecodeTilename(name string) (Tile, error) {
	m := longNameRe.FindStringSubmatch(name)
	if m == nil {
		return Tile{}, tileNameError("malformed tilename " + strconv.Quote(name))
	}
	z := zone.ID(m[1])
	if !z.Valid() {
		return Tile{}, tileNameError("unknown zone " + strconv.Quote(m[1]))
	}
	sampling, _ := strconv.Atoi(m[2])
	east, _ := strconv.Atoi(m[3])
	north, _ := strconv.Atoi(m[4])
	tt := TileType(m[5])

	want, err := TileTypeForSampling(sampling)
	if err != nil || want != tt {
		return Tile{}, tileNameError("sampling " + m[2] + " does not match tile type " + string(tt))
	}
	t := Tile{Zone: z, Sampling: sampling, Type: tt, OriginX: east * 100000, OriginY: north * 100000}
	if t.OriginX%t.Edge() != 0 || t.OriginY%t.Edge() != 0 {
		return Tile{}, tileNameError("origin of " + strconv.Quote(name) + " is not aligned to the tile edge")
	}
	return t, nil
}

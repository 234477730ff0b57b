package grid

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tuw-geo/equi7go/common"
	"github.com/tuw-geo/equi7go/zone"
)

// landCacheSize bounds the memoized coverland verdicts per tile system.
// A whole zone at T6 is a few hundred tiles, so in practice this never
// evicts; the bound just caps worst-case memory for T1 workloads.
const landCacheSize = 4096

// TileSystem is the tile addressing machinery of one zone at one sampling.
// It creates, names and enumerates tiles; it holds no tile state beyond a
// cache of coverland verdicts.
type TileSystem struct {
	zone     *zone.Zone
	sampling int
	tileType TileType
	landHits *lru.Cache[string, bool]
}

// NewTileSystem builds the tile system for a zone at the given sampling.
func NewTileSystem(z *zone.Zone, sampling int) (*TileSystem, error) {
	tt, err := TileTypeForSampling(sampling)
	if err != nil {
		return nil, err
	}
	hits, err := lru.New[string, bool](landCacheSize)
	if err != nil {
		return nil, err
	}
	return &TileSystem{zone: z, sampling: sampling, tileType: tt, landHits: hits}, nil
}

// Zone returns the zone this system addresses.
func (ts *TileSystem) Zone() *zone.Zone { return ts.zone }

// Sampling returns the sampling in meters per pixel.
func (ts *TileSystem) Sampling() int { return ts.sampling }

// Type returns the tile type implied by the sampling.
func (ts *TileSystem) Type() TileType { return ts.tileType }

// CreateTile returns the tile containing the given projected point, snapping
// the coordinates down to the tile grid. Points west or south of the zone
// frame are rejected.
func (ts *TileSystem) CreateTile(x, y float64) (Tile, error) {
	if x < 0 || y < 0 {
		return Tile{}, paramError("point (%g, %g) is outside the zone frame", x, y)
	}
	e := ts.tileType.Edge()
	return Tile{
		Zone:     ts.zone.ID,
		Sampling: ts.sampling,
		Type:     ts.tileType,
		OriginX:  int(x) / e * e,
		OriginY:  int(y) / e * e,
	}, nil
}

// Encode returns the long-form tilename for the tile with the given origin
// in meters. The origin must be aligned to the tile edge.
func (ts *TileSystem) Encode(originX, originY int) (string, error) {
	e := ts.tileType.Edge()
	if originX < 0 || originY < 0 || originX%e != 0 || originY%e != 0 {
		return "", paramError("origin (%d, %d) is not aligned to the %d m tile edge", originX, originY, e)
	}
	t := Tile{Zone: ts.zone.ID, Sampling: ts.sampling, Type: ts.tileType, OriginX: originX, OriginY: originY}
	return t.Name(), nil
}

// TileFromName decodes a long- or short-form tilename into a Tile of this
// system. Long names must agree with the system's zone and sampling; short
// names must carry the system's tile type.
func (ts *TileSystem) TileFromName(name string) (Tile, error) {
	if m := shortNameRe.FindStringSubmatch(name); m != nil {
		east, _ := strconv.Atoi(m[1])
		north, _ := strconv.Atoi(m[2])
		if tt := TileType(m[3]); tt != ts.tileType {
			return Tile{}, tileNameError("tile type " + string(tt) + " does not match the " + string(ts.tileType) + " system")
		}
		t := Tile{Zone: ts.zone.ID, Sampling: ts.sampling, Type: ts.tileType, OriginX: east * 100000, OriginY: north * 100000}
		if t.OriginX%t.Edge() != 0 || t.OriginY%t.Edge() != 0 {
			return Tile{}, tileNameError("origin of " + strconv.Quote(name) + " is not aligned to the tile edge")
		}
		return t, nil
	}
	t, err := DecodeTilename(name)
	if err != nil {
		return Tile{}, err
	}
	if t.Zone != ts.zone.ID {
		return Tile{}, tileNameError("zone " + string(t.Zone) + " does not match the " + string(ts.zone.ID) + " system")
	}
	if t.Sampling != ts.sampling {
		return Tile{}, tileNameError(fmt.Sprintf("sampling %d does not match the %d m system", t.Sampling, ts.sampling))
	}
	return t, nil
}

// Target selects the output tiling of a tile translation. Exactly one field
// must be set: a sampling yields long-form names at that sampling, a tile
// type yields short-form names.
type Target struct {
	Sampling int
	Type     TileType
}

func (ts *TileSystem) resolveTarget(target Target) (sampling int, tt TileType, longform bool, err error) {
	switch {
	case target.Sampling != 0 && target.Type != "":
		return 0, "", false, paramError("target sampling and target tile type are mutually exclusive")
	case target.Sampling != 0:
		tt, err = TileTypeForSampling(target.Sampling)
		if err != nil {
			return 0, "", false, err
		}
		return target.Sampling, tt, true, nil
	case target.Type != "":
		if !target.Type.Valid() {
			return 0, "", false, paramError("unknown tile type %q", string(target.Type))
		}
		return ts.sampling, target.Type, false, nil
	}
	return 0, "", false, paramError("either a target sampling or a target tile type is required")
}

// FindOverlappingTilenames translates one tile into the tiles of another
// tiling that cover the same ground. The source name may be long or short
// form; the output form follows the target (see Target).
func (ts *TileSystem) FindOverlappingTilenames(name string, target Target) ([]string, error) {
	sampling, tt, longform, err := ts.resolveTarget(target)
	if err != nil {
		return nil, err
	}
	t, err := ts.TileFromName(name)
	if err != nil {
		return nil, err
	}
	names := ts.overlapNames(t, sampling, tt, longform, nil)
	sort.Strings(names)
	return names, nil
}

// GetCoveringTiles translates a set of tiles into the deduplicated set of
// target-tiling tiles covering the same ground.
func (ts *TileSystem) GetCoveringTiles(names []string, target Target) ([]string, error) {
	sampling, tt, longform, err := ts.resolveTarget(target)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, name := range names {
		t, err := ts.TileFromName(name)
		if err != nil {
			return nil, err
		}
		ts.overlapNames(t, sampling, tt, longform, seen)
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// overlapNames enumerates the target-tiling tiles overlapping t. With a
// seen set it records names there and returns nil; otherwise it returns
// them as a slice.
func (ts *TileSystem) overlapNames(t Tile, sampling int, tt TileType, longform bool, seen map[string]bool) []string {
	e := tt.Edge()
	c0, c1 := t.OriginX/e, (t.OriginX+t.Edge()-1)/e
	r0, r1 := t.OriginY/e, (t.OriginY+t.Edge()-1)/e

	var out []string
	for c := c0; c <= c1; c++ {
		for r := r0; r <= r1; r++ {
			ot := Tile{Zone: ts.zone.ID, Sampling: sampling, Type: tt, OriginX: c * e, OriginY: r * e}
			name := ot.ShortName()
			if longform {
				name = ot.Name()
			}
			if seen != nil {
				seen[name] = true
			} else {
				out = append(out, name)
			}
		}
	}
	return out
}

// IdentifyTilesOverlappingXYBbox returns the long-form names of all tiles
// overlapping a projected bounding box [xmin, ymin, xmax, ymax] in meters.
// Tiles are clamped to the zone frame; the box may otherwise extend beyond
// it.
func (ts *TileSystem) IdentifyTilesOverlappingXYBbox(xmin, ymin, xmax, ymax float64) ([]string, error) {
	if xmin > xmax || ymin > ymax {
		return nil, paramError("degenerate bounding box [%g %g %g %g]", xmin, ymin, xmax, ymax)
	}
	e := float64(ts.tileType.Edge())
	c0, r0 := clampFloorDiv(xmin, e), clampFloorDiv(ymin, e)
	// The upper corner is not clamped: a box entirely below the zone frame
	// overlaps no tile at all.
	c1, r1 := int(math.Floor(xmax/e)), int(math.Floor(ymax/e))

	var names []string
	for c := c0; c <= c1; c++ {
		for r := r0; r <= r1; r++ {
			t := Tile{
				Zone:     ts.zone.ID,
				Sampling: ts.sampling,
				Type:     ts.tileType,
				OriginX:  c * ts.tileType.Edge(),
				OriginY:  r * ts.tileType.Edge(),
			}
			names = append(names, t.Name())
		}
	}
	return names, nil
}

// CoversLand reports whether the tile's footprint touches the zone's land
// geometry. Verdicts are memoized per short name.
func (ts *TileSystem) CoversLand(t Tile) bool {
	key := t.ShortName()
	if hit, ok := ts.landHits.Get(key); ok {
		return hit
	}
	hit := false
	bound := t.Extent()
	for _, ring := range ts.zone.LandXY {
		if common.BoundIntersectsRing(bound, ring) {
			hit = true
			break
		}
	}
	ts.landHits.Add(key, hit)
	return hit
}

func clampFloorDiv(v, e float64) int {
	c := int(v / e)
	if v < 0 {
		return 0
	}
	return c
}

package grid

import (
	"math"
	"sort"

	"github.com/paulmach/orb"

	"github.com/tuw-geo/equi7go/common"
)

// searchDensifyStep is the maximum vertex spacing, in degrees, applied to
// region outlines before projecting them for tile intersection tests.
const searchDensifyStep = 1.0

// SearchTilesInROI returns the sorted long-form names of all tiles whose
// footprint overlaps the region of interest. With coverland set, tiles that
// touch no land are dropped. Regions spanning several zones yield tiles
// from each; overlap zones along the seams deliberately report their tiles
// twice under different zone prefixes.
func (g *Grid) SearchTilesInROI(roi ROI, coverland bool) ([]string, error) {
	switch roi.kind {
	case roiPoints:
		return g.searchPoints(roi.points, coverland)
	case roiXYBBox:
		return g.searchXYBBox(roi, coverland)
	}
	parts, err := roi.rings()
	if err != nil {
		return nil, err
	}
	for _, part := range parts {
		for _, p := range part {
			if err := checkLonLat(p[0], p[1]); err != nil {
				return nil, err
			}
		}
	}
	return g.searchRings(parts, coverland)
}

// searchRings runs the core pipeline: per zone, clip each part to the
// zone's coverage in geographic space, project the clipped outlines, and
// intersection-test the candidate tiles under their projected bounds.
func (g *Grid) searchRings(parts []orb.Ring, coverland bool) ([]string, error) {
	out := make(map[string]bool)
	for _, z := range g.registry.All() {
		sg := g.subgrids[z.ID]
		found := make(map[[2]int]bool)
		for _, part := range parts {
			rect := isRect(part)
			pb := ringBound(part)

			var clips []orb.Ring
			for _, poly := range z.Coverage {
				if c := common.ClipRingToBound(openRing(poly[0]), pb); c != nil {
					clips = append(clips, c)
				}
			}
			if len(clips) == 0 {
				continue
			}

			// For an axis-aligned rectangle the clipped coverage already
			// equals coverage-and-region, so the region ring itself never
			// needs projecting. That matters: projecting a near-global
			// rectangle wraps the antipode and yields a ring that is
			// useless for interior tests.
			var projROI orb.Ring
			if !rect {
				projROI = g.projectRing(sg, common.DensifyRing(part, searchDensifyStep))
			}

			for _, c := range clips {
				pc := g.projectRing(sg, common.DensifyRing(c, searchDensifyStep))
				for _, origin := range g.enumOrigins(ringBound(pc)) {
					if found[origin] {
						continue
					}
					t := Tile{
						Zone:     z.ID,
						Sampling: g.sampling,
						Type:     g.tileType,
						OriginX:  origin[0],
						OriginY:  origin[1],
					}
					tb := t.Extent()
					if projROI == nil {
						if !common.BoundIntersectsRing(tb, pc) {
							continue
						}
					} else if !common.BoundIntersectsRingPair(tb, pc, projROI) {
						// The tile must reach the region inside the zone:
						// touching the clipped coverage in one place and the
						// region outline in another does not count.
						continue
					}
					found[origin] = true
				}
			}
		}
		for origin := range found {
			t := Tile{
				Zone:     z.ID,
				Sampling: g.sampling,
				Type:     g.tileType,
				OriginX:  origin[0],
				OriginY:  origin[1],
			}
			if coverland && !sg.Tilesys.CoversLand(t) {
				continue
			}
			out[t.Name()] = true
		}
	}
	return sortedNames(out), nil
}

func (g *Grid) searchPoints(points []orb.Point, coverland bool) ([]string, error) {
	out := make(map[string]bool)
	for _, p := range points {
		if err := checkLonLat(p[0], p[1]); err != nil {
			return nil, err
		}
		z := g.registry.Locate(p[0], p[1])
		sg := g.subgrids[z.ID]
		x, y := sg.LonLatToXY(p[0], p[1])
		if x < 0 || y < 0 {
			continue
		}
		t, err := sg.Tilesys.CreateTile(x, y)
		if err != nil {
			return nil, err
		}
		if coverland && !sg.Tilesys.CoversLand(t) {
			continue
		}
		out[t.Name()] = true
	}
	return sortedNames(out), nil
}

func (g *Grid) searchXYBBox(roi ROI, coverland bool) ([]string, error) {
	sg, err := g.SubGrid(roi.xyZone)
	if err != nil {
		return nil, err
	}
	names, err := sg.Tilesys.IdentifyTilesOverlappingXYBbox(roi.xyBBox[0], roi.xyBBox[1], roi.xyBBox[2], roi.xyBBox[3])
	if err != nil {
		return nil, err
	}
	if !coverland {
		return names, nil
	}
	out := names[:0]
	for _, name := range names {
		t, err := sg.Tilesys.TileFromName(name)
		if err != nil {
			return nil, err
		}
		if sg.Tilesys.CoversLand(t) {
			out = append(out, name)
		}
	}
	return out, nil
}

func (g *Grid) projectRing(sg *SubGrid, ring orb.Ring) orb.Ring {
	out := make(orb.Ring, len(ring))
	for i, p := range ring {
		x, y := sg.LonLatToXY(p[0], p[1])
		out[i] = orb.Point{x, y}
	}
	return out
}

// enumOrigins yields the origins of all tiles whose footprint could overlap
// the bound, clamped to the zone frame's positive quadrant.
func (g *Grid) enumOrigins(b orb.Bound) [][2]int {
	e := float64(g.tileType.Edge())
	c0 := maxInt(0, int(math.Floor(b.Min[0]/e)))
	c1 := int(math.Floor(b.Max[0] / e))
	r0 := maxInt(0, int(math.Floor(b.Min[1]/e)))
	r1 := int(math.Floor(b.Max[1] / e))

	edge := g.tileType.Edge()
	var out [][2]int
	for c := c0; c <= c1; c++ {
		for r := r0; r <= r1; r++ {
			out = append(out, [2]int{c * edge, r * edge})
		}
	}
	return out
}

// isRect reports whether the open ring is an axis-aligned rectangle.
func isRect(ring orb.Ring) bool {
	if len(ring) != 4 {
		return false
	}
	b := ringBound(ring)
	for _, p := range ring {
		if (p[0] != b.Min[0] && p[0] != b.Max[0]) || (p[1] != b.Min[1] && p[1] != b.Max[1]) {
			return false
		}
	}
	return true
}

func ringBound(ring orb.Ring) orb.Bound {
	b := orb.Bound{Min: ring[0], Max: ring[0]}
	for _, p := range ring[1:] {
		b.Min[0] = math.Min(b.Min[0], p[0])
		b.Min[1] = math.Min(b.Min[1], p[1])
		b.Max[0] = math.Max(b.Max[0], p[0])
		b.Max[1] = math.Max(b.Max[1], p[1])
	}
	return b
}

func openRing(ring orb.Ring) orb.Ring { return common.OpenRing(ring) }

func sortedNames(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

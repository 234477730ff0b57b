// Package common holds small planar-geometry and logging helpers shared by
// the zone registry and the tile search engine. All predicates here operate
// on plain orb values in whatever plane the caller works in (geographic
// degrees or projected meters); nothing in this package knows about zones.
package common

import (
	"math"

	"github.com/paulmach/orb"
)

// PointInRing reports whether pt lies inside ring by ray casting.
// Points exactly on the boundary are not guaranteed either way.
// The ring may be open or closed; a duplicated closing vertex only adds a
// degenerate segment which the cast skips.
func PointInRing(ring orb.Ring, pt orb.Point) bool {
	x, y := pt[0], pt[1]
	inside := false
	n := len(ring)
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		if (yi > y) != (yj > y) {
			t := (y - yi) / (yj - yi)
			if x < xi+t*(xj-xi) {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// SegmentsCross reports whether segments a0-a1 and b0-b1 intersect,
// endpoints inclusive. Parallel segments never cross.
func SegmentsCross(a0, a1, b0, b1 orb.Point) bool {
	s1x, s1y := a1[0]-a0[0], a1[1]-a0[1]
	s2x, s2y := b1[0]-b0[0], b1[1]-b0[1]
	den := -s2x*s1y + s1x*s2y
	if den == 0 {
		return false
	}
	s := (-s1y*(a0[0]-b0[0]) + s1x*(a0[1]-b0[1])) / den
	t := (s2x*(a0[1]-b0[1]) - s2y*(a0[0]-b0[0])) / den
	return s >= 0 && s <= 1 && t >= 0 && t <= 1
}

// BoundIntersectsRing reports whether the axis-aligned bound b and the area
// enclosed by ring overlap: a ring vertex falls inside b, a corner of b
// falls inside the ring, or an edge of b crosses a ring segment.
func BoundIntersectsRing(b orb.Bound, ring orb.Ring) bool {
	for _, p := range ring {
		if p[0] >= b.Min[0] && p[0] <= b.Max[0] && p[1] >= b.Min[1] && p[1] <= b.Max[1] {
			return true
		}
	}
	corners := [4]orb.Point{
		{b.Min[0], b.Min[1]},
		{b.Max[0], b.Min[1]},
		{b.Max[0], b.Max[1]},
		{b.Min[0], b.Max[1]},
	}
	for _, c := range corners {
		if PointInRing(ring, c) {
			return true
		}
	}
	n := len(ring)
	for i := 0; i < n; i++ {
		r0, r1 := ring[i], ring[(i+1)%n]
		for e := 0; e < 4; e++ {
			if SegmentsCross(corners[e], corners[(e+1)%4], r0, r1) {
				return true
			}
		}
	}
	return false
}

// SegmentIntersection returns the point where segments a0-a1 and b0-b1
// meet, endpoints inclusive. Parallel segments report no intersection.
func SegmentIntersection(a0, a1, b0, b1 orb.Point) (orb.Point, bool) {
	s1x, s1y := a1[0]-a0[0], a1[1]-a0[1]
	s2x, s2y := b1[0]-b0[0], b1[1]-b0[1]
	den := -s2x*s1y + s1x*s2y
	if den == 0 {
		return orb.Point{}, false
	}
	s := (-s1y*(a0[0]-b0[0]) + s1x*(a0[1]-b0[1])) / den
	t := (s2x*(a0[1]-b0[1]) - s2y*(a0[0]-b0[0])) / den
	if s < 0 || s > 1 || t < 0 || t > 1 {
		return orb.Point{}, false
	}
	return orb.Point{a0[0] + t*s1x, a0[1] + t*s1y}, true
}

// BoundIntersectsRingPair reports whether the bound and the areas enclosed
// by both rings share a common point. Testing the bound against each ring
// alone is weaker: the bound can overlap each ring in disjoint places while
// the three-way overlap is empty. Any point of the overlap region is either
// a vertex of one boundary inside the other two regions, or a crossing of
// two boundaries inside the third.
func BoundIntersectsRingPair(b orb.Bound, a, c orb.Ring) bool {
	for _, p := range a {
		if b.Contains(p) && PointInRing(c, p) {
			return true
		}
	}
	for _, p := range c {
		if b.Contains(p) && PointInRing(a, p) {
			return true
		}
	}
	corners := [4]orb.Point{
		{b.Min[0], b.Min[1]},
		{b.Max[0], b.Min[1]},
		{b.Max[0], b.Max[1]},
		{b.Min[0], b.Max[1]},
	}
	for _, q := range corners {
		if PointInRing(a, q) && PointInRing(c, q) {
			return true
		}
	}
	na, nc := len(a), len(c)
	for i := 0; i < na; i++ {
		a0, a1 := a[i], a[(i+1)%na]
		for j := 0; j < nc; j++ {
			if p, ok := SegmentIntersection(a0, a1, c[j], c[(j+1)%nc]); ok && b.Contains(p) {
				return true
			}
		}
		for e := 0; e < 4; e++ {
			if p, ok := SegmentIntersection(a0, a1, corners[e], corners[(e+1)%4]); ok && PointInRing(c, p) {
				return true
			}
		}
	}
	for j := 0; j < nc; j++ {
		c0, c1 := c[j], c[(j+1)%nc]
		for e := 0; e < 4; e++ {
			if p, ok := SegmentIntersection(c0, c1, corners[e], corners[(e+1)%4]); ok && PointInRing(a, p) {
				return true
			}
		}
	}
	return false
}

// ClipRingToBound clips ring against the axis-aligned bound using
// Sutherland-Hodgman. The input must be an open ring (no duplicated closing
// vertex). Returns nil when the clipped region degenerates below a triangle.
func ClipRingToBound(ring orb.Ring, b orb.Bound) orb.Ring {
	pts := ring
	pts = clipEdge(pts, func(p orb.Point) bool { return p[0] >= b.Min[0] }, func(p, q orb.Point) orb.Point { return atX(p, q, b.Min[0]) })
	if len(pts) >= 3 {
		pts = clipEdge(pts, func(p orb.Point) bool { return p[0] <= b.Max[0] }, func(p, q orb.Point) orb.Point { return atX(p, q, b.Max[0]) })
	}
	if len(pts) >= 3 {
		pts = clipEdge(pts, func(p orb.Point) bool { return p[1] >= b.Min[1] }, func(p, q orb.Point) orb.Point { return atY(p, q, b.Min[1]) })
	}
	if len(pts) >= 3 {
		pts = clipEdge(pts, func(p orb.Point) bool { return p[1] <= b.Max[1] }, func(p, q orb.Point) orb.Point { return atY(p, q, b.Max[1]) })
	}
	if len(pts) < 3 {
		return nil
	}
	return pts
}

func clipEdge(pts orb.Ring, inside func(orb.Point) bool, isect func(p, q orb.Point) orb.Point) orb.Ring {
	out := make(orb.Ring, 0, len(pts)+4)
	n := len(pts)
	for i := 0; i < n; i++ {
		cur := pts[i]
		prev := pts[(i+n-1)%n]
		ci, pi := inside(cur), inside(prev)
		switch {
		case ci && !pi:
			out = append(out, isect(prev, cur), cur)
		case ci:
			out = append(out, cur)
		case pi:
			out = append(out, isect(prev, cur))
		}
	}
	return out
}

func atX(p, q orb.Point, x float64) orb.Point {
	t := (x - p[0]) / (q[0] - p[0])
	return orb.Point{x, p[1] + t*(q[1]-p[1])}
}

func atY(p, q orb.Point, y float64) orb.Point {
	t := (y - p[1]) / (q[1] - p[1])
	return orb.Point{p[0] + t*(q[0]-p[0]), y}
}

// DensifyRing inserts vertices along each ring segment so that no segment
// spans more than step in either axis. The closing segment back to ring[0]
// is densified too; the output stays open.
func DensifyRing(ring orb.Ring, step float64) orb.Ring {
	out := make(orb.Ring, 0, len(ring)*2)
	n := len(ring)
	for i := 0; i < n; i++ {
		p, q := ring[i], ring[(i+1)%n]
		out = append(out, p)
		d := math.Max(math.Abs(q[0]-p[0]), math.Abs(q[1]-p[1]))
		k := int(math.Ceil(d / step))
		for j := 1; j < k; j++ {
			t := float64(j) / float64(k)
			out = append(out, orb.Point{p[0] + t*(q[0]-p[0]), p[1] + t*(q[1]-p[1])})
		}
	}
	return out
}

// OpenRing strips a duplicated closing vertex, if present.
func OpenRing(ring orb.Ring) orb.Ring {
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		return ring[:n-1]
	}
	return ring
}

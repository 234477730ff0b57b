// Package zone defines the seven continental zones of the Equi7 grid and a
// registry that loads their coverage and land geometry once at startup.
// Each zone owns an azimuthal equidistant projection centered on its
// continent, which bounds distortion over the zone's land extent.
package zone

import (
	"github.com/paulmach/orb"

	"github.com/tuw-geo/equi7go/proj"
)

// ID is the two-letter zone code embedded in long-form tilenames.
type ID string

const (
	EU ID = "EU" // Europe
	AF ID = "AF" // Africa
	AS ID = "AS" // Asia
	NA ID = "NA" // North America
	SA ID = "SA" // South America
	OC ID = "OC" // Oceania
	AN ID = "AN" // Antarctica
)

// Order lists all zones in priority order. A point covered by several zones
// (the coverages deliberately overlap along continental seams) is assigned
// to the first matching zone.
var Order = []ID{EU, AF, AS, NA, SA, OC, AN}

// Valid reports whether id names a defined zone.
func (id ID) Valid() bool {
	_, ok := projections[id]
	return ok
}

// projections holds the per-zone AEQD parameters. The false origins keep
// projected coordinates positive across each zone's extent.
var projections = map[ID]proj.AEQD{
	EU: {LatOrigin: 53.0, LonOrigin: 24.0, FalseEasting: 5837287.81977, FalseNorthing: 2121415.69617},
	AF: {LatOrigin: 8.5, LonOrigin: 21.5, FalseEasting: 5621452.01998, FalseNorthing: 5990638.42298},
	AS: {LatOrigin: 47.0, LonOrigin: 94.0, FalseEasting: 4340913.84808, FalseNorthing: 4812712.92347},
	NA: {LatOrigin: 52.0, LonOrigin: -97.5, FalseEasting: 8264722.17686, FalseNorthing: 4867518.35323},
	SA: {LatOrigin: -14.0, LonOrigin: -60.5, FalseEasting: 7257179.23559, FalseNorthing: 5592024.44605},
	OC: {LatOrigin: -19.5, LonOrigin: 131.5, FalseEasting: 6988408.23195, FalseNorthing: 7654884.5275},
	AN: {LatOrigin: -90.0, LonOrigin: 0.0, FalseEasting: 3714266.97719, FalseNorthing: 3402016.50625},
}

// Zone is the immutable definition of one continental zone. Built once by
// NewRegistry and shared read-only afterwards.
type Zone struct {
	ID   ID
	Proj proj.AEQD

	// Coverage is the zone's geographic footprint. It decides zone
	// assignment and clips regions of interest before projection.
	Coverage orb.MultiPolygon

	// Land is the zone's geographic land geometry, used by coverland
	// filtering.
	Land orb.MultiPolygon

	// LandXY holds the land outlines densified and projected into the
	// zone's plane, precomputed at load.
	LandXY []orb.Ring
}

// Center returns the zone's projection center as a lon/lat point.
func (z *Zone) Center() orb.Point {
	return orb.Point{z.Proj.LonOrigin, z.Proj.LatOrigin}
}

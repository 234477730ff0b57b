package grid

import (
	"github.com/paulmach/orb"

	"github.com/tuw-geo/equi7go/zone"
)

type roiKind int

const (
	roiBBox roiKind = iota
	roiPoints
	roiXYBBox
	roiGeometry
)

// ROI is a region of interest for tile search. Construct one with BBoxROI,
// PointsROI, XYBBoxROI or GeometryROI.
type ROI struct {
	kind   roiKind
	bbox   [4]float64 // lon/lat: xmin ymin xmax ymax
	points []orb.Point
	xyZone zone.ID
	xyBBox [4]float64 // projected meters
	geom   orb.Geometry
}

// BBoxROI describes a geographic bounding box. A box with xmin > xmax wraps
// the antimeridian and is searched as two parts.
func BBoxROI(xmin, ymin, xmax, ymax float64) ROI {
	return ROI{kind: roiBBox, bbox: [4]float64{xmin, ymin, xmax, ymax}}
}

// PointsROI describes a set of geographic lon/lat points.
func PointsROI(points ...orb.Point) ROI {
	return ROI{kind: roiPoints, points: points}
}

// XYBBoxROI describes a bounding box in one zone's projected plane,
// in meters.
func XYBBoxROI(id zone.ID, xmin, ymin, xmax, ymax float64) ROI {
	return ROI{kind: roiXYBBox, xyZone: id, xyBBox: [4]float64{xmin, ymin, xmax, ymax}}
}

// GeometryROI describes an arbitrary geographic polygon or multipolygon.
func GeometryROI(geom orb.Geometry) ROI {
	return ROI{kind: roiGeometry, geom: geom}
}

// rings normalizes a bbox or geometry ROI into open geographic rings.
func (r ROI) rings() ([]orb.Ring, error) {
	switch r.kind {
	case roiBBox:
		xmin, ymin, xmax, ymax := r.bbox[0], r.bbox[1], r.bbox[2], r.bbox[3]
		if ymin > ymax {
			return nil, paramError("degenerate bounding box [%g %g %g %g]", xmin, ymin, xmax, ymax)
		}
		if xmin > xmax {
			// Wraps the antimeridian; split at the +-180 seam.
			return []orb.Ring{
				{{xmin, ymin}, {180, ymin}, {180, ymax}, {xmin, ymax}},
				{{-180, ymin}, {xmax, ymin}, {xmax, ymax}, {-180, ymax}},
			}, nil
		}
		return []orb.Ring{{{xmin, ymin}, {xmax, ymin}, {xmax, ymax}, {xmin, ymax}}}, nil
	case roiGeometry:
		return geometryRings(r.geom)
	}
	return nil, paramError("region has no ring form")
}

func geometryRings(geom orb.Geometry) ([]orb.Ring, error) {
	switch g := geom.(type) {
	case orb.Ring:
		return []orb.Ring{openRing(g)}, nil
	case orb.Polygon:
		if len(g) == 0 {
			return nil, paramError("empty polygon")
		}
		return []orb.Ring{openRing(g[0])}, nil
	case orb.MultiPolygon:
		var rings []orb.Ring
		for _, poly := range g {
			if len(poly) == 0 {
				continue
			}
			rings = append(rings, openRing(poly[0]))
		}
		if len(rings) == 0 {
			return nil, paramError("empty multipolygon")
		}
		return rings, nil
	}
	return nil, paramError("unsupported region geometry %T", geom)
}

package grid

// TileType classifies tiles by edge length. Finer samplings get smaller
// tiles so that raster dimensions stay manageable; the edge lengths nest
// evenly (six T1 or two T3 tiles span one T6 edge).
type TileType string

const (
	T1 TileType = "T1" // 100 km edge
	T3 TileType = "T3" // 300 km edge
	T6 TileType = "T6" // 600 km edge
)

// Edge returns the tile edge length in meters, or 0 for an unknown type.
func (t TileType) Edge() int {
	switch t {
	case T1:
		return 100000
	case T3:
		return 300000
	case T6:
		return 600000
	}
	return 0
}

// Valid reports whether t is a defined tile type.
func (t TileType) Valid() bool { return t.Edge() != 0 }

// TileTypeForSampling returns the tile type used at a given sampling in
// meters per pixel. The sampling must divide its class's edge length so
// every tile holds a whole number of pixels.
func TileTypeForSampling(sampling int) (TileType, error) {
	switch {
	case sampling > 75 && sampling <= 600000 && 600000%sampling == 0:
		return T6, nil
	case sampling >= 25 && sampling <= 75 && 300000%sampling == 0:
		return T3, nil
	case sampling > 0 && sampling < 25 && 100000%sampling == 0:
		return T1, nil
	}
	return "", paramError("unsupported sampling %d m", sampling)
}

// Package geodesic solves the direct and inverse geodesic problems on the
// WGS84 ellipsoid using Vincenty's formulae. It backs the azimuthal
// equidistant projections of the continental zones, where forward projection
// is "distance and azimuth from the zone center" and inverse projection is
// "walk that far along that azimuth".
package geodesic

import "math"

// WGS84 ellipsoid.
const (
	SemiMajorAxis = 6378137.0
	Flattening    = 1 / 298.257223563
)

var semiMinorAxis = SemiMajorAxis * (1 - Flattening)

const (
	maxIterations = 200
	convergence   = 1e-14
)

// Inverse returns the geodesic distance in meters and the initial azimuth in
// radians (clockwise from north) from point 1 to point 2. Latitudes and
// longitudes are in degrees.
//
// Vincenty's inverse formula converges poorly for nearly antipodal pairs;
// within a continental zone the iteration settles in a handful of rounds.
func Inverse(lat1, lon1, lat2, lon2 float64) (s, azimuth float64) {
	a, b, f := SemiMajorAxis, semiMinorAxis, Flattening

	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	capL := (lon2 - lon1) * math.Pi / 180

	u1 := math.Atan((1 - f) * math.Tan(phi1))
	u2 := math.Atan((1 - f) * math.Tan(phi2))
	sinU1, cosU1 := math.Sin(u1), math.Cos(u1)
	sinU2, cosU2 := math.Sin(u2), math.Cos(u2)

	lambda := capL
	var sinSigma, cosSigma, sigma, sinAlpha, cos2Alpha, cos2SigmaM float64
	for i := 0; i < maxIterations; i++ {
		sinLambda, cosLambda := math.Sin(lambda), math.Cos(lambda)
		t1 := cosU2 * sinLambda
		t2 := cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma = math.Sqrt(t1*t1 + t2*t2)
		if sinSigma == 0 {
			return 0, 0 // coincident points
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha = cosU1 * cosU2 * sinLambda / sinSigma
		cos2Alpha = 1 - sinAlpha*sinAlpha
		if cos2Alpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cos2Alpha
		} else {
			cos2SigmaM = 0 // equatorial line
		}
		c := f / 16 * cos2Alpha * (4 + f*(4-3*cos2Alpha))
		prev := lambda
		lambda = capL + (1-c)*f*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
		if math.Abs(lambda-prev) < convergence {
			break
		}
	}

	uSq := cos2Alpha * (a*a - b*b) / (b * b)
	capA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	capB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := capB * sinSigma * (cos2SigmaM + capB/4*
		(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			capB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	s = b * capA * (sigma - deltaSigma)
	azimuth = math.Atan2(cosU2*math.Sin(lambda), cosU1*sinU2-sinU1*cosU2*math.Cos(lambda))
	return s, azimuth
}

// Direct returns the point reached by traveling s meters from (lat1, lon1)
// along the given initial azimuth in radians. Latitudes and longitudes are
// in degrees.
func Direct(lat1, lon1, azimuth, s float64) (lat2, lon2 float64) {
	a, b, f := SemiMajorAxis, semiMinorAxis, Flattening

	phi1 := lat1 * math.Pi / 180
	u1 := math.Atan((1 - f) * math.Tan(phi1))
	sinAlpha1, cosAlpha1 := math.Sin(azimuth), math.Cos(azimuth)
	sigma1 := math.Atan2(math.Tan(u1), cosAlpha1)
	sinAlpha := math.Cos(u1) * sinAlpha1
	cos2Alpha := 1 - sinAlpha*sinAlpha

	uSq := cos2Alpha * (a*a - b*b) / (b * b)
	capA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	capB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	sigma := s / (b * capA)
	var sinSigma, cosSigma, cos2SigmaM float64
	for i := 0; i < maxIterations; i++ {
		cos2SigmaM = math.Cos(2*sigma1 + sigma)
		sinSigma, cosSigma = math.Sin(sigma), math.Cos(sigma)
		deltaSigma := capB * sinSigma * (cos2SigmaM + capB/4*
			(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
				capB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
		prev := sigma
		sigma = s/(b*capA) + deltaSigma
		if math.Abs(sigma-prev) < 1e-15 {
			break
		}
	}

	cos2SigmaM = math.Cos(2*sigma1 + sigma)
	sinSigma, cosSigma = math.Sin(sigma), math.Cos(sigma)
	sinU1, cosU1 := math.Sin(u1), math.Cos(u1)

	t := sinU1*sinSigma - cosU1*cosSigma*cosAlpha1
	phi2 := math.Atan2(sinU1*cosSigma+cosU1*sinSigma*cosAlpha1,
		(1-f)*math.Sqrt(sinAlpha*sinAlpha+t*t))
	lambda := math.Atan2(sinSigma*sinAlpha1, cosU1*cosSigma-sinU1*sinSigma*cosAlpha1)
	c := f / 16 * cos2Alpha * (4 + f*(4-3*cos2Alpha))
	capL := lambda - (1-c)*f*sinAlpha*
		(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

	lat2 = phi2 * 180 / math.Pi
	lon2 = normalizeLon(lon1 + capL*180/math.Pi)
	return lat2, lon2
}

// normalizeLon wraps a longitude into [-180, 180). Geodesics crossing the
// dateline otherwise accumulate past 180 degrees.
func normalizeLon(lon float64) float64 {
	lon = math.Mod(lon+540, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

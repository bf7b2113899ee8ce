package agentmaps

import (
	"math"

	geo "github.com/paulmach/go.geo"
)

const (
	// UnitLength is the along-street extent of one unit, in kilometers.
	UnitLength = 0.014

	// UnitBuffer is the gap between consecutive units on the same street,
	// in kilometers.
	UnitBuffer = 0.003
)

// AnchorPair delimits one candidate unit-length interval on a street.
// Points are in display axis order.
type AnchorPair struct {
	Start []float64 `json:"start"`
	End   []float64 `json:"end"`
}

// SegmentAnchors walks the street at UnitLength increments, separated by
// UnitBuffer, and returns the pairs whose endpoints both fall inside the
// bounds. The walk stops when a candidate end lands exactly on the street's
// final vertex, which is what the along walk produces once the distance
// overruns the street; that pair is not emitted. Pairs outside the bounds
// are dropped, never retried.
func SegmentAnchors(street *Street, bounds *Bounds) []AnchorPair {
	coords := street.Coordinates
	if len(coords) < 2 {
		return nil
	}
	last := coords[len(coords)-1]

	pairs := make([]AnchorPair, 0)
	for d := 0.0; ; d += UnitLength + UnitBuffer {
		start := along(coords, d)
		end := along(coords, d+UnitLength)

		if coordEquals(end, last) {
			break
		}

		if bounds.Contains(start) && bounds.Contains(end) {
			pairs = append(pairs, AnchorPair{Start: start, End: end})
		}
	}
	return pairs
}

// along returns the point at the given distance (km) along a display-order
// polyline. A distance landing exactly on a vertex yields that vertex
// verbatim; a distance beyond the end of the line clamps to the final
// vertex. Interior points are projected geodesically within their segment.
func along(coords [][]float64, km float64) []float64 {
	travelled := 0.0
	for i := 0; i < len(coords)-1; i++ {
		if travelled == km {
			return []float64{coords[i][0], coords[i][1]}
		}

		seg := distanceKm(coords[i], coords[i+1])
		if travelled+seg > km {
			from := geo.NewPoint(coords[i][1], coords[i][0])
			to := geo.NewPoint(coords[i+1][1], coords[i+1][0])
			p := destination(from, km-travelled, from.BearingTo(to))
			return []float64{p.Lat(), p.Lng()}
		}
		travelled += seg
	}

	last := coords[len(coords)-1]
	return []float64{last[0], last[1]}
}

func distanceKm(a, b []float64) float64 {
	pa := geo.NewPoint(a[1], a[0])
	pb := geo.NewPoint(b[1], b[0])
	return pa.GeoDistanceFrom(pb, true) / 1000.0
}

// destination projects a point along a bearing (degrees from north) for a
// distance in kilometers, on the sphere go.geo measures distances against.
func destination(p *geo.Point, km, bearing float64) *geo.Point {
	dist := km * 1000.0 / geo.EarthRadius
	brng := deg2rad(bearing)
	lat1 := deg2rad(p.Lat())
	lng1 := deg2rad(p.Lng())

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(dist) +
		math.Cos(lat1)*math.Sin(dist)*math.Cos(brng))
	lng2 := lng1 + math.Atan2(
		math.Sin(brng)*math.Sin(dist)*math.Cos(lat1),
		math.Cos(dist)-math.Sin(lat1)*math.Sin(lat2))

	return geo.NewPoint(rad2deg(lng2), rad2deg(lat2))
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func rad2deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

package agentmaps

import (
	"math"
	"testing"

	"github.com/cheekybits/is"
	geo "github.com/paulmach/go.geo"
)

// meridian returns a display-order polyline running north from the equator
// along the prime meridian. One degree of latitude is roughly 111.3 km.
func meridian(latTo float64) [][]float64 {
	return [][]float64{{0, 0}, {latTo, 0}}
}

func TestDestination(t *testing.T) {
	is := is.New(t)

	origin := geo.NewPoint(0, 0)

	// Due north: latitude grows, longitude stays put, and the projected
	// distance round-trips through the distance measure.
	north := destination(origin, UnitLength, 0)
	is.True(north.Lat() > 0)
	is.True(math.Abs(north.Lng()) < 1e-12)
	d := distanceKm([]float64{0, 0}, []float64{north.Lat(), north.Lng()})
	is.True(math.Abs(d-UnitLength) < 1e-9)

	// Due east from the equator: longitude grows
	east := destination(origin, StreetBuffer, 90)
	is.True(east.Lng() > 0)
	is.True(math.Abs(east.Lat()) < 1e-12)
	d = distanceKm([]float64{0, 0}, []float64{east.Lat(), east.Lng()})
	is.True(math.Abs(d-StreetBuffer) < 1e-9)

	// Zero distance projects onto the same location
	same := destination(origin, 0, 45)
	is.True(math.Abs(same.Lat()) < 1e-12)
	is.True(math.Abs(same.Lng()) < 1e-12)
}

func TestAlong(t *testing.T) {
	is := is.New(t)

	coords := meridian(0.001)

	// Distance 0 yields the first vertex verbatim
	is.Equal(along(coords, 0), []float64{0, 0})

	// Interior distances project within the segment
	p := along(coords, 0.014)
	is.True(p[0] > 0)
	is.True(p[0] < 0.001)

	// Overruns clamp to the final vertex verbatim
	is.Equal(along(coords, 999), []float64{0.001, 0})
}

func TestAlongVertexExact(t *testing.T) {
	is := is.New(t)

	// A distance equal to the accumulated length at a vertex yields that
	// vertex verbatim, not a projected approximation.
	coords := [][]float64{{0, 0}, {0.0005, 0}, {0.001, 0}}

	from := along(coords, 0)
	is.Equal(from, []float64{0, 0})

	total := 0.0
	total += distanceKm(coords[0], coords[1])
	mid := along(coords, total)
	is.Equal(mid, []float64{0.0005, 0})
}

func TestSegmentAnchors(t *testing.T) {
	is := is.New(t)

	// Roughly 0.04 km long: pairs at 0-0.014 and 0.017-0.031 fit, the next
	// candidate end overruns and terminates the walk.
	street := NewStreet("a", meridian(0.00036))
	bounds := NewBounds([]float64{-0.1, -0.1}, []float64{0.1, 0.1})

	pairs := SegmentAnchors(street, bounds)
	is.Equal(len(pairs), 2)

	is.Equal(pairs[0].Start, []float64{0, 0})
	for _, pair := range pairs {
		is.True(bounds.Contains(pair.Start))
		is.True(bounds.Contains(pair.End))
		is.True(pair.Start[0] < pair.End[0])
	}

	// Walk order
	is.True(pairs[0].Start[0] < pairs[1].Start[0])
}

func TestSegmentAnchorsBounds(t *testing.T) {
	is := is.New(t)

	street := NewStreet("a", meridian(0.00036))

	// Only the first pair fits: the second pair starts at 0.017 km, about
	// 0.000153 degrees north.
	bounds := NewBounds([]float64{-0.1, -0.1}, []float64{0.00015, 0.1})

	pairs := SegmentAnchors(street, bounds)
	is.Equal(len(pairs), 1)
	is.Equal(pairs[0].Start, []float64{0, 0})
}

func TestSegmentAnchorsShortStreet(t *testing.T) {
	is := is.New(t)

	// Shorter than one unit length: the first candidate end already clamps
	// to the final vertex.
	street := NewStreet("a", meridian(0.00005))
	bounds := NewBounds([]float64{-0.1, -0.1}, []float64{0.1, 0.1})

	pairs := SegmentAnchors(street, bounds)
	is.Equal(len(pairs), 0)
}

func TestSegmentAnchorsDegenerate(t *testing.T) {
	is := is.New(t)

	street := NewStreet("a", [][]float64{{0, 0}})
	bounds := NewBounds([]float64{-0.1, -0.1}, []float64{0.1, 0.1})
	is.Equal(len(SegmentAnchors(street, bounds)), 0)
}

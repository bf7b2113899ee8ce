package agentmaps

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

// LatLng is a labeled point in display axis order, the shape used by
// map-facing APIs.
type LatLng struct {
	Lat float64
	Lng float64
}

// InvalidPointError is returned when a value cannot be interpreted as a
// point in any of the supported shapes.
type InvalidPointError struct {
	Value interface{}
}

func (e *InvalidPointError) Error() string {
	return fmt.Sprintf("Invalid point: %v", e.Value)
}

// NormalizePoint unwraps a point into its raw 2-element pair. It accepts a
// labeled lat/lng point, a geometry-wrapped point feature, or a raw pair.
func NormalizePoint(v interface{}) ([]float64, error) {
	switch p := v.(type) {
	case LatLng:
		return []float64{p.Lat, p.Lng}, nil
	case *LatLng:
		return []float64{p.Lat, p.Lng}, nil
	case *geojson.Feature:
		if p.Geometry != nil && p.Geometry.Type == geojson.GeometryPoint {
			return p.Geometry.Point, nil
		}
	case *geojson.Geometry:
		if p.Type == geojson.GeometryPoint {
			return p.Point, nil
		}
	case []float64:
		if len(p) == 2 {
			return p, nil
		}
	}
	return nil, &InvalidPointError{Value: v}
}

// IsPointPair reports whether v is exactly a 2-element numeric pair.
func IsPointPair(v interface{}) bool {
	p, ok := v.([]float64)
	return ok && len(p) == 2
}

// ReverseAxisOrder swaps the innermost 2-element pairs of a point, line or
// polygon coordinate structure, leaving the nesting unchanged.
func ReverseAxisOrder(c interface{}) interface{} {
	switch v := c.(type) {
	case []float64:
		if len(v) == 2 {
			return []float64{v[1], v[0]}
		}
	case [][]float64:
		return reverseLine(v)
	case [][][]float64:
		out := make([][][]float64, len(v))
		for i, ring := range v {
			out[i] = reverseLine(ring)
		}
		return out
	}
	return c
}

func reversePair(p []float64) []float64 {
	return []float64{p[1], p[0]}
}

func reverseLine(coords [][]float64) [][]float64 {
	out := make([][]float64, len(coords))
	for i, p := range coords {
		out[i] = reversePair(p)
	}
	return out
}

func coordEquals(a, b []float64) bool {
	return a[0] == b[0] && a[1] == b[1]
}

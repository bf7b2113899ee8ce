package agentmaps

import "github.com/golang/geo/s2"

// Bounds is the axis-aligned lat/lng rectangle constraining where anchors
// may be placed. Corners are given in display order; they do not need to be
// sorted.
type Bounds struct {
	rect s2.Rect
}

func NewBounds(corner1, corner2 []float64) *Bounds {
	r := s2.RectFromLatLng(s2.LatLngFromDegrees(corner1[0], corner1[1]))
	r = r.AddPoint(s2.LatLngFromDegrees(corner2[0], corner2[1]))
	return &Bounds{rect: r}
}

// Contains tests a display-order point against the rectangle, edges
// included.
func (b *Bounds) Contains(p []float64) bool {
	return b.rect.ContainsLatLng(s2.LatLngFromDegrees(p[0], p[1]))
}

package agentmaps

import geojson "github.com/paulmach/go.geojson"

// StreetFeatures renders the street graph as a feature collection of
// LineStrings, each carrying its intersection mapping as a property.
func (l *Layout) StreetFeatures() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, s := range l.Streets {
		f := geojson.NewLineStringFeature(reverseLine(s.Coordinates))
		f.ID = s.ID
		f.SetProperty("id", s.ID)
		f.SetProperty("intersections", s.Intersections)
		fc.AddFeature(f)
	}
	return fc
}

// UnitFeatures renders the surviving units as a feature collection of
// Polygons with street ID, anchor pair and resolved neighbor IDs as
// properties. Neighbor slots that are empty, or that point at a unit
// removed by the exclusion filter, come out as nil.
func (l *Layout) UnitFeatures() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, u := range l.Units.Units() {
		f := geojson.NewPolygonFeature([][][]float64{reverseLine(u.Polygon)})
		f.ID = u.ID
		f.SetProperty("id", u.ID)
		f.SetProperty("street", u.StreetID)
		f.SetProperty("anchor", u.Anchor)

		neighbors := make([]interface{}, len(u.Neighbors))
		for slot := range u.Neighbors {
			if n, ok := l.Units.Neighbor(u, slot); ok {
				neighbors[slot] = n.ID
			}
		}
		f.SetProperty("neighbors", neighbors)

		fc.AddFeature(f)
	}
	return fc
}

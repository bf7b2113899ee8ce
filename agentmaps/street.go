package agentmaps

import (
	"fmt"
	"sort"

	geojson "github.com/paulmach/go.geojson"
)

// Street is an input road polyline. Coordinates are kept in display axis
// order (lat, lng). Intersections maps the ID of every crossing street to
// the shared-vertex records with that street.
type Street struct {
	ID            string
	Coordinates   [][]float64
	Intersections map[string][]Match
}

func NewStreet(id string, coords [][]float64) *Street {
	return &Street{
		ID:            id,
		Coordinates:   coords,
		Intersections: make(map[string][]Match),
	}
}

// IntersectionIDs returns the IDs of the streets this one crosses, sorted
// for stable iteration.
func (s *Street) IntersectionIDs() []string {
	ids := make([]string, 0, len(s.Intersections))
	for id := range s.Intersections {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// StreetsFromFeatures extracts the road polylines from a feature collection:
// LineString features carrying a "highway" property. Feature coordinates are
// geometric order and get flipped to display order.
func StreetsFromFeatures(fc *geojson.FeatureCollection) []*Street {
	streets := make([]*Street, 0)
	seen := make(map[string]bool)
	for i, f := range fc.Features {
		if f.Geometry == nil || f.Geometry.Type != geojson.GeometryLineString {
			continue
		}
		if _, ok := f.Properties["highway"]; !ok {
			continue
		}

		id := fmt.Sprintf("street-%d", i)
		if f.ID != nil {
			id = fmt.Sprintf("%v", f.ID)
		}

		// Duplicate feature IDs would merge intersection records, suffix
		// them apart
		base := id
		for n := 2; seen[id]; n++ {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		seen[id] = true

		streets = append(streets, NewStreet(id, reverseLine(f.Geometry.LineString)))
	}
	return streets
}

// BuildStreetGraph computes, for every unordered pair of distinct streets,
// the points their geometries share, and records them symmetrically on both
// streets. A pair is compared exactly once and a street is never compared
// with itself.
func BuildStreetGraph(streets []*Street) error {
	for i := 0; i < len(streets); i++ {
		for j := i + 1; j < len(streets); j++ {
			err := crossReference(streets[i], streets[j])
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func crossReference(a, b *Street) error {
	// The engine compares in geometric axis order, match points come back
	// out in display order.
	matches, err := CoincidentPointsTagged(
		reverseLine(a.Coordinates),
		reverseLine(b.Coordinates),
		a.ID, b.ID)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return nil
	}

	for i := range matches {
		matches[i].Point = reversePair(matches[i].Point)
	}

	a.Intersections[b.ID] = matches
	b.Intersections[a.ID] = matches
	return nil
}

package agentmaps

import "github.com/paulsmith/gogeos/geos"

// OverlapPolicy controls unit-versus-unit overlap exclusion during
// generation. It ships disabled: enabling it changes every generated layout,
// so the choice is left to configuration rather than made here.
type OverlapPolicy struct {
	Enabled bool
}

// Overlaps tests the candidate ring against every unit in the set. With the
// policy disabled it reports no overlap unconditionally.
func (p *OverlapPolicy) Overlaps(candidate [][]float64, set *UnitSet) (bool, error) {
	if p == nil || !p.Enabled {
		return false, nil
	}

	cg, err := polygonGeometry(candidate)
	if err != nil {
		return false, err
	}
	pg := geos.PrepareGeometry(cg)

	for _, u := range set.Units() {
		ug, err := polygonGeometry(u.Polygon)
		if err != nil {
			return false, err
		}
		overlaps, err := pg.Intersects(ug)
		if err != nil {
			return false, err
		}
		if overlaps {
			return true, nil
		}
	}
	return false, nil
}

// ExcludeStreetCollisions removes every unit whose boundary crosses any
// street polyline. All streets are inspected before any removal is applied,
// so a unit colliding with several streets is removed exactly once.
func ExcludeStreetCollisions(set *UnitSet, streets []*Street) error {
	collided := make(map[int]bool)

	for _, street := range streets {
		line, err := lineGeometry(street.Coordinates)
		if err != nil {
			return err
		}
		pline := geos.PrepareGeometry(line)

		for _, u := range set.Units() {
			if collided[u.ID] {
				continue
			}
			ring, err := lineGeometry(u.Polygon)
			if err != nil {
				return err
			}
			crosses, err := pline.Intersects(ring)
			if err != nil {
				return err
			}
			if crosses {
				collided[u.ID] = true
			}
		}
	}

	for _, u := range set.Units() {
		if collided[u.ID] {
			set.Remove(u.ID)
		}
	}
	return nil
}

// Display-order coordinates flip to geometric order for geos.

func polygonGeometry(ring [][]float64) (*geos.Geometry, error) {
	return geos.NewPolygon(geosCoords(ring))
}

func lineGeometry(coords [][]float64) (*geos.Geometry, error) {
	return geos.NewLineString(geosCoords(coords)...)
}

func geosCoords(coords [][]float64) []geos.Coord {
	out := make([]geos.Coord, len(coords))
	for i, p := range coords {
		out[i] = geos.NewCoord(p[1], p[0])
	}
	return out
}

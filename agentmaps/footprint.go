package agentmaps

import geo "github.com/paulmach/go.geo"

const (
	// StreetBuffer is the gap between the street centerline and the near
	// edge of a unit, in kilometers.
	StreetBuffer = 0.006

	// HouseDepth is the distance between the near and far edges of a unit,
	// in kilometers.
	HouseDepth = 0.018
)

// Neighbor slots of a unit.
const (
	NeighborPrev     = 0 // preceding unit on the same side of the street
	NeighborNext     = 1 // following unit on the same side of the street
	NeighborOpposite = 2 // unit across the street, same anchor pair
)

// NoNeighbor marks an empty neighbor slot. A slot may also hold the ID of a
// unit that was later excluded; resolve slots through UnitSet.Neighbor,
// which treats both the same way.
const NoNeighbor = -1

// Unit is a generated building footprint: a closed 5-point polygon offset
// from one side of a street, anchored to one unit-length interval.
type Unit struct {
	ID        int
	StreetID  string
	Anchor    AnchorPair
	Polygon   [][]float64 // closed ring, display axis order
	Neighbors [3]int
}

// UnitSet is the arena holding every accepted unit, keyed by ID. IDs are
// assigned strictly increasing at insertion and never reused, so neighbor
// slots stay valid as plain integers even after removals.
type UnitSet struct {
	units map[int]*Unit
	order []int
	next  int
}

func NewUnitSet() *UnitSet {
	return &UnitSet{
		units: make(map[int]*Unit),
	}
}

// Insert assigns the next ID to u and adds it to the set.
func (s *UnitSet) Insert(u *Unit) {
	u.ID = s.next
	s.next++
	s.units[u.ID] = u
	s.order = append(s.order, u.ID)
}

// Get looks up a unit by ID. Unknown or removed IDs report ok = false.
func (s *UnitSet) Get(id int) (*Unit, bool) {
	u, ok := s.units[id]
	return u, ok
}

// Remove deletes a unit wholesale. Surviving units keep their neighbor
// references to it; those now dangle and resolve to no neighbor.
func (s *UnitSet) Remove(id int) {
	delete(s.units, id)
}

func (s *UnitSet) Len() int {
	return len(s.units)
}

// Units returns the surviving units in insertion order.
func (s *UnitSet) Units() []*Unit {
	out := make([]*Unit, 0, len(s.units))
	for _, id := range s.order {
		if u, ok := s.units[id]; ok {
			out = append(out, u)
		}
	}
	return out
}

// Neighbor resolves a neighbor slot of u. Empty and dangling slots both
// report ok = false.
func (s *UnitSet) Neighbor(u *Unit, slot int) (*Unit, bool) {
	if slot < 0 || slot >= len(u.Neighbors) {
		return nil, false
	}
	id := u.Neighbors[slot]
	if id == NoNeighbor {
		return nil, false
	}
	return s.Get(id)
}

// GenerateUnits proposes two units per anchor pair, one per side of the
// street, and links accepted ones into the neighbor graph. The positive
// side is attempted first. A unit rejected by the overlap policy leaves no
// placeholder: the opposite link only forms when both sides of the same
// anchor pair are accepted.
func GenerateUnits(street *Street, anchors []AnchorPair, set *UnitSet, policy *OverlapPolicy) error {
	prev := [2]int{NoNeighbor, NoNeighbor}

	for _, pair := range anchors {
		sides := [2]int{NoNeighbor, NoNeighbor}

		for si, sign := range []float64{1, -1} {
			polygon := footprintPolygon(pair, sign)

			overlaps, err := policy.Overlaps(polygon, set)
			if err != nil {
				return err
			}
			if overlaps {
				continue
			}

			u := &Unit{
				StreetID:  street.ID,
				Anchor:    pair,
				Polygon:   polygon,
				Neighbors: [3]int{NoNeighbor, NoNeighbor, NoNeighbor},
			}
			set.Insert(u)

			if prev[si] != NoNeighbor {
				u.Neighbors[NeighborPrev] = prev[si]
				if p, ok := set.Get(prev[si]); ok {
					p.Neighbors[NeighborNext] = u.ID
				}
			}
			prev[si] = u.ID
			sides[si] = u.ID
		}

		if sides[0] != NoNeighbor && sides[1] != NoNeighbor {
			near, _ := set.Get(sides[0])
			far, _ := set.Get(sides[1])
			near.Neighbors[NeighborOpposite] = far.ID
			far.Neighbors[NeighborOpposite] = near.ID
		}
	}
	return nil
}

// footprintPolygon projects the anchor pair away from the street along the
// perpendicular heading for the given side. When the street bearing exceeds
// 90 degrees the perpendicular flips from added to subtracted; that
// asymmetry decides which compass side "positive" means and has to match on
// both anchor points, boundary included.
func footprintPolygon(pair AnchorPair, sign float64) [][]float64 {
	a := geo.NewPoint(pair.Start[1], pair.Start[0])
	b := geo.NewPoint(pair.End[1], pair.End[0])

	bearing := a.BearingTo(b)
	heading := bearing
	if bearing <= 90 {
		heading += 90 * sign
	} else {
		heading -= 90 * sign
	}

	c1 := destination(a, StreetBuffer, heading)
	c2 := destination(b, StreetBuffer, heading)
	c3 := destination(b, StreetBuffer+HouseDepth, heading)
	c4 := destination(a, StreetBuffer+HouseDepth, heading)

	return [][]float64{
		{c1.Lat(), c1.Lng()},
		{c2.Lat(), c2.Lng()},
		{c3.Lat(), c3.Lng()},
		{c4.Lat(), c4.Lng()},
		{c1.Lat(), c1.Lng()},
	}
}

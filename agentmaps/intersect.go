package agentmaps

import "fmt"

// Match is a coincident point between two coordinate sequences, with the
// position of that point in each sequence keyed by the caller's tags.
type Match struct {
	Point   []float64      `json:"point"`
	Indexes map[string]int `json:"indexes,omitempty"`
}

// InvalidSequenceError is returned when an element of a coordinate sequence
// is not a 2-element numeric pair.
type InvalidSequenceError struct {
	Value interface{}
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("Invalid coordinate sequence element: %v", e.Value)
}

// CoincidentPoints finds every point shared by both sequences, by exact
// equality on both components. Equality is deliberately exact: callers pass
// sequences that share vertices by provenance, not by approximation.
func CoincidentPoints(a, b [][]float64) ([][]float64, error) {
	matches, err := coincident(a, b)
	if err != nil {
		return nil, err
	}

	points := make([][]float64, len(matches))
	for i, m := range matches {
		points[i] = m.point
	}
	return points, nil
}

// CoincidentPointsTagged behaves like CoincidentPoints but additionally
// records, under tagA and tagB, the index of the shared point in each
// sequence.
func CoincidentPointsTagged(a, b [][]float64, tagA, tagB string) ([]Match, error) {
	matches, err := coincident(a, b)
	if err != nil {
		return nil, err
	}

	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = Match{
			Point: m.point,
			Indexes: map[string]int{
				tagA: m.ai,
				tagB: m.bi,
			},
		}
	}
	return out, nil
}

type coincidence struct {
	point []float64
	ai    int
	bi    int
}

func coincident(a, b [][]float64) ([]coincidence, error) {
	if err := validSequence(a); err != nil {
		return nil, err
	}
	if err := validSequence(b); err != nil {
		return nil, err
	}

	matches := make([]coincidence, 0)
	for i, pa := range a {
		for j, pb := range b {
			if coordEquals(pa, pb) {
				matches = append(matches, coincidence{
					point: pa,
					ai:    i,
					bi:    j,
				})
			}
		}
	}
	return matches, nil
}

func validSequence(coords [][]float64) error {
	for _, p := range coords {
		if len(p) != 2 {
			return &InvalidSequenceError{Value: p}
		}
	}
	return nil
}

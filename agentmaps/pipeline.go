package agentmaps

import (
	"errors"

	geojson "github.com/paulmach/go.geojson"
)

// Layout is the product of one generation run: the street graph and the
// surviving unit footprints.
type Layout struct {
	Streets []*Street
	Units   *UnitSet
}

// LayoutPipeline generates a layout from a set of streets. Stages run
// sequentially and deterministically: street graph, anchor segmentation in
// street input order, unit generation, street-collision exclusion. Any
// stage error aborts the run without a partial result.
type LayoutPipeline struct {
	streets []*Street
	bounds  *Bounds
	overlap OverlapPolicy
}

func NewLayoutPipeline(streets []*Street) *LayoutPipeline {
	return &LayoutPipeline{
		streets: streets,
	}
}

// Bounds sets the inclusion rectangle for anchor points. Required.
func (p *LayoutPipeline) Bounds(b *Bounds) *LayoutPipeline {
	p.bounds = b
	return p
}

// OverlapExclusion enables unit-versus-unit overlap testing during
// generation. Off unless asked for.
func (p *LayoutPipeline) OverlapExclusion(enabled bool) *LayoutPipeline {
	p.overlap.Enabled = enabled
	return p
}

func (p *LayoutPipeline) Run() (*Layout, error) {
	if p.bounds == nil {
		return nil, errors.New("No bounds configured")
	}

	err := BuildStreetGraph(p.streets)
	if err != nil {
		return nil, err
	}

	units := NewUnitSet()
	for _, street := range p.streets {
		anchors := SegmentAnchors(street, p.bounds)
		err = GenerateUnits(street, anchors, units, &p.overlap)
		if err != nil {
			return nil, err
		}
	}

	err = ExcludeStreetCollisions(units, p.streets)
	if err != nil {
		return nil, err
	}

	return &Layout{
		Streets: p.streets,
		Units:   units,
	}, nil
}

// Buildingify runs the whole pipeline on a raw feature collection: filter
// out the road polylines, then generate and filter unit footprints between
// the two corner coordinates (display axis order).
func Buildingify(fc *geojson.FeatureCollection, corner1, corner2 []float64) (*Layout, error) {
	streets := StreetsFromFeatures(fc)
	return NewLayoutPipeline(streets).
		Bounds(NewBounds(corner1, corner2)).
		Run()
}

package agentmaps

import (
	"testing"

	"github.com/cheekybits/is"
	geojson "github.com/paulmach/go.geojson"
)

func TestBuildStreetGraph(t *testing.T) {
	is := is.New(t)

	a := NewStreet("a", [][]float64{{10, 19}, {10, 20}, {10, 21}})
	b := NewStreet("b", [][]float64{{9, 20}, {10, 20}, {11, 20}})

	err := BuildStreetGraph([]*Street{a, b})
	is.NoErr(err)

	is.Equal(len(a.Intersections), 1)
	is.Equal(len(b.Intersections), 1)

	ma := a.Intersections["b"]
	mb := b.Intersections["a"]
	is.Equal(len(ma), 1)
	is.Equal(len(mb), 1)

	is.Equal(ma[0].Point, []float64{10, 20})
	is.Equal(mb[0].Point, []float64{10, 20})

	// Index provenance, symmetric with roles swapped
	is.Equal(ma[0].Indexes["a"], 1)
	is.Equal(ma[0].Indexes["b"], 1)
	is.Equal(a.Coordinates[ma[0].Indexes["a"]], b.Coordinates[ma[0].Indexes["b"]])
}

func TestBuildStreetGraphDisjoint(t *testing.T) {
	is := is.New(t)

	a := NewStreet("a", [][]float64{{0, 0}, {0, 1}})
	b := NewStreet("b", [][]float64{{5, 5}, {5, 6}})

	err := BuildStreetGraph([]*Street{a, b})
	is.NoErr(err)

	is.Equal(len(a.Intersections), 0)
	is.Equal(len(b.Intersections), 0)
}

func TestBuildStreetGraphNoSelf(t *testing.T) {
	is := is.New(t)

	a := NewStreet("a", [][]float64{{0, 0}, {0, 1}})

	err := BuildStreetGraph([]*Street{a})
	is.NoErr(err)
	is.Equal(len(a.Intersections), 0)
}

func TestStreetsFromFeatures(t *testing.T) {
	is := is.New(t)

	road := geojson.NewLineStringFeature([][]float64{{20, 10}, {21, 10}})
	road.ID = "main"
	road.SetProperty("highway", "residential")

	river := geojson.NewLineStringFeature([][]float64{{30, 10}, {31, 10}})
	river.SetProperty("waterway", "river")

	poi := geojson.NewPointFeature([]float64{20, 10})
	poi.SetProperty("highway", "bus_stop")

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(road)
	fc.AddFeature(river)
	fc.AddFeature(poi)

	streets := StreetsFromFeatures(fc)
	is.Equal(len(streets), 1)
	is.Equal(streets[0].ID, "main")

	// Coordinates flipped to display order
	is.Equal(streets[0].Coordinates, [][]float64{{10, 20}, {10, 21}})
}

func TestIntersectionIDsSorted(t *testing.T) {
	is := is.New(t)

	// Three streets through a shared vertex, IDs deliberately out of order
	center := NewStreet("m", [][]float64{{10, 19}, {10, 20}, {10, 21}})
	z := NewStreet("z", [][]float64{{9, 20}, {10, 20}})
	a := NewStreet("a", [][]float64{{11, 20}, {10, 20}})

	err := BuildStreetGraph([]*Street{center, z, a})
	is.NoErr(err)

	is.Equal(center.IntersectionIDs(), []string{"a", "z"})
	is.Equal(z.IntersectionIDs(), []string{"a", "m"})
}

func TestStreetsFromFeaturesDuplicateIDs(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	for i := 0; i < 3; i++ {
		f := geojson.NewLineStringFeature([][]float64{{float64(i), 0}, {float64(i), 1}})
		f.ID = "main"
		f.SetProperty("highway", "residential")
		fc.AddFeature(f)
	}

	streets := StreetsFromFeatures(fc)
	is.Equal(len(streets), 3)
	is.Equal(streets[0].ID, "main")
	is.Equal(streets[1].ID, "main-2")
	is.Equal(streets[2].ID, "main-3")
}

func TestStreetsFromFeaturesSequentialIDs(t *testing.T) {
	is := is.New(t)

	fc := geojson.NewFeatureCollection()
	for i := 0; i < 2; i++ {
		f := geojson.NewLineStringFeature([][]float64{{float64(i), 0}, {float64(i), 1}})
		f.SetProperty("highway", "residential")
		fc.AddFeature(f)
	}

	streets := StreetsFromFeatures(fc)
	is.Equal(len(streets), 2)
	is.Equal(streets[0].ID, "street-0")
	is.Equal(streets[1].ID, "street-1")
}

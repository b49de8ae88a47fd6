package export

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	geojson "github.com/paulmach/go.geojson"

	"crosswarped.com/wires"
	"crosswarped.com/wires/pkg/primitives"
)

const small = "R8,U5,L5,D3\nU7,R6,D4,L4"

func TestGeoJSON(t *testing.T) {
	p := wires.NewPuzzle(small)
	fc := GeoJSON(p)

	if got, want := len(fc.Features), len(p.Wires())+len(p.Intersections()); got != want {
		t.Fatalf("got %d features, want %d", got, want)
	}

	wire0 := fc.Features[0]
	if !wire0.Geometry.IsLineString() {
		t.Fatalf("feature 0 is %s, want LineString", wire0.Geometry.Type)
	}
	wantLine := [][]float64{{0, 0}, {8, 0}, {8, -5}, {3, -5}, {3, -2}}
	if diff := cmp.Diff(wantLine, wire0.Geometry.LineString); diff != "" {
		t.Errorf("wire 0 coordinates mismatch (-want +got):\n%s", diff)
	}
	if got := wire0.Properties["wire"]; got != 0 {
		t.Errorf("wire property = %v, want 0", got)
	}

	var answers []string
	for _, f := range fc.Features[2:] {
		if !f.Geometry.IsPoint() {
			t.Fatalf("intersection feature is %s, want Point", f.Geometry.Type)
		}
		if a, ok := f.Properties["answer"].([]string); ok {
			for _, name := range a {
				answers = append(answers, name+"@"+pointKey(f.Geometry))
			}
		}
	}
	want := []string{"fastest@6,-5", "closest@3,-3"}
	if diff := cmp.Diff(want, answers); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}
}

func TestGeoJSON_SingleWire(t *testing.T) {
	fc := GeoJSON(wires.NewPuzzle("R8,U5"))
	if len(fc.Features) != 1 {
		t.Fatalf("got %d features, want 1", len(fc.Features))
	}
}

func TestMarshalGeoJSON(t *testing.T) {
	b, err := MarshalGeoJSON(wires.NewPuzzle(small))
	if err != nil {
		t.Fatalf("MarshalGeoJSON: %v", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		t.Fatalf("UnmarshalFeatureCollection: %v", err)
	}
	if len(fc.Features) != 5 {
		t.Errorf("got %d features, want 5", len(fc.Features))
	}
}

func pointKey(g *geojson.Geometry) string {
	return primitives.FormatFloat(g.Point[0]) + "," + primitives.FormatFloat(g.Point[1])
}

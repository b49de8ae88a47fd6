// Package export turns a solved puzzle into formats external renderers can draw.
package export

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"crosswarped.com/wires"
	"crosswarped.com/wires/pkg/primitives"
)

const (
	AnswerClosest = "closest"
	AnswerFastest = "fastest"
)

// GeoJSON builds a feature collection with one LineString per wire followed by
// one Point per intersection, in scan order.
//
// Grid coordinates are written as-is, so y grows downward. Crossings that are
// puzzle answers carry an "answer" property.
func GeoJSON(p *wires.Puzzle) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, w := range p.Wires() {
		coords := [][]float64{coord(primitives.Origin)}
		for _, s := range w {
			coords = append(coords, coord(s.End))
		}

		f := geojson.NewLineStringFeature(coords)
		f.SetProperty("wire", i)
		f.SetProperty("endstep", w.Endstep())
		fc.AddFeature(f)
	}

	closest, hasClosest := p.ClosestIntersection()
	fastest, hasFastest := p.FastestIntersection()

	for _, in := range p.Intersections() {
		f := geojson.NewPointFeature(coord(in.Point))
		f.SetProperty("step", in.Step)
		f.SetProperty("combinedStep", in.CombinedStep)
		f.SetProperty("distance", in.Distance())

		var answers []string
		if hasClosest && in == closest {
			answers = append(answers, AnswerClosest)
			hasClosest = false
		}
		if hasFastest && in == fastest {
			answers = append(answers, AnswerFastest)
			hasFastest = false
		}
		if len(answers) > 0 {
			f.SetProperty("answer", answers)
		}
		fc.AddFeature(f)
	}

	return fc
}

// MarshalGeoJSON encodes the GeoJSON export of p.
func MarshalGeoJSON(p *wires.Puzzle) ([]byte, error) {
	b, err := GeoJSON(p).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal geojson: %w", err)
	}
	return b, nil
}

func coord(p primitives.Point) []float64 {
	return []float64{p.X, p.Y}
}

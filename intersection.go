package wires

import (
	"fmt"

	"crosswarped.com/wires/pkg/primitives"
)

// Intersection is a point where wire 0 and wire 1 cross.
type Intersection struct {
	Point primitives.Point
	// Step is how far the slower of the two wires has walked to get here.
	Step float64
	// CombinedStep is the sum of both wires' steps to get here.
	CombinedStep float64
}

// Distance returns the Manhattan distance from the origin.
func (i Intersection) Distance() float64 {
	return i.Point.Distance(primitives.Origin)
}

func (i Intersection) Repr() string {
	return fmt.Sprintf("%v distance=%s steps=%s", i.Point, primitives.FormatFloat(i.Distance()), primitives.FormatFloat(i.CombinedStep))
}

func (i Intersection) DebugString() string {
	return fmt.Sprintf("Intersection{point: %v, step: %v, combinedStep: %v}", i.Point, i.Step, i.CombinedStep)
}

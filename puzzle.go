package wires

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"crosswarped.com/wires/internal"
	"crosswarped.com/wires/pkg/primitives"
)

const (
	// defaultEndstep is reported when no wire has any length.
	defaultEndstep = 10
	// defaultExtent is half the reported width/height when there are no end points.
	defaultExtent = 5
)

// Wire is an ordered, connected run of segments starting at the origin.
type Wire []primitives.Segment

// PositionAt returns where the head of the wire is after walking step steps.
func (w Wire) PositionAt(step int) primitives.Point {
	for _, s := range w {
		if s.StepEnd > step {
			return s.PointAt(step)
		}
	}
	if len(w) == 0 {
		return primitives.Origin
	}
	return w[len(w)-1].End
}

// Endstep returns the total length of the wire.
func (w Wire) Endstep() int {
	if len(w) == 0 {
		return 0
	}
	return w[len(w)-1].StepEnd
}

// Puzzle holds the parsed wires of one puzzle input and answers questions about
// where the first two of them cross.
//
// A Puzzle is immutable once created. Derived values are computed on first use
// and cached, so it is safe to query from several goroutines.
type Puzzle struct {
	definitions []string
	wires       []Wire

	// Do not access this field directly, use the Intersections method instead.
	lazyIntersections func() []Intersection
}

// NewPuzzle parses input, one wire definition per line.
func NewPuzzle(input string) *Puzzle {
	p := &Puzzle{}
	for _, w := range internal.ParseWires(input) {
		p.wires = append(p.wires, Wire(w))
	}
	if len(p.wires) > 0 {
		for line := range strings.SplitSeq(strings.TrimSpace(input), "\n") {
			p.definitions = append(p.definitions, strings.TrimRight(line, "\r"))
		}
	}
	p.lazyIntersections = sync.OnceValue(func() []Intersection {
		return slices.Collect(p.AllIntersections())
	})
	return p
}

// Definitions returns the raw wire definitions, one per wire.
func (p *Puzzle) Definitions() []string {
	return slices.Clone(p.definitions)
}

// Wires returns the parsed wires.
func (p *Puzzle) Wires() []Wire {
	return slices.Clone(p.wires)
}

// AllIntersections yields every crossing between a segment of wire 0 and a
// segment of wire 1. Wire 0's segments are the outer loop and wire 1's the inner
// one, which fixes the order crossings are produced in.
//
// Nothing is yielded when the puzzle has fewer than two wires. Crossings of a
// wire with itself are never considered.
func (p *Puzzle) AllIntersections() iter.Seq[Intersection] {
	return func(yield func(Intersection) bool) {
		if len(p.wires) < 2 {
			return
		}

		for _, s1 := range p.wires[0] {
			for _, s2 := range p.wires[1] {
				hit, ok := s1.Intersection(s2)
				if !ok {
					continue
				}

				step1 := float64(s1.StepStart) + s1.Start.Distance(hit)
				step2 := float64(s2.StepStart) + s2.Start.Distance(hit)
				if !yield(Intersection{
					Point:        hit,
					Step:         max(step1, step2),
					CombinedStep: step1 + step2,
				}) {
					return
				}
			}
		}
	}
}

// Intersections returns all crossings in the order AllIntersections yields them.
// The returned slice must not be modified.
func (p *Puzzle) Intersections() []Intersection {
	return p.lazyIntersections()
}

// IntersectionsReachedBy returns the crossings both wires have reached after
// walking step steps.
func (p *Puzzle) IntersectionsReachedBy(step int) []Intersection {
	var reached []Intersection
	for _, i := range p.Intersections() {
		if i.Step <= float64(step) {
			reached = append(reached, i)
		}
	}
	return reached
}

// ClosestIntersection returns the crossing nearest to the origin by Manhattan
// distance. Ties go to the crossing found first.
//
// Both wires leave from the origin, so a crossing there is never an answer.
func (p *Puzzle) ClosestIntersection() (Intersection, bool) {
	return firstBy(p.candidates(), func(i Intersection) float64 {
		return i.Distance()
	})
}

// FastestIntersection returns the crossing with the lowest combined step count.
// Ties go to the crossing found first.
func (p *Puzzle) FastestIntersection() (Intersection, bool) {
	return firstBy(p.candidates(), func(i Intersection) float64 {
		return i.CombinedStep
	})
}

func (p *Puzzle) candidates() []Intersection {
	return slices.DeleteFunc(slices.Clone(p.Intersections()), func(i Intersection) bool {
		return i.Point.Equals(primitives.Origin)
	})
}

// firstBy stable-sorts by key and returns the first element.
func firstBy(ints []Intersection, key func(Intersection) float64) (Intersection, bool) {
	if len(ints) == 0 {
		return Intersection{}, false
	}
	slices.SortStableFunc(ints, func(a, b Intersection) int {
		return cmp.Compare(key(a), key(b))
	})
	return ints[0], true
}

// WirePositionAt returns where wire idx is after walking step steps.
func (p *Puzzle) WirePositionAt(idx, step int) (primitives.Point, error) {
	if idx < 0 || idx >= len(p.wires) {
		return primitives.Point{}, fmt.Errorf("wire %d out of range, puzzle has %d wires", idx, len(p.wires))
	}
	return p.wires[idx].PositionAt(step), nil
}

// Endstep returns the length of the longest wire, used to pace a step-by-step
// reveal of the wires.
func (p *Puzzle) Endstep() int {
	endstep := 0
	for _, w := range p.wires {
		endstep = max(endstep, w.Endstep())
	}
	if endstep == 0 {
		return defaultEndstep
	}
	return endstep
}

// Width returns twice the largest |x| of any segment end point.
func (p *Puzzle) Width() float64 {
	return p.extent(func(pt primitives.Point) float64 { return pt.X })
}

// Height returns twice the largest |y| of any segment end point.
func (p *Puzzle) Height() float64 {
	return p.extent(func(pt primitives.Point) float64 { return pt.Y })
}

func (p *Puzzle) extent(coord func(primitives.Point) float64) float64 {
	var furthest float64
	for _, w := range p.wires {
		for _, s := range w {
			furthest = max(furthest, abs(coord(s.End)))
		}
	}
	if furthest == 0 {
		furthest = defaultExtent
	}
	return furthest * 2
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (p *Puzzle) Repr() string {
	var b strings.Builder
	if i, ok := p.ClosestIntersection(); ok {
		fmt.Fprintf(&b, "closest: %s at %v\n", primitives.FormatFloat(i.Distance()), i.Point)
	} else {
		b.WriteString("closest: none\n")
	}
	if i, ok := p.FastestIntersection(); ok {
		fmt.Fprintf(&b, "fastest: %s at %v", primitives.FormatFloat(i.CombinedStep), i.Point)
	} else {
		b.WriteString("fastest: none")
	}
	return b.String()
}

func (p *Puzzle) DebugString() string {
	lengths := make([]int, len(p.wires))
	for i, w := range p.wires {
		lengths[i] = len(w)
	}
	return fmt.Sprintf("Puzzle{wires: %d, segments: %v, intersections: %d, endstep: %d, width: %v, height: %v}",
		len(p.wires), lengths, len(p.Intersections()), p.Endstep(), p.Width(), p.Height())
}

package primitives

import "fmt"

// Facing is the direction a segment runs in, written as its move letter.
type Facing byte

const (
	FacingUp    Facing = 'U'
	FacingDown  Facing = 'D'
	FacingLeft  Facing = 'L'
	FacingRight Facing = 'R'
)

// ParseFacing returns the facing for a move letter.
func ParseFacing(b byte) (Facing, bool) {
	switch f := Facing(b); f {
	case FacingUp, FacingDown, FacingLeft, FacingRight:
		return f, true
	}
	return 0, false
}

// Delta returns the unit step for the facing. The y axis grows downward, so Up
// is negative y.
func (f Facing) Delta() (dx, dy int) {
	switch f {
	case FacingRight:
		return 1, 0
	case FacingLeft:
		return -1, 0
	case FacingDown:
		return 0, 1
	case FacingUp:
		return 0, -1
	}
	return 0, 0
}

func (f Facing) String() string {
	return string(rune(f))
}

// Segment is one straight, axis-aligned run of a wire.
//
// StepStart and StepEnd are the cumulative wire length at Start and End, so
// StepEnd-StepStart is always the segment's length.
type Segment struct {
	Facing    Facing
	Start     Point
	End       Point
	StepStart int
	StepEnd   int
}

// Len returns the number of steps the segment covers.
func (s Segment) Len() int {
	return s.StepEnd - s.StepStart
}

// IsZero returns true if the segment has no length.
func (s Segment) IsZero() bool {
	return s.Start.Equals(s.End)
}

// PointAt returns where a walker following the wire is after the given total
// number of steps, clamped to the segment.
func (s Segment) PointAt(step int) Point {
	if step <= s.StepStart {
		return s.Start
	}
	if step >= s.StepEnd {
		return s.End
	}
	dx, dy := s.Facing.Delta()
	dist := float64(step - s.StepStart)
	return s.Start.Add(float64(dx)*dist, float64(dy)*dist)
}

// Intersection returns the point where s and o cross.
//
// Zero-length segments and parallel segments never intersect; this includes
// collinear segments that overlap. Touching at an endpoint counts as a crossing.
func (s Segment) Intersection(o Segment) (Point, bool) {
	if s.IsZero() || o.IsZero() {
		return Point{}, false
	}

	x1, y1 := s.Start.X, s.Start.Y
	x2, y2 := s.End.X, s.End.Y
	x3, y3 := o.Start.X, o.Start.Y
	x4, y4 := o.End.X, o.End.Y

	denominator := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)
	if denominator == 0 {
		return Point{}, false
	}

	ua := ((x4-x3)*(y1-y3) - (y4-y3)*(x1-x3)) / denominator
	ub := ((x2-x1)*(y1-y3) - (y2-y1)*(x1-x3)) / denominator
	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return Point{}, false
	}

	return Point{
		X: x1 + ua*(x2-x1),
		Y: y1 + ua*(y2-y1),
	}, true
}

func (s Segment) String() string {
	return fmt.Sprintf("%s%d %s->%s [%d,%d]", s.Facing, s.Len(), s.Start, s.End, s.StepStart, s.StepEnd)
}

package primitives

import (
	"fmt"
	"math"
	"strconv"
)

// Point is a position on the wire grid.
//
// Points built from a wire definition always have integral coordinates, but the
// crossing of two segments is computed in floating point and is not assumed to
// land on the grid.
type Point struct {
	X float64
	Y float64
}

// Origin is where every wire starts.
var Origin = Point{}

func NewPoint(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// Equals returns true if both coordinates match exactly.
func (p Point) Equals(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// Distance returns the Manhattan distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Abs(p.X-o.X) + math.Abs(p.Y-o.Y)
}

// Add returns the point moved by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%s,%s)", FormatFloat(p.X), FormatFloat(p.Y))
}

// FormatFloat formats v with the fewest digits needed, so grid values print as integers.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package geometry

import (
	"fmt"
	"math"
)

///////////////////////////////////////////////////////////////////////////////
/// POINT
///////////////////////////////////////////////////////////////////////////////

// Point represents a 2D point with X and Y coordinates.
// It stands in for the complex-number arithmetic that rendering tools
// commonly use for curve maths: Add/Sub/Scale give the same algebra.
type Point struct {
	X, Y float64
}

func NewPoint(x float64, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale multiplies both coordinates by s
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp linearly interpolates between p and o at parameter t
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: p.X + (o.X-p.X)*t,
		Y: p.Y + (o.Y-p.Y)*t,
	}
}

// Midpoint returns the point halfway between p and o
func (p Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (p.X + o.X),
		Y: 0.5 * (p.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Rotate90 swaps the X and Y components, mirroring the point about
// the line y = x. Used to normalise vertical chords before the
// linearity test.
func (p Point) Rotate90() Point {
	return Point{X: p.Y, Y: p.X}
}
